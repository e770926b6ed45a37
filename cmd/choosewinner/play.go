package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/ezBadminton/choosewinner/internal"
	"github.com/ezBadminton/choosewinner/theme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errInputEnded = errors.New("the input ended before the tournament was decided")

// Picks the winner of a pairing
type chooser func(p *internal.Pairing) (*internal.Item, error)

func (c *cli) newPlayCmd() *cobra.Command {
	var auto bool
	seed := c.cfg.Seed

	cmd := &cobra.Command{
		Use:   "play [theme]",
		Short: "Play the cards of a theme against each other",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			return c.play(cmd, args[0], seed, auto)
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "pick the winners randomly")
	cmd.Flags().Int64Var(&seed, "seed", seed, "seed of the pairing order (0 picks a random seed)")

	return cmd
}

func (c *cli) play(cmd *cobra.Command, title string, seed int64, auto bool) error {
	catalog, err := theme.LoadCatalogFile(c.cfg.Catalog)
	if err != nil {
		return err
	}
	t, err := catalog.Find(title)
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("theme %q can not be played: %w", t.Title, err)
	}

	c.logger.Info("starting tournament",
		zap.String("theme", t.Title),
		zap.Int("cards", len(t.Cards)),
		zap.Int64("seed", seed),
	)

	engine := internal.NewEngine(
		t.Items(),
		internal.WithLogger(c.logger),
		internal.WithSeed(seed),
	)
	engine.Start()

	out := cmd.OutOrStdout()

	var choose chooser
	if auto {
		choose = randomChooser(rand.New(rand.NewSource(seed)))
	} else {
		choose = promptChooser(bufio.NewReader(cmd.InOrStdin()), out)
	}

	for !engine.IsComplete() {
		pairing := engine.CurrentPairing()
		fmt.Fprintln(out, renderPairing(engine.ProgressLabel(), pairing))

		winner, err := choose(pairing)
		if err != nil {
			return err
		}
		if err := engine.Select(winner); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, renderChampion(engine.Champion()))

	tree, err := engine.Bracket()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, renderBracket(tree, engine))

	return nil
}

func randomChooser(rng *rand.Rand) chooser {
	return func(p *internal.Pairing) (*internal.Item, error) {
		if rng.Intn(2) == 0 {
			return p.ItemA, nil
		}
		return p.ItemB, nil
	}
}

// Asks for "1" or "2" until one of them is entered
func promptChooser(in *bufio.Reader, out io.Writer) chooser {
	return func(p *internal.Pairing) (*internal.Item, error) {
		for {
			fmt.Fprint(out, "Your pick (1/2): ")
			line, err := in.ReadString('\n')
			switch strings.TrimSpace(line) {
			case "1":
				return p.ItemA, nil
			case "2":
				return p.ItemB, nil
			}
			if err == io.EOF {
				return nil, errInputEnded
			}
			if err != nil {
				return nil, err
			}
		}
	}
}
