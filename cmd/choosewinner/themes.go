package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ezBadminton/choosewinner/theme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the themes of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := theme.LoadCatalogFile(c.cfg.Catalog)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range catalog.Themes {
				kind := "built-in"
				if t.Custom {
					kind = "custom"
				}
				status := "playable"
				if err := t.Validate(); err != nil {
					status = err.Error()
				}
				fmt.Fprintf(out, "%s\t%d cards\t%s\t%s\n", t.Title, len(t.Cards), kind, status)
			}
			return nil
		},
	}
}

func (c *cli) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [title] [card...]",
		Short: "Add a custom theme with 4 or 8 cards to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := theme.LoadCatalogFile(c.cfg.Catalog)
			if errors.Is(err, os.ErrNotExist) {
				catalog = &theme.Catalog{}
			} else if err != nil {
				return err
			}

			cards := make([]*theme.Card, 0, len(args)-1)
			for _, title := range args[1:] {
				card, err := theme.NewCard(title, nil)
				if err != nil {
					return err
				}
				cards = append(cards, card)
			}

			t, err := theme.NewCustomTheme(args[0], cards)
			if err != nil {
				return err
			}
			if err := catalog.Add(t); err != nil {
				return err
			}
			if err := catalog.SaveFile(c.cfg.Catalog); err != nil {
				return err
			}

			c.logger.Info("theme added", zap.String("theme", t.Title), zap.Int("cards", len(cards)))
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s with %d cards\n", t.Title, len(cards))
			return nil
		},
	}
}
