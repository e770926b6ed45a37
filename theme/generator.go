package theme

import (
	"bufio"
	"context"
	"fmt"
	"regexp"
	"strings"
)

// A Generator produces card titles for a topic, for
// example by asking a remote text model.
//
// The reply is a plain list with one title per line.
// Numbering and bullets are allowed.
type Generator interface {
	Generate(ctx context.Context, topic string, numCards int) (string, error)
}

var listMarker = regexp.MustCompile(`^\s*(?:\d+[.)]|[-*•])\s*`)

// Turns a generated list into cards.
//
// List markers, surrounding quotes and blank lines are dropped.
// At most numCards cards are returned.
func ParseGeneratedList(text string, numCards int) []*Card {
	cards := make([]*Card, 0, numCards)
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() && len(cards) < numCards {
		line := listMarker.ReplaceAllString(scanner.Text(), "")
		line = strings.Trim(strings.TrimSpace(line), `"'`)
		card, err := NewCard(line, nil)
		if err != nil {
			continue
		}
		card.SortOrder = len(cards)
		cards = append(cards, card)
	}
	return cards
}

// Asks the generator for numCards card titles about the topic
// and returns them as a custom theme.
func GenerateTheme(ctx context.Context, gen Generator, topic string, numCards int) (*Theme, error) {
	text, err := gen.Generate(ctx, topic, numCards)
	if err != nil {
		return nil, fmt.Errorf("generate cards: %w", err)
	}

	cards := ParseGeneratedList(text, numCards)
	if len(cards) < numCards {
		return nil, fmt.Errorf("%w: got %v of %v cards", ErrCustomThemeSize, len(cards), numCards)
	}

	return NewCustomTheme(topic, cards)
}
