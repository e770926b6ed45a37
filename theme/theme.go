package theme

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/ezBadminton/choosewinner/internal"
	"github.com/google/uuid"
)

var (
	ErrEmptyTheme           = errors.New("the theme has no cards")
	ErrUnsupportedThemeSize = errors.New("the number of cards is neither 1 nor a power of two")
	ErrCustomThemeSize      = errors.New("custom themes have 4 or 8 cards")
	ErrEmptyCardTitle       = errors.New("the card title is empty")
	ErrEmptyThemeTitle      = errors.New("the theme title is empty")
	ErrUnknownTheme         = errors.New("no theme with this title")
	ErrDuplicateTheme       = errors.New("a theme with this title already exists")
)

// Card counts that can be picked for a custom theme
var CustomThemeSizes = []int{4, 8}

// A Card is one contestant of a theme.
type Card struct {
	Id    string `yaml:"id,omitempty"`
	Title string `yaml:"title"`
	// Name of an image file that belongs to the card
	ImageName string `yaml:"image,omitempty"`
	// Raw image data. Not part of the catalog file.
	ImageData []byte `yaml:"-"`
	// Position of the card in its theme
	SortOrder int `yaml:"sortOrder"`
}

// Creates a card with a fresh id.
//
// The title is trimmed and must not be empty.
func NewCard(title string, image []byte) (*Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyCardTitle
	}
	return &Card{Id: uuid.NewString(), Title: title, ImageData: image}, nil
}

// Converts the card to a tournament item with the card's id
func (c *Card) Item() *internal.Item {
	return internal.NewItemWithId(internal.ItemId(c.Id), c.Title, c.ImageData)
}

// A Theme is a named set of cards that are played
// against each other.
type Theme struct {
	Title    string `yaml:"title"`
	IconName string `yaml:"icon,omitempty"`
	// Custom themes are authored by the user, the
	// others are built in.
	Custom    bool      `yaml:"custom,omitempty"`
	CreatedAt time.Time `yaml:"createdAt,omitempty"`
	Cards     []*Card   `yaml:"cards"`
}

// Creates a custom theme from the given cards. The card order
// becomes the theme's sort order.
func NewCustomTheme(title string, cards []*Card) (*Theme, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyThemeTitle
	}
	if !slices.Contains(CustomThemeSizes, len(cards)) {
		return nil, ErrCustomThemeSize
	}

	for i, c := range cards {
		c.SortOrder = i
	}

	theme := &Theme{
		Title:     title,
		IconName:  "icon_custom_theme_placeholder",
		Custom:    true,
		CreatedAt: time.Now(),
		Cards:     cards,
	}

	return theme, nil
}

// Returns the cards ordered by their sort order
func (t *Theme) SortedCards() []*Card {
	cards := slices.Clone(t.Cards)
	slices.SortStableFunc(cards, func(a, b *Card) int { return a.SortOrder - b.SortOrder })
	return cards
}

// Returns the tournament items of the theme in sort order
func (t *Theme) Items() []*internal.Item {
	cards := t.SortedCards()
	items := make([]*internal.Item, 0, len(cards))
	for _, c := range cards {
		items = append(items, c.Item())
	}
	return items
}

// Checks that the theme can be played as a bracket
func (t *Theme) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyThemeTitle
	}
	for _, c := range t.Cards {
		if strings.TrimSpace(c.Title) == "" {
			return ErrEmptyCardTitle
		}
	}
	if t.Custom && !slices.Contains(CustomThemeSizes, len(t.Cards)) {
		return ErrCustomThemeSize
	}
	return ValidateSize(len(t.Cards))
}

// Returns nil if numCards cards can be played as a bracket.
// That is the case for 1 and all powers of two.
func ValidateSize(numCards int) error {
	if numCards == 0 {
		return ErrEmptyTheme
	}
	if !internal.IsSupportedBracketSize(numCards) {
		return ErrUnsupportedThemeSize
	}
	return nil
}

// Gives every card without an id a fresh one
func (t *Theme) assignIds() {
	for _, c := range t.Cards {
		if c.Id == "" {
			c.Id = uuid.NewString()
		}
	}
}
