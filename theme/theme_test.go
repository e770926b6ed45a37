package theme

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `
themes:
  - title: Fast Food
    icon: icon_fast_food
    cards:
      - id: burger
        title: Burger
        sortOrder: 1
      - id: pizza
        title: Pizza
        sortOrder: 0
      - id: fries
        title: Fries
        sortOrder: 3
      - title: Tacos
        sortOrder: 2
  - title: Trio
    cards:
      - title: One
      - title: Two
      - title: Three
`

func TestValidateSize(t *testing.T) {
	if err := ValidateSize(0); !errors.Is(err, ErrEmptyTheme) {
		t.Fatal("zero cards did not error")
	}
	for _, n := range []int{3, 5, 6, 7, 12} {
		if err := ValidateSize(n); !errors.Is(err, ErrUnsupportedThemeSize) {
			t.Fatalf("%v cards did not error", n)
		}
	}
	for _, n := range []int{1, 2, 4, 8, 16} {
		if err := ValidateSize(n); err != nil {
			t.Fatalf("%v cards did error", n)
		}
	}
}

func TestNewCard(t *testing.T) {
	if _, err := NewCard("   ", nil); !errors.Is(err, ErrEmptyCardTitle) {
		t.Fatal("a blank title did not error")
	}

	card, err := NewCard("  Sushi ", []byte{1})
	if err != nil {
		t.Fatal(err)
	}
	if card.Title != "Sushi" || card.Id == "" {
		t.Fatal("the card was not trimmed or got no id")
	}

	item := card.Item()
	if string(item.Id()) != card.Id || item.Name() != "Sushi" || !item.HasImage() {
		t.Fatal("the item does not carry the card data")
	}
}

func TestCustomTheme(t *testing.T) {
	cards := make([]*Card, 0, 4)
	for _, title := range []string{"A", "B", "C"} {
		card, _ := NewCard(title, nil)
		cards = append(cards, card)
	}

	if _, err := NewCustomTheme("Letters", cards); !errors.Is(err, ErrCustomThemeSize) {
		t.Fatal("a custom theme with 3 cards did not error")
	}

	card, _ := NewCard("D", nil)
	cards = append(cards, card)

	if _, err := NewCustomTheme(" ", cards); !errors.Is(err, ErrEmptyThemeTitle) {
		t.Fatal("a blank theme title did not error")
	}

	theme, err := NewCustomTheme("Letters", cards)
	if err != nil {
		t.Fatal(err)
	}
	if !theme.Custom || theme.CreatedAt.IsZero() {
		t.Fatal("the theme is not marked as custom")
	}
	if theme.Cards[3].SortOrder != 3 {
		t.Fatal("the card order was not stored")
	}
	if err := theme.Validate(); err != nil {
		t.Fatal(err)
	}

	theme.Cards = theme.Cards[:2]
	if err := theme.Validate(); !errors.Is(err, ErrCustomThemeSize) {
		t.Fatal("a custom theme with 2 cards is valid")
	}
}

func TestCatalog(t *testing.T) {
	catalog, err := LoadCatalog(strings.NewReader(testCatalog))
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog.Themes) != 2 {
		t.Fatal("the catalog did not load both themes")
	}

	fastFood, err := catalog.Find("fast food")
	if err != nil {
		t.Fatal(err)
	}
	if err := fastFood.Validate(); err != nil {
		t.Fatal(err)
	}

	items := fastFood.Items()
	names := make([]string, 0, len(items))
	for _, i := range items {
		names = append(names, i.Name())
	}
	if strings.Join(names, ",") != "Pizza,Burger,Tacos,Fries" {
		t.Fatalf("the items are not in sort order: %v", names)
	}
	if items[2].Id() == "" {
		t.Fatal("the card without id did not get one")
	}

	trio, _ := catalog.Find("Trio")
	if err := trio.Validate(); !errors.Is(err, ErrUnsupportedThemeSize) {
		t.Fatal("the theme with 3 cards is valid")
	}

	if _, err := catalog.Find("Movies"); !errors.Is(err, ErrUnknownTheme) {
		t.Fatal("an unknown theme was found")
	}

	if err := catalog.Add(fastFood); !errors.Is(err, ErrDuplicateTheme) {
		t.Fatal("a duplicate theme was added")
	}
	if err := catalog.Add(trio); !errors.Is(err, ErrUnsupportedThemeSize) {
		t.Fatal("an invalid theme was added")
	}

	if err := catalog.Remove("Trio"); err != nil {
		t.Fatal(err)
	}
	if len(catalog.Themes) != 1 {
		t.Fatal("the theme was not removed")
	}
}

func TestCatalogFile(t *testing.T) {
	catalog, err := LoadCatalog(strings.NewReader(testCatalog))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "themes.yaml")
	if err := catalog.SaveFile(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Themes) != len(catalog.Themes) {
		t.Fatal("the themes did not survive saving to a file")
	}

	missing := filepath.Join(t.TempDir(), "missing", "themes.yaml")
	if err := catalog.SaveFile(missing); err == nil {
		t.Fatal("saving into a missing directory did not error")
	}
	if _, err := os.Stat(missing); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("a file was created in a missing directory")
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	catalog := &Catalog{}
	cards := make([]*Card, 0, 4)
	for _, title := range []string{"Cats", "Dogs", "Owls", "Foxes"} {
		card, _ := NewCard(title, []byte{1, 2})
		cards = append(cards, card)
	}
	theme, err := NewCustomTheme("Animals", cards)
	if err != nil {
		t.Fatal(err)
	}
	if err := catalog.Add(theme); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := catalog.Save(&buf); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadCatalog(&buf)
	if err != nil {
		t.Fatal(err)
	}

	animals, err := loaded.Find("Animals")
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.CustomThemes()) != 1 || len(animals.Cards) != 4 {
		t.Fatal("the custom theme did not survive the round trip")
	}
	for i, c := range animals.Cards {
		if c.Id != cards[i].Id || c.Title != cards[i].Title {
			t.Fatal("the cards did not survive the round trip")
		}
		if c.ImageData != nil {
			t.Fatal("the image data was written to the catalog")
		}
	}
}

func TestEmptyCatalog(t *testing.T) {
	catalog, err := LoadCatalog(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(catalog.Themes) != 0 {
		t.Fatal("the empty catalog has themes")
	}

	if _, err := LoadCatalog(strings.NewReader("themes: [")); err == nil {
		t.Fatal("a broken catalog did not error")
	}
}

type stubGenerator struct {
	reply string
	err   error
}

func (g *stubGenerator) Generate(ctx context.Context, topic string, numCards int) (string, error) {
	return g.reply, g.err
}

func TestParseGeneratedList(t *testing.T) {
	text := "1. Pizza\n2) \"Sushi\"\n\n- Ramen\n* Tacos\n• Curry\n"

	cards := ParseGeneratedList(text, 4)
	titles := make([]string, 0, len(cards))
	for _, c := range cards {
		titles = append(titles, c.Title)
	}
	if strings.Join(titles, ",") != "Pizza,Sushi,Ramen,Tacos" {
		t.Fatalf("unexpected titles %v", titles)
	}
	if cards[3].SortOrder != 3 {
		t.Fatal("the generated cards are not ordered")
	}
}

func TestGenerateTheme(t *testing.T) {
	gen := &stubGenerator{reply: "Mars\nVenus\nEarth\nJupiter\nSaturn"}
	theme, err := GenerateTheme(context.Background(), gen, "Planets", 4)
	if err != nil {
		t.Fatal(err)
	}
	if theme.Title != "Planets" || len(theme.Cards) != 4 || !theme.Custom {
		t.Fatal("the generated theme is incomplete")
	}

	gen = &stubGenerator{reply: "Mars\nVenus"}
	if _, err := GenerateTheme(context.Background(), gen, "Planets", 4); !errors.Is(err, ErrCustomThemeSize) {
		t.Fatal("a short generated list did not error")
	}

	gen = &stubGenerator{err: errors.New("offline")}
	if _, err := GenerateTheme(context.Background(), gen, "Planets", 4); err == nil {
		t.Fatal("the generator error was swallowed")
	}
}
