package theme

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// A Catalog is the list of themes that can be played.
// It is stored as a YAML file.
type Catalog struct {
	Themes []*Theme `yaml:"themes"`
}

// Reads a catalog from YAML. Cards without an id get a fresh one.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	catalog := &Catalog{}
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(catalog); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for _, t := range catalog.Themes {
		t.assignIds()
	}

	return catalog, nil
}

func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return LoadCatalog(f)
}

// Writes the catalog as YAML
func (c *Catalog) Save(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return encoder.Close()
}

// Writes the catalog to the file at path. A failure to
// close the file is returned unless saving failed before.
func (c *Catalog) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close catalog: %w", closeErr)
		}
	}()

	return c.Save(f)
}

// Returns the theme with the given title. The lookup
// ignores case.
func (c *Catalog) Find(title string) (*Theme, error) {
	i := slices.IndexFunc(c.Themes, func(t *Theme) bool { return strings.EqualFold(t.Title, title) })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, title)
	}
	return c.Themes[i], nil
}

// Adds a validated theme to the catalog
func (c *Catalog) Add(theme *Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	if _, err := c.Find(theme.Title); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicateTheme, theme.Title)
	}
	theme.assignIds()
	c.Themes = append(c.Themes, theme)
	return nil
}

// Removes the theme with the given title
func (c *Catalog) Remove(title string) error {
	theme, err := c.Find(title)
	if err != nil {
		return err
	}
	c.Themes = slices.DeleteFunc(c.Themes, func(t *Theme) bool { return t == theme })
	return nil
}

// Returns the themes that were authored by the user
func (c *Catalog) CustomThemes() []*Theme {
	custom := make([]*Theme, 0, len(c.Themes))
	for _, t := range c.Themes {
		if t.Custom {
			custom = append(custom, t)
		}
	}
	return custom
}
