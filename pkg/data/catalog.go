package data

import (
	"encoding/json"
	"fmt"
	"io"
)

// Catalog is the full list of titles, as served in the catalog document.
type Catalog struct {
	Titles []Title `json:"mangas"`
}

// DecodeCatalog parses a catalog document of the form {"mangas": [...]}.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if c.Titles == nil {
		return nil, fmt.Errorf("catalog has no \"mangas\" list")
	}
	return &c, nil
}

// Title returns the title with the given id, or nil.
func (c *Catalog) Title(id int) *Title {
	if c == nil {
		return nil
	}
	for i := range c.Titles {
		if c.Titles[i].ID == id {
			return &c.Titles[i]
		}
	}
	return nil
}

// Chapter returns the chapter of a title, or nil if either is unknown.
func (c *Catalog) Chapter(titleID, chapterID int) *Chapter {
	t := c.Title(titleID)
	if t == nil {
		return nil
	}
	return t.Chapter(chapterID)
}

// Validate checks the invariants the reader relies on: unique positive
// title ids and chapter ids that run 1..n within each title.
func (c *Catalog) Validate() error {
	seen := make(map[int]bool, len(c.Titles))
	for _, t := range c.Titles {
		if t.ID <= 0 {
			return fmt.Errorf("title %q: id must be positive, got %d", t.Name, t.ID)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate title id %d", t.ID)
		}
		seen[t.ID] = true

		ids := make(map[int]bool, len(t.Chapters))
		for _, ch := range t.Chapters {
			if ch.ID < 1 || ch.ID > len(t.Chapters) {
				return fmt.Errorf("title %d: chapter id %d outside 1..%d", t.ID, ch.ID, len(t.Chapters))
			}
			if ids[ch.ID] {
				return fmt.Errorf("title %d: duplicate chapter id %d", t.ID, ch.ID)
			}
			ids[ch.ID] = true
		}
	}
	return nil
}

// Encode writes the catalog document with indentation.
func (c *Catalog) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
