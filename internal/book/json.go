package book

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wire format (mdbook's serde output): a book is an object with a
// "sections" array, each element either the string "Separator" or an
// object keyed by the variant name, {"Chapter": {...}}. The book object
// also carries a "__non_exhaustive": null marker which hosts expect to
// round-trip.

type bookWire struct {
	Sections []json.RawMessage `json:"sections"`
}

type chapterWire struct {
	Name        string            `json:"name"`
	Content     string            `json:"content"`
	Number      []int             `json:"number"`
	SubItems    []json.RawMessage `json:"sub_items"`
	Path        *string           `json:"path"`
	SourcePath  *string           `json:"source_path"`
	ParentNames []string          `json:"parent_names"`
	Frontmatter map[string]string `json:"frontmatter"`
}

func (b *Book) UnmarshalJSON(data []byte) error {
	var w bookWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	items, err := unmarshalItems(w.Sections)
	if err != nil {
		return err
	}
	b.Sections = items
	return nil
}

func (b *Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sections      []Item      `json:"sections"`
		NonExhaustive interface{} `json:"__non_exhaustive"`
	}{Sections: b.Sections})
}

func (c *Chapter) MarshalJSON() ([]byte, error) {
	type inner struct {
		Name        string            `json:"name"`
		Content     string            `json:"content"`
		Number      []int             `json:"number"`
		SubItems    []Item            `json:"sub_items"`
		Path        *string           `json:"path"`
		SourcePath  *string           `json:"source_path"`
		ParentNames []string          `json:"parent_names"`
		Frontmatter map[string]string `json:"frontmatter"`
	}
	sub := c.SubItems
	if sub == nil {
		sub = []Item{}
	}
	return json.Marshal(struct {
		Chapter inner `json:"Chapter"`
	}{inner{
		Name:        c.Name,
		Content:     c.Content,
		Number:      c.Number,
		SubItems:    sub,
		Path:        c.Path,
		SourcePath:  c.SourcePath,
		ParentNames: c.ParentNames,
		Frontmatter: c.Frontmatter,
	}})
}

func (Separator) MarshalJSON() ([]byte, error) {
	return json.Marshal("Separator")
}

func unmarshalItems(raws []json.RawMessage) ([]Item, error) {
	items := make([]Item, 0, len(raws))
	for _, raw := range raws {
		it, err := unmarshalItem(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func unmarshalItem(raw json.RawMessage) (Item, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var tag string
		if err := json.Unmarshal(trimmed, &tag); err != nil {
			return nil, err
		}
		if tag != "Separator" {
			return nil, fmt.Errorf("unknown book item %q", tag)
		}
		return Separator{}, nil
	}

	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &tagged); err != nil {
		return nil, fmt.Errorf("decode book item: %w", err)
	}
	inner, ok := tagged["Chapter"]
	if !ok || len(tagged) != 1 {
		return nil, fmt.Errorf("unknown book item, expected Chapter or Separator")
	}

	var w chapterWire
	if err := json.Unmarshal(inner, &w); err != nil {
		return nil, fmt.Errorf("decode chapter: %w", err)
	}
	sub, err := unmarshalItems(w.SubItems)
	if err != nil {
		return nil, err
	}
	return &Chapter{
		Name:        w.Name,
		Content:     w.Content,
		Number:      w.Number,
		SubItems:    sub,
		Path:        w.Path,
		SourcePath:  w.SourcePath,
		ParentNames: w.ParentNames,
		Frontmatter: w.Frontmatter,
	}, nil
}
