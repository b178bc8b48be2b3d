package book

// Book is the loaded representation of an mdbook book: an ordered
// sequence of top-level items.
type Book struct {
	Sections []Item
}

// Item is a closed sum: a book item is either a Chapter or a Separator.
type Item interface {
	isItem()
}

// Chapter is a unit of document content, recursive through SubItems.
type Chapter struct {
	Name        string            `json:"name"`
	Content     string            `json:"content"`
	Number      []int             `json:"number"`
	SubItems    []Item            `json:"sub_items"`
	Path        *string           `json:"path"`
	SourcePath  *string           `json:"source_path"`
	ParentNames []string          `json:"parent_names"`
	Frontmatter map[string]string `json:"frontmatter"`
}

// Separator is a structural marker between items. It carries no
// content and is never visited by chapter walks.
type Separator struct{}

func (*Chapter) isItem()  {}
func (Separator) isItem() {}

// Walk visits every chapter in pre-order, depth-first: a chapter is
// visited before its sub-items. Separators are skipped. The walk stops
// at the first visitor error and returns it, so a failed walk leaves
// the book partially visited and must not be serialized.
func (b *Book) Walk(visit func(*Chapter) error) error {
	return walkItems(b.Sections, visit)
}

func walkItems(items []Item, visit func(*Chapter) error) error {
	for _, it := range items {
		ch, ok := it.(*Chapter)
		if !ok {
			continue
		}
		if err := visit(ch); err != nil {
			return err
		}
		if err := walkItems(ch.SubItems, visit); err != nil {
			return err
		}
	}
	return nil
}
