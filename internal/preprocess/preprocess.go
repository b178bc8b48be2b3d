// Package preprocess implements the mdbook preprocessor contract for
// frontmatter rewriting.
package preprocess

import (
	"encoding/json"
	"fmt"

	"mdbook-frontmatter/internal/book"
	"mdbook-frontmatter/internal/frontmatter"
)

// notSupported is the one renderer this preprocessor refuses.
const notSupported = "not-supported"

// Context is the host-supplied description of the current build.
// The build configuration is round-tripped opaquely.
type Context struct {
	Root          string          `json:"root"`
	Config        json.RawMessage `json:"config"`
	Renderer      string          `json:"renderer"`
	MdbookVersion string          `json:"mdbook_version"`
}

// Preprocessor mirrors mdbook's preprocessor contract: the host first
// asks whether a renderer is supported, then hands over the book for a
// single transform pass.
type Preprocessor interface {
	Name() string
	Run(ctx *Context, b *book.Book) (*book.Book, error)
	SupportsRenderer(renderer string) bool
}

// Frontmatter upper-cases every chapter frontmatter value and
// normalizes the reserved "date" entry. The optional content-stage
// passes populate frontmatter from the chapter body before the
// transform runs; both default to off, leaving the transform as the
// only behavior.
type Frontmatter struct {
	ExtractHeaders bool
	DeriveTitles   bool
}

func (p *Frontmatter) Name() string { return "frontmatter-preprocessor" }

// Run walks the book pre-order and replaces each chapter's frontmatter
// with the transformed mapping, in place. The first failing chapter
// aborts the whole run: a partially transformed book is never returned.
func (p *Frontmatter) Run(_ *Context, b *book.Book) (*book.Book, error) {
	err := b.Walk(func(ch *book.Chapter) error {
		if err := p.prepare(ch); err != nil {
			return fmt.Errorf("chapter %q: %w", ch.Name, err)
		}
		if ch.Frontmatter == nil {
			return nil
		}
		meta, err := frontmatter.Transform(ch.Frontmatter)
		if err != nil {
			return fmt.Errorf("chapter %q: %w", ch.Name, err)
		}
		ch.Frontmatter = meta
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// prepare runs the optional content-stage passes on one chapter.
func (p *Frontmatter) prepare(ch *book.Chapter) error {
	if p.ExtractHeaders && len(ch.Frontmatter) == 0 {
		meta, body, err := frontmatter.ExtractHeader(ch.Content)
		if err != nil {
			return err
		}
		if meta != nil {
			ch.Frontmatter = meta
			ch.Content = body
		}
	}

	if p.DeriveTitles {
		if _, ok := ch.Frontmatter["title"]; !ok {
			if title := frontmatter.FirstHeading(ch.Content); title != "" {
				if ch.Frontmatter == nil {
					ch.Frontmatter = make(map[string]string)
				}
				ch.Frontmatter["title"] = title
			}
		}
	}
	return nil
}

// SupportsRenderer reports whether this preprocessor can run for the
// given renderer. Unknown and empty names are supported; only the
// reserved sentinel is refused.
func (p *Frontmatter) SupportsRenderer(renderer string) bool {
	return renderer != notSupported
}
