// Package plugin drives one preprocessor invocation over the mdbook
// stdin/stdout protocol.
package plugin

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"mdbook-frontmatter/internal/book"
	"mdbook-frontmatter/internal/preprocess"
	"mdbook-frontmatter/internal/version"
)

// ParseInput decodes the two-element [context, book] payload mdbook
// writes to a preprocessor's stdin.
func ParseInput(r io.Reader) (*preprocess.Context, *book.Book, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode input payload: %w", err)
	}
	if len(raw) != 2 {
		return nil, nil, fmt.Errorf("expected [context, book] payload, got %d elements", len(raw))
	}

	var ctx preprocess.Context
	if err := json.Unmarshal(raw[0], &ctx); err != nil {
		return nil, nil, fmt.Errorf("decode preprocessor context: %w", err)
	}
	var b book.Book
	if err := json.Unmarshal(raw[1], &b); err != nil {
		return nil, nil, fmt.Errorf("decode book: %w", err)
	}
	return &ctx, &b, nil
}

// Handle runs one transform invocation: parse the input payload, warn
// on version skew, run the preprocessor, and write the transformed book
// to out as the sole payload. Diagnostics go through log, never out.
// Any returned error means nothing usable was written.
func Handle(pre preprocess.Preprocessor, in io.Reader, out io.Writer, log *slog.Logger) error {
	ctx, b, err := ParseInput(in)
	if err != nil {
		return err
	}

	ok, err := version.Check(ctx.MdbookVersion, version.Compatible)
	if err != nil {
		return err
	}
	if !ok {
		log.Warn("mdbook version mismatch",
			"plugin", pre.Name(),
			"built_against", version.Compatible,
			"host", ctx.MdbookVersion)
	}

	processed, err := pre.Run(ctx, b)
	if err != nil {
		return fmt.Errorf("run %s: %w", pre.Name(), err)
	}

	if err := json.NewEncoder(out).Encode(processed); err != nil {
		return fmt.Errorf("encode book: %w", err)
	}
	return nil
}
