package plugin

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdbook-frontmatter/internal/book"
	"mdbook-frontmatter/internal/preprocess"
)

// inputPayload is the shape mdbook writes to a preprocessor's stdin:
// a two-element array of [context, book].
func inputPayload(version string) string {
	return `[
		{
			"root": "/path/to/book",
			"config": {
				"book": {
					"authors": ["AUTHOR"],
					"language": "en",
					"multilingual": false,
					"src": "src",
					"title": "TITLE"
				},
				"preprocessor": {
					"nop": {}
				}
			},
			"renderer": "html",
			"mdbook_version": "` + version + `"
		},
		{
			"sections": [
				{
					"Chapter": {
						"name": "Chapter 1",
						"content": "# Chapter 1\n",
						"number": [1],
						"sub_items": [],
						"path": "chapter_1.md",
						"source_path": "chapter_1.md",
						"parent_names": [],
						"frontmatter": {
							"author": "grant (@grantkee)",
							"date": "2024-08-02"
						}
					}
				}
			],
			"__non_exhaustive": null
		}
	]`
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func TestParseInput(t *testing.T) {
	ctx, b, err := ParseInput(strings.NewReader(inputPayload("0.4.21")))
	require.NoError(t, err)

	assert.Equal(t, "/path/to/book", ctx.Root)
	assert.Equal(t, "html", ctx.Renderer)
	assert.Equal(t, "0.4.21", ctx.MdbookVersion)
	assert.NotEmpty(t, ctx.Config, "build config must be carried opaquely")

	require.Len(t, b.Sections, 1)
	ch := b.Sections[0].(*book.Chapter)
	assert.Equal(t, "Chapter 1", ch.Name)
}

func TestParseInput_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{"},
		{"not an array", `{"root": "x"}`},
		{"one element", `[{"root": "x"}]`},
		{"three elements", `[{}, {"sections": []}, {}]`},
		{"bad book", `[{"root": "x"}, {"sections": [{"Mystery": {}}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseInput(strings.NewReader(tt.payload))
			require.Error(t, err)
		})
	}
}

func TestHandle_TransformsBook(t *testing.T) {
	log, diag := newTestLogger()
	var out bytes.Buffer

	err := Handle(&preprocess.Frontmatter{}, strings.NewReader(inputPayload("0.4.21")), &out, log)
	require.NoError(t, err)
	assert.Empty(t, diag.String(), "no diagnostics expected for a matching version")

	var b book.Book
	require.NoError(t, json.Unmarshal(out.Bytes(), &b))
	ch := b.Sections[0].(*book.Chapter)
	assert.Equal(t, "GRANT (@GRANTKEE)", ch.Frontmatter["author"])
	assert.Equal(t, "08-02-2024", ch.Frontmatter["date"])
	assert.Equal(t, "# Chapter 1\n", ch.Content)
}

func TestHandle_VersionMismatchStillTransforms(t *testing.T) {
	log, diag := newTestLogger()
	var out bytes.Buffer

	err := Handle(&preprocess.Frontmatter{}, strings.NewReader(inputPayload("0.3.7")), &out, log)
	require.NoError(t, err)

	assert.Contains(t, diag.String(), "mdbook version mismatch")
	assert.Contains(t, diag.String(), "0.3.7")

	var b book.Book
	require.NoError(t, json.Unmarshal(out.Bytes(), &b))
	ch := b.Sections[0].(*book.Chapter)
	assert.Equal(t, "08-02-2024", ch.Frontmatter["date"], "mismatch is a warning, not an abort")
}

func TestHandle_MalformedVersionIsFatal(t *testing.T) {
	log, _ := newTestLogger()
	var out bytes.Buffer

	err := Handle(&preprocess.Frontmatter{}, strings.NewReader(inputPayload("not-a-version")), &out, log)
	require.Error(t, err)
	assert.Zero(t, out.Len(), "nothing may be written on failure")
}

func TestHandle_InvalidDateWritesNothing(t *testing.T) {
	payload := strings.Replace(inputPayload("0.4.21"), "2024-08-02", "08/02/2024", 1)
	log, _ := newTestLogger()
	var out bytes.Buffer

	err := Handle(&preprocess.Frontmatter{}, strings.NewReader(payload), &out, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "08/02/2024")
	assert.Zero(t, out.Len(), "a partially transformed book must not be serialized")
}
