package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const headerDelimiter = "---"

// ExtractHeader splits a ----delimited YAML header off the front of a
// chapter's content. It returns the parsed mapping and the remaining
// body. If the content does not open with a header, it returns a nil
// mapping and the content unchanged. Header values must be scalars;
// nested YAML is an error.
func ExtractHeader(content string) (map[string]string, string, error) {
	rest, ok := strings.CutPrefix(content, headerDelimiter+"\n")
	if !ok {
		return nil, content, nil
	}

	header, body, ok := strings.Cut(rest, "\n"+headerDelimiter)
	if !ok {
		return nil, "", fmt.Errorf("unterminated frontmatter header")
	}
	// Drop the newline after the closing delimiter, if any.
	body = strings.TrimPrefix(body, "\n")

	meta := make(map[string]string)
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return nil, "", fmt.Errorf("parse frontmatter header: %w", err)
	}
	return meta, body, nil
}
