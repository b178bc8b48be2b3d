package frontmatter

import (
	"fmt"
	"strings"
)

// dateKey is the one reserved key with a field-specific rule; every
// other key gets only the uniform uppercase rule.
const dateKey = "date"

// InvalidDateError reports a frontmatter date that is not in the
// canonical YYYY-MM-DD layout. Value is the offending input.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date format: expected YYYY-MM-DD, got %q", e.Value)
}

// Transform returns a new mapping with every value upper-cased and the
// value under the reserved "date" key rewritten from YYYY-MM-DD to
// MM-DD-YYYY. The key set is preserved. The input mapping is not
// modified.
func Transform(meta map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(meta))
	for key, val := range meta {
		val = strings.ToUpper(val)
		if key == dateKey {
			reformatted, err := ReformatDate(val)
			if err != nil {
				return nil, err
			}
			val = reformatted
		}
		out[key] = val
	}
	return out, nil
}

// ReformatDate rewrites a YYYY-MM-DD date as MM-DD-YYYY. The check is
// syntactic only: three hyphen-separated segments of lengths 4, 2 and 2.
// It does not validate the calendar (month 13 passes).
func ReformatDate(date string) (string, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return "", &InvalidDateError{Value: date}
	}
	return fmt.Sprintf("%s-%s-%s", parts[1], parts[2], parts[0]), nil
}
