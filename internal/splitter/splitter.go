// Package splitter turns raw multi-line input into the ordered list of
// lines the cursor steps through.
package splitter

import "strings"

// Split breaks raw input on newlines, trims each segment and drops the
// empty ones. Order follows first occurrence in the input. Empty or
// whitespace-only input yields an empty slice, not an error.
func Split(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}
