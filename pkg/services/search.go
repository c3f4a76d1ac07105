package services

import (
	"strings"

	"github.com/kerbaras/mangareader/pkg/data"
)

// FilterTitles returns the titles whose name or author contains query,
// ignoring case. The input slice is not modified.
func FilterTitles(titles []data.Title, query string) []data.Title {
	q := strings.ToLower(query)
	out := make([]data.Title, 0, len(titles))
	for _, t := range titles {
		if q == "" ||
			strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Author), q) {
			out = append(out, t)
		}
	}
	return out
}
