package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// MatchedIndexes returns the byte offsets of the characters in name that the
// query picks out, for emphasis when drawing a candidate. It has no bearing on
// ranking; a nil result means nothing to emphasise.
func MatchedIndexes(query, name string) []int {
	// Spaces in the query are gaps, the way the picker prompt is typed.
	query = strings.ReplaceAll(query, " ", "")
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, []string{name})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}
