package search

import (
	"sort"
	"unicode"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Entry is a named workspace as handed to the picker.
type Entry struct {
	Name string
	Path string
}

// Rank orders the names of entries by how closely they match query,
// best match first. It builds a throwaway unbounded Index; callers that
// rank repeatedly over the same entries should keep an Index instead.
func Rank(query string, entries []Entry) []string {
	return NewIndex(entries, 0).Rank(query)
}

// Distance is the approximate-prefix edit distance between query and name:
// the smallest Levenshtein distance from query to any prefix of name.
// Characters of name past the matched prefix cost nothing, so a query that
// is a prefix of name scores 0. Comparison ignores case.
func Distance(query, name string) int {
	return prefixDistance(fold(query), fold(name))
}

func prefixDistance(query, name []rune) int {
	if len(query) == 0 {
		return 0
	}
	matrix := levenshtein.MatrixForStrings(query, name, levenshtein.DefaultOptionsWithSub)
	last := matrix[len(query)]
	best := last[0]
	for _, d := range last[1:] {
		if d < best {
			best = d
		}
	}
	return best
}

func fold(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

type scored struct {
	ordinal  int
	distance int
}

// byDistance sorts stably so equal distances keep input order.
func byDistance(results []scored) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].distance < results[j].distance
	})
}
