package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Labels adapts display labels for fuzzy searching
type Labels []string

// String returns the searchable string for a label
func (l Labels) String(i int) string {
	return strings.ToLower(l[i])
}

// Len returns the number of labels
func (l Labels) Len() int {
	return len(l)
}

// Rank fuzzy-matches text against src and returns the matching indexes, best first.
// An empty text returns every index in order.
func Rank(src fuzzy.Source, text string) []int {
	if strings.TrimSpace(text) == "" {
		all := make([]int, src.Len())
		for i := range all {
			all[i] = i
		}
		return all
	}

	matches := fuzzy.FindFrom(strings.ToLower(text), src)
	indexes := make([]int, len(matches))
	for i, m := range matches {
		indexes[i] = m.Index
	}
	return indexes
}
