package search

import (
	"slices"
	"sort"
	"strings"

	"github.com/egoavara/spin-hub/internal/hub"
)

// Query describes what a command is looking for in the index
type Query struct {
	Terms    []string      // all must match a tag or a title word
	Category *hub.Category // nil matches any category
	Language string        // "" matches any language
}

// Matches reports whether the entry satisfies every part of the query
func (q Query) Matches(e hub.Entry) bool {
	return q.termsMatch(e) && q.categoryMatch(e) && q.languageMatch(e)
}

func (q Query) termsMatch(e hub.Entry) bool {
	if len(q.Terms) == 0 {
		return true
	}

	tags := e.Tags()
	title := e.TitleWords()
	for _, term := range q.Terms {
		term = strings.ToLower(term)
		if !slices.Contains(tags, term) && !slices.Contains(title, term) {
			return false
		}
	}
	return true
}

func (q Query) categoryMatch(e hub.Entry) bool {
	if q.Category == nil {
		return true
	}
	return e.Category() == *q.Category
}

func (q Query) languageMatch(e hub.Entry) bool {
	if q.Language == "" {
		return true
	}
	return e.Language().Accepts(q.Language)
}

// Filter returns the entries matching the query, sorted by title
func Filter(entries []hub.Entry, q Query) []hub.Entry {
	var matches []hub.Entry
	for _, e := range entries {
		if q.Matches(e) {
			matches = append(matches, e)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Title() < matches[j].Title()
	})

	return matches
}
