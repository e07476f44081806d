package services

import "strings"

// Filter flags text containing any word from a denylist. Matching is a
// case-insensitive substring scan, so "Crap" and "crappy" both trip on
// "crap".
type Filter struct {
	words []string
}

func NewFilter(words []string) *Filter {
	lowered := make([]string, len(words))
	for i, w := range words {
		lowered[i] = strings.ToLower(w)
	}
	return &Filter{words: lowered}
}

func (f *Filter) Flagged(text string) bool {
	lowered := strings.ToLower(text)
	for _, w := range f.words {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
