// Package search ranks already-loaded shows and people against a query.
// Nothing here talks to the catalog.
package search

import (
	"strings"

	"github.com/mmcdole/showbox/internal/domain"
	"github.com/sahilm/fuzzy"
)

// Match is a show that matched a filter query
type Match struct {
	Index          int   // Index in the filtered slice
	Show           domain.Show
	MatchedIndexes []int // Rune positions in the name that matched, for highlighting
	Score          int   // Higher is better
}

// showIndex implements fuzzy.Source over show names
type showIndex struct {
	names []string // Pre-computed lowercase names
}

func (idx showIndex) String(i int) string { return idx.names[i] }

func (idx showIndex) Len() int { return len(idx.names) }

func newShowIndex(shows []domain.Show) showIndex {
	names := make([]string, len(shows))
	for i, sh := range shows {
		names[i] = strings.ToLower(sh.Name)
	}
	return showIndex{names: names}
}

// FilterShows returns the shows whose names fuzzy-match query, best first.
// A blank query matches everything in the original order.
func FilterShows(query string, shows []domain.Show) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Match, len(shows))
		for i, sh := range shows {
			out[i] = Match{Index: i, Show: sh}
		}
		return out
	}

	matches := fuzzy.FindFrom(query, newShowIndex(shows))
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = Match{
			Index:          m.Index,
			Show:           shows[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return out
}

// Shows unwraps matches to their shows
func Shows(matches []Match) []domain.Show {
	out := make([]domain.Show, len(matches))
	for i, m := range matches {
		out[i] = m.Show
	}
	return out
}
