package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/showbox/internal/domain"
)

// MatchFold reports whether the characters of query appear in text in
// order, ignoring case and diacritics
func MatchFold(query, text string) bool {
	return fuzzy.MatchNormalizedFold(strings.TrimSpace(query), text)
}

// RankShows keeps the shows whose names contain query as a fuzzy
// subsequence, ordered by edit distance then name length. Ties keep their
// input order.
func RankShows(query string, shows []domain.Show) []domain.Show {
	query = strings.TrimSpace(query)
	if query == "" {
		return shows
	}

	names := make([]string, len(shows))
	for i, sh := range shows {
		names[i] = sh.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		if len(ranks[i].Target) != len(ranks[j].Target) {
			return len(ranks[i].Target) < len(ranks[j].Target)
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]domain.Show, len(ranks))
	for i, r := range ranks {
		out[i] = shows[r.OriginalIndex]
	}
	return out
}

// RankPeople orders people search hits by the catalog's relevance score,
// breaking ties with how close the name is to query
func RankPeople(query string, people []domain.PersonMatch) []domain.PersonMatch {
	query = strings.ToLower(strings.TrimSpace(query))

	ranked := make([]domain.PersonMatch, len(people))
	copy(ranked, people)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return nameScore(query, ranked[i].Person.Name) < nameScore(query, ranked[j].Person.Name)
	})
	return ranked
}

// nameScore rates how well name matches query; lower is better
func nameScore(query, name string) int {
	name = strings.ToLower(name)
	switch {
	case name == query:
		return 0
	case strings.HasPrefix(name, query):
		return 10
	case strings.Contains(name, query):
		return 50
	case MatchFold(query, name):
		return 75
	}
	return 100 + fuzzy.LevenshteinDistance(query, name)
}
