// Package search provides the quick-find title narrowing and the detail
// lookup used by the front-end.
package search

import (
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	sfuzzy "github.com/sahilm/fuzzy"

	"github.com/mmcdole/bookcart/internal/domain"
)

// titleSource implements sahilm/fuzzy.Source over pre-lowered titles
type titleSource []string

func (t titleSource) String(i int) string { return t[i] }
func (t titleSource) Len() int            { return len(t) }

// FilterTitles keeps the books whose title fuzzy-matches query. Matches
// stay in their view order so the chosen sort is preserved.
// An empty query returns books unchanged.
func FilterTitles(books []domain.Book, query string) []domain.Book {
	query = strings.TrimSpace(query)
	if query == "" {
		return books
	}

	lowerTitles := make(titleSource, len(books))
	for i, b := range books {
		lowerTitles[i] = strings.ToLower(b.Title)
	}

	matches := sfuzzy.FindFrom(strings.ToLower(query), lowerTitles)

	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	slices.Sort(idx)

	out := make([]domain.Book, len(idx))
	for i, j := range idx {
		out[i] = books[j]
	}
	return out
}

// Lookup finds the book for a title: an exact match if there is one,
// otherwise the closest case-insensitive fuzzy match.
func Lookup(books []domain.Book, title string) (domain.Book, bool) {
	if i := slices.IndexFunc(books, func(b domain.Book) bool { return b.Title == title }); i >= 0 {
		return books[i], true
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Book{}, false
	}

	targets := make([]string, len(books))
	for i, b := range books {
		targets[i] = b.Title
	}

	ranks := fuzzy.RankFindFold(title, targets)
	if len(ranks) == 0 {
		return domain.Book{}, false
	}
	// Distance first, then catalog order for a stable pick
	slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})
	return books[ranks[0].OriginalIndex], true
}
