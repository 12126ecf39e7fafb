package catalog

import (
	"slices"
	"strings"

	"github.com/mmcdole/bookcart/internal/domain"
)

// SortBooks returns a sorted copy of books. The sort is stable, so equal
// keys keep their relative order and sorting twice changes nothing.
// SortNone and unknown fields return the input order.
func SortBooks(books []domain.Book, key domain.SortKey) []domain.Book {
	out := slices.Clone(nonNil(books))

	compare := comparator(key.Field)
	if compare == nil {
		return out
	}
	if key.Direction == domain.SortDesc {
		asc := compare
		compare = func(a, b domain.Book) int { return asc(b, a) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

func comparator(field domain.SortField) func(a, b domain.Book) int {
	switch field {
	case domain.SortTitle:
		return func(a, b domain.Book) int { return strings.Compare(a.Title, b.Title) }
	case domain.SortPrice:
		return func(a, b domain.Book) int { return a.Price.Cmp(b.Price) }
	case domain.SortAuthor:
		return func(a, b domain.Book) int { return strings.Compare(a.Author, b.Author) }
	default:
		return nil
	}
}
