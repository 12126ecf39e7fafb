// Package catalog holds the pure catalog pipeline: indexing, filter
// resolution, sorting and view composition. Nothing here mutates its input.
package catalog

import (
	"slices"

	"github.com/mmcdole/bookcart/internal/domain"
)

// Index holds the distinct categories and authors of a catalog, each
// sorted ascending with no duplicates.
type Index struct {
	Categories []string
	Authors    []string
}

// IndexCatalog derives the category and author sets of books
func IndexCatalog(books []domain.Book) Index {
	categories := make([]string, 0, len(books))
	authors := make([]string, 0, len(books))
	for _, b := range books {
		categories = append(categories, b.Category)
		authors = append(authors, b.Author)
	}
	return Index{
		Categories: sortedUnique(categories),
		Authors:    sortedUnique(authors),
	}
}

// HasCategory reports whether name is a known category
func (idx Index) HasCategory(name string) bool {
	_, ok := slices.BinarySearch(idx.Categories, name)
	return ok
}

// HasAuthor reports whether name is a known author
func (idx Index) HasAuthor(name string) bool {
	_, ok := slices.BinarySearch(idx.Authors, name)
	return ok
}

func sortedUnique(values []string) []string {
	slices.Sort(values)
	return slices.Compact(values)
}
