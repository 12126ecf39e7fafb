package catalog

import "github.com/mmcdole/bookcart/internal/domain"

// BuildView filters books by a raw token and sorts the result. The token
// is classified against a fresh index of books and the default price bands.
func BuildView(books []domain.Book, token string, key domain.SortKey) []domain.Book {
	f := Classify(token, IndexCatalog(books), domain.DefaultPriceBands)
	return BuildFilteredView(books, f, key)
}

// BuildFilteredView filters books by an already tagged filter and sorts the result
func BuildFilteredView(books []domain.Book, f domain.Filter, key domain.SortKey) []domain.Book {
	return SortBooks(ApplyFilter(books, f), key)
}
