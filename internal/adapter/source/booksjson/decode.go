// Package booksjson decodes the books.json catalog format: a JSON array of
// book records.
package booksjson

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mmcdole/bookcart/internal/domain"
)

// Decode reads a catalog from r. Records keep their file order.
func Decode(r io.Reader) ([]domain.Book, error) {
	var books []domain.Book
	if err := json.NewDecoder(r).Decode(&books); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogMalformed, err)
	}
	if books == nil {
		books = []domain.Book{}
	}

	for i, b := range books {
		if strings.TrimSpace(b.Title) == "" {
			return nil, fmt.Errorf("%w: record %d has no title", domain.ErrCatalogMalformed, i)
		}
		if b.Price.IsNegative() {
			return nil, fmt.Errorf("%w: record %d (%q) has negative price %s", domain.ErrCatalogMalformed, i, b.Title, b.Price)
		}
	}
	return books, nil
}
