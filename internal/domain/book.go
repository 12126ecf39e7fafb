package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book is a single catalog record. Title is its identity within a catalog
// snapshot.
type Book struct {
	Title       string          `json:"title"`
	Author      string          `json:"author"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	ImagePath   string          `json:"imagePath"`
	Description string          `json:"description"`
}

// FormattedPrice renders the price with two decimals followed by suffix (e.g. "150.00kr")
func (b Book) FormattedPrice(suffix string) string {
	return b.Price.StringFixed(2) + suffix
}

// Snapshot is a catalog as fetched from a source at a point in time
type Snapshot struct {
	Books     []Book    `json:"books"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	FromCache bool      `json:"-"`
}
