// Package cart implements the in-memory shopping cart: a flat sequence of
// added books that is aggregated into line items for display.
package cart

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmcdole/bookcart/internal/domain"
)

// Cart is an ordered list of entries. The same title may appear many
// times; each entry is one unit.
type Cart struct {
	entries []domain.Book
}

// New creates a cart holding a copy of entries
func New(entries ...domain.Book) *Cart {
	return &Cart{entries: slices.Clone(entries)}
}

// Add appends one unit of book
func (c *Cart) Add(book domain.Book) {
	c.entries = append(c.entries, book)
}

// Remove drops the first entry whose title matches, i.e. one unit.
// It reports whether anything was removed.
func (c *Cart) Remove(title string) bool {
	i := slices.IndexFunc(c.entries, func(b domain.Book) bool { return b.Title == title })
	if i < 0 {
		return false
	}
	c.entries = slices.Delete(slices.Clone(c.entries), i, i+1)
	return true
}

// Len returns the number of entries (units)
func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the raw entries in insertion order
func (c *Cart) Entries() []domain.Book {
	return slices.Clone(c.entries)
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.entries = nil
}

// Clone returns an independent copy of the cart. A nil cart clones to an empty one.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return New()
	}
	return New(c.entries...)
}

// Lines aggregates the cart into line items
func (c *Cart) Lines() []domain.LineItem {
	return Aggregate(c.entries)
}

// Total returns the sum of every entry's price
func (c *Cart) Total() decimal.Decimal {
	return TotalPrice(c.entries)
}

// Checkout is a stub: it builds a receipt for the current contents and
// empties the cart. Nothing is charged.
func (c *Cart) Checkout(now time.Time) (domain.Receipt, error) {
	if len(c.entries) == 0 {
		return domain.Receipt{}, domain.ErrEmptyCart
	}

	receipt := domain.Receipt{
		ID:        uuid.NewString(),
		Lines:     c.Lines(),
		Total:     c.Total(),
		Count:     len(c.entries),
		CreatedAt: now,
	}
	c.Clear()
	return receipt, nil
}

// Aggregate groups entries by title into line items, ordered by first
// appearance. The price of a line is taken from its first entry.
func Aggregate(entries []domain.Book) []domain.LineItem {
	lines := make([]domain.LineItem, 0, len(entries))
	pos := make(map[string]int, len(entries))

	for _, b := range entries {
		if i, ok := pos[b.Title]; ok {
			lines[i].Quantity++
			continue
		}
		pos[b.Title] = len(lines)
		lines = append(lines, domain.LineItem{Title: b.Title, Price: b.Price, Quantity: 1})
	}
	return lines
}

// TotalPrice sums the price of every entry; duplicates count once each
func TotalPrice(entries []domain.Book) decimal.Decimal {
	total := decimal.Zero
	for _, b := range entries {
		total = total.Add(b.Price)
	}
	return total
}
