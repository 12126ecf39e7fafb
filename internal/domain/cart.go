package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a cart row: all entries sharing a title collapsed into one
type LineItem struct {
	Title    string
	Price    decimal.Decimal
	Quantity int
}

// Subtotal returns price * quantity
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Receipt is the result of the checkout stub. No payment is taken.
type Receipt struct {
	ID        string
	Lines     []LineItem
	Total     decimal.Decimal
	Count     int
	CreatedAt time.Time
}
