package session

import (
	"time"

	"github.com/mmcdole/bookcart/internal/domain"
)

// Event is a user or loader action applied to State by Apply
type Event interface {
	isEvent()
}

// CatalogRequested marks the start of a catalog (re)load. Apply assigns it
// the next load sequence number.
type CatalogRequested struct{}

// CatalogLoaded carries the outcome of the load numbered Seq
type CatalogLoaded struct {
	Seq      uint64
	Snapshot domain.Snapshot
	Err      error
}

// FilterChanged selects a filter whose kind is already known
type FilterChanged struct {
	Filter domain.Filter
}

// FilterTokenChanged selects a filter from a raw token, resolved against
// the current index
type FilterTokenChanged struct {
	Token string
}

// SortChanged selects a sort key
type SortChanged struct {
	Key domain.SortKey
}

// SearchChanged narrows the view by fuzzy title match; empty clears it
type SearchChanged struct {
	Query string
}

// AddToCart adds one unit of the catalog book with this title
type AddToCart struct {
	Title string
}

// RemoveFromCart removes one unit of this title from the cart
type RemoveFromCart struct {
	Title string
}

// Checkout runs the checkout stub
type Checkout struct {
	At time.Time
}

func (CatalogRequested) isEvent()   {}
func (CatalogLoaded) isEvent()      {}
func (FilterChanged) isEvent()      {}
func (FilterTokenChanged) isEvent() {}
func (SortChanged) isEvent()        {}
func (SearchChanged) isEvent()      {}
func (AddToCart) isEvent()          {}
func (RemoveFromCart) isEvent()     {}
func (Checkout) isEvent()           {}
