// Package session holds the application state of a browsing session and
// the reducer that applies user and loader events to it.
package session

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmcdole/bookcart/internal/cart"
	"github.com/mmcdole/bookcart/internal/catalog"
	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/search"
)

// State is everything a front-end needs to render a session.
// Values are replaced by Apply, never mutated in place.
type State struct {
	Books  []domain.Book
	Index  catalog.Index
	Bands  []domain.PriceBand
	Source string

	Filter domain.Filter
	Sort   domain.SortKey
	Query  string
	View   []domain.Book

	Cart        *cart.Cart
	LastReceipt *domain.Receipt

	// LoadSeq is the number of the most recent catalog request.
	// Responses carrying an older number are dropped.
	LoadSeq   uint64
	Loaded    bool
	FromCache bool
	Err       error
}

// New returns the state of a session before any catalog has loaded
func New(bands []domain.PriceBand) State {
	if bands == nil {
		bands = domain.DefaultPriceBands
	}
	return State{
		Index:  catalog.IndexCatalog(nil),
		Bands:  bands,
		Filter: domain.NoFilter(),
		Sort:   domain.NoSort(),
		View:   []domain.Book{},
		Cart:   cart.New(),
	}
}

// Apply returns the state that results from ev. s is left untouched.
func Apply(s State, ev Event) State {
	next := s
	next.Cart = s.Cart.Clone()
	next.Err = nil

	switch e := ev.(type) {
	case CatalogRequested:
		next.LoadSeq = s.LoadSeq + 1

	case CatalogLoaded:
		if e.Seq != s.LoadSeq {
			// stale response, keep whatever error we already had
			next.Err = s.Err
			return next
		}
		if e.Err != nil {
			next.Err = e.Err
			return next
		}
		next.Books = slices.Clone(e.Snapshot.Books)
		next.Index = catalog.IndexCatalog(next.Books)
		next.Source = e.Snapshot.Source
		next.FromCache = e.Snapshot.FromCache
		next.Loaded = true
		if !filterStillValid(next.Filter, next.Index, next.Bands) {
			next.Filter = domain.NoFilter()
		}

	case FilterChanged:
		next.Filter = e.Filter

	case FilterTokenChanged:
		next.Filter = catalog.Classify(e.Token, s.Index, s.Bands)

	case SortChanged:
		next.Sort = e.Key

	case SearchChanged:
		next.Query = e.Query

	case AddToCart:
		book, ok := findBook(s.Books, e.Title)
		if !ok {
			next.Err = fmt.Errorf("%w: %q", domain.ErrBookNotFound, e.Title)
			return next
		}
		next.Cart.Add(book)

	case RemoveFromCart:
		next.Cart.Remove(e.Title)

	case Checkout:
		receipt, err := next.Cart.Checkout(e.At)
		if err != nil {
			next.Err = err
			return next
		}
		next.LastReceipt = &receipt
	}

	next.View = buildView(next)
	return next
}

// CartView returns the aggregated cart lines and the cart total
func CartView(s State) ([]domain.LineItem, decimal.Decimal) {
	return s.Cart.Lines(), s.Cart.Total()
}

// FilterOptions returns the filter picker groups for the loaded catalog
func FilterOptions(s State) []catalog.FilterGroup {
	return catalog.FilterOptions(s.Index, s.Bands)
}

func buildView(s State) []domain.Book {
	view := catalog.BuildFilteredView(s.Books, s.Filter, s.Sort)
	return search.FilterTitles(view, s.Query)
}

func findBook(books []domain.Book, title string) (domain.Book, bool) {
	i := slices.IndexFunc(books, func(b domain.Book) bool { return b.Title == title })
	if i < 0 {
		return domain.Book{}, false
	}
	return books[i], true
}

func filterStillValid(f domain.Filter, idx catalog.Index, bands []domain.PriceBand) bool {
	switch f.Kind {
	case domain.FilterCategory:
		return idx.HasCategory(f.Value)
	case domain.FilterAuthor:
		return idx.HasAuthor(f.Value)
	case domain.FilterPrice:
		return slices.ContainsFunc(bands, func(b domain.PriceBand) bool { return b.Raw == f.Value })
	default:
		return true
	}
}
