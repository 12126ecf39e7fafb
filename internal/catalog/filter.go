package catalog

import (
	"slices"
	"strings"

	"github.com/mmcdole/bookcart/internal/domain"
)

// FilterGroup is one labelled group of selectable filter tokens
type FilterGroup struct {
	Label   string
	Kind    domain.FilterKind
	Options []domain.Filter
}

// Resolve classifies a raw token by membership: categories first, then
// authors, then price bands. Anything else (including "All") is FilterNone.
func Resolve(token string, idx Index, bands []domain.PriceBand) domain.FilterKind {
	switch {
	case idx.HasCategory(token):
		return domain.FilterCategory
	case idx.HasAuthor(token):
		return domain.FilterAuthor
	case hasBand(bands, token):
		return domain.FilterPrice
	default:
		return domain.FilterNone
	}
}

// Classify resolves token into a tagged filter
func Classify(token string, idx Index, bands []domain.PriceBand) domain.Filter {
	kind := Resolve(token, idx, bands)
	if kind == domain.FilterNone {
		return domain.NoFilter()
	}
	return domain.Filter{Kind: kind, Value: token}
}

// ApplyFilter returns the books matching f in their original order.
// A price filter whose value is not a valid band matches nothing.
func ApplyFilter(books []domain.Book, f domain.Filter) []domain.Book {
	var keep func(domain.Book) bool

	switch f.Kind {
	case domain.FilterCategory:
		keep = func(b domain.Book) bool { return b.Category == f.Value }
	case domain.FilterAuthor:
		// substring match so a single author also selects co-authored titles
		keep = func(b domain.Book) bool { return strings.Contains(b.Author, f.Value) }
	case domain.FilterPrice:
		band, err := domain.ParsePriceBand(f.Value)
		if err != nil {
			return []domain.Book{}
		}
		keep = func(b domain.Book) bool { return band.Contains(b.Price) }
	default:
		return slices.Clone(nonNil(books))
	}

	out := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// FilterOptions lists every recognized filter token, grouped the way the
// filter picker shows them. Each group starts with "All".
func FilterOptions(idx Index, bands []domain.PriceBand) []FilterGroup {
	group := func(label string, kind domain.FilterKind, values []string) FilterGroup {
		opts := make([]domain.Filter, 0, len(values)+1)
		opts = append(opts, domain.NoFilter())
		for _, v := range values {
			opts = append(opts, domain.Filter{Kind: kind, Value: v})
		}
		return FilterGroup{Label: label, Kind: kind, Options: opts}
	}

	return []FilterGroup{
		group("Category", domain.FilterCategory, idx.Categories),
		group("Prices", domain.FilterPrice, domain.BandLabels(bands)),
		group("Author", domain.FilterAuthor, idx.Authors),
	}
}

// Tokens returns the flat set of recognized raw tokens: "All", then
// categories, authors and price bands.
func Tokens(idx Index, bands []domain.PriceBand) []string {
	tokens := make([]string, 0, 1+len(idx.Categories)+len(idx.Authors)+len(bands))
	tokens = append(tokens, domain.FilterAll)
	tokens = append(tokens, idx.Categories...)
	tokens = append(tokens, idx.Authors...)
	tokens = append(tokens, domain.BandLabels(bands)...)
	return tokens
}

func hasBand(bands []domain.PriceBand, token string) bool {
	return slices.ContainsFunc(bands, func(b domain.PriceBand) bool { return b.Raw == token })
}

func nonNil(books []domain.Book) []domain.Book {
	if books == nil {
		return []domain.Book{}
	}
	return books
}
