package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FilterAll is the token that disables filtering
const FilterAll = "All"

// FilterKind tags what a filter value refers to
type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterCategory
	FilterAuthor
	FilterPrice
)

// String returns the display name for the filter kind
func (k FilterKind) String() string {
	switch k {
	case FilterNone:
		return "None"
	case FilterCategory:
		return "Category"
	case FilterAuthor:
		return "Author"
	case FilterPrice:
		return "Price"
	default:
		return "Unknown"
	}
}

// Filter is a filter token tagged with its kind, so it never has to be
// re-derived from an ambiguous bare string.
type Filter struct {
	Kind  FilterKind
	Value string
}

// NoFilter returns the filter that keeps every book
func NoFilter() Filter {
	return Filter{Kind: FilterNone, Value: FilterAll}
}

// IsNone reports whether the filter keeps every book
func (f Filter) IsNone() bool {
	return f.Kind == FilterNone
}

// Label returns the token as shown to the user
func (f Filter) Label() string {
	if f.IsNone() {
		return FilterAll
	}
	return f.Value
}

// PriceBand is an inclusive price range labelled "lo-hi"
type PriceBand struct {
	Raw string
	Min decimal.Decimal
	Max decimal.Decimal
}

// DefaultPriceBands is the fixed, ordered list of price bands offered as filters
var DefaultPriceBands = mustPriceBands("0-200", "201-300", "301-400", "401-500", "501-600", "601-700")

// ParsePriceBand parses a "lo-hi" label into a band
func ParsePriceBand(raw string) (PriceBand, error) {
	lo, hi, ok := strings.Cut(raw, "-")
	if !ok {
		return PriceBand{}, fmt.Errorf("%w: %q", ErrMalformedPriceBand, raw)
	}
	minPrice, err := decimal.NewFromString(strings.TrimSpace(lo))
	if err != nil {
		return PriceBand{}, fmt.Errorf("%w: %q", ErrMalformedPriceBand, raw)
	}
	maxPrice, err := decimal.NewFromString(strings.TrimSpace(hi))
	if err != nil {
		return PriceBand{}, fmt.Errorf("%w: %q", ErrMalformedPriceBand, raw)
	}
	return PriceBand{Raw: raw, Min: minPrice, Max: maxPrice}, nil
}

// Contains reports whether price lies within the band, both ends inclusive
func (b PriceBand) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(b.Min) && price.LessThanOrEqual(b.Max)
}

// BandLabels returns the raw labels of bands in order
func BandLabels(bands []PriceBand) []string {
	labels := make([]string, len(bands))
	for i, b := range bands {
		labels[i] = b.Raw
	}
	return labels
}

func mustPriceBands(raws ...string) []PriceBand {
	bands := make([]PriceBand, len(raws))
	for i, raw := range raws {
		band, err := ParsePriceBand(raw)
		if err != nil {
			panic(err)
		}
		bands[i] = band
	}
	return bands
}
