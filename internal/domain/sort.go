package domain

import "strings"

// SortField represents a field to sort by
type SortField int

const (
	SortNone SortField = iota
	SortTitle
	SortPrice
	SortAuthor
)

// String returns the display name for the sort field
func (f SortField) String() string {
	switch f {
	case SortNone:
		return "None"
	case SortTitle:
		return "Title"
	case SortPrice:
		return "Price"
	case SortAuthor:
		return "Author"
	default:
		return "Unknown"
	}
}

// SortDirection represents sort direction
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// String returns the label for the direction
func (d SortDirection) String() string {
	if d == SortDesc {
		return "descending"
	}
	return "ascending"
}

// SortKey is a field paired with a direction
type SortKey struct {
	Field     SortField
	Direction SortDirection
}

// NoSort keeps the input order
func NoSort() SortKey {
	return SortKey{Field: SortNone}
}

// Label returns the user-facing label, e.g. "price descending"
func (k SortKey) Label() string {
	if k.Field == SortNone {
		return "none"
	}
	return strings.ToLower(k.Field.String()) + " " + k.Direction.String()
}

// SortKeys returns the six selectable sort keys in display order
func SortKeys() []SortKey {
	return []SortKey{
		{Field: SortTitle, Direction: SortAsc},
		{Field: SortTitle, Direction: SortDesc},
		{Field: SortPrice, Direction: SortAsc},
		{Field: SortPrice, Direction: SortDesc},
		{Field: SortAuthor, Direction: SortAsc},
		{Field: SortAuthor, Direction: SortDesc},
	}
}

// ParseSortKey maps a label back to its key. Unknown labels map to NoSort.
func ParseSortKey(label string) SortKey {
	label = strings.ToLower(strings.TrimSpace(label))
	for _, k := range SortKeys() {
		if k.Label() == label {
			return k
		}
	}
	return NoSort()
}
