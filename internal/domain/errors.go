package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the catalog source could not be reached
	ErrCatalogUnavailable = errors.New("catalog source is unavailable")

	// ErrCatalogMalformed indicates the catalog payload could not be decoded
	ErrCatalogMalformed = errors.New("catalog is malformed")

	// ErrMalformedPriceBand indicates a price band label is not "lo-hi"
	ErrMalformedPriceBand = errors.New("malformed price band")

	// ErrEmptyCart indicates checkout was attempted with nothing in the cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrBookNotFound indicates the requested title is not in the catalog
	ErrBookNotFound = errors.New("book not found")
)
