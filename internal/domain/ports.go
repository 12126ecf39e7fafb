package domain

import "context"

// CatalogSource fetches the full catalog (network or local file)
type CatalogSource interface {
	// Fetch returns every book in source order
	Fetch(ctx context.Context) ([]Book, error)

	// Location returns the path or URL the catalog is read from
	Location() string
}

// CatalogStore keeps the last good catalog snapshot for offline use.
// The cart is never stored.
type CatalogStore interface {
	GetCatalog() (Snapshot, bool)
	SaveCatalog(snap Snapshot) error
	Invalidate()
	Close() error
}
