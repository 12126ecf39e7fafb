package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmcdole/bookcart/internal/domain"
)

// Service orchestrates catalog source + snapshot store operations.
type Service struct {
	source domain.CatalogSource
	store  domain.CatalogStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a new library service.
func NewService(source domain.CatalogSource, store domain.CatalogStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, store: store, logger: logger, now: time.Now}
}

// Location returns where the catalog is read from
func (s *Service) Location() string {
	return s.source.Location()
}

// Load fetches the catalog and saves it as the last good snapshot.
// If the fetch fails and a snapshot exists, the snapshot is returned
// flagged FromCache and the fetch error is only logged.
func (s *Service) Load(ctx context.Context) (domain.Snapshot, error) {
	books, err := s.source.Fetch(ctx)
	if err != nil {
		if snap, ok := s.store.GetCatalog(); ok {
			s.logger.Warn("catalog fetch failed, using cached snapshot",
				"error", err, "source", s.source.Location(), "fetchedAt", snap.FetchedAt)
			snap.FromCache = true
			return snap, nil
		}
		s.logger.Error("failed to fetch catalog", "error", err, "source", s.source.Location())
		return domain.Snapshot{}, err
	}

	snap := domain.Snapshot{
		Books:     books,
		Source:    s.source.Location(),
		FetchedAt: s.now(),
	}
	if err := s.store.SaveCatalog(snap); err != nil {
		s.logger.Error("failed to save catalog", "error", err)
	}
	s.logger.Debug("fetched catalog", "count", len(books), "source", snap.Source)
	return snap, nil
}

// Cached returns the stored snapshot without touching the source
func (s *Service) Cached() (domain.Snapshot, bool) {
	snap, ok := s.store.GetCatalog()
	if ok {
		snap.FromCache = true
	}
	return snap, ok
}

// Invalidate drops the stored snapshot
func (s *Service) Invalidate() {
	s.store.Invalidate()
	s.logger.Debug("invalidated catalog cache", "source", s.source.Location())
}
