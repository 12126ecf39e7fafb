package library

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookcart/internal/adapter"
	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/store"
)

type stubSource struct {
	books []domain.Book
	err   error
	calls int
}

func (s *stubSource) Fetch(ctx context.Context) ([]domain.Book, error) {
	s.calls++
	return s.books, s.err
}

func (s *stubSource) Location() string { return "stub://books.json" }

func newTestService(t *testing.T, src *stubSource) *Service {
	t.Helper()
	st, err := store.NewCatalogStore("", src.Location())
	require.NoError(t, err)
	svc := NewService(src, st, adapter.NullLogger())
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestLoadSavesSnapshot(t *testing.T) {
	src := &stubSource{books: []domain.Book{{Title: "A", Price: decimal.NewFromInt(150)}}}
	svc := newTestService(t, src)

	snap, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.FromCache)
	assert.Equal(t, "stub://books.json", snap.Source)
	assert.Len(t, snap.Books, 1)

	cached, ok := svc.Cached()
	require.True(t, ok)
	assert.True(t, cached.FromCache)
	assert.True(t, snap.FetchedAt.Equal(cached.FetchedAt))
}

func TestLoadFallsBackToCache(t *testing.T) {
	src := &stubSource{books: []domain.Book{{Title: "A"}, {Title: "B"}}}
	svc := newTestService(t, src)

	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	src.books = nil
	src.err = fmt.Errorf("%w: offline", domain.ErrCatalogUnavailable)

	snap, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.FromCache)
	assert.Len(t, snap.Books, 2)
}

func TestLoadWithoutCacheFails(t *testing.T) {
	src := &stubSource{err: fmt.Errorf("%w: offline", domain.ErrCatalogUnavailable)}
	svc := newTestService(t, src)

	_, err := svc.Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrCatalogUnavailable))
}

func TestInvalidate(t *testing.T) {
	src := &stubSource{books: []domain.Book{{Title: "A"}}}
	svc := newTestService(t, src)

	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	svc.Invalidate()
	_, ok := svc.Cached()
	assert.False(t, ok)
}
