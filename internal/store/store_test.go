package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookcart/internal/domain"
)

func snapshot(location string) domain.Snapshot {
	return domain.Snapshot{
		Books: []domain.Book{
			{Title: "A", Author: "X", Category: "Fic", Price: decimal.RequireFromString("150.50")},
			{Title: "B", Author: "Y", Category: "Sci", Price: decimal.NewFromInt(550)},
		},
		Source:    location,
		FetchedAt: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestCatalogStoreMemoryOnly(t *testing.T) {
	s, err := NewCatalogStore("", "books.json")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetCatalog()
	assert.False(t, ok)

	require.NoError(t, s.SaveCatalog(snapshot("books.json")))
	got, ok := s.GetCatalog()
	require.True(t, ok)
	assert.Len(t, got.Books, 2)

	s.Invalidate()
	_, ok = s.GetCatalog()
	assert.False(t, ok)
}

func TestCatalogStorePersists(t *testing.T) {
	dir := t.TempDir()
	loc := "https://shop.example/books.json"

	s, err := NewCatalogStore(dir, loc)
	require.NoError(t, err)
	require.NoError(t, s.SaveCatalog(snapshot(loc)))
	require.NoError(t, s.Close())

	reopened, err := NewCatalogStore(dir, loc+"/")
	require.NoError(t, err)
	defer reopened.Close()

	got, ok := reopened.GetCatalog()
	require.True(t, ok)
	assert.Equal(t, loc, got.Source)
	assert.Equal(t, "150.5", got.Books[0].Price.String())
	assert.True(t, got.FetchedAt.Equal(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))
}

func TestCatalogStoreKeysByLocation(t *testing.T) {
	dir := t.TempDir()

	a, err := NewCatalogStore(dir, "a.json")
	require.NoError(t, err)
	require.NoError(t, a.SaveCatalog(snapshot("a.json")))
	require.NoError(t, a.Close())

	b, err := NewCatalogStore(dir, "b.json")
	require.NoError(t, err)
	defer b.Close()

	_, ok := b.GetCatalog()
	assert.False(t, ok)
}

func TestCatalogStoreKeepsPathCase(t *testing.T) {
	dir := t.TempDir()

	upper, err := NewCatalogStore(dir, "/srv/Shop/books.json")
	require.NoError(t, err)
	require.NoError(t, upper.SaveCatalog(snapshot("/srv/Shop/books.json")))
	require.NoError(t, upper.Close())

	lower, err := NewCatalogStore(dir, "/srv/shop/books.json")
	require.NoError(t, err)
	defer lower.Close()

	_, ok := lower.GetCatalog()
	assert.False(t, ok, "paths differing only in case are separate catalogs")
}

func TestHashLocation(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"url scheme and host fold", "HTTPS://Shop.Example/books.json", "https://shop.example/books.json", true},
		{"url trailing slash", "https://shop.example/books.json/", "https://shop.example/books.json", true},
		{"url path keeps case", "https://shop.example/Books.json", "https://shop.example/books.json", false},
		{"file path keeps case", "/srv/Shop/books.json", "/srv/shop/books.json", false},
		{"file path is cleaned", "/srv/shop/../shop/books.json", "/srv/shop/books.json", true},
		{"surrounding space", "  books.json ", "books.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.same {
				assert.Equal(t, hashLocation(tt.a), hashLocation(tt.b))
			} else {
				assert.NotEqual(t, hashLocation(tt.a), hashLocation(tt.b))
			}
		})
	}
}
