package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookcart/internal/domain"
)

func TestClientFetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"A","author":"X","category":"Fic","price":150}]`), 0644))

	c := NewClient(path, nil)
	assert.Equal(t, path, c.Location())

	books, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "A", books[0].Title)
}

func TestClientFetchMissingFile(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "nope.json"), nil)
	_, err := c.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrCatalogUnavailable)
}

func TestClientFetchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient("books.json", nil).Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
