// Package local reads the catalog from a books.json file on disk.
package local

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmcdole/bookcart/internal/adapter/source/booksjson"
	"github.com/mmcdole/bookcart/internal/domain"
)

// Client implements domain.CatalogSource for a local file
type Client struct {
	path   string
	logger *slog.Logger
}

// NewClient creates a client reading path
func NewClient(path string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{path: path, logger: logger}
}

// Location returns the file path
func (c *Client) Location() string {
	return c.path
}

// Fetch reads and decodes the whole file
func (c *Client) Fetch(ctx context.Context) ([]domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.path)
	if err != nil {
		c.logger.Error("failed to open catalog", "path", c.path, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer f.Close()

	books, err := booksjson.Decode(f)
	if err != nil {
		c.logger.Error("failed to decode catalog", "path", c.path, "error", err)
		return nil, err
	}

	c.logger.Debug("read catalog", "path", c.path, "count", len(books))
	return books, nil
}
