// Package remote fetches the catalog over HTTP.
package remote

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/bookcart/internal/adapter/source/booksjson"
	"github.com/mmcdole/bookcart/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "bookcart/1.0"
)

// Client implements domain.CatalogSource for an HTTP resource
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for url. A zero timeout uses the default.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Location returns the catalog URL
func (c *Client) Location() string {
	return c.url
}

// Fetch downloads and decodes the catalog
func (c *Client) Fetch(ctx context.Context) ([]domain.Book, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("catalog request", "url", c.url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("catalog request error", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	books, err := booksjson.Decode(resp.Body)
	if err != nil {
		c.logger.Error("JSON parse error", "error", err)
		return nil, err
	}

	c.logger.Debug("fetched catalog", "url", c.url, "count", len(books))
	return books, nil
}
