package source

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/bookcart/internal/adapter"
	"github.com/mmcdole/bookcart/internal/adapter/source/local"
	"github.com/mmcdole/bookcart/internal/adapter/source/remote"
	"github.com/mmcdole/bookcart/internal/domain"
)

// SourceConfig contains the configuration needed to create a catalog source
type SourceConfig struct {
	Type     adapter.SourceType
	Location string
	Timeout  time.Duration
}

// NewClient creates a catalog source for the configured type
func NewClient(cfg *SourceConfig, logger *slog.Logger) (domain.CatalogSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	if cfg.Location == "" {
		return nil, fmt.Errorf("catalog location is required")
	}

	switch cfg.Type {
	case adapter.SourceTypeFile:
		return local.NewClient(cfg.Location, logger), nil

	case adapter.SourceTypeHTTP:
		return remote.NewClient(cfg.Location, cfg.Timeout, logger), nil

	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Type)
	}
}

// NewClientFromConfig creates a catalog source from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (domain.CatalogSource, error) {
	return NewClient(&SourceConfig{
		Type:     cfg.Catalog.SourceType(),
		Location: cfg.Catalog.Location,
		Timeout:  cfg.Catalog.Timeout,
	}, logger)
}
