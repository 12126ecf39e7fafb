package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/bookcart/internal/adapter"
	"github.com/mmcdole/bookcart/internal/adapter/source"
	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/library"
	"github.com/mmcdole/bookcart/internal/session"
	"github.com/mmcdole/bookcart/internal/store"
	"github.com/mmcdole/bookcart/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

type flags struct {
	catalog    string
	filter     string
	sort       string
	print      bool
	clearCache bool
}

func main() {
	var showVersion bool
	var f flags
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&f.catalog, "catalog", "", "catalog file path or http(s) URL")
	flag.StringVar(&f.filter, "filter", "", `initial filter: a category, author or price band such as "201-300"`)
	flag.StringVar(&f.sort, "sort", "", `initial sort, e.g. "price descending"`)
	flag.BoolVar(&f.print, "print", false, "print the catalog view and exit")
	flag.BoolVar(&f.clearCache, "clear-cache", false, "delete cached catalogs and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("bookcart %s\n", Version)
		return
	}

	if err := run(f); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(f flags) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if f.catalog != "" {
		cfg.Catalog.Location = f.catalog
	}

	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting bookcart", "version", Version, "catalog", cfg.Catalog.Location)

	if created, err := adapter.EnsureConfig(); err != nil {
		logger.Warn("could not write default config", "error", err)
	} else if created {
		logger.Info("wrote default config")
	}

	if f.clearCache {
		if err := adapter.ClearCache(cfg); err != nil {
			return err
		}
		logger.Info("cleared catalog cache", "dir", cfg.Cache.Dir)
		fmt.Printf("Cleared catalog cache in %s\n", cfg.Cache.Dir)
		return nil
	}

	src, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog source: %w", err)
	}

	cache, err := store.NewCatalogStore(cfg.CachePath(), src.Location())
	if err != nil {
		// the cache is optional, run without it
		logger.Warn("catalog cache unavailable", "error", err)
		cache, _ = store.NewCatalogStore("", src.Location())
	}
	defer cache.Close()

	svc := library.NewService(src, cache, logger)

	filter := f.filter
	if filter == "" {
		filter = cfg.UI.DefaultFilter
	}
	sortLabel := f.sort
	if sortLabel == "" {
		sortLabel = cfg.UI.DefaultSort
	}
	sortKey := domain.ParseSortKey(sortLabel)

	if f.print || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printCatalog(svc, cfg, filter, sortKey)
	}

	model := tui.NewModel(svc, session.New(nil), tui.Options{
		Location:       src.Location(),
		CurrencySuffix: cfg.UI.CurrencySuffix,
		Filter:         filter,
		Sort:           sortKey,
		LoadTimeout:    cfg.Catalog.Timeout,
		Logger:         logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

func printCatalog(svc *library.Service, cfg *adapter.Config, filter string, key domain.SortKey) error {
	timeout := cfg.Catalog.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	snap, err := svc.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if snap.FromCache {
		fmt.Fprintf(os.Stderr, "warning: %s unreachable, using cached catalog from %s\n",
			snap.Source, snap.FetchedAt.Format("2006-01-02 15:04"))
	}

	state := buildState(snap, filter, key)
	return renderTable(os.Stdout, state.View, cfg.UI.CurrencySuffix)
}

// buildState runs a one-shot session: a single load, then the initial
// filter and sort.
func buildState(snap domain.Snapshot, filter string, key domain.SortKey) session.State {
	s := session.New(nil)
	s = session.Apply(s, session.CatalogRequested{})
	s = session.Apply(s, session.CatalogLoaded{Seq: s.LoadSeq, Snapshot: snap})
	s = session.Apply(s, session.FilterTokenChanged{Token: filter})
	return session.Apply(s, session.SortChanged{Key: key})
}
