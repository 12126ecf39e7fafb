package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookcart/internal/domain"
)

// Command factories for async operations

// CatalogLoader is the part of the library service the TUI needs
type CatalogLoader interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Cached() (domain.Snapshot, bool)
	Invalidate()
}

// LoadCatalogCmd fetches the catalog and tags the result with seq so a
// slower, older load can't overwrite a newer one.
func LoadCatalogCmd(svc CatalogLoader, seq uint64, timeout time.Duration) tea.Cmd {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		snap, err := svc.Load(ctx)
		return CatalogLoadedMsg{Seq: seq, Snapshot: snap, Err: err}
	}
}

// CachedCatalogCmd reads the stored snapshot for load seq
func CachedCatalogCmd(svc CatalogLoader, seq uint64) tea.Cmd {
	return func() tea.Msg {
		snap, ok := svc.Cached()
		return CachedCatalogMsg{Seq: seq, Snapshot: snap, Found: ok}
	}
}

// ClearStatusCmd clears status message seq after a delay
func ClearStatusCmd(seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
