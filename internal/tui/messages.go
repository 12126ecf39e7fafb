package tui

import (
	"github.com/mmcdole/bookcart/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg carries the result of the catalog load numbered Seq
type CatalogLoadedMsg struct {
	Seq      uint64
	Snapshot domain.Snapshot
	Err      error
}

// CachedCatalogMsg carries the stored snapshot shown while load Seq runs
type CachedCatalogMsg struct {
	Seq      uint64
	Snapshot domain.Snapshot
	Found    bool
}

// ClearStatusMsg clears the footer status line if it still shows status Seq
type ClearStatusMsg struct {
	Seq uint64
}
