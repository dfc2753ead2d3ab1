package tui

import (
	"github.com/mmcdole/fontpeek/internal/domain"
)

// Message types for the TUI

// CatalogLoadedMsg carries the settled catalog
type CatalogLoadedMsg struct {
	Result domain.CatalogResult
}

// SearchDebouncedMsg fires when the search input has been idle. Only the
// message matching the latest sequence number is acted on.
type SearchDebouncedMsg struct {
	Seq int
}

// ClearStatusMsg ends a transient status message
type ClearStatusMsg struct {
	Seq int
}

// CopiedMsg reports the outcome of a clipboard write
type CopiedMsg struct {
	Err error
}

// LoadState is the resource state of one family
type LoadState int

const (
	LoadPending LoadState = iota
	LoadRequested
	LoadDone
	LoadFailed
)

// FontLoadMsg reports a finished resource request
type FontLoadMsg struct {
	Family string
	Err    error
}

// Closed reports whether the event channel has shut down
func (m FontLoadMsg) Closed() bool {
	return m.Family == "" && m.Err == nil
}
