package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/fontpeek/internal/widget"
)

// Command factories for async operations

// FetchCatalogCmd resolves the catalog. The source never fails, so the
// message always carries a usable result.
func FetchCatalogCmd(source widget.CatalogSource, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return CatalogLoadedMsg{Result: source.Fetch(ctx)}
	}
}

// DebounceSearchCmd fires a SearchDebouncedMsg for seq after d
func DebounceSearchCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return SearchDebouncedMsg{Seq: seq}
	})
}

// ClearStatusCmd returns a command that clears the status message after a delay
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// CopyCmd writes text to the system clipboard
func CopyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: clipboard.WriteAll(text)}
	}
}

// WaitForLoadCmd waits for the next resource load outcome
func WaitForLoadCmd(ch <-chan FontLoadMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return FontLoadMsg{}
		}
		return msg
	}
}
