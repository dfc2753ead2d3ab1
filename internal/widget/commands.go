package widget

import (
	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/selection"
)

// Command is an input event delivered to a Session
type Command interface {
	command()
}

// SearchChanged carries the raw search text after debouncing
type SearchChanged struct{ Query string }

// CategoryChanged selects a category button
type CategoryChanged struct{ Category domain.Category }

// Scrolled moves the list viewport to an absolute offset
type Scrolled struct{ Offset int }

// Resized sets the list viewport height
type Resized struct{ Height int }

// KeyPressed is a navigation key pressed while the list has focus
type KeyPressed struct{ Key selection.Key }

// ItemClicked commits the item at a view index
type ItemClicked struct{ Index int }

// SelectorChanged updates the target selector text. It does not re-apply.
type SelectorChanged struct{ Text string }

// WeightChanged updates the weight code, e.g. "700"
type WeightChanged struct{ Code string }

// SizeChanged updates the raw size text
type SizeChanged struct{ Text string }

// LineHeightChanged updates the line height text
type LineHeightChanged struct{ Text string }

// ImportantToggled sets the force-!important flag
type ImportantToggled struct{ On bool }

// ResetRequested restores every touched element
type ResetRequested struct{}

func (SearchChanged) command()     {}
func (CategoryChanged) command()   {}
func (Scrolled) command()          {}
func (Resized) command()           {}
func (KeyPressed) command()        {}
func (ItemClicked) command()       {}
func (SelectorChanged) command()   {}
func (WeightChanged) command()     {}
func (SizeChanged) command()       {}
func (LineHeightChanged) command() {}
func (ImportantToggled) command()  {}
func (ResetRequested) command()    {}
