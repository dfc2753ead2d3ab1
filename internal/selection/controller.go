// Package selection tracks which font is selected and which row is highlighted.
package selection

import (
	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/filter"
)

// Key is a navigation key understood by the controller
type Key int

const (
	KeyArrowUp Key = iota
	KeyArrowDown
	KeyEnter
)

// Action tells the caller what a key or click requires
type Action int

const (
	ActionNone      Action = iota
	ActionHighlight        // Move the highlight only
	ActionCommit           // Apply Font
)

// Outcome is the result of an input event
type Outcome struct {
	Action Action
	Index  int
	Font   domain.FontDescriptor
}

// Controller is the state machine over {none, selected(family)} plus the
// highlighted index into the current view.
//
// The family is the durable identity. The index is only valid for the view
// it was computed against and is re-resolved on every ViewChanged; a family
// filtered out of the view keeps its selection with index -1.
//
// Arrow keys only move the index (browse). Enter on a non-negative index and
// clicks commit (select + apply).
type Controller struct {
	family   string
	selected bool
	index    int
}

// New returns a controller with nothing selected
func New() *Controller {
	return &Controller{index: -1}
}

// Pick commits family at index
func (c *Controller) Pick(family string, index int) {
	c.family = family
	c.selected = true
	c.index = index
}

// Clear returns to the none state
func (c *Controller) Clear() {
	c.family = ""
	c.selected = false
	c.index = -1
}

// ViewChanged re-resolves the index against a freshly computed view
func (c *Controller) ViewChanged(view []domain.FontDescriptor) {
	if !c.selected {
		c.index = -1
		return
	}
	c.index = filter.IndexOf(view, c.family)
}

// HandleKey applies a navigation key against view
func (c *Controller) HandleKey(key Key, view []domain.FontDescriptor) Outcome {
	if len(view) == 0 {
		return Outcome{Action: ActionNone, Index: c.index}
	}

	switch key {
	case KeyArrowDown:
		c.index = clamp(c.index+1, 0, len(view)-1)
		return Outcome{Action: ActionHighlight, Index: c.index}

	case KeyArrowUp:
		c.index = clamp(c.index-1, 0, len(view)-1)
		return Outcome{Action: ActionHighlight, Index: c.index}

	case KeyEnter:
		if c.index < 0 || c.index >= len(view) {
			return Outcome{Action: ActionNone, Index: c.index}
		}
		font := view[c.index]
		c.Pick(font.Family, c.index)
		return Outcome{Action: ActionCommit, Index: c.index, Font: font}
	}

	return Outcome{Action: ActionNone, Index: c.index}
}

// Click commits the item at index of view
func (c *Controller) Click(index int, view []domain.FontDescriptor) Outcome {
	if index < 0 || index >= len(view) {
		return Outcome{Action: ActionNone, Index: c.index}
	}
	font := view[index]
	c.Pick(font.Family, index)
	return Outcome{Action: ActionCommit, Index: index, Font: font}
}

// Index returns the highlighted index into the current view, -1 for none
func (c *Controller) Index() int {
	return c.index
}

// Family returns the selected family, if any
func (c *Controller) Family() (string, bool) {
	return c.family, c.selected
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
