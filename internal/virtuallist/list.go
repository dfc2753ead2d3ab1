package virtuallist

import (
	"github.com/mmcdole/fontpeek/internal/domain"
)

// Item is one rendered entry of the window
type Item struct {
	Index       int // Absolute index in the view
	Font        domain.FontDescriptor
	Top         int  // Index * item height
	Highlighted bool // Selection highlight

	// PreviewFamily is set to Font.Family once the item has been visible;
	// empty means the preview still renders in the fallback face.
	PreviewFamily string
}

// List is the render model of the virtual scroller: it keeps only the
// window's items, sized so the scroll extent matches the whole view.
//
// Each render replaces every item instance. Observation handles belong to
// instances, so a render releases the old set before attaching new ones.
// A handle fires at most once: when its item first intersects the visible
// range it requests the family through the loader, points the preview at
// the family and is released.
type List struct {
	itemHeight int
	buffer     int
	loader     domain.FontLoader

	view            []domain.FontDescriptor
	scrollOffset    int
	containerHeight int

	window      Window
	items       []Item
	observed    map[int]bool // item index -> handle still attached
	highlighted int

	renders int
	patches int
}

// New creates an empty list. loader may be nil.
func New(itemHeight, buffer int, loader domain.FontLoader) *List {
	if itemHeight < 1 {
		itemHeight = DefaultItemHeight
	}
	if buffer < 0 {
		buffer = 0
	}
	return &List{
		itemHeight:  itemHeight,
		buffer:      buffer,
		loader:      loader,
		observed:    make(map[int]bool),
		highlighted: -1,
	}
}

// SetView replaces the list content and renders it with highlight marked.
// Index positions from a previous view are meaningless afterwards.
func (l *List) SetView(view []domain.FontDescriptor, highlight int) {
	l.view = view
	l.highlighted = highlight
	l.scrollOffset = l.clampOffset(l.scrollOffset)
	l.render()
}

// SetContainerHeight updates the viewport height and re-renders
func (l *List) SetContainerHeight(height int) {
	if height < 0 {
		height = 0
	}
	l.containerHeight = height
	l.scrollOffset = l.clampOffset(l.scrollOffset)
	l.render()
}

// ScrollTo moves the viewport and re-renders the window
func (l *List) ScrollTo(offset int) {
	l.scrollOffset = l.clampOffset(offset)
	l.render()
}

// ScrollBy moves the viewport by delta
func (l *List) ScrollBy(delta int) {
	l.ScrollTo(l.scrollOffset + delta)
}

// Reveal scrolls the minimum distance that brings index fully into view.
// The window is recomputed only if the offset changed.
func (l *List) Reveal(index int) {
	if index < 0 || index >= len(l.view) {
		return
	}
	itemTop := index * l.itemHeight
	itemBottom := itemTop + l.itemHeight
	viewTop := l.scrollOffset
	viewBottom := viewTop + l.containerHeight

	offset := viewTop
	if itemTop < viewTop {
		offset = itemTop
	} else if itemBottom > viewBottom {
		offset = itemBottom - l.containerHeight
	}

	offset = l.clampOffset(offset)
	if offset != l.scrollOffset {
		l.ScrollTo(offset)
	}
}

// SetHighlight moves the selection highlight with a single patch: the old
// item loses it and the new one gains it, each only if currently rendered.
// It never re-renders the window.
func (l *List) SetHighlight(index int) {
	if old := l.itemPtr(l.highlighted); old != nil {
		old.Highlighted = false
	}
	if next := l.itemPtr(index); next != nil {
		next.Highlighted = true
	}
	l.highlighted = index
	l.patches++
}

// Highlighted returns the highlighted index (-1 for none)
func (l *List) Highlighted() int {
	return l.highlighted
}

// IndexAt maps a y position relative to the container top to a view index,
// or -1 when it falls outside the rendered items
func (l *List) IndexAt(y int) int {
	if y < 0 || y >= l.containerHeight {
		return -1
	}
	index := (l.scrollOffset + y) / l.itemHeight
	if !l.window.Contains(index) {
		return -1
	}
	return index
}

// ItemAt returns the rendered item for index
func (l *List) ItemAt(index int) (Item, bool) {
	if item := l.itemPtr(index); item != nil {
		return *item, true
	}
	return Item{}, false
}

func (l *List) itemPtr(index int) *Item {
	if !l.window.Contains(index) {
		return nil
	}
	return &l.items[index-l.window.Start]
}

// Items returns a copy of the rendered items in index order
func (l *List) Items() []Item {
	items := make([]Item, len(l.items))
	copy(items, l.items)
	return items
}

// Window returns the rendered index range
func (l *List) Window() Window { return l.window }

// Len returns the view length
func (l *List) Len() int { return len(l.view) }

// View returns the current view
func (l *List) View() []domain.FontDescriptor { return l.view }

// ItemHeight returns the per-item height
func (l *List) ItemHeight() int { return l.itemHeight }

// ScrollOffset returns the current scroll offset
func (l *List) ScrollOffset() int { return l.scrollOffset }

// ContainerHeight returns the viewport height
func (l *List) ContainerHeight() int { return l.containerHeight }

// TotalHeight is the scroll extent of the inner container
func (l *List) TotalHeight() int { return len(l.view) * l.itemHeight }

// MaxScroll is the largest reachable scroll offset
func (l *List) MaxScroll() int {
	max := l.TotalHeight() - l.containerHeight
	if max < 0 {
		return 0
	}
	return max
}

// Observed returns how many items still hold an observation handle
func (l *List) Observed() int { return len(l.observed) }

// Renders counts full window renders
func (l *List) Renders() int { return l.renders }

// Patches counts highlight-only updates
func (l *List) Patches() int { return l.patches }

func (l *List) clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if max := l.MaxScroll(); offset > max {
		return max
	}
	return offset
}

func (l *List) render() {
	l.window = ComputeWindow(len(l.view), l.scrollOffset, l.containerHeight, l.itemHeight, l.buffer)

	// Release handles of the outgoing instances
	l.observed = make(map[int]bool, l.window.Len())

	l.items = make([]Item, 0, l.window.Len())
	for i := l.window.Start; i < l.window.End; i++ {
		l.items = append(l.items, Item{
			Index:       i,
			Font:        l.view[i],
			Top:         i * l.itemHeight,
			Highlighted: i == l.highlighted,
		})
		l.observed[i] = true
	}
	l.renders++

	l.notifyVisible()
}

// notifyVisible fires the handle of every observed item intersecting the
// visible range, then detaches it
func (l *List) notifyVisible() {
	viewTop := l.scrollOffset
	viewBottom := viewTop + l.containerHeight

	for i := range l.items {
		item := &l.items[i]
		if !l.observed[item.Index] {
			continue
		}
		if item.Top >= viewBottom || item.Top+l.itemHeight <= viewTop {
			continue
		}
		if l.loader != nil {
			l.loader.Load(item.Font.Family)
		}
		item.PreviewFamily = item.Font.Family
		delete(l.observed, item.Index)
	}
}
