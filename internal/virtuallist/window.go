// Package virtuallist renders a bounded window over a long font sequence.
package virtuallist

// Geometry of the original pixel-based list
const (
	DefaultItemHeight = 52 // px per item
	DefaultBuffer     = 5  // items rendered beyond each edge
)

// Window is the half-open index range [Start, End) of rendered items.
// 0 <= Start <= End <= count always holds.
type Window struct {
	Start int
	End   int
}

// Len returns the number of indices in the window
func (w Window) Len() int {
	return w.End - w.Start
}

// Contains reports whether index is rendered
func (w Window) Contains(index int) bool {
	return index >= w.Start && index < w.End
}

// ComputeWindow returns the window covering the visible range plus buffer
// items on both ends:
//
//	visible = ceil(containerHeight / itemHeight) + 2*buffer
//	start   = max(0, floor(scrollOffset / itemHeight) - buffer)
//	end     = min(count, start + visible)
func ComputeWindow(count, scrollOffset, containerHeight, itemHeight, buffer int) Window {
	if count <= 0 || itemHeight <= 0 {
		return Window{}
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	if containerHeight < 0 {
		containerHeight = 0
	}
	if buffer < 0 {
		buffer = 0
	}

	visible := ceilDiv(containerHeight, itemHeight) + 2*buffer

	start := scrollOffset/itemHeight - buffer
	if start < 0 {
		start = 0
	}
	if start > count {
		start = count
	}

	end := start + visible
	if end > count {
		end = count
	}

	return Window{Start: start, End: end}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
