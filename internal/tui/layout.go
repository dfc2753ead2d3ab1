package tui

// listTop is the terminal row of the first list line (below the header
// and the list box's top border)
const listTop = HeaderHeight + 1

// listWidth is the inner width of the list box
func (m Model) listWidth() int {
	return max(m.Width-2, 10)
}
