package virtuallist

import (
	"fmt"
	"testing"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLoader struct {
	calls map[string]int
	order []string
}

func newCountingLoader() *countingLoader {
	return &countingLoader{calls: make(map[string]int)}
}

func (c *countingLoader) Load(family string) {
	c.calls[family]++
	c.order = append(c.order, family)
}

func makeView(n int) []domain.FontDescriptor {
	view := make([]domain.FontDescriptor, n)
	for i := range view {
		view[i] = domain.FontDescriptor{Family: fmt.Sprintf("Font %04d", i), Category: domain.CategorySansSerif}
	}
	return view
}

func TestList_RendersOnlyWindow(t *testing.T) {
	loader := newCountingLoader()
	l := New(DefaultItemHeight, DefaultBuffer, loader)
	l.SetContainerHeight(520)
	l.SetView(makeView(1700), -1)

	assert.Equal(t, 1700*52, l.TotalHeight())
	assert.Equal(t, Window{0, 20}, l.Window())

	items := l.Items()
	require.Len(t, items, 20)
	for i, item := range items {
		assert.Equal(t, i, item.Index)
		assert.Equal(t, i*52, item.Top)
		assert.Equal(t, fmt.Sprintf("Font %04d", i), item.Font.Family)
	}
}

func TestList_VisibleItemsLoadOnce(t *testing.T) {
	loader := newCountingLoader()
	l := New(DefaultItemHeight, DefaultBuffer, loader)
	l.SetContainerHeight(104)
	l.SetView(makeView(100), -1)

	// Only the two visible items fire; buffer items keep their handles
	assert.Equal(t, []string{"Font 0000", "Font 0001"}, loader.order)
	assert.Equal(t, l.Window().Len()-2, l.Observed())

	first, ok := l.ItemAt(0)
	require.True(t, ok)
	assert.Equal(t, "Font 0000", first.PreviewFamily)
	buffered, ok := l.ItemAt(4)
	require.True(t, ok)
	assert.Empty(t, buffered.PreviewFamily)
}

func TestList_ScrollRebuildsHandles(t *testing.T) {
	loader := newCountingLoader()
	l := New(DefaultItemHeight, DefaultBuffer, loader)
	l.SetContainerHeight(104)
	l.SetView(makeView(100), -1)

	// Small scroll: item 1 stays visible, item 2 becomes visible
	l.ScrollTo(52)

	assert.Equal(t, 2, loader.calls["Font 0001"], "new instance of a still-visible item fires again")
	assert.Equal(t, 1, loader.calls["Font 0002"])
	assert.Equal(t, 0, loader.calls["Font 0003"])

	// Handle count matches the new window only
	assert.Equal(t, l.Window().Len()-2, l.Observed())
}

func TestList_ScrollClampsToExtent(t *testing.T) {
	l := New(DefaultItemHeight, 0, nil)
	l.SetContainerHeight(104)
	l.SetView(makeView(10), -1)

	l.ScrollTo(10_000)
	assert.Equal(t, 10*52-104, l.ScrollOffset())
	assert.Equal(t, Window{8, 10}, l.Window())

	l.ScrollTo(-5)
	assert.Equal(t, 0, l.ScrollOffset())

	// Shrinking the view pulls the offset back in range
	l.ScrollTo(l.MaxScroll())
	l.SetView(makeView(3), -1)
	assert.Equal(t, 52, l.ScrollOffset())
}

func TestList_SetHighlightPatchesWithoutRender(t *testing.T) {
	l := New(DefaultItemHeight, DefaultBuffer, nil)
	l.SetContainerHeight(104)
	l.SetView(makeView(50), 1)

	item, _ := l.ItemAt(1)
	assert.True(t, item.Highlighted)

	renders := l.Renders()
	l.SetHighlight(3)

	assert.Equal(t, renders, l.Renders())
	assert.Equal(t, 1, l.Patches())
	old, _ := l.ItemAt(1)
	next, _ := l.ItemAt(3)
	assert.False(t, old.Highlighted)
	assert.True(t, next.Highlighted)

	highlighted := 0
	for _, it := range l.Items() {
		if it.Highlighted {
			highlighted++
		}
	}
	assert.Equal(t, 1, highlighted)
}

func TestList_HighlightOutsideWindowAppearsOnScroll(t *testing.T) {
	l := New(DefaultItemHeight, 0, nil)
	l.SetContainerHeight(104)
	l.SetView(makeView(50), -1)

	l.SetHighlight(30)
	for _, it := range l.Items() {
		assert.False(t, it.Highlighted)
	}

	l.ScrollTo(30 * 52)
	item, ok := l.ItemAt(30)
	require.True(t, ok)
	assert.True(t, item.Highlighted)
}

func TestList_Reveal(t *testing.T) {
	l := New(DefaultItemHeight, DefaultBuffer, nil)
	l.SetContainerHeight(104)
	l.SetView(makeView(50), -1)

	// Below the viewport: bottom edges align
	l.Reveal(5)
	assert.Equal(t, 6*52-104, l.ScrollOffset())
	assert.True(t, l.Window().Contains(5))

	// Above the viewport: top edges align
	l.Reveal(1)
	assert.Equal(t, 52, l.ScrollOffset())

	// Already visible: no scroll, no render
	renders := l.Renders()
	l.Reveal(2)
	assert.Equal(t, 52, l.ScrollOffset())
	assert.Equal(t, renders, l.Renders())

	// Out of range is ignored
	l.Reveal(-1)
	l.Reveal(50)
	assert.Equal(t, 52, l.ScrollOffset())
}

func TestList_IndexAt(t *testing.T) {
	l := New(2, 1, nil)
	l.SetContainerHeight(10)
	l.SetView(makeView(20), -1)
	l.ScrollTo(4)

	assert.Equal(t, 2, l.IndexAt(0))
	assert.Equal(t, 2, l.IndexAt(1))
	assert.Equal(t, 3, l.IndexAt(2))
	assert.Equal(t, -1, l.IndexAt(10))
	assert.Equal(t, -1, l.IndexAt(-1))
}

// Two serif fonts in a container showing two items: scrolling to the
// bottom changes nothing because both fit.
func TestList_SmallFilteredViewScenario(t *testing.T) {
	catalog := []domain.FontDescriptor{
		{Family: "A", Category: domain.CategorySansSerif},
		{Family: "B", Category: domain.CategorySansSerif},
		{Family: "C", Category: domain.CategorySansSerif},
		{Family: "D", Category: domain.CategorySerif},
		{Family: "E", Category: domain.CategorySerif},
	}
	var serif []domain.FontDescriptor
	for _, f := range catalog {
		if f.Category == domain.CategorySerif {
			serif = append(serif, f)
		}
	}

	l := New(52, 0, nil)
	l.SetContainerHeight(104)
	l.SetView(serif, -1)
	require.Equal(t, 2, l.Len())

	l.ScrollTo(l.TotalHeight())
	assert.Equal(t, Window{0, 2}, l.Window())
}
