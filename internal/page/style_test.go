package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func elementWithStyle(style string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "p"}
	if style != "" {
		n.Attr = []html.Attribute{{Key: "style", Val: style}}
	}
	return n
}

func TestParseStyle(t *testing.T) {
	decls := parseStyle(`color: red; font-family: "A;B", serif !important;background:url(x;y.png);;bogus`)

	assert.Equal(t, []declaration{
		{property: "color", value: "red"},
		{property: "font-family", value: `"A;B", serif`, important: true},
		{property: "background", value: "url(x;y.png)"},
	}, decls)
}

func TestSetProperty(t *testing.T) {
	n := elementWithStyle("color: red; font-weight: 300")

	SetProperty(n, "font-weight", "700", true)
	SetProperty(n, "line-height", "1.5", false)

	assert.Equal(t, "color: red; font-weight: 700 !important; line-height: 1.5;", attr(n, "style"))

	value, important, ok := GetProperty(n, "font-weight")
	assert.True(t, ok)
	assert.True(t, important)
	assert.Equal(t, "700", value)
}

func TestRemoveProperty(t *testing.T) {
	n := elementWithStyle("font-size: 12px")

	RemoveProperty(n, "color")
	assert.Equal(t, "font-size: 12px", attr(n, "style"), "absent property leaves the attribute alone")

	RemoveProperty(n, "font-size")
	_, _, ok := GetProperty(n, "font-size")
	assert.False(t, ok)
	assert.Empty(t, n.Attr, "empty style attribute is dropped")
}

func TestGetProperty_Duplicates(t *testing.T) {
	tests := []struct {
		name      string
		style     string
		value     string
		important bool
	}{
		{"last wins", "font-family: A; font-family: B", "B", false},
		{"important wins over later", "font-weight: 700 !important; font-weight: 400", "700", true},
		{"last important wins", "font-size: 1px !important; font-size: 2px; font-size: 3px !important", "3px", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := elementWithStyle(tt.style)
			property := parseStyle(tt.style)[0].property

			value, important, ok := GetProperty(n, property)
			assert.True(t, ok)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.important, important)
		})
	}
}
