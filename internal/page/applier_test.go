package page

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const testPage = `<!DOCTYPE html>
<html><head><title>t</title></head>
<body style="font-family: Georgia, serif">
<h1 id="title" style="font-weight: 300 !important; color: navy">Hello</h1>
<p class="lead">One</p>
<p style="font-size: 12px; line-height: 1">Two</p>
</body></html>`

type recordingLoader struct {
	families []string
}

func (r *recordingLoader) Load(family string) {
	r.families = append(r.families, family)
}

func newTestApplier(t *testing.T) (*Document, *Applier, *recordingLoader) {
	t.Helper()
	doc, err := ParseString(testPage)
	require.NoError(t, err)
	loader := &recordingLoader{}
	return doc, NewApplier(doc, loader, "body", log.NullLogger()), loader
}

func query(t *testing.T, doc *Document, selector string) []*html.Node {
	t.Helper()
	nodes, err := doc.QueryAll(selector)
	require.NoError(t, err)
	return nodes
}

type fontValues struct {
	family, weight, size, lineHeight string
}

func readFontValues(n *html.Node) fontValues {
	get := func(p string) string {
		v, important, ok := GetProperty(n, p)
		if !ok {
			return "<unset>"
		}
		if important {
			return v + " !important"
		}
		return v
	}
	return fontValues{get("font-family"), get("font-weight"), get("font-size"), get("line-height")}
}

func TestParseSize(t *testing.T) {
	assert.Equal(t, "16px", ParseSize("16"))
	assert.Equal(t, "16.5px", ParseSize(" 16.5 "))
	assert.Equal(t, "1.2rem", ParseSize("1.2rem"))
	assert.Equal(t, "120%", ParseSize("120%"))
	assert.Equal(t, "-3", ParseSize("-3"))
	assert.Equal(t, "1.", ParseSize("1."))
	assert.Equal(t, "", ParseSize("   "))
}

func TestApplier_AppliesToMatches(t *testing.T) {
	doc, a, loader := newTestApplier(t)

	n, err := a.Apply(Options{Selector: "p", Family: "Roboto", Weight: "700", Size: "16", LineHeight: "1.5"})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"Roboto"}, loader.families)
	assert.Equal(t, "Roboto", a.CurrentFont())

	for _, p := range query(t, doc, "p") {
		assert.Equal(t, fontValues{`"Roboto", sans-serif`, "700", "16px", "1.5"}, readFontValues(p))
	}
}

func TestApplier_BlankSelectorTargetsDefault(t *testing.T) {
	doc, a, _ := newTestApplier(t)

	n, err := a.Apply(Options{Selector: "   ", Family: "Lora", Weight: "400", LineHeight: "1.5"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	body := query(t, doc, "body")[0]
	assert.Equal(t, `"Lora", sans-serif`, readFontValues(body).family)
}

func TestApplier_EmptySizeLeavesFontSize(t *testing.T) {
	doc, a, _ := newTestApplier(t)

	_, err := a.Apply(Options{Selector: "p", Family: "Lora", Weight: "400", Size: "", LineHeight: "2"})
	require.NoError(t, err)

	ps := query(t, doc, "p")
	assert.Equal(t, "<unset>", readFontValues(ps[0]).size)
	assert.Equal(t, "12px", readFontValues(ps[1]).size)

	_, err = a.Apply(Options{Selector: "p", Family: "Lora", Weight: "400", Size: "1.2rem", LineHeight: "2"})
	require.NoError(t, err)
	assert.Equal(t, "1.2rem", readFontValues(ps[0]).size)
}

func TestApplier_ImportantIsUniform(t *testing.T) {
	doc, a, _ := newTestApplier(t)

	_, err := a.Apply(Options{Selector: "#title", Family: "Inter", Weight: "600", Size: "20", LineHeight: "1.1", Important: true})
	require.NoError(t, err)

	h1 := query(t, doc, "#title")[0]
	assert.Equal(t, fontValues{`"Inter", sans-serif !important`, "600 !important", "20px !important", "1.1 !important"}, readFontValues(h1))
}

func TestApplier_InvalidSelector(t *testing.T) {
	doc, a, _ := newTestApplier(t)
	before := doc.String()

	n, err := a.Apply(Options{Selector: "p[", Family: "Roboto", Weight: "400", LineHeight: "1.5"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSelector)
	assert.Equal(t, 0, n)
	assert.Equal(t, before, doc.String(), "no element mutated")
	assert.Equal(t, 0, a.Touched())
	assert.Equal(t, "", a.CurrentFont())
}

func TestApplier_NoMatchesIsNotAnError(t *testing.T) {
	doc, a, _ := newTestApplier(t)
	before := doc.String()

	n, err := a.Apply(Options{Selector: "div.missing", Family: "Roboto", Weight: "400", LineHeight: "1.5"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "Roboto", a.CurrentFont())
	assert.Equal(t, before, doc.String())
}

func TestApplier_RequiresFamily(t *testing.T) {
	_, a, loader := newTestApplier(t)

	_, err := a.Apply(Options{Selector: "p"})
	assert.ErrorIs(t, err, domain.ErrNoFontSelected)
	assert.Empty(t, loader.families)
}

func TestApplier_IdempotentAndSnapshotOnce(t *testing.T) {
	doc, a, _ := newTestApplier(t)
	opts := Options{Selector: "h1, p", Family: "Roboto", Weight: "700", Size: "18", LineHeight: "1.4"}

	_, err := a.Apply(opts)
	require.NoError(t, err)
	snap := make(map[*html.Node]elementSnapshot, len(a.originals))
	for k, v := range a.originals {
		snap[k] = v
	}
	after1 := doc.String()

	_, err = a.Apply(opts)
	require.NoError(t, err)

	assert.Equal(t, after1, doc.String())
	assert.Equal(t, snap, a.originals)

	// A different font does not re-snapshot either
	_, err = a.Apply(Options{Selector: "h1", Family: "Lora", Weight: "400", LineHeight: "1.5"})
	require.NoError(t, err)
	assert.Equal(t, snap, a.originals)
	assert.Equal(t, 3, a.Touched())
}

func TestApplier_ResetRoundTrip(t *testing.T) {
	doc, a, _ := newTestApplier(t)

	all := query(t, doc, "body, h1, p")
	before := make([]fontValues, len(all))
	for i, n := range all {
		before[i] = readFontValues(n)
	}
	h1 := query(t, doc, "#title")[0]
	_, colorImportant, _ := GetProperty(h1, "color")
	original := doc.String()

	_, err := a.Apply(Options{Selector: "body, h1, p", Family: "Roboto", Weight: "800", Size: "22", LineHeight: "2", Important: true})
	require.NoError(t, err)
	_, err = a.Apply(Options{Selector: "p", Family: "Pacifico", Weight: "300", Size: "1rem", LineHeight: "1.2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Roboto", "Pacifico"}, a.AppliedFamilies())

	restored := a.Reset()
	assert.Equal(t, 4, restored)

	for i, n := range all {
		assert.Equal(t, before[i], readFontValues(n))
	}
	color, important, ok := GetProperty(h1, "color")
	assert.True(t, ok)
	assert.Equal(t, "navy", color)
	assert.Equal(t, colorImportant, important)

	assert.Equal(t, "", a.CurrentFont())
	assert.Empty(t, a.AppliedFamilies())
	assert.Equal(t, 0, a.Touched())

	// Elements without a style attribute get none back
	lead := query(t, doc, "p.lead")[0]
	_, hasStyle := lookupAttr(lead, "style")
	assert.False(t, hasStyle)

	assert.Equal(t, original, doc.String())
}

func TestDocument_DefaultFamily(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)
	assert.Equal(t, "Georgia", doc.DefaultFamily())

	plain, err := ParseString("<p>x</p>")
	require.NoError(t, err)
	assert.Equal(t, "Default", plain.DefaultFamily())
}

func TestDocument_AddStylesheets(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)

	first := doc.AddStylesheets([]string{"https://fonts.example/a", "https://fonts.example/a"})
	second := doc.AddStylesheets([]string{"https://fonts.example/a", "https://fonts.example/b"})
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)

	links := query(t, doc, `head link[rel="stylesheet"]`)
	require.Len(t, links, 2)
	assert.Equal(t, "https://fonts.example/a", attr(links[0], "href"))
	assert.Equal(t, "https://fonts.example/b", attr(links[1], "href"))

	RemoveNodes(second)
	links = query(t, doc, `head link[rel="stylesheet"]`)
	require.Len(t, links, 1)
	assert.Equal(t, "https://fonts.example/a", attr(links[0], "href"))
}

func TestDocument_WriteFileWithStylesheets(t *testing.T) {
	doc, err := ParseString(testPage)
	require.NoError(t, err)
	original := doc.String()
	path := filepath.Join(t.TempDir(), "out.html")

	require.NoError(t, doc.WriteFileWithStylesheets(path, []string{"https://fonts.example/a"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<link rel="stylesheet" href="https://fonts.example/a"/>`)
	assert.Equal(t, original, doc.String(), "links are not left in the document")
	assert.Empty(t, query(t, doc, "link"))
}

func TestApplier_ResetKeepsDuplicateDeclarations(t *testing.T) {
	doc, err := ParseString(`<html><head></head><body>
<p id="a" style="font-family: A; font-family: B">x</p>
<h2 style="font-weight: 700 !important; font-weight: 400; color: navy">y</h2>
<p id="b" style="font-family: A; font-family: B">z</p>
</body></html>`)
	require.NoError(t, err)
	a := NewApplier(doc, nil, "body", log.NullLogger())

	p := query(t, doc, "#a")[0]
	h2 := query(t, doc, "h2")[0]
	edited := query(t, doc, "#b")[0]

	_, err = a.Apply(Options{Selector: "p, h2", Family: "Lora", Weight: "300"})
	require.NoError(t, err)
	family, _, _ := GetProperty(p, "font-family")
	assert.Equal(t, FamilyValue("Lora"), family)

	// A change outside the font properties forces a per-property restore
	SetProperty(edited, "color", "red", false)

	a.Reset()

	assert.Equal(t, "font-family: A; font-family: B", attr(p, "style"))
	assert.Equal(t, "font-weight: 700 !important; font-weight: 400; color: navy", attr(h2, "style"))

	family, _, ok := GetProperty(edited, "font-family")
	assert.True(t, ok)
	assert.Equal(t, "B", family, "the effective value is restored")
	color, _, _ := GetProperty(edited, "color")
	assert.Equal(t, "red", color)
	_, _, ok = GetProperty(edited, "font-weight")
	assert.False(t, ok)
}
