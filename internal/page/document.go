// Package page holds the HTML document being previewed and the style
// edits applied to its elements.
package page

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/mmcdole/fontpeek/internal/domain"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page. Elements are addressed by node identity.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in memory
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// LoadFile parses the HTML file at path
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// QueryAll returns every element matching selector in document order.
// A selector that fails to compile yields an error wrapping
// domain.ErrInvalidSelector.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidSelector, selector, err)
	}
	return cascadia.QueryAll(d.root, group), nil
}

// AddStylesheets appends a <link rel="stylesheet"> to <head> for every URL
// not already linked and returns the inserted nodes
func (d *Document) AddStylesheets(urls []string) []*html.Node {
	head := cascadia.Query(d.root, cascadia.MustCompile("head"))
	if head == nil {
		return nil
	}

	existing := make(map[string]bool)
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Link {
			existing[attr(c, "href")] = true
		}
	}

	var added []*html.Node
	for _, u := range urls {
		if existing[u] {
			continue
		}
		existing[u] = true
		link := &html.Node{
			Type:     html.ElementNode,
			Data:     "link",
			DataAtom: atom.Link,
			Attr: []html.Attribute{
				{Key: "rel", Val: "stylesheet"},
				{Key: "href", Val: u},
			},
		}
		head.AppendChild(link)
		added = append(added, link)
	}
	return added
}

// RemoveNodes detaches nodes from the document
func RemoveNodes(nodes []*html.Node) {
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

// DefaultFamily returns the first family of <body>'s inline font-family,
// or "Default" when body has none
func (d *Document) DefaultFamily() string {
	body := cascadia.Query(d.root, cascadia.MustCompile("body"))
	if body == nil {
		return "Default"
	}
	value, _, ok := GetProperty(body, "font-family")
	if !ok {
		return "Default"
	}
	first, _, _ := strings.Cut(value, ",")
	first = strings.Trim(strings.TrimSpace(first), `"'`)
	if first == "" {
		return "Default"
	}
	return first
}

// Render writes the document as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// WriteFile renders the document to path
func (d *Document) WriteFile(path string) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// WriteFileWithStylesheets renders the document to path with urls linked
// in <head>. The links are only part of the written file; the document
// itself is left as it was.
func (d *Document) WriteFileWithStylesheets(path string, urls []string) error {
	added := d.AddStylesheets(urls)
	defer RemoveNodes(added)
	return d.WriteFile(path)
}

func attr(n *html.Node, key string) string {
	val, _ := lookupAttr(n, key)
	return val
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
