package page

import (
	"strings"

	"golang.org/x/net/html"
)

// declaration is one "property: value [!important]" entry of a style attribute
type declaration struct {
	property  string
	value     string
	important bool
}

// GetProperty reads the effective inline style property of n. With
// duplicate declarations the last one wins, unless an earlier one is
// !important and the later ones are not.
func GetProperty(n *html.Node, property string) (value string, important bool, ok bool) {
	for _, d := range parseStyle(attr(n, "style")) {
		if d.property != property {
			continue
		}
		if important && !d.important {
			continue
		}
		value, important, ok = d.value, d.important, true
	}
	return value, important, ok
}

// SetProperty writes an inline style property of n, replacing an existing
// declaration in place or appending a new one
func SetProperty(n *html.Node, property, value string, important bool) {
	decls := parseStyle(attr(n, "style"))
	replaced := false
	for i := range decls {
		if decls[i].property == property {
			decls[i].value = value
			decls[i].important = important
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, declaration{property: property, value: value, important: important})
	}
	setStyle(n, decls)
}

// RemoveProperty deletes an inline style property of n
func RemoveProperty(n *html.Node, property string) {
	decls := parseStyle(attr(n, "style"))
	kept := decls[:0]
	for _, d := range decls {
		if d.property != property {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(decls) {
		return
	}
	setStyle(n, kept)
}

func setStyle(n *html.Node, decls []declaration) {
	if len(decls) == 0 {
		removeAttr(n, "style")
		return
	}
	setAttr(n, "style", formatStyle(decls))
}

// parseStyle splits a style attribute into declarations. Semicolons inside
// quotes or parentheses do not end a declaration.
func parseStyle(style string) []declaration {
	var decls []declaration
	for _, part := range splitDeclarations(style) {
		name, value, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}

		important := false
		if i := strings.LastIndex(value, "!"); i >= 0 {
			if strings.EqualFold(strings.TrimSpace(value[i+1:]), "important") {
				important = true
				value = strings.TrimSpace(value[:i])
			}
		}
		decls = append(decls, declaration{property: name, value: value, important: important})
	}
	return decls
}

func splitDeclarations(style string) []string {
	var parts []string
	var quote rune
	depth := 0
	start := 0
	for i, r := range style {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case r == ';' && depth == 0:
			parts = append(parts, style[start:i])
			start = i + 1
		}
	}
	parts = append(parts, style[start:])
	return parts
}

func sameDeclarations(a, b []declaration) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatStyle(decls []declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.property + ": " + d.value
		if d.important {
			parts[i] += " !important"
		}
	}
	return strings.Join(parts, "; ") + ";"
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
