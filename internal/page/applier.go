package page

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mmcdole/fontpeek/internal/domain"
	"golang.org/x/net/html"
)

// Properties the applier writes, in write order
var fontProperties = []string{"font-family", "font-weight", "font-size", "line-height"}

var bareNumber = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Options describes one apply call
type Options struct {
	Selector   string // Blank = the default selector
	Family     string
	Weight     string // e.g. "400"
	Size       string // Bare numbers mean px; blank leaves font-size alone
	LineHeight string
	Important  bool // Applies to every property written by this call
}

// ParseSize normalizes size input: bare non-negative decimals get "px",
// anything else passes through, blank stays blank
func ParseSize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if bareNumber.MatchString(text) {
		return text + "px"
	}
	return text
}

// FamilyValue is the font-family declaration value written for family
func FamilyValue(family string) string {
	return fmt.Sprintf(`"%s", sans-serif`, family)
}

type propertySnapshot struct {
	value     string
	important bool
	present   bool
}

// elementSnapshot holds an element's pre-widget inline values, one per
// fontProperties entry, plus the raw style attribute
type elementSnapshot struct {
	props    [4]propertySnapshot
	style    string
	hasStyle bool
}

// Applier writes font styles to the elements a selector matches and can
// restore them.
//
// The first time an element is touched its inline font-family, font-weight,
// font-size and line-height are recorded; later applies never overwrite
// that record. Reset puts back the original style attribute when only
// those four properties changed since; otherwise it writes every recorded
// effective value back (clearing properties that had no value). Either way
// the records are forgotten.
type Applier struct {
	doc             *Document
	loader          domain.FontLoader
	defaultSelector string
	logger          *slog.Logger

	originals map[*html.Node]elementSnapshot
	order     []*html.Node // Touch order, for deterministic restores
	current   string
	applied   []string // Families written since the last reset
}

// NewApplier creates an applier over doc. loader may be nil.
func NewApplier(doc *Document, loader domain.FontLoader, defaultSelector string, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(defaultSelector) == "" {
		defaultSelector = "body"
	}
	return &Applier{
		doc:             doc,
		loader:          loader,
		defaultSelector: defaultSelector,
		logger:          logger,
		originals:       make(map[*html.Node]elementSnapshot),
	}
}

// Apply writes opts to every element matching opts.Selector and returns the
// number of matched elements. Zero matches is not an error.
//
// The family's resource is requested before anything is written, but the
// declaration never waits for it. An invalid selector returns an error
// wrapping domain.ErrInvalidSelector and leaves every element untouched.
func (a *Applier) Apply(opts Options) (int, error) {
	if opts.Family == "" {
		return 0, domain.ErrNoFontSelected
	}

	if a.loader != nil {
		a.loader.Load(opts.Family)
	}

	selector := strings.TrimSpace(opts.Selector)
	if selector == "" {
		selector = a.defaultSelector
	}

	elements, err := a.doc.QueryAll(selector)
	if err != nil {
		a.logger.Debug("invalid selector", "selector", selector, "error", err)
		return 0, err
	}

	values := [4]string{
		FamilyValue(opts.Family),
		strings.TrimSpace(opts.Weight),
		ParseSize(opts.Size),
		strings.TrimSpace(opts.LineHeight),
	}

	for _, el := range elements {
		a.snapshot(el)
		for i, prop := range fontProperties {
			if values[i] == "" {
				continue
			}
			SetProperty(el, prop, values[i], opts.Important)
		}
	}

	a.current = opts.Family
	a.markApplied(opts.Family)

	a.logger.Debug("font applied", "family", opts.Family, "selector", selector, "matched", len(elements))
	return len(elements), nil
}

func (a *Applier) snapshot(el *html.Node) {
	if _, ok := a.originals[el]; ok {
		return
	}
	var snap elementSnapshot
	snap.style, snap.hasStyle = lookupAttr(el, "style")
	for i, prop := range fontProperties {
		value, important, present := GetProperty(el, prop)
		snap.props[i] = propertySnapshot{value: value, important: important, present: present}
	}
	a.originals[el] = snap
	a.order = append(a.order, el)
}

func (a *Applier) markApplied(family string) {
	for _, f := range a.applied {
		if f == family {
			return
		}
	}
	a.applied = append(a.applied, family)
}

// Reset restores every touched element and clears the current font.
// It returns the number of restored elements.
func (a *Applier) Reset() int {
	for _, el := range a.order {
		snap := a.originals[el]

		// Only font properties changed: the original text is exact,
		// duplicate declarations included
		if sameDeclarations(otherDeclarations(attr(el, "style")), otherDeclarations(snap.style)) {
			if snap.hasStyle {
				setAttr(el, "style", snap.style)
			} else {
				removeAttr(el, "style")
			}
			continue
		}

		for i, prop := range fontProperties {
			if snap.props[i].present {
				SetProperty(el, prop, snap.props[i].value, snap.props[i].important)
			} else {
				RemoveProperty(el, prop)
			}
		}
	}

	restored := len(a.order)
	a.originals = make(map[*html.Node]elementSnapshot)
	a.order = nil
	a.current = ""
	a.applied = nil

	a.logger.Debug("styles reset", "elements", restored)
	return restored
}

// otherDeclarations parses style and drops the properties the applier writes
func otherDeclarations(style string) []declaration {
	var kept []declaration
	for _, d := range parseStyle(style) {
		if !isFontProperty(d.property) {
			kept = append(kept, d)
		}
	}
	return kept
}

func isFontProperty(property string) bool {
	for _, p := range fontProperties {
		if p == property {
			return true
		}
	}
	return false
}

// CurrentFont returns the family last applied successfully, or ""
func (a *Applier) CurrentFont() string {
	return a.current
}

// AppliedFamilies returns the families written since the last reset
func (a *Applier) AppliedFamilies() []string {
	families := make([]string, len(a.applied))
	copy(families, a.applied)
	return families
}

// Touched returns how many elements have a recorded original
func (a *Applier) Touched() int {
	return len(a.order)
}
