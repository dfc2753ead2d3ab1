// Package widget owns the font preview session: catalog, filtered view,
// virtual list, selection and style edits, driven by Commands.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/filter"
	"github.com/mmcdole/fontpeek/internal/page"
	"github.com/mmcdole/fontpeek/internal/selection"
	"github.com/mmcdole/fontpeek/internal/virtuallist"
)

const (
	PlaceholderLoading  = "Loading fonts..."
	PlaceholderEmpty    = "No fonts found"
	StatusInvalid       = "Invalid selector"
	StatusNothingToCopy = "Nothing to copy"
	StatusCopied        = "Copied to clipboard!"

	DefaultSuggestions = 3
)

// CatalogSource resolves the font catalog. Fetch never fails; a degraded
// result is flagged with Fallback.
type CatalogSource interface {
	Fetch(ctx context.Context) domain.CatalogResult
}

// Options configures a Session
type Options struct {
	ItemHeight      int
	Buffer          int
	DefaultSelector string
	SuggestLimit    int
}

// SelectionState is a read-only view of the selection controller
type SelectionState struct {
	Family   string
	Selected bool
	Index    int // Into the current view, -1 when absent
}

// Session is the whole widget state behind one preview panel.
//
// Nothing is filtered or rendered until the catalog settles (Open or
// SetCatalog). Every failure the widget can hit is reported through
// Status; Dispatch never returns an error.
type Session struct {
	source  CatalogSource
	doc     *page.Document
	applier *page.Applier
	list    *virtuallist.List
	sel     *selection.Controller
	logger  *slog.Logger

	suggestLimit int

	catalog  []domain.FontDescriptor
	fallback bool
	settled  bool
	view     []domain.FontDescriptor

	query    string // Lowercased
	category domain.Category

	selector   string
	weight     string
	size       string
	lineHeight string
	important  bool

	defaultFamily string
	status        string
}

// NewSession creates a session over doc. loader receives resource requests
// from both the list and the applier and may be nil.
func NewSession(source CatalogSource, loader domain.FontLoader, doc *page.Document, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ItemHeight < 1 {
		opts.ItemHeight = virtuallist.DefaultItemHeight
	}
	if opts.Buffer < 0 {
		opts.Buffer = virtuallist.DefaultBuffer
	}
	if opts.SuggestLimit < 1 {
		opts.SuggestLimit = DefaultSuggestions
	}

	s := &Session{
		source:        source,
		doc:           doc,
		applier:       page.NewApplier(doc, loader, opts.DefaultSelector, logger),
		list:          virtuallist.New(opts.ItemHeight, opts.Buffer, loader),
		sel:           selection.New(),
		logger:        logger,
		suggestLimit:  opts.SuggestLimit,
		category:      domain.CategoryAll,
		weight:        DefaultWeight,
		lineHeight:    DefaultLineHeight,
		defaultFamily: doc.DefaultFamily(),
	}
	s.status = s.restingStatus()
	return s
}

// Open fetches the catalog once. Later calls are no-ops.
func (s *Session) Open(ctx context.Context) {
	if s.settled || s.source == nil {
		return
	}
	s.SetCatalog(s.source.Fetch(ctx))
}

// SetCatalog installs a fetched catalog and renders the first view
func (s *Session) SetCatalog(result domain.CatalogResult) {
	s.catalog = result.Fonts
	s.fallback = result.Fallback
	s.settled = true
	s.logger.Debug("catalog installed", "count", len(result.Fonts), "fallback", result.Fallback)
	s.refreshView()
}

// Dispatch applies one input event
func (s *Session) Dispatch(cmd Command) {
	switch c := cmd.(type) {
	case SearchChanged:
		s.query = filter.NormalizeQuery(c.Query)
		s.refreshView()

	case CategoryChanged:
		category := c.Category
		if !category.Valid() {
			category = domain.CategoryAll
		}
		s.category = category
		s.refreshView()

	case Scrolled:
		s.list.ScrollTo(c.Offset)

	case Resized:
		s.list.SetContainerHeight(c.Height)

	case KeyPressed:
		s.handleKey(c.Key)

	case ItemClicked:
		out := s.sel.Click(c.Index, s.view)
		if out.Action == selection.ActionCommit {
			s.list.SetHighlight(out.Index)
			s.applyFont(out.Font.Family)
		}

	case SelectorChanged:
		s.selector = c.Text

	case WeightChanged:
		s.weight = c.Code
		s.applyFont(s.applier.CurrentFont())

	case SizeChanged:
		s.size = c.Text
		s.applyFont(s.applier.CurrentFont())

	case LineHeightChanged:
		s.lineHeight = c.Text
		s.applyFont(s.applier.CurrentFont())

	case ImportantToggled:
		s.important = c.On
		s.applyFont(s.applier.CurrentFont())

	case ResetRequested:
		s.reset()

	default:
		s.logger.Warn("unknown command", "type", fmt.Sprintf("%T", cmd))
	}
}

func (s *Session) handleKey(key selection.Key) {
	if !s.settled {
		return
	}
	out := s.sel.HandleKey(key, s.view)
	switch out.Action {
	case selection.ActionHighlight:
		s.list.SetHighlight(out.Index)
		s.list.Reveal(out.Index)
	case selection.ActionCommit:
		s.applyFont(out.Font.Family)
	}
}

// refreshView recomputes the filtered view and re-resolves the selection
// against it before rendering
func (s *Session) refreshView() {
	if !s.settled {
		return
	}
	s.view = filter.Filter(s.catalog, s.query, s.category)
	s.sel.ViewChanged(s.view)
	s.list.SetView(s.view, s.sel.Index())

	if s.applier.CurrentFont() == "" {
		s.status = s.countText()
	}
}

func (s *Session) applyFont(family string) {
	if family == "" {
		return
	}

	_, err := s.applier.Apply(page.Options{
		Selector:   s.selector,
		Family:     family,
		Weight:     s.weight,
		Size:       s.size,
		LineHeight: s.lineHeight,
		Important:  s.important,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSelector) {
			s.status = StatusInvalid
			return
		}
		s.logger.Error("apply failed", "family", family, "error", err)
		return
	}
	s.status = "Current: " + family
}

func (s *Session) reset() {
	restored := s.applier.Reset()
	s.sel.Clear()
	s.list.SetHighlight(-1)
	if s.settled {
		s.status = s.countText()
	} else {
		s.status = s.restingStatus()
	}
	s.logger.Info("styles reset", "elements", restored)
}

func (s *Session) countText() string {
	total := len(s.catalog)
	if len(s.view) != total {
		return fmt.Sprintf("%d of %d fonts", len(s.view), total)
	}
	if s.fallback {
		return fmt.Sprintf("API unavailable · %d popular fonts", total)
	}
	return fmt.Sprintf("%d fonts", total)
}

func (s *Session) restingStatus() string {
	if current := s.applier.CurrentFont(); current != "" {
		return "Current: " + current
	}
	return "Current: " + s.defaultFamily
}

// Notify replaces the status line with a transient message
func (s *Session) Notify(text string) {
	s.status = text
}

// ClearNotice ends a transient message, showing the current or page
// default font
func (s *Session) ClearNotice() {
	s.status = s.restingStatus()
}

// Status returns the status line text
func (s *Session) Status() string {
	return s.status
}

// Placeholder returns the text shown instead of the list, or "" when the
// list has items
func (s *Session) Placeholder() string {
	if !s.settled {
		return PlaceholderLoading
	}
	if len(s.view) == 0 {
		return PlaceholderEmpty
	}
	return ""
}

// Suggestions returns near-miss family names when the view is empty
func (s *Session) Suggestions() []string {
	if !s.settled || len(s.view) > 0 || s.query == "" {
		return nil
	}
	return filter.Suggest(s.catalog, s.query, s.category, s.suggestLimit)
}

// ExportCSS returns the changed declarations, "" when nothing changed
func (s *Session) ExportCSS() string {
	return ExportCSS(s.applier.CurrentFont(), s.weight, s.size, s.lineHeight)
}

// Window returns the rendered index range
func (s *Session) Window() virtuallist.Window { return s.list.Window() }

// Items returns the rendered list items
func (s *Session) Items() []virtuallist.Item { return s.list.Items() }

// List exposes the render model for geometry queries
func (s *Session) List() *virtuallist.List { return s.list }

// View returns the current filtered view
func (s *Session) View() []domain.FontDescriptor { return s.view }

// Catalog returns the installed catalog
func (s *Session) Catalog() []domain.FontDescriptor { return s.catalog }

// Settled reports whether the catalog fetch has finished
func (s *Session) Settled() bool { return s.settled }

// UsingFallback reports whether the catalog is the static fallback list
func (s *Session) UsingFallback() bool { return s.fallback }

// Selection returns the selection state
func (s *Session) Selection() SelectionState {
	family, selected := s.sel.Family()
	return SelectionState{Family: family, Selected: selected, Index: s.sel.Index()}
}

// CurrentFont returns the family last applied successfully, or ""
func (s *Session) CurrentFont() string { return s.applier.CurrentFont() }

// AppliedFamilies returns the families written since the last reset
func (s *Session) AppliedFamilies() []string { return s.applier.AppliedFamilies() }

// Document returns the page being edited
func (s *Session) Document() *page.Document { return s.doc }

// Query returns the lowercased search text
func (s *Session) Query() string { return s.query }

// Category returns the active category
func (s *Session) Category() domain.Category { return s.category }

// Selector returns the raw selector text
func (s *Session) Selector() string { return s.selector }

// Weight returns the weight code
func (s *Session) Weight() string { return s.weight }

// Size returns the raw size text
func (s *Session) Size() string { return s.size }

// LineHeight returns the line height text
func (s *Session) LineHeight() string { return s.lineHeight }

// Important reports whether declarations are forced !important
func (s *Session) Important() bool { return s.important }
