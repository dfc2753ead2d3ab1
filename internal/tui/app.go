package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/tui/styles"
	"github.com/mmcdole/fontpeek/internal/widget"
)

// Focus is the control receiving key input
type Focus int

const (
	FocusSearch Focus = iota
	FocusList
	FocusSelector
	FocusWeight
	FocusSize
	FocusLineHeight
	FocusImportant

	focusCount
)

// NoticeDuration is how long copy feedback replaces the status line
const NoticeDuration = 1500 * time.Millisecond

// Notices raised by the shell itself
const (
	StatusSaveFailed           = "Save failed"
	StatusNoOutput             = "No output file"
	StatusClipboardUnavailable = "Clipboard unavailable"
	savedPrefix                = "Saved "
)

// Layout rows outside the list box
const (
	HeaderHeight   = 3 // Title, search, categories
	ControlsHeight = 3
	FooterHeight   = 1
	BorderHeight   = 2
	ChromeHeight   = HeaderHeight + ControlsHeight + FooterHeight + BorderHeight
)

// Deps are the collaborators of the TUI model
type Deps struct {
	Session       *widget.Session
	Source        widget.CatalogSource
	LoadEvents    <-chan FontLoadMsg
	StylesheetURL func(family string) string
	PagePath      string
	OutputPath    string // Empty writes back to PagePath
	Weights       []int
	Debounce      time.Duration
	FetchTimeout  time.Duration
	SampleText    string
	Logger        *slog.Logger
}

// Model is the main Bubble Tea model for the preview shell
type Model struct {
	session *widget.Session
	deps    Deps
	logger  *slog.Logger

	// Inputs
	Search   textinput.Model
	Selector textinput.Model
	Size     textinput.Model

	weights     []widget.WeightOption
	weightIndex int
	focus       Focus
	categoryIdx int

	Spinner  spinner.Model
	Help     help.Model
	ShowHelp bool

	// Dimensions
	Width  int
	Height int
	Ready  bool

	searchSeq int
	noticeSeq int
	loads     map[string]LoadState
}

// NewModel creates a new application model
func NewModel(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if deps.SampleText == "" {
		deps.SampleText = "The quick brown fox jumps over the lazy dog"
	}

	search := newInput("Search fonts...", 64)
	search.Focus()

	selector := newInput("body", 256)
	size := newInput("e.g. 16 or 1.2rem", 32)

	weights := widget.WeightOptions(deps.Weights)
	weightIndex := 0
	for i, w := range weights {
		if w.Code == widget.DefaultWeight {
			weightIndex = i
		}
	}

	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(styles.SpinnerStyle),
	)

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpSepStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle
	h.Styles.FullSeparator = styles.HelpSepStyle

	return Model{
		session:     deps.Session,
		deps:        deps,
		logger:      logger,
		Search:      search,
		Selector:    selector,
		Size:        size,
		weights:     weights,
		weightIndex: weightIndex,
		focus:       FocusSearch,
		Spinner:     sp,
		Help:        h,
		loads:       make(map[string]LoadState),
	}
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	return ti
}

// Init starts the one-time catalog fetch
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.Spinner.Tick}
	if m.deps.Source != nil {
		cmds = append(cmds, FetchCatalogCmd(m.deps.Source, m.deps.FetchTimeout))
	}
	if m.deps.LoadEvents != nil {
		cmds = append(cmds, WaitForLoadCmd(m.deps.LoadEvents))
	}
	return tea.Batch(cmds...)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case spinner.TickMsg:
		if m.session.Settled() {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case CatalogLoadedMsg:
		m.session.SetCatalog(msg.Result)
		m.markRequested()
		return m, nil

	case SearchDebouncedMsg:
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		m.session.Dispatch(widget.SearchChanged{Query: m.Search.Value()})
		m.markRequested()
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.logger.Warn("clipboard write failed", "error", msg.Err)
			return m, m.notify(StatusClipboardUnavailable)
		}
		return m, m.notify(widget.StatusCopied)

	case ClearStatusMsg:
		if msg.Seq == m.noticeSeq {
			m.session.ClearNotice()
		}
		return m, nil

	case FontLoadMsg:
		if msg.Closed() {
			return m, nil
		}
		if msg.Err != nil {
			m.loads[msg.Family] = LoadFailed
		} else {
			m.loads[msg.Family] = LoadDone
		}
		return m, WaitForLoadCmd(m.deps.LoadEvents)
	}

	return m, nil
}

// notify shows a transient status message and schedules its removal
func (m *Model) notify(text string) tea.Cmd {
	m.session.Notify(text)
	m.noticeSeq++
	return ClearStatusCmd(m.noticeSeq, NoticeDuration)
}

// markRequested records items whose preview now points at their family
func (m *Model) markRequested() {
	for _, item := range m.session.Items() {
		if item.PreviewFamily == "" {
			continue
		}
		if m.loads[item.PreviewFamily] == LoadPending {
			m.loads[item.PreviewFamily] = LoadRequested
		}
	}
	if current := m.session.CurrentFont(); current != "" && m.loads[current] == LoadPending {
		m.loads[current] = LoadRequested
	}
}

// setFocus moves key input to f, focusing or blurring text inputs
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	m.Search.Blur()
	m.Selector.Blur()
	m.Size.Blur()

	switch f {
	case FocusSearch:
		return m.Search.Focus()
	case FocusSelector:
		return m.Selector.Focus()
	case FocusSize:
		return m.Size.Focus()
	}
	return nil
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	next := (int(m.focus) + delta + int(focusCount)) % int(focusCount)
	return m.setFocus(Focus(next))
}

func (m *Model) cycleCategory(delta int) {
	n := len(domain.Categories)
	m.categoryIdx = (m.categoryIdx + delta + n) % n
	m.session.Dispatch(widget.CategoryChanged{Category: domain.Categories[m.categoryIdx]})
	m.markRequested()
}

func (m *Model) cycleWeight(delta int) {
	if len(m.weights) == 0 {
		return
	}
	idx := m.weightIndex + delta
	if idx < 0 || idx >= len(m.weights) {
		return
	}
	m.weightIndex = idx
	m.session.Dispatch(widget.WeightChanged{Code: m.weights[idx].Code})
}

// updateLayout sizes the list viewport from the window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	m.session.Dispatch(widget.Resized{Height: m.listHeight()})
	m.markRequested()

	inputWidth := max(m.Width-styles.LabelStyle.GetWidth()-4, 10)
	m.Search.Width = inputWidth
	m.Selector.Width = inputWidth
	m.Size.Width = min(inputWidth, 24)
	m.Help.Width = m.Width
}

func (m Model) listHeight() int {
	return max(m.Height-ChromeHeight, 1)
}

// Focus returns the control receiving key input
func (m Model) Focus() Focus {
	return m.focus
}

// Session returns the widget session driven by the model
func (m Model) Session() *widget.Session {
	return m.session
}
