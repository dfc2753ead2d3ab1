package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/fontpeek/internal/selection"
	"github.com/mmcdole/fontpeek/internal/widget"
)

// handleKeyMsg processes keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.NextField):
		return m, m.cycleFocus(1)

	case key.Matches(msg, Keys.PrevField):
		return m, m.cycleFocus(-1)

	case key.Matches(msg, Keys.Reset):
		m.session.Dispatch(widget.ResetRequested{})
		return m, nil

	case key.Matches(msg, Keys.Copy):
		css := m.session.ExportCSS()
		if css == "" {
			return m, m.notify(widget.StatusNothingToCopy)
		}
		return m, CopyCmd(css)

	case key.Matches(msg, Keys.Save):
		return m, m.save()

	case key.Matches(msg, Keys.Escape):
		if m.focus != FocusList {
			return m, m.setFocus(FocusList)
		}
		return m, tea.Quit
	}

	switch m.focus {
	case FocusSearch:
		return m.handleSearchKey(msg)
	case FocusList:
		return m.handleListKey(msg)
	case FocusSelector:
		var cmd tea.Cmd
		m.Selector, cmd = m.Selector.Update(msg)
		m.session.Dispatch(widget.SelectorChanged{Text: m.Selector.Value()})
		return m, cmd
	case FocusWeight:
		switch {
		case key.Matches(msg, Keys.Decrease, Keys.Up):
			m.cycleWeight(-1)
		case key.Matches(msg, Keys.Increase, Keys.Down):
			m.cycleWeight(1)
		}
		return m, nil
	case FocusSize:
		before := m.Size.Value()
		var cmd tea.Cmd
		m.Size, cmd = m.Size.Update(msg)
		if m.Size.Value() != before {
			m.session.Dispatch(widget.SizeChanged{Text: m.Size.Value()})
		}
		return m, cmd
	case FocusLineHeight:
		switch {
		case key.Matches(msg, Keys.Decrease, Keys.Down):
			m.stepLineHeight(-1)
		case key.Matches(msg, Keys.Increase, Keys.Up):
			m.stepLineHeight(1)
		}
		return m, nil
	case FocusImportant:
		if key.Matches(msg, Keys.Toggle) {
			m.session.Dispatch(widget.ImportantToggled{On: !m.session.Important()})
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyDown, tea.KeyEnter:
		return m, m.setFocus(FocusList)
	}

	before := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	if m.Search.Value() == before {
		return m, cmd
	}

	// A new keystroke supersedes the pending recompute
	m.searchSeq++
	return m, tea.Batch(cmd, DebounceSearchCmd(m.searchSeq, m.deps.Debounce))
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.session.List()

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true

	case key.Matches(msg, Keys.Up):
		m.session.Dispatch(widget.KeyPressed{Key: selection.KeyArrowUp})

	case key.Matches(msg, Keys.Down):
		m.session.Dispatch(widget.KeyPressed{Key: selection.KeyArrowDown})

	case key.Matches(msg, Keys.Enter):
		m.session.Dispatch(widget.KeyPressed{Key: selection.KeyEnter})

	case key.Matches(msg, Keys.PageUp):
		m.session.Dispatch(widget.Scrolled{Offset: list.ScrollOffset() - list.ContainerHeight()})

	case key.Matches(msg, Keys.PageDown):
		m.session.Dispatch(widget.Scrolled{Offset: list.ScrollOffset() + list.ContainerHeight()})

	case key.Matches(msg, Keys.Home):
		m.session.Dispatch(widget.Scrolled{Offset: 0})

	case key.Matches(msg, Keys.End):
		m.session.Dispatch(widget.Scrolled{Offset: list.MaxScroll()})

	case key.Matches(msg, Keys.PrevCategory):
		m.cycleCategory(-1)

	case key.Matches(msg, Keys.NextCategory):
		m.cycleCategory(1)
	}

	m.markRequested()
	return m, nil
}

// handleMouseMsg maps wheel events to scrolling and left clicks on list
// rows to item clicks
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp || msg.Action != tea.MouseActionPress {
		return m, nil
	}
	list := m.session.List()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.session.Dispatch(widget.Scrolled{Offset: list.ScrollOffset() - list.ItemHeight()})
		m.markRequested()

	case tea.MouseButtonWheelDown:
		m.session.Dispatch(widget.Scrolled{Offset: list.ScrollOffset() + list.ItemHeight()})
		m.markRequested()

	case tea.MouseButtonLeft:
		index := list.IndexAt(msg.Y - listTop)
		if index < 0 {
			return m, nil
		}
		m.session.Dispatch(widget.ItemClicked{Index: index})
		m.markRequested()
		return m, m.setFocus(FocusList)
	}

	return m, nil
}

func (m *Model) stepLineHeight(steps int) {
	next := widget.StepLineHeight(m.session.LineHeight(), steps)
	if next != m.session.LineHeight() {
		m.session.Dispatch(widget.LineHeightChanged{Text: next})
	}
}

// save writes the page with a stylesheet link for every applied family.
// The links go to the file only, so a reset followed by another save
// drops them.
func (m *Model) save() tea.Cmd {
	path := m.deps.OutputPath
	if path == "" {
		path = m.deps.PagePath
	}
	if path == "" {
		return m.notify(StatusNoOutput)
	}

	var urls []string
	if m.deps.StylesheetURL != nil {
		for _, family := range m.session.AppliedFamilies() {
			urls = append(urls, m.deps.StylesheetURL(family))
		}
	}

	if err := m.session.Document().WriteFileWithStylesheets(path, urls); err != nil {
		m.logger.Error("failed to save page", "path", path, "error", err)
		return m.notify(StatusSaveFailed)
	}
	m.logger.Info("page saved", "path", path)
	return m.notify(savedPrefix + path)
}
