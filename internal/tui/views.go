package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/fontpeek/internal/domain"
	"github.com/mmcdole/fontpeek/internal/tui/styles"
	"github.com/mmcdole/fontpeek/internal/virtuallist"
	"github.com/mmcdole/fontpeek/internal/widget"
)

// View renders the whole shell
func (m Model) View() string {
	if !m.Ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderField("Search", FocusSearch, m.Search.View()))
	b.WriteString("\n")
	b.WriteString(m.renderCategories())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	view := b.String()
	if m.ShowHelp {
		box := styles.ActiveBorder.Padding(1, 2).Render(
			styles.TitleStyle.Render("Keys") + "\n\n" + m.Help.FullHelpView(Keys.FullHelp()))
		view = lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
	}
	return view
}

// renderTitle renders the app name and page on the left, status on the right
func (m Model) renderTitle() string {
	left := styles.TitleStyle.Render("fontpeek")
	if m.deps.PagePath != "" {
		left += styles.DimStyle.Render(" · " + filepath.Base(m.deps.PagePath))
	}

	status := m.session.Status()
	right := statusStyle(status).Render(status)
	if !m.session.Settled() {
		right = m.Spinner.View() + " " + right
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// statusStyle colors failures red and completed actions green
func statusStyle(status string) lipgloss.Style {
	switch {
	case status == widget.StatusInvalid, status == StatusSaveFailed,
		status == StatusNoOutput, status == StatusClipboardUnavailable:
		return styles.ErrorStyle
	case status == widget.StatusCopied, strings.HasPrefix(status, savedPrefix):
		return styles.SuccessStyle
	}
	return styles.AccentStyle
}

func (m Model) renderField(label string, f Focus, value string) string {
	style := styles.LabelStyle
	if m.focus == f {
		style = styles.FocusedLabelStyle
	}
	return style.Render(label) + value
}

func (m Model) renderCategories() string {
	current := m.session.Category()
	parts := make([]string, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		if c == current {
			parts = append(parts, styles.ActiveCategoryStyle.Render(c.Label()))
		} else {
			parts = append(parts, styles.CategoryStyle.Render(c.Label()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderList renders the list box: the placeholder, or the rows of the
// rendered window that fall inside the viewport
func (m Model) renderList() string {
	width := m.listWidth()
	height := m.listHeight()

	border := styles.InactiveBorder
	if m.focus == FocusList {
		border = styles.ActiveBorder
	}

	var content string
	if placeholder := m.session.Placeholder(); placeholder != "" {
		text := placeholder
		if !m.session.Settled() {
			text = m.Spinner.View() + " " + placeholder
		}
		content = lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styles.DimStyle.Render(text))
	} else {
		content = strings.Join(m.renderRows(width, height), "\n")
	}

	return border.Width(width).Height(height).Render(content)
}

func (m Model) renderRows(width, height int) []string {
	list := m.session.List()
	offset := list.ScrollOffset()

	blank := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = blank
	}

	for _, item := range m.session.Items() {
		for r := 0; r < list.ItemHeight(); r++ {
			y := item.Top + r - offset
			if y < 0 || y >= height {
				continue
			}
			rows[y] = m.renderItemRow(item, r, width)
		}
	}
	return rows
}

func (m Model) renderItemRow(item virtuallist.Item, row, width int) string {
	switch row {
	case 0:
		indicator, color := m.loadIndicator(item)
		family := styles.Truncate(item.Font.Family, width/2)
		parts := []styles.RowPart{
			{Text: indicator, Foreground: &color},
			{Text: " "},
			{Text: family, Bold: true},
			{Text: "  "},
			{Text: item.Font.Category.Label(), Foreground: &styles.DimGray},
		}
		if item.Font.Family == m.session.CurrentFont() {
			parts = append(parts, styles.RowPart{Text: "  ✓", Foreground: &styles.Green})
		}
		return styles.RenderListRow(parts, item.Highlighted, width)

	case 1:
		sample := styles.Truncate(m.deps.SampleText, width-6)
		part := styles.RowPart{Text: "  " + sample}
		if item.PreviewFamily == "" {
			part.Foreground = &styles.DimGray
		}
		return styles.RenderListRow([]styles.RowPart{part}, item.Highlighted, width)
	}
	return styles.RenderListRow(nil, item.Highlighted, width)
}

func (m Model) loadIndicator(item virtuallist.Item) (string, lipgloss.Color) {
	if item.PreviewFamily == "" {
		return styles.PendingChar, styles.DimGray
	}
	switch m.loads[item.PreviewFamily] {
	case LoadDone:
		return styles.LoadedChar, styles.Green
	case LoadFailed:
		return styles.FailedChar, styles.Red
	default:
		return styles.LoadingChar, styles.Amber
	}
}

func (m Model) renderControls() string {
	weight := "-"
	if len(m.weights) > 0 {
		w := m.weights[m.weightIndex]
		weight = fmt.Sprintf("‹ %s (%s) ›", w.Label, w.Code)
	}

	important := "[ ] !important"
	if m.session.Important() {
		important = "[x] !important"
	}
	if m.focus == FocusImportant {
		important = styles.AccentStyle.Render(important)
	}

	lines := []string{
		m.renderField("Selector", FocusSelector, m.Selector.View()),
		m.renderField("Weight", FocusWeight, weight) + "   " +
			m.renderField("Size", FocusSize, m.Size.View()),
		m.renderField("Line height", FocusLineHeight, fmt.Sprintf("‹ %s ›", m.session.LineHeight())) + "   " +
			important,
	}
	return strings.Join(lines, "\n")
}

// renderFooter renders suggestions when nothing matches, else key hints
func (m Model) renderFooter() string {
	if suggestions := m.session.Suggestions(); len(suggestions) > 0 {
		return styles.DimStyle.Render("Did you mean: ") +
			styles.AccentStyle.Render(strings.Join(suggestions, ", "))
	}
	return m.Help.ShortHelpView(Keys.ShortHelp())
}
