package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Accent     = lipgloss.Color("#4F8EF7")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Amber      = lipgloss.Color("#E5A00D")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Width(13)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				Width(13)
)

// Category bar
var (
	CategoryStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	ActiveCategoryStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(Accent).
				Padding(0, 1)
)

// Raw load indicator characters (unstyled)
const (
	PendingChar = "○"
	LoadingChar = "◌"
	LoadedChar  = "●"
	FailedChar  = "✗"
)

// SpinnerStyle colors the loading spinner
var SpinnerStyle = lipgloss.NewStyle().Foreground(Accent)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Accent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	HelpSepStyle = lipgloss.NewStyle().
			Foreground(SlateLight)
)

// Truncate truncates a string to the given display width with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// RenderListRow renders a complete list row with uniform background when selected.
// Each part is styled explicitly to avoid ANSI reset codes breaking the background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	bg := SlateLight
	defaultFg := LightGray
	selectedFg := White

	var b strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		if part.Foreground != nil {
			style = style.Foreground(*part.Foreground)
		} else if selected {
			style = style.Foreground(selectedFg)
		} else {
			style = style.Foreground(defaultFg)
		}
		if part.Bold {
			style = style.Bold(true)
		}
		if selected {
			style = style.Background(bg)
		}
		b.WriteString(style.Render(part.Text))
		visibleLen += lipgloss.Width(part.Text)
	}

	// Fill to width (minus left/right margin)
	if paddingNeeded := width - visibleLen - 2; paddingNeeded > 0 {
		padStyle := lipgloss.NewStyle()
		if selected {
			padStyle = padStyle.Background(bg)
		}
		b.WriteString(padStyle.Render(strings.Repeat(" ", paddingNeeded)))
	}

	marginStyle := lipgloss.NewStyle()
	if selected {
		marginStyle = marginStyle.Background(bg)
	}
	margin := marginStyle.Render(" ")

	return margin + b.String() + margin
}

// RowPart is a segment of a row with an optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
	Bold       bool
}
