package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Amber      = lipgloss.Color("#D97706")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Amber)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Amber).
			Background(SlateDark).
			Padding(0, 1)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)

	GroupHeaderStyle = lipgloss.NewStyle().
				Foreground(LightGray).
				Underline(true)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(Amber)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Amber).
				Bold(true)
)

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Pad pads or cuts a string to exactly width cells
func Pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// RowPart is a piece of a list row with an optional foreground color
type RowPart struct {
	Text       string
	Foreground *lipgloss.Color
}

// RenderListRow renders a row with a uniform background when selected.
// Each part is styled on its own so ANSI resets don't break the highlight.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	var b strings.Builder
	visible := 0

	for _, part := range parts {
		style := lipgloss.NewStyle()
		switch {
		case part.Foreground != nil:
			style = style.Foreground(*part.Foreground)
		case selected:
			style = style.Foreground(White)
		default:
			style = style.Foreground(LightGray)
		}
		if selected {
			style = style.Background(SlateLight)
		}
		b.WriteString(style.Render(part.Text))
		visible += lipgloss.Width(part.Text)
	}

	fill := lipgloss.NewStyle()
	if selected {
		fill = fill.Background(SlateLight)
	}
	if pad := width - visible - 2; pad > 0 {
		b.WriteString(fill.Render(strings.Repeat(" ", pad)))
	}

	margin := fill.Render(" ")
	return margin + b.String() + margin
}
