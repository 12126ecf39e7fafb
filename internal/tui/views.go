package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/bookcart/internal/tui/styles"
)

// View renders the whole screen
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.ShowHelp {
		return m.renderHelp()
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.List.View(),
		lipgloss.JoinVertical(lipgloss.Left, m.Inspector.View(), m.Cart.View()),
	)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderSearchLine(),
		m.renderFooter(),
	)

	if m.SortModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.SortModal.View())
	}

	if m.FilterModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.FilterModal.View())
	}

	return view
}

func (m Model) renderSearchLine() string {
	if m.Searching {
		return m.SearchInput.View()
	}
	if m.Session.Query != "" {
		return styles.FilterPromptStyle.Render("/ ") + styles.FilterStyle.Render(m.Session.Query)
	}
	return ""
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	switch {
	case m.Loading:
		left = styles.DimStyle.Render("Loading catalog from " + m.sourceLabel() + "...")
	case m.StatusMsg != "" && m.StatusIsErr:
		left = styles.ErrorStyle.Render(m.StatusMsg)
	case m.StatusMsg != "":
		left = styles.DimStyle.Render(m.StatusMsg)
	}

	right := hint("a", "add") + "  " + hint("f", "filter") + "  " +
		hint("s", "sort") + "  " + hint("?", "help")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(m.Width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) sourceLabel() string {
	if m.Session.Source != "" {
		return m.Session.Source
	}
	if m.location != "" {
		return m.location
	}
	return "source"
}

func hint(k, desc string) string {
	return styles.AccentStyle.Render(k) + styles.DimStyle.Render(" "+desc)
}

// renderHelp renders the key binding overlay
func (m Model) renderHelp() string {
	var lines []string
	for _, b := range HelpBindings() {
		h := b.Help()
		lines = append(lines,
			styles.AccentStyle.Render(styles.Pad(h.Key, 8))+styles.DimStyle.Render(h.Desc))
	}

	box := styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Keys") + "\n" + strings.Join(lines, "\n"))

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
}
