package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/bookcart/internal/catalog"
	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/tui/styles"
)

const (
	filterModalWidth   = 30
	filterModalVisible = 14
)

// filterRow is one selectable line of the modal, flattened out of its group
type filterRow struct {
	group  string
	filter domain.Filter
}

// FilterModal lists the catalog's filter options grouped by kind.
// The same token can show up under two groups; each row keeps its own kind.
type FilterModal struct {
	visible bool
	rows    []filterRow
	cursor  int
	offset  int
	active  domain.Filter
}

// NewFilterModal creates a new filter modal
func NewFilterModal() FilterModal {
	return FilterModal{}
}

// Show displays the modal for groups, with the cursor on active
func (m *FilterModal) Show(groups []catalog.FilterGroup, active domain.Filter) {
	m.visible = true
	m.active = active
	m.rows = m.rows[:0]
	m.cursor = 0
	m.offset = 0

	seenNone := false
	for _, g := range groups {
		for _, f := range g.Options {
			// every group leads with "All"; list it once
			if f.IsNone() {
				if seenNone {
					continue
				}
				seenNone = true
			}
			m.rows = append(m.rows, filterRow{group: g.Label, filter: f})
		}
	}

	for i, r := range m.rows {
		if r.filter == active {
			m.cursor = i
			break
		}
	}
	m.ensureVisible()
}

// Hide dismisses the modal
func (m *FilterModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m FilterModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection)
func (m *FilterModal) HandleKey(key string) (handled bool, selection *domain.Filter) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(len(m.rows)-1, 0)
	case "enter":
		m.visible = false
		if len(m.rows) == 0 {
			return true, nil
		}
		chosen := m.rows[m.cursor].filter
		return true, &chosen
	case "esc", "f":
		m.visible = false
		return true, nil
	}

	m.ensureVisible()
	return true, nil
}

func (m *FilterModal) ensureVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+filterModalVisible {
		m.offset = m.cursor - filterModalVisible + 1
	}
}

// View renders the filter modal
func (m FilterModal) View() string {
	if !m.visible {
		return ""
	}

	var lines []string
	end := min(m.offset+filterModalVisible, len(m.rows))
	prevGroup := ""
	if m.offset > 0 {
		prevGroup = m.rows[m.offset-1].group
	}

	for i := m.offset; i < end; i++ {
		r := m.rows[i]
		if r.group != prevGroup && !r.filter.IsNone() {
			lines = append(lines, styles.GroupHeaderStyle.Render(r.group))
			prevGroup = r.group
		}

		prefix := "  "
		if r.filter == m.active {
			prefix = "✓ "
		}
		text := styles.Pad(prefix+r.filter.Label(), filterModalWidth)

		switch {
		case i == m.cursor:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.White).
				Background(styles.SlateLight).
				Render(text))
		case r.filter == m.active:
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.Amber).Render(text))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.LightGray).Render(text))
		}
	}

	if len(m.rows) > filterModalVisible {
		lines = append(lines, styles.DimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.rows))))
	}

	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Filter") + "\n" + strings.Join(lines, "\n"))
}
