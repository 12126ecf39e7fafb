package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/tui/styles"
)

const sortModalWidth = 24

// SortOptions returns the fields offered by the sort modal
func SortOptions() []domain.SortField {
	return []domain.SortField{domain.SortNone, domain.SortTitle, domain.SortPrice, domain.SortAuthor}
}

// SortModal is a small popup for choosing sort order
type SortModal struct {
	visible bool
	options []domain.SortField
	cursor  int
	active  domain.SortKey
}

// NewSortModal creates a new sort modal
func NewSortModal() SortModal {
	return SortModal{options: SortOptions()}
}

// Show displays the modal with the cursor on the active field
func (m *SortModal) Show(active domain.SortKey) {
	m.visible = true
	m.active = active
	if len(m.options) == 0 {
		m.options = SortOptions()
	}
	m.cursor = 0
	for i, opt := range m.options {
		if opt == active.Field {
			m.cursor = i
			break
		}
	}
}

// Hide dismisses the modal
func (m *SortModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is shown
func (m SortModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, selection).
// If selection is non-nil, the user confirmed a choice. Choosing the
// active field again flips its direction.
func (m *SortModal) HandleKey(key string) (handled bool, selection *domain.SortKey) {
	if !m.visible {
		return false, nil
	}

	switch key {
	case "j", "down":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
		return true, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return true, nil
	case "enter":
		chosen := domain.SortKey{Field: m.options[m.cursor], Direction: domain.SortAsc}
		if chosen.Field == domain.SortNone {
			chosen = domain.NoSort()
		} else if chosen.Field == m.active.Field && m.active.Direction == domain.SortAsc {
			chosen.Direction = domain.SortDesc
		}
		m.visible = false
		return true, &chosen
	case "esc", "s":
		m.visible = false
		return true, nil
	}

	return true, nil // consume all keys when visible
}

// View renders the sort modal
func (m SortModal) View() string {
	if !m.visible || len(m.options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range m.options {
		isActive := opt == m.active.Field

		prefix := "  "
		if isActive {
			prefix = "✓ "
		}
		var suffix string
		if isActive && opt != domain.SortNone {
			if m.active.Direction == domain.SortAsc {
				suffix = " ↑"
			} else {
				suffix = " ↓"
			}
		}
		text := styles.Pad(prefix+opt.String()+suffix, sortModalWidth)

		switch {
		case i == m.cursor:
			lines = append(lines, lipgloss.NewStyle().
				Foreground(styles.White).
				Background(styles.SlateLight).
				Render(text))
		case isActive:
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.Amber).Render(text))
		default:
			lines = append(lines, lipgloss.NewStyle().Foreground(styles.LightGray).Render(text))
		}
	}

	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Sort by") + "\n" + strings.Join(lines, "\n"))
}
