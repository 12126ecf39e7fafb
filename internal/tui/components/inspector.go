package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/tui/styles"
)

// Inspector displays the details of the selected book
type Inspector struct {
	book           *domain.Book
	currencySuffix string
	width          int
	height         int
}

// NewInspector creates a new inspector component
func NewInspector(currencySuffix string) Inspector {
	return Inspector{currencySuffix: currencySuffix}
}

// SetBook sets the book to display; nil clears the pane
func (i *Inspector) SetBook(book *domain.Book) {
	i.book = book
}

// SetSize updates the component dimensions
func (i *Inspector) SetSize(width, height int) {
	i.width = width
	i.height = height
}

// View renders the component
func (i Inspector) View() string {
	// border takes one cell on each side, padding one more
	contentWidth := max(i.width-4, 1)
	contentHeight := max(i.height-2, 1)

	var lines []string
	if i.book == nil {
		lines = append(lines, styles.DimStyle.Render("No book selected"))
	} else {
		b := i.book
		lines = append(lines,
			styles.TitleStyle.Render(styles.Truncate(b.Title, contentWidth)),
			styles.SubtitleStyle.Render(styles.Truncate(b.Author, contentWidth)),
			"",
			field("Category", b.Category, contentWidth),
			field("Price", b.FormattedPrice(i.currencySuffix), contentWidth),
		)
		if b.ImagePath != "" {
			lines = append(lines, field("Cover", b.ImagePath, contentWidth))
		}
		if b.Description != "" {
			lines = append(lines, "")
			wrapped := lipgloss.NewStyle().Width(contentWidth).Render(b.Description)
			lines = append(lines, strings.Split(wrapped, "\n")...)
		}
	}

	if len(lines) > contentHeight {
		lines = lines[:contentHeight]
	}

	return styles.InactiveBorder.
		Width(max(i.width-2, 1)).
		Height(contentHeight).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func field(label, value string, width int) string {
	prefix := label + ": "
	return styles.DimStyle.Render(prefix) +
		styles.Truncate(value, width-len(prefix))
}
