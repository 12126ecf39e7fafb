package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/tui/styles"
)

// CartPane lists the aggregated cart lines and the running total
type CartPane struct {
	lines          []domain.LineItem
	total          decimal.Decimal
	cursor         int
	focused        bool
	currencySuffix string
	width          int
	height         int
}

// NewCartPane creates a new cart pane
func NewCartPane(currencySuffix string) CartPane {
	return CartPane{currencySuffix: currencySuffix}
}

// SetLines replaces the cart contents, keeping the cursor in range
func (c *CartPane) SetLines(lines []domain.LineItem, total decimal.Decimal) {
	c.lines = lines
	c.total = total
	if c.cursor >= len(lines) {
		c.cursor = max(len(lines)-1, 0)
	}
}

// SetSize updates the component dimensions
func (c *CartPane) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// SetFocused marks the pane as the keyboard target
func (c *CartPane) SetFocused(focused bool) {
	c.focused = focused
}

// MoveUp moves the cursor up one line
func (c *CartPane) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

// MoveDown moves the cursor down one line
func (c *CartPane) MoveDown() {
	if c.cursor < len(c.lines)-1 {
		c.cursor++
	}
}

// Selected returns the line under the cursor
func (c CartPane) Selected() (domain.LineItem, bool) {
	if len(c.lines) == 0 {
		return domain.LineItem{}, false
	}
	return c.lines[c.cursor], true
}

// View renders the component
func (c CartPane) View() string {
	border := styles.InactiveBorder
	if c.focused {
		border = styles.ActiveBorder
	}
	innerWidth := max(c.width-2, 1)
	innerHeight := max(c.height-2, 1)

	var rows []string
	rows = append(rows, styles.TitleStyle.Render(" Cart"))

	if len(c.lines) == 0 {
		rows = append(rows, styles.DimStyle.Render(" empty"))
	}
	for i, line := range c.lines {
		qty := fmt.Sprintf(" x%d", line.Quantity)
		price := line.Subtotal().StringFixed(2) + c.currencySuffix
		titleWidth := max(innerWidth-lipgloss.Width(qty)-lipgloss.Width(price)-4, 1)
		rows = append(rows, styles.RenderListRow([]styles.RowPart{
			{Text: styles.Pad(line.Title, titleWidth)},
			{Text: qty, Foreground: &styles.LightGray},
			{Text: " " + price, Foreground: &styles.Amber},
		}, c.focused && i == c.cursor, innerWidth))
	}

	// leave room for the total at the bottom
	if len(rows) > innerHeight-1 {
		rows = rows[:max(innerHeight-1, 1)]
	}
	for len(rows) < innerHeight-1 {
		rows = append(rows, "")
	}
	rows = append(rows, styles.SuccessStyle.Render(
		fmt.Sprintf(" Total: %s%s", c.total.StringFixed(2), c.currencySuffix)))

	return border.Width(innerWidth).Height(innerHeight).Render(strings.Join(rows, "\n"))
}
