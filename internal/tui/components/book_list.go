package components

import (
	"fmt"
	"strings"

	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/tui/styles"
)

// BookList is the scrolling catalog view
type BookList struct {
	books          []domain.Book
	cursor         int
	offset         int
	focused        bool
	header         string
	currencySuffix string
	width          int
	height         int
}

// NewBookList creates a new book list
func NewBookList(currencySuffix string) BookList {
	return BookList{currencySuffix: currencySuffix, focused: true}
}

// SetBooks replaces the visible books. The cursor stays on the same
// title when it is still present, otherwise it is clamped.
func (l *BookList) SetBooks(books []domain.Book) {
	var current string
	if b, ok := l.Selected(); ok {
		current = b.Title
	}
	prev := l.cursor
	l.books = books
	l.cursor = 0
	if prev < len(books) && books[prev].Title == current {
		l.cursor = prev
	} else {
		for i, b := range books {
			if b.Title == current {
				l.cursor = i
				break
			}
		}
	}
	l.ensureVisible()
}

// SetHeader sets the line rendered in the top border
func (l *BookList) SetHeader(header string) {
	l.header = header
}

// SetSize updates the component dimensions
func (l *BookList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.ensureVisible()
}

// SetFocused marks the list as the keyboard target
func (l *BookList) SetFocused(focused bool) {
	l.focused = focused
}

// Len returns the number of visible books
func (l BookList) Len() int {
	return len(l.books)
}

// Cursor returns the cursor position
func (l BookList) Cursor() int {
	return l.cursor
}

// Selected returns the book under the cursor
func (l BookList) Selected() (domain.Book, bool) {
	if len(l.books) == 0 || l.cursor >= len(l.books) {
		return domain.Book{}, false
	}
	return l.books[l.cursor], true
}

// SelectTitle moves the cursor to the first book with title
func (l *BookList) SelectTitle(title string) bool {
	for i, b := range l.books {
		if b.Title == title {
			l.cursor = i
			l.ensureVisible()
			return true
		}
	}
	return false
}

// MoveUp moves the cursor up one row
func (l *BookList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
		l.ensureVisible()
	}
}

// MoveDown moves the cursor down one row
func (l *BookList) MoveDown() {
	if l.cursor < len(l.books)-1 {
		l.cursor++
		l.ensureVisible()
	}
}

// Home moves to the first row
func (l *BookList) Home() {
	l.cursor = 0
	l.ensureVisible()
}

// End moves to the last row
func (l *BookList) End() {
	l.cursor = max(len(l.books)-1, 0)
	l.ensureVisible()
}

func (l BookList) visibleRows() int {
	// border plus the header row
	return max(l.height-3, 1)
}

func (l *BookList) ensureVisible() {
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the component
func (l BookList) View() string {
	border := styles.InactiveBorder
	if l.focused {
		border = styles.ActiveBorder
	}
	innerWidth := max(l.width-2, 1)
	innerHeight := max(l.height-2, 1)

	rows := []string{styles.AccentStyle.Render(styles.Truncate(" "+l.header, innerWidth))}

	if len(l.books) == 0 {
		rows = append(rows, styles.DimStyle.Render(" No books match"))
	}

	priceWidth := 12
	categoryWidth := min(16, max(innerWidth/4, 6))
	titleWidth := max(innerWidth-priceWidth-categoryWidth-4, 4)

	end := min(l.offset+l.visibleRows(), len(l.books))
	for i := l.offset; i < end; i++ {
		b := l.books[i]
		price := fmt.Sprintf("%*s", priceWidth, b.FormattedPrice(l.currencySuffix))
		rows = append(rows, styles.RenderListRow([]styles.RowPart{
			{Text: styles.Pad(b.Title, titleWidth)},
			{Text: price, Foreground: &styles.Amber},
			{Text: " " + styles.Pad(b.Category, categoryWidth), Foreground: &styles.DimGray},
		}, l.focused && i == l.cursor, innerWidth))
	}

	return border.
		Width(innerWidth).
		Height(innerHeight).
		Render(strings.Join(rows, "\n"))
}
