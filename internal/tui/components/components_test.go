package components

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookcart/internal/catalog"
	"github.com/mmcdole/bookcart/internal/domain"
)

func TestSortModal_HandleKey(t *testing.T) {
	m := NewSortModal()

	handled, sel := m.HandleKey("enter")
	assert.False(t, handled, "hidden modal ignores keys")
	assert.Nil(t, sel)

	m.Show(domain.NoSort())
	handled, sel = m.HandleKey("j")
	assert.True(t, handled)
	assert.Nil(t, sel)

	_, sel = m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, domain.SortKey{Field: domain.SortTitle, Direction: domain.SortAsc}, *sel)
	assert.False(t, m.IsVisible())

	m.Show(*sel)
	_, sel = m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, domain.SortDesc, sel.Direction)

	m.Show(*sel)
	_, sel = m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, domain.SortAsc, sel.Direction, "descending flips back")

	m.Show(*sel)
	_, sel = m.HandleKey("esc")
	assert.Nil(t, sel)
	assert.False(t, m.IsVisible())
}

func TestSortModal_NoneClearsDirection(t *testing.T) {
	m := NewSortModal()
	m.Show(domain.SortKey{Field: domain.SortPrice, Direction: domain.SortDesc})

	m.HandleKey("k")
	m.HandleKey("k")
	_, sel := m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, domain.NoSort(), *sel)
}

func TestFilterModal_KeepsKindPerRow(t *testing.T) {
	// "Sam" is both a category and an author
	books := []domain.Book{
		{Title: "A", Author: "Sam", Category: "Sam", Price: decimal.NewFromInt(10)},
	}
	groups := catalog.FilterOptions(catalog.IndexCatalog(books), domain.DefaultPriceBands)

	m := NewFilterModal()
	m.Show(groups, domain.NoFilter())
	require.True(t, m.IsVisible())

	// All, Sam (category), six bands, Sam (author)
	require.Len(t, m.rows, 9)

	m.HandleKey("G")
	_, sel := m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, domain.Filter{Kind: domain.FilterAuthor, Value: "Sam"}, *sel)

	m.Show(groups, *sel)
	assert.Equal(t, 8, m.cursor, "cursor starts on the active filter")

	m.HandleKey("g")
	m.HandleKey("j")
	_, sel = m.HandleKey("enter")
	require.NotNil(t, sel)
	assert.Equal(t, domain.Filter{Kind: domain.FilterCategory, Value: "Sam"}, *sel)
}

func TestFilterModal_View(t *testing.T) {
	groups := catalog.FilterOptions(catalog.IndexCatalog(nil), domain.DefaultPriceBands)
	m := NewFilterModal()
	assert.Empty(t, m.View())

	m.Show(groups, domain.NoFilter())
	out := m.View()
	assert.Contains(t, out, "Filter")
	assert.Contains(t, out, "Prices")
	assert.Contains(t, out, "0-200")
}

func TestBookList_Navigation(t *testing.T) {
	l := NewBookList("kr")
	l.SetSize(60, 10)
	l.SetBooks([]domain.Book{{Title: "A"}, {Title: "B"}, {Title: "C"}})

	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 2, l.Cursor())

	// cursor follows the selected title across a re-order
	l.SetBooks([]domain.Book{{Title: "C"}, {Title: "A"}})
	b, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "C", b.Title)

	l.SetBooks(nil)
	_, ok = l.Selected()
	assert.False(t, ok)
	assert.Contains(t, l.View(), "No books match")
}

func TestCartPane_SelectionClamped(t *testing.T) {
	c := NewCartPane("kr")
	c.SetSize(40, 10)
	c.SetLines([]domain.LineItem{
		{Title: "A", Price: decimal.NewFromInt(150), Quantity: 2},
		{Title: "B", Price: decimal.NewFromInt(550), Quantity: 1},
	}, decimal.NewFromInt(850))

	c.MoveDown()
	line, ok := c.Selected()
	require.True(t, ok)
	assert.Equal(t, "B", line.Title)
	assert.Contains(t, c.View(), "850.00kr")

	c.SetLines(nil, decimal.Zero)
	_, ok = c.Selected()
	assert.False(t, ok)
}
