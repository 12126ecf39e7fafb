package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/search"
	"github.com/mmcdole/bookcart/internal/session"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.ShowHelp = false
		}
		return m, nil
	}

	// Route to active modal if any
	if handled, newModel, cmd := m.routeToModal(msg); handled {
		return newModel, cmd
	}

	if m.Searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.ShowHelp = true
		return m, nil

	case key.Matches(msg, Keys.Escape):
		// clear the innermost narrowing first
		switch {
		case m.Session.Query != "":
			m.SearchInput.SetValue("")
			m.dispatch(session.SearchChanged{Query: ""})
		case !m.Session.Filter.IsNone():
			m.dispatch(session.FilterChanged{Filter: domain.NoFilter()})
		}
		return m, nil

	case key.Matches(msg, Keys.Tab):
		if m.Focus == PaneCatalog {
			m.setFocus(PaneCart)
		} else {
			m.setFocus(PaneCatalog)
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		m.FilterModal.Show(session.FilterOptions(m.Session), m.Session.Filter)
		return m, nil

	case key.Matches(msg, Keys.Sort):
		m.SortModal.Show(m.Session.Sort)
		return m, nil

	case key.Matches(msg, Keys.Search):
		m.Searching = true
		m.SearchInput.SetValue(m.Session.Query)
		m.SearchInput.CursorEnd()
		return m, m.SearchInput.Focus()

	case key.Matches(msg, Keys.Refresh):
		return m.reload()

	case key.Matches(msg, Keys.HardRefresh):
		m.Loader.Invalidate()
		m.logger.Info("catalog cache cleared", "source", m.Session.Source)
		return m.reload()

	case key.Matches(msg, Keys.Checkout):
		return m.checkout()

	case key.Matches(msg, Keys.AddToCart):
		if b, ok := m.List.Selected(); ok {
			m.dispatch(session.AddToCart{Title: b.Title})
			if m.Session.Err != nil {
				m.setError(ErrMsg{Err: m.Session.Err, Context: "adding to cart"})
				return m, nil
			}
			return m.status(fmt.Sprintf("Added %q to cart", b.Title))
		}
		return m, nil

	case key.Matches(msg, Keys.Remove):
		return m.removeSelected()
	}

	if m.Focus == PaneCart {
		switch {
		case key.Matches(msg, Keys.Up):
			m.Cart.MoveUp()
		case key.Matches(msg, Keys.Down):
			m.Cart.MoveDown()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, Keys.Up):
		m.List.MoveUp()
	case key.Matches(msg, Keys.Down):
		m.List.MoveDown()
	case key.Matches(msg, Keys.Home):
		m.List.Home()
	case key.Matches(msg, Keys.End):
		m.List.End()
	default:
		return m, nil
	}
	m.syncInspector()
	return m, nil
}

// routeToModal forwards keys to whichever modal is open
func (m Model) routeToModal(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.SortModal.IsVisible() {
		_, sel := m.SortModal.HandleKey(msg.String())
		if sel != nil {
			m.dispatch(session.SortChanged{Key: *sel})
		}
		return true, m, nil
	}

	if m.FilterModal.IsVisible() {
		_, sel := m.FilterModal.HandleKey(msg.String())
		if sel != nil {
			m.dispatch(session.FilterChanged{Filter: *sel})
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Searching = false
		m.SearchInput.Blur()
		m.SearchInput.SetValue("")
		m.dispatch(session.SearchChanged{Query: ""})
		return m, nil
	case "enter":
		// keep the narrowed list and jump to the closest title
		m.Searching = false
		m.SearchInput.Blur()
		if b, ok := search.Lookup(m.Session.View, m.SearchInput.Value()); ok {
			m.List.SelectTitle(b.Title)
			m.syncInspector()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.SearchInput, cmd = m.SearchInput.Update(msg)
	if q := m.SearchInput.Value(); q != m.Session.Query {
		m.dispatch(session.SearchChanged{Query: q})
	}
	return m, cmd
}

func (m Model) removeSelected() (tea.Model, tea.Cmd) {
	var title string
	if m.Focus == PaneCart {
		line, ok := m.Cart.Selected()
		if !ok {
			return m, nil
		}
		title = line.Title
	} else {
		b, ok := m.List.Selected()
		if !ok {
			return m, nil
		}
		title = b.Title
	}

	before := m.Session.Cart.Len()
	m.dispatch(session.RemoveFromCart{Title: title})
	if m.Session.Cart.Len() == before {
		return m.status(fmt.Sprintf("%q is not in the cart", title))
	}
	return m.status(fmt.Sprintf("Removed one %q", title))
}

func (m Model) checkout() (tea.Model, tea.Cmd) {
	m.dispatch(session.Checkout{At: m.now()})
	if m.Session.Err != nil {
		m.setError(ErrMsg{Err: m.Session.Err, Context: "checkout"})
		return m, nil
	}
	r := m.Session.LastReceipt
	m.logger.Info("order placed", "receipt", r.ID, "items", r.Count, "total", r.Total.String())
	return m.status(fmt.Sprintf("Order placed: %d books, %s%s",
		r.Count, r.Total.StringFixed(2), m.currencySuffix))
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.dispatch(session.CatalogRequested{})
	m.Loading = true
	m.setStatus("", false)
	return m, LoadCatalogCmd(m.Loader, m.Session.LoadSeq, m.loadTimeout)
}

func (m Model) status(text string) (tea.Model, tea.Cmd) {
	return m, m.setStatus(text, false)
}
