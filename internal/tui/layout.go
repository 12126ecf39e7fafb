package tui

// columnLayout holds calculated widths and heights for the View
type columnLayout struct {
	catalogWidth    int
	sideWidth       int
	contentHeight   int
	inspectorHeight int
	cartHeight      int
}

// calculateLayout splits the screen into the catalog on the left and
// the inspector stacked over the cart on the right.
func (m Model) calculateLayout() columnLayout {
	l := columnLayout{contentHeight: max(m.Height-ChromeHeight, 3)}

	l.catalogWidth = max(m.Width*CatalogColumnPercent/100, MinColumnWidth)
	l.sideWidth = max(m.Width-l.catalogWidth, MinColumnWidth)

	l.inspectorHeight = l.contentHeight / 2
	l.cartHeight = l.contentHeight - l.inspectorHeight
	return l
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	l := m.calculateLayout()
	m.List.SetSize(l.catalogWidth, l.contentHeight)
	m.Inspector.SetSize(l.sideWidth, l.inspectorHeight)
	m.Cart.SetSize(l.sideWidth, l.cartHeight)
	m.SearchInput.Width = max(m.Width-4, 10)
}
