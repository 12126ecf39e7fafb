package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding
	Tab  key.Binding

	// Actions
	Quit      key.Binding
	Help      key.Binding
	Escape    key.Binding
	Filter    key.Binding
	Sort      key.Binding
	Search    key.Binding
	AddToCart key.Binding
	Remove    key.Binding
	Checkout  key.Binding
	Refresh   key.Binding

	// HardRefresh drops the cached catalog before reloading
	HardRefresh key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "catalog/cart"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find title"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to cart"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remove one"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "checkout"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload catalog"),
		),
		HardRefresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "clear cache and reload"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()

// HelpBindings returns the bindings listed on the help screen, in order
func HelpBindings() []key.Binding {
	k := Keys
	return []key.Binding{
		k.Up, k.Down, k.Home, k.End, k.Tab,
		k.Filter, k.Sort, k.Search,
		k.AddToCart, k.Remove, k.Checkout,
		k.Refresh, k.HardRefresh, k.Escape, k.Help, k.Quit,
	}
}
