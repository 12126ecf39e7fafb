package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookcart/internal/domain"
	"github.com/mmcdole/bookcart/internal/session"
	"github.com/mmcdole/bookcart/internal/tui/components"
	"github.com/mmcdole/bookcart/internal/tui/styles"
)

// Pane is the part of the screen receiving navigation keys
type Pane int

const (
	PaneCatalog Pane = iota
	PaneCart
)

// Layout proportions
const (
	CatalogColumnPercent = 60
	MinColumnWidth       = 20

	// search line + footer
	ChromeHeight = 2
)

const statusTimeout = 3 * time.Second

// Options configures a new Model
type Options struct {
	// Location names the catalog source while the first load runs
	Location       string
	CurrencySuffix string
	// Filter is a raw filter token applied once the first catalog arrives
	Filter      string
	Sort        domain.SortKey
	LoadTimeout time.Duration
	Logger      *slog.Logger
	Now         func() time.Time
}

// Model is the main Bubble Tea model for the application
type Model struct {
	Ready    bool
	ShowHelp bool
	Focus    Pane

	// Session is the single source of truth; the components only render it
	Session session.State
	Loader  CatalogLoader

	// UI Components
	List        components.BookList
	Inspector   components.Inspector
	Cart        components.CartPane
	SortModal   components.SortModal
	FilterModal components.FilterModal
	SearchInput textinput.Model
	Searching   bool

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	Loading     bool

	// statusSeq numbers the status line so an old clear tick can't wipe a newer message
	statusSeq uint64

	location       string
	currencySuffix string
	pendingFilter  string
	loadTimeout    time.Duration
	logger         *slog.Logger
	now            func() time.Time
}

// NewModel creates a new application model and issues the first catalog
// request. The load itself starts from Init.
func NewModel(loader CatalogLoader, state session.State, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "type to find a title..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	m := Model{
		Session:        state,
		Loader:         loader,
		List:           components.NewBookList(opts.CurrencySuffix),
		Inspector:      components.NewInspector(opts.CurrencySuffix),
		Cart:           components.NewCartPane(opts.CurrencySuffix),
		SortModal:      components.NewSortModal(),
		FilterModal:    components.NewFilterModal(),
		SearchInput:    ti,
		location:       opts.Location,
		currencySuffix: opts.CurrencySuffix,
		pendingFilter:  opts.Filter,
		loadTimeout:    opts.LoadTimeout,
		logger:         logger,
		now:            now,
	}

	if opts.Sort != domain.NoSort() {
		m.dispatch(session.SortChanged{Key: opts.Sort})
	}
	m.dispatch(session.CatalogRequested{})
	m.Loading = true
	return m
}

// Init starts the load requested by NewModel. The stored snapshot, if
// any, fills the view until the load answers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		CachedCatalogCmd(m.Loader, m.Session.LoadSeq),
		LoadCatalogCmd(m.Loader, m.Session.LoadSeq, m.loadTimeout),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case CachedCatalogMsg:
		return m.handleCachedCatalog(msg)

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	return m, nil
}

// handleCachedCatalog shows the stored snapshot while the first load is
// still out. It never replaces a catalog that is already on screen.
func (m Model) handleCachedCatalog(msg CachedCatalogMsg) (tea.Model, tea.Cmd) {
	if !msg.Found || msg.Seq != m.Session.LoadSeq || m.Session.Loaded {
		return m, nil
	}
	m.logger.Debug("showing cached catalog", "count", len(msg.Snapshot.Books), "source", msg.Snapshot.Source)

	m.dispatch(session.CatalogLoaded{Seq: msg.Seq, Snapshot: msg.Snapshot})
	if m.pendingFilter != "" {
		m.dispatch(session.FilterTokenChanged{Token: m.pendingFilter})
		m.pendingFilter = ""
	}
	return m, nil
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.Session.LoadSeq {
		m.logger.Debug("dropping stale catalog load", "seq", msg.Seq, "current", m.Session.LoadSeq)
		return m, nil
	}
	m.Loading = false

	m.dispatch(session.CatalogLoaded{Seq: msg.Seq, Snapshot: msg.Snapshot, Err: msg.Err})
	if m.Session.Err != nil {
		m.setError(ErrMsg{Err: m.Session.Err, Context: "loading catalog"})
		return m, nil
	}

	if m.pendingFilter != "" {
		m.dispatch(session.FilterTokenChanged{Token: m.pendingFilter})
		m.pendingFilter = ""
	}

	if m.Session.FromCache {
		return m, m.setStatus("Catalog source unreachable, showing cached copy", true)
	}
	return m, m.setStatus(fmt.Sprintf("Loaded %d books", len(m.Session.Books)), false)
}

// dispatch applies ev to the session and re-projects it onto the components
func (m *Model) dispatch(ev session.Event) {
	m.Session = session.Apply(m.Session, ev)
	m.syncComponents()
}

func (m *Model) syncComponents() {
	s := m.Session
	m.List.SetBooks(s.View)
	m.List.SetHeader(fmt.Sprintf("%d of %d books · filter: %s · sort: %s",
		len(s.View), len(s.Books), s.Filter.Label(), s.Sort.Label()))

	lines, total := session.CartView(s)
	m.Cart.SetLines(lines, total)
	m.syncInspector()
}

func (m *Model) syncInspector() {
	if b, ok := m.List.Selected(); ok {
		m.Inspector.SetBook(&b)
		return
	}
	m.Inspector.SetBook(nil)
}

func (m *Model) setFocus(p Pane) {
	m.Focus = p
	m.List.SetFocused(p == PaneCatalog)
	m.Cart.SetFocused(p == PaneCart)
}

// setStatus replaces the footer status. Plain messages clear themselves
// after statusTimeout; errors stay until something replaces them.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	if isErr || text == "" {
		return nil
	}
	return ClearStatusCmd(m.statusSeq, statusTimeout)
}

func (m *Model) setError(e ErrMsg) {
	m.logger.Warn("tui error", "context", e.Context, "error", e.Err)
	m.setStatus(e.Error(), true)
}
