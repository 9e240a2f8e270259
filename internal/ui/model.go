package ui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/scanboard/internal/results"
	"github.com/five82/scanboard/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Table     *results.Table
	Store     *state.Store
	ThemeName string
	// Endpoint is shown in the header.
	Endpoint string
	// ViewerURL resolves a row's viewer path to an absolute URL.
	ViewerURL func(path string) string
	// Open launches the system browser.
	Open func(url string) error
	// Reset asks the server to reset and replay the files table.
	Reset  func() error
	Logger *slog.Logger
	// RefreshEvery controls how often the connection snapshot is re-read.
	RefreshEvery time.Duration
	// Start is called with the program's Send function before the event
	// loop starts. Background producers must only call send after Start.
	Start func(send func(tea.Msg))
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	table        *results.Table
	store        *state.Store
	endpoint     string
	viewerURL    func(string) string
	open         func(string) error
	reset        func() error
	logger       *slog.Logger
	refreshEvery time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	showHelp bool

	// Search box
	search    textinput.Model
	searching bool

	// Data state
	view        results.View
	snapshot    state.Snapshot
	status      state.Status
	statusErr   error
	lastUpdated time.Time

	// Row selection within view.Rows
	selected int

	flash      string
	flashError bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	table := opts.Table
	if table == nil {
		table = results.NewTable()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	refresh := opts.RefreshEvery
	if refresh <= 0 {
		refresh = time.Second
	}
	viewerURL := opts.ViewerURL
	if viewerURL == nil {
		viewerURL = func(path string) string { return path }
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search file name or score"
	search.CharLimit = 256

	m := Model{
		ctx:          ctx,
		table:        table,
		store:        opts.Store,
		endpoint:     opts.Endpoint,
		viewerURL:    viewerURL,
		open:         opts.Open,
		reset:        opts.Reset,
		logger:       logger,
		refreshEvery: refresh,
		theme:        GetTheme(opts.ThemeName),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		search:       search,
		status:       state.StatusConnecting,
	}
	m.applyTheme()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.refreshEvery)}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = maxInt(10, msg.Width-12)
		m.ready = true
		return m, nil

	case TableEventMsg:
		return m.dispatch(msg.Event)

	case StatusMsg:
		// The error outlives the Disconnected that follows it.
		m.status = msg.Status
		switch {
		case msg.Err != nil:
			m.statusErr = msg.Err
		case msg.Status == state.StatusConnected:
			m.statusErr = nil
		}
		if m.store != nil {
			m.snapshot = m.store.Snapshot()
			m.lastUpdated = time.Now()
		}
		return m, nil

	case highlightMsg:
		m.refresh()
		return m, m.scheduleHighlight()

	case tickMsg:
		if m.ctx.Err() != nil {
			return m, tea.Quit
		}
		cmds := []tea.Cmd{tickCmd(m.refreshEvery)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case openResultMsg:
		if msg.err != nil {
			m.logger.Warn("open viewer failed", "url", msg.url, "error", msg.err)
			m.setFlash(fmt.Sprintf("open failed: %v", msg.err), true)
		} else {
			m.setFlash("opened "+msg.url, false)
		}
		return m, nil

	case resetResultMsg:
		if msg.err != nil {
			m.logger.Warn("reset request failed", "error", msg.err)
			m.setFlash(fmt.Sprintf("reset failed: %v", msg.err), true)
		} else {
			m.setFlash("reset requested", false)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// dispatch applies a table event and refreshes the rendered rows.
func (m Model) dispatch(ev results.Event) (tea.Model, tea.Cmd) {
	if !m.table.Dispatch(ev) {
		return m, nil
	}
	if _, ok := ev.(results.Reload); ok {
		m.search.SetValue("")
		m.search.Blur()
		m.searching = false
		m.selected = 0
	}
	m.refresh()
	if _, ok := ev.(results.AddRecord); ok {
		return m, m.scheduleHighlight()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	m.flash = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.applyTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Escape):
		if m.search.Value() == "" {
			return m, nil
		}
		m.search.SetValue("")
		return m.dispatch(results.SetQuery{Query: ""})

	case key.Matches(msg, m.keys.PrevPage):
		return m.dispatch(results.PrevPage{})

	case key.Matches(msg, m.keys.NextPage):
		return m.dispatch(results.NextPage{})

	case key.Matches(msg, m.keys.JumpPage):
		return m.dispatch(results.GotoPage{Page: int(msg.Runes[0] - '0')})

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.view.Rows)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		return m.openSelected()

	case key.Matches(msg, m.keys.Pause):
		paused := !m.table.Paused()
		m.logger.Info("feed pause toggled", "paused", paused)
		return m.dispatch(results.SetPaused{Paused: paused})

	case key.Matches(msg, m.keys.ResetFeed):
		if m.reset == nil {
			m.setFlash("reset unavailable", true)
			return m, nil
		}
		return m, resetCmd(m.reset)
	}

	return m, nil
}

// handleSearchKey edits the search box; the query is applied on every edit.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m.dispatch(results.SetQuery{Query: ""})

	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	next, dispatchCmd := m.dispatch(results.SetQuery{Query: m.search.Value()})
	return next, tea.Batch(cmd, dispatchCmd)
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if len(m.view.Rows) == 0 {
		return m, nil
	}
	row := m.view.Rows[m.selected]
	url := m.viewerURL(row.ViewerPath)
	if m.open == nil {
		m.setFlash(url, false)
		return m, nil
	}
	m.logger.Debug("opening viewer", "id", row.Record.ID, "url", url)
	return m, openCmd(m.open, url)
}

// refresh re-renders the table view and keeps the selection inside it.
func (m *Model) refresh() {
	m.view = m.table.View()
	if m.selected >= len(m.view.Rows) {
		m.selected = maxInt(0, len(m.view.Rows)-1)
	}
}

// scheduleHighlight arranges a redraw for when the newest highlight ends.
func (m Model) scheduleHighlight() tea.Cmd {
	expiry := m.table.NextHighlightExpiry()
	if expiry.IsZero() {
		return nil
	}
	return highlightCmd(time.Until(expiry))
}

func (m *Model) setFlash(text string, isError bool) {
	m.flash = text
	m.flashError = isError
}

func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.search.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if opts.Start != nil {
		opts.Start(p.Send)
	}

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancelled by signal or parent context.
		return nil
	}
	return err
}
