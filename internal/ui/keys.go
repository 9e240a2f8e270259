package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Table
	Search    key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	JumpPage  key.Binding
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Pause     key.Binding
	ResetFeed key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear search"),
		),

		// Table
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h", "[", "pgup"),
			key.WithHelp("h/←", "Previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l", "]", "pgdown"),
			key.WithHelp("l/→", "Next page"),
		),
		JumpPage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Go to page"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("o/enter", "Open in viewer"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Pause/resume feed"),
		),
		ResetFeed: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reset server tables"),
		),

		// Search/input
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Keep search"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.PrevPage, k.NextPage, k.Open, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Pages
		{k.PrevPage, k.NextPage, k.JumpPage},
		// Rows
		{k.Up, k.Down, k.Open},
		// Search
		{k.Search, k.Confirm, k.Escape},
		// Feed
		{k.Pause, k.ResetFeed},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
