package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/scanboard/internal/results"
	"github.com/five82/scanboard/internal/state"
)

// TableEventMsg carries one event from the files channel into the program.
// Delivering events as messages keeps every table mutation on the bubbletea
// event loop.
type TableEventMsg struct {
	Event results.Event
}

// StatusMsg reports a files channel status transition.
type StatusMsg struct {
	Status state.Status
	Err    error
}

type tickMsg time.Time

type snapshotMsg state.Snapshot

// highlightMsg fires when the newest row highlight expires.
type highlightMsg struct{}

type openResultMsg struct {
	url string
	err error
}

type resetResultMsg struct {
	err error
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func highlightCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return highlightMsg{}
	})
}

func openCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return openResultMsg{url: url, err: open(url)}
	}
}

func resetCmd(reset func() error) tea.Cmd {
	return func() tea.Msg {
		return resetResultMsg{err: reset()}
	}
}
