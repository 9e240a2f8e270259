// Package ui is the bubbletea terminal interface for the live results table.
//
// # Overview
//
// The Model owns a *results.Table and renders it with lipgloss. It never
// talks to the network: feed events and status changes are pushed into the
// program by the app package, and the only outbound actions (open a viewer
// URL, request a server reset) are functions passed in through Options.
//
// # Message Flow
//
//	channel goroutine ── send(TableEventMsg) ──┐
//	channel goroutine ── send(StatusMsg) ──────┤
//	tea.Tick ─────────── tickMsg ──────────────┤
//	                                           v
//	                                   ┌───────────────┐
//	                                   │ Model.Update  │──> Table.Dispatch
//	                                   └───────┬───────┘
//	                                           │ Cmds
//	              ┌────────────────────────────┼─────────────────────────┐
//	              v                            v                         v
//	    fetchSnapshotCmd              highlightCmd                 openCmd / resetCmd
//	    (snapshotMsg)                 (highlightMsg)               (openResultMsg /
//	                                                                resetResultMsg)
//
// Background goroutines only call the program's Send function, which
// Options.Start receives before the event loop starts. Every table mutation
// therefore happens inside Update and the Table needs no lock.
//
// # Lifecycle
//
// Run builds the Model, calls Options.Start with p.Send and blocks in the
// alt screen until the user quits or the context is cancelled. A cancelled
// context ends Run with a nil error. Init starts the refresh tick, which
// re-reads the state.Store snapshot every RefreshEvery (one second by
// default) and quits once the context is done.
//
// A Reload event clears the search box and the selection along with the
// table. An AddRecord schedules a one-shot redraw for when its highlight
// ends, so the highlight disappears without further input.
//
// # Layout
//
//	┌ header: ● status  endpoint  Records  Scanned/Pending/Graded  PAUSED ┐
//	│ connection problem line, only while one is relevant                 │
//	│ search line: "/ to search", the live input, or the active query     │
//	│ results box: # File Score Processed, titled with page or match count│
//	│ page controls « 1 2 3 », or the match count while searching         │
//	└ command bar: key hints, theme name, last action result              ┘
//
// The status indicator keeps showing the error that caused a drop through
// the Disconnected that follows it, until the next Connected. After the
// channel gives up the header shows the final error instead.
//
// # Key Bindings
//
//   - /: search; the query is applied on every keystroke
//   - enter: keep the query, esc: clear it
//   - h/l, [/], ←/→: previous/next page; 1-9 jump to a page
//   - j/k: move the selection; o/enter: open the document viewer
//   - Space: pause or resume incoming records
//   - R: ask the server to reset and replay the table
//   - T: cycle theme, ?: help, q or ctrl+c: quit
//
// # Error Handling
//
// Failures of user actions are reported in the command bar and logged at
// warn; they never end the program. Channel errors arrive as StatusMsg and
// are only displayed.
//
// # Testing Considerations
//
// Tests build a Model with New, send a tea.WindowSizeMsg, then drive Update
// with key and table messages and assert on the Model fields and the
// rendered View string. The Table is given a fixed clock with
// results.WithClock, and Open and Reset are replaced by recording funcs, so
// no terminal or network is needed.
package ui
