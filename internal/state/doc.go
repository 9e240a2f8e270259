// Package state provides the thread-safe connection snapshot shared between
// the channel goroutines and the UI.
//
// # Overview
//
// The files channel runner records status transitions, the current
// connection id, reloads and consecutive failed attempts. The progress
// watcher stores the latest scan counters. Readers take a copy through
// Snapshot and never hold a reference into the Store.
//
// The results table itself is not kept here: it is owned by whichever
// goroutine applies events to it (the bubbletea loop in the TUI, the tail
// goroutine in headless mode).
//
// # Architecture
//
//	┌───────────────┐   SetStatus / SetConnection   ┌─────────────┐
//	│ app.Channel   │ ─────────────────────────────>│             │
//	│ (files route) │   SetFailures / CountReload   │             │
//	└───────────────┘   GiveUp                      │             │
//	                                                │ state.Store │
//	┌───────────────┐   SetProgress                 │  (RWMutex)  │
//	│ app.Progress  │ ─────────────────────────────>│             │
//	│ Watcher       │   ProgressFailed              │             │
//	└───────────────┘                               └──────┬──────┘
//	                                                       │ Snapshot()
//	                                                       v
//	                                       ┌─────────────────────────────┐
//	                                       │ ui.Model (tick, StatusMsg)  │
//	                                       └─────────────────────────────┘
//
// Headless tail mode observes status through the channel's StatusFunc
// callback and does not read a Store.
//
// # Core Types
//
// Status is the connection state of the files channel:
//
//	StatusConnecting    dialing, before the handshake completes
//	StatusConnected     handshake done, frames flowing
//	StatusDisconnected  connection closed, waiting to retry
//	StatusError         dial or read failed
//
// Status.Class maps a status onto the three presentation classes used by
// the header: "connected", "error" and "disconnected". Connecting shares the
// "disconnected" class.
//
// Snapshot is a plain value holding the status, connection id, last error,
// time of the last change, reload count, consecutive failures, whether the
// runner gave up, and the latest Progress counters with their own failure
// count. Snapshot.IsOffline reports two or more consecutive failures, which
// is when the UI starts describing the outage.
//
// # Update Semantics
//
// SetStatus keeps a non-nil error as LastError. A nil error leaves the
// previous error in place unless the new status is Connected, so the error
// that caused a drop is still visible during the Disconnected that follows
// it.
//
// SetConnection is the only way a successful handshake is recorded. It sets
// Connected, stores the id, and clears LastError, ConsecutiveFailures and
// GaveUp in one step.
//
// GiveUp is terminal for the runner: it forces Disconnected, sets GaveUp and
// records the final error. A later SetConnection clears it again, which only
// happens when a new runner is started.
//
// SetProgress replaces the counters and resets ProgressFailures.
// ProgressFailed leaves the last counters untouched and increments the
// failure count, so the header keeps showing stale numbers rather than
// blanking.
//
// # Concurrency Model
//
// All writers take the write lock for the duration of a single field update.
// Snapshot takes the read lock and returns a copy, so callers may read it
// without further synchronization. The zero Store is ready to use.
//
// # Defensive Copying
//
// Snapshot wraps LastError in a fresh error value. errors.Is and errors.As
// still see the original through the wrap, but a caller holding a Snapshot
// never shares the error value with the Store.
//
// # Usage Example
//
//	var store state.Store
//	store.SetStatus(state.StatusConnecting, nil)
//	store.SetConnection(conn.ID())
//
//	snap := store.Snapshot()
//	if snap.IsOffline() {
//	    fmt.Println("offline:", snap.LastError)
//	}
//
// # Error Propagation
//
// The Store never returns errors. Channel errors are values stored in the
// snapshot for display; the runner itself decides whether to retry or give
// up.
//
// # Testing Considerations
//
// Tests build a zero Store, apply a sequence of writes and assert on the
// resulting Snapshot. No clock is injected; assertions on LastChange only
// check that it moved.
package state
