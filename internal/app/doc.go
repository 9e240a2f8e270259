// Package app provides the orchestration layer for scanboard.
//
// # Overview
//
// This package wires together configuration, logging, the feed client, the
// results table and the UI. It is the composition root for every command.
//
// # Commands
//
//   - Run: the bubbletea TUI (scanboard, scanboard watch)
//   - Tail: headless mode printing status changes and the table to a writer
//   - Reset: one-shot {"message":"reset"} request on the files channel
//   - Logs: last N entries of the client log file
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read scanboard config (+ .env)
//	       ├─────> logging.New()        JSON logs to the log file
//	       ├─────> feed.NewClient()     Websocket client
//	       ├─────> results.NewTable()   Table owned by the UI loop
//	       ├─────> NewChannel()         Files channel state machine
//	       ├─────> NewProgressWatcher() Scan counters
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Channel loop:
//	┌─────────────────────────────────────────┐
//	│ Connecting ─> Connected ─> Disconnected │
//	│      ^                         │        │
//	│      └──── wait delay, Reload <┘        │
//	└─────────────────────────────────────────┘
//
// Frames are decoded into results.Event values and handed to the sink in
// arrival order. In the TUI the sink wraps them as tea messages so the table
// is only touched from the bubbletea event loop.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Log file cannot be opened
//   - Server address cannot be parsed
//
// Recoverable errors (recorded in state.Store, channel keeps going):
//   - Dial failures and dropped connections
//   - Malformed frames, which are logged and skipped
//
// With ReconnectPolicy.MaxAttempts set the channel stops after that many
// consecutive failed attempts and Run's channel goroutine logs ErrGaveUp.
// Tail returns the ErrGaveUp error to the command instead.
//
// # Reconnect Lifecycle
//
// Each iteration of Channel.Run is one session:
//
//  1. Status Connecting, then DialFiles
//  2. On dial failure: Error with the dial error, then Disconnected
//  3. On success: SetConnection with the stream id, frames decoded and
//     passed to the sink until the read fails or the stream closes
//  4. A normal close goes straight to Disconnected; any other read error
//     reports Error first
//  5. Wait ReconnectPolicy.Delay (3s by default), emit results.Reload,
//     count the reload, and start over
//
// A successful handshake resets the consecutive failure count. A cancelled
// context ends Run with nil at any step, including during the wait.
//
// The progress watcher follows the same dial, read and wait loop on the
// progress route but never reloads anything. It returns at once when the
// progress path is disabled. A malformed progress frame is counted with
// ProgressFailed and the last counters stay on screen.
//
// # Concurrency Model
//
// Run starts the channel and the progress watcher in their own goroutines
// from ui.Options.Start, after the program's Send function exists. The
// channel goroutine is the only reader of its stream. RequestReset is
// called from the UI goroutine and writes through the active stream, which
// Channel guards with a mutex and the feed.Conn write lock.
//
// In Tail the channel goroutine is the only goroutine: the tailPrinter owns
// the table and prints from the sink and status callbacks directly.
//
// # Testing Considerations
//
// Channel and ProgressWatcher take a feed.Subscriber, so tests use an
// in-memory fakeSubscriber that hands out scripted fakeStreams. The wait
// between sessions goes through an injectable after function, so reconnect
// tests never sleep. Tail's output is tested by feeding events and status
// changes to a tailPrinter and checking the written text.
package app
