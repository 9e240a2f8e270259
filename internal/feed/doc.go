// Package feed speaks the scanning server's push protocol.
//
// # Overview
//
// Two websocket routes are used. The files channel (default /ws/files/)
// carries table frames; the progress channel (default /ws/scan/) carries
// scan counters. Client dials both with gorilla/websocket and hands back a
// Stream per connection. The connection lifecycle (status, reload,
// reconnect) lives in the app package; this package only handles dialing
// and the frame codecs.
//
// # Wire Formats
//
// Files channel, server to client:
//
//	{"action":"add_file","file_data":{"id":"file_12","file_name":"cv.pdf","score":"85%",
//	 "processed_date":"2024-05-01T10:00:00Z","processed_by":"grader-1"}}
//	{"action":"reset_table"}
//
// Files channel, client to server:
//
//	{"message":"reset"}
//
// which makes the server clear every client table and replay its records.
//
// Progress channel, server to client, once a second:
//
//	{"counter":12,"pending":3,"graded":9,"message":"..."}
//
// Decode turns a files frame into a results.Event. Scores and ids may be
// JSON strings or numbers; numbers keep their JSON text through LooseString.
// Timestamps accept RFC 3339 with or without a zone; anything else leaves
// ProcessedAt zero. DecodeProgress parses a progress frame.
//
// # Connection Lifecycle
//
//	NewClient(server, paths)
//	      │
//	      ├── DialFiles(ctx)    ──> Stream ── ReadMessage loop ── Close
//	      │                                └─ WriteJSON(NewResetRequest())
//	      └── DialProgress(ctx) ──> Stream ── ReadMessage loop ── Close
//
// The server address may be a bare host:port or a URL. http maps to ws and
// https to wss. The handshake times out after five seconds; after that only
// the caller's context and Close end a connection.
//
// Each connection gets a fresh UUID sent in the X-Scanboard-Connection
// header and returned by Stream.ID, so server and client logs can be
// matched.
//
// # Concurrency Model
//
// A Stream has one reader. Conn serializes WriteJSON internally, so the
// reset request may be sent from the UI goroutine while the channel
// goroutine is blocked in ReadMessage. Close may be called from any
// goroutine and unblocks the reader.
//
// # Error Conventions
//
//   - ErrUnknownAction: the frame parsed but its action is not handled.
//     Callers log it at debug and keep reading.
//   - ErrMissingFileData: an add_file frame without file_data. Treated as
//     malformed.
//   - ErrProgressDisabled: DialProgress on a client whose progress path is
//     empty. The watcher stops quietly.
//   - IsClosed: true for a normal or going-away close and for reads on a
//     locally closed connection. Anything else is a broken connection.
//
// Dial errors are wrapped with the route path and, when the server
// answered, the HTTP status code.
//
// # Testing Considerations
//
// Client tests run an httptest server with a gorilla/websocket Upgrader and
// assert on the handshake headers and the frames exchanged. Higher layers
// test against the Subscriber and Stream interfaces with in-memory fakes.
package feed
