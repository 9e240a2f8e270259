// Package logtail reads the tail of scanboard's own JSON log file.
//
// # Overview
//
// The TUI owns the terminal, so scanboard logs to a file instead of stderr.
// The logs command uses this package to show the last N entries of that
// file in a readable form.
//
// # Algorithm
//
// Read scans the file line by line and pushes each line into a fixed-size
// ring of maxLines slots:
//
//	push "a" "b" "c" "d" "e" into a ring of 3
//
//	 slot:   0   1   2
//	        [d] [e] [c]     next = 2, full
//
//	lines() reads from next around to next-1: c d e
//
// Memory stays proportional to maxLines regardless of file size. Lines up
// to 1 MiB are accepted; a longer line fails the read.
//
// # Entry Parsing
//
// ReadEntries decodes the lines returned by Read as slog JSON records.
// The time, level and msg keys fill the Entry fields and every other key
// lands in Attrs. A line that is not JSON becomes an Entry with only Msg
// set, so partial writes and foreign text are still shown. Blank lines are
// skipped.
//
// Entry.Format renders local time, the padded level, the message and the
// attributes as key=value pairs in sorted key order.
//
// # Error Conventions
//
// A missing file is not an error and yields no lines. Open failures other
// than not-exist and scanner failures are wrapped with "open log" and
// "read log".
package logtail
