// Package logging builds the slog loggers used by scanboard.
//
// # Overview
//
// Every command builds one logger at startup and installs it as the slog
// default:
//
//	cfg := logging.DefaultConfig()        info, json, stderr
//	cfg.Level = logging.ParseLevel(name)
//	cfg.Output = file                     from OpenFile
//	logger := logging.New(cfg)
//
// # Outputs
//
// The TUI owns the terminal, so Run writes to the log file opened with
// OpenFile in the configured log_format (json unless set to text). The logs
// command reads that file back through the logtail package, which decodes
// JSON and passes text lines through unparsed. The headless commands (tail,
// reset) log text to stderr.
//
// # Levels
//
// ParseLevel accepts debug, info, warn (or warning) and error, ignoring case
// and surrounding space. Anything else maps to info; an unknown level is not
// an error.
//
// # Testing Considerations
//
// Components take a *slog.Logger and default to Discard when none is
// given. Tests that need to assert on log output pass a logger built with
// New and an Output buffer, and restore slog.Default afterwards.
package logging
