// Package config loads scanboard's TOML configuration.
//
// # Overview
//
// Config is a flat value built once per command and passed down by value.
// Nothing in it changes after Load returns.
//
// # Precedence
//
// Highest wins:
//
//  1. Variables already set in the process environment (SCANBOARD_SERVER,
//     SCANBOARD_LOG_LEVEL, SCANBOARD_THEME)
//  2. Variables from the .env file read by LoadEnvFile (--env-file, default
//     ./.env). godotenv.Load never overwrites a variable that is already
//     set, so the real environment keeps priority over the file.
//  3. The TOML config file
//  4. Built-in defaults
//
// Only the three variables above are read from the environment. Every other
// setting comes from the file or its default.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use DefaultPath (~/.config/scanboard/config.toml)
//  3. If the config file doesn't exist, fall back to defaults
//  4. Apply the environment overrides
//
// # TOML Format
//
//	server = "127.0.0.1:8000"
//	files_path = "/ws/files/"
//	progress_path = "/ws/scan/"      # "" disables the counters feed
//	viewer_path = "processed-document-viewer/"
//	reconnect_delay = "3s"
//	max_reconnects = 0               # 0 keeps reconnecting forever
//	log_file = "~/.local/state/scanboard/scanboard.log"
//	log_level = "info"
//	log_format = "json"
//	theme = "Nightfox"
//
// The values shown are the defaults. Every field is optional. Values are
// trimmed, log_level and log_format are lowercased, and tilde expansion is
// performed for log_file and the config path. A blank value falls back to
// the default, except progress_path where an explicit "" means disabled. A
// non-positive reconnect_delay keeps the default delay.
//
// # Error Handling
//
// Load returns wrapped errors for unreadable files ("open config", "read
// config"), TOML parse errors ("parse config"), bad durations ("parse
// reconnect_delay") and negative max_reconnects. A missing config file or a
// missing .env file is not an error. Errors are returned to the command,
// which prints them and exits non-zero before any connection is made.
//
// # Testing Considerations
//
// Tests write config files into t.TempDir and clear the override variables
// first: t.Setenv registers the restore, then os.Unsetenv makes the
// variable absent so godotenv.Load will set it from a test .env file.
package config
