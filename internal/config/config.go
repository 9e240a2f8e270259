package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything scanboard needs to reach the scanning server.
type Config struct {
	Server         string
	FilesPath      string
	ProgressPath   string
	ViewerPath     string
	ReconnectDelay time.Duration
	MaxReconnects  int
	LogFile        string
	LogLevel       string
	LogFormat      string
	Theme          string
}

const (
	defaultConfigPath     = "~/.config/scanboard/config.toml"
	defaultServer         = "127.0.0.1:8000"
	defaultFilesPath      = "/ws/files/"
	defaultProgressPath   = "/ws/scan/"
	defaultViewerPath     = "processed-document-viewer/"
	defaultReconnectDelay = 3 * time.Second
	defaultLogFile        = "~/.local/state/scanboard/scanboard.log"
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultTheme          = "Nightfox"
)

// Environment variables that override the config file.
const (
	EnvServer   = "SCANBOARD_SERVER"
	EnvLogLevel = "SCANBOARD_LOG_LEVEL"
	EnvTheme    = "SCANBOARD_THEME"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Server:         defaultServer,
		FilesPath:      defaultFilesPath,
		ProgressPath:   defaultProgressPath,
		ViewerPath:     defaultViewerPath,
		ReconnectDelay: defaultReconnectDelay,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		LogFormat:      defaultLogFormat,
		Theme:          defaultTheme,
	}
}

// Load locates and parses the scanboard config, falling back to defaults when
// missing, then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Server         string  `toml:"server"`
		FilesPath      string  `toml:"files_path"`
		ProgressPath   *string `toml:"progress_path"`
		ViewerPath     string  `toml:"viewer_path"`
		ReconnectDelay string  `toml:"reconnect_delay"`
		MaxReconnects  int     `toml:"max_reconnects"`
		LogFile        string  `toml:"log_file"`
		LogLevel       string  `toml:"log_level"`
		LogFormat      string  `toml:"log_format"`
		Theme          string  `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Server = orDefault(raw.Server, defaultServer)
	cfg.FilesPath = orDefault(raw.FilesPath, defaultFilesPath)
	// An explicit empty progress_path disables the counters feed.
	if raw.ProgressPath != nil {
		cfg.ProgressPath = strings.TrimSpace(*raw.ProgressPath)
	}
	cfg.ViewerPath = orDefault(raw.ViewerPath, defaultViewerPath)
	cfg.LogFile = mustExpand(orDefault(raw.LogFile, defaultLogFile))
	cfg.LogLevel = strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel))
	cfg.LogFormat = strings.ToLower(orDefault(raw.LogFormat, defaultLogFormat))
	cfg.Theme = orDefault(raw.Theme, defaultTheme)

	if delay := strings.TrimSpace(raw.ReconnectDelay); delay != "" {
		parsed, err := time.ParseDuration(delay)
		if err != nil {
			return Config{}, fmt.Errorf("parse reconnect_delay %q: %w", delay, err)
		}
		if parsed > 0 {
			cfg.ReconnectDelay = parsed
		}
	}
	if raw.MaxReconnects < 0 {
		return Config{}, fmt.Errorf("max_reconnects must not be negative, got %d", raw.MaxReconnects)
	}
	cfg.MaxReconnects = raw.MaxReconnects

	applyEnv(&cfg)
	return cfg, nil
}

// LoadEnvFile reads KEY=value pairs from path into the process environment.
// A missing file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvServer)); v != "" {
		cfg.Server = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Theme = v
	}
}

// String summarizes the connection settings for log lines.
func (c Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "server=%s files=%s", c.Server, c.FilesPath)
	if c.ProgressPath != "" {
		fmt.Fprintf(&b, " progress=%s", c.ProgressPath)
	}
	fmt.Fprintf(&b, " reconnect=%s", c.ReconnectDelay)
	if c.MaxReconnects > 0 {
		fmt.Fprintf(&b, " max_reconnects=%d", c.MaxReconnects)
	}
	return b.String()
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
