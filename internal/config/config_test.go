package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets the override variables for the test. t.Setenv records
// the previous value for restore; the Unsetenv makes the variable absent,
// which godotenv.Load requires before it will set it.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvServer, EnvLogLevel, EnvTheme} {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("Unsetenv(%s): %v", k, err)
		}
	}
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server != defaultServer {
		t.Fatalf("Server = %q, want %q", cfg.Server, defaultServer)
	}
	if cfg.FilesPath != defaultFilesPath || cfg.ProgressPath != defaultProgressPath {
		t.Fatalf("paths = %q %q, want defaults", cfg.FilesPath, cfg.ProgressPath)
	}
	if cfg.ReconnectDelay != 3*time.Second {
		t.Fatalf("ReconnectDelay = %v, want 3s", cfg.ReconnectDelay)
	}
	if cfg.MaxReconnects != 0 {
		t.Fatalf("MaxReconnects = %d, want 0", cfg.MaxReconnects)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
server = "  https://scan.example.com  "
files_path = " /live/files/ "
viewer_path = "viewer/"
reconnect_delay = "750ms"
max_reconnects = 4
log_file = "  ~/logs/scanboard.log  "
log_level = "DEBUG"
theme = "Slate"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server != "https://scan.example.com" {
		t.Fatalf("Server = %q", cfg.Server)
	}
	if cfg.FilesPath != "/live/files/" {
		t.Fatalf("FilesPath = %q", cfg.FilesPath)
	}
	if cfg.ProgressPath != defaultProgressPath {
		t.Fatalf("ProgressPath = %q, want default when key absent", cfg.ProgressPath)
	}
	if cfg.ViewerPath != "viewer/" {
		t.Fatalf("ViewerPath = %q", cfg.ViewerPath)
	}
	if cfg.ReconnectDelay != 750*time.Millisecond {
		t.Fatalf("ReconnectDelay = %v, want 750ms", cfg.ReconnectDelay)
	}
	if cfg.MaxReconnects != 4 {
		t.Fatalf("MaxReconnects = %d, want 4", cfg.MaxReconnects)
	}
	if cfg.LogFile != filepath.Join(home, "logs", "scanboard.log") {
		t.Fatalf("LogFile = %q", cfg.LogFile)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want lowercased", cfg.LogLevel)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q", cfg.Theme)
	}
}

func TestLoad_EmptyProgressPathDisablesCounters(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`progress_path = ""`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ProgressPath != "" {
		t.Fatalf("ProgressPath = %q, want empty", cfg.ProgressPath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`server = "10.0.0.1:8000"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(EnvServer, "10.0.0.9:9000")
	t.Setenv(EnvTheme, "Kanagawa")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server != "10.0.0.9:9000" {
		t.Fatalf("Server = %q, want env override", cfg.Server)
	}
	if cfg.Theme != "Kanagawa" {
		t.Fatalf("Theme = %q, want env override", cfg.Theme)
	}
}

func TestLoad_InvalidValuesFail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad toml", `server = [`, "parse config"},
		{"bad duration", `reconnect_delay = "soon"`, "reconnect_delay"},
		{"negative reconnects", `max_reconnects = -1`, "max_reconnects"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load returned nil error, want %s error", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Load error = %q, want it to mention %s", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadEnvFile(missing) = %v, want nil", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SCANBOARD_LOG_LEVEL=warn\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile returned error: %v", err)
	}
	if got := os.Getenv(EnvLogLevel); got != "warn" {
		t.Fatalf("%s = %q, want warn", EnvLogLevel, got)
	}
}

func TestLoadEnvFile_FeedsLoadButKeepsRealEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	clearEnv(t)
	t.Setenv(EnvServer, "10.0.0.9:9000")

	path := filepath.Join(t.TempDir(), ".env")
	body := "SCANBOARD_SERVER=10.0.0.1:1\nSCANBOARD_THEME=Slate\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile returned error: %v", err)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want value from .env", cfg.Theme)
	}
	if cfg.Server != "10.0.0.9:9000" {
		t.Fatalf("Server = %q, want the real environment to win", cfg.Server)
	}
}

func TestDefaultPath(t *testing.T) {
	if !strings.HasSuffix(DefaultPath(), "scanboard/config.toml") {
		t.Fatalf("DefaultPath() = %q", DefaultPath())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
