package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeLines(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scanboard.log")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	var all []string
	for i := 1; i <= 10; i++ {
		all = append(all, fmt.Sprintf("Line %d", i))
	}
	path := writeLines(t, all)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"zero", 0, nil},
		{"partial", 3, all[7:]},
		{"exact", 10, all},
		{"more than file", 50, all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read(%d) = %v, want %v", tt.maxLines, got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 5)
	if err != nil || got != nil {
		t.Fatalf("Read(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestReadEntries(t *testing.T) {
	path := writeLines(t, []string{
		`{"time":"2025-05-01T10:00:00Z","level":"INFO","msg":"old"}`,
		`{"time":"2025-05-01T10:00:01.5Z","level":"WARN","msg":"drop message","err":"decode message: bad","conn":"abc"}`,
		``,
		`plain text line`,
	})

	entries, err := ReadEntries(path, 3)
	if err != nil {
		t.Fatalf("ReadEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (blank line skipped)", len(entries))
	}

	warn := entries[0]
	if warn.Level != "WARN" || warn.Msg != "drop message" {
		t.Fatalf("entry = %#v", warn)
	}
	if !warn.Time.Equal(time.Date(2025, 5, 1, 10, 0, 1, 500000000, time.UTC)) {
		t.Fatalf("time = %v", warn.Time)
	}
	if warn.Attrs["conn"] != "abc" || len(warn.Attrs) != 2 {
		t.Fatalf("attrs = %#v", warn.Attrs)
	}

	plain := entries[1]
	if plain.Msg != "plain text line" || plain.Level != "" || !plain.Time.IsZero() {
		t.Fatalf("plain entry = %#v", plain)
	}
}

func TestEntryFormat(t *testing.T) {
	e := Entry{Level: "INFO", Msg: "connected", Attrs: map[string]any{"url": "ws://x", "conn": "id1"}}
	if got := e.Format(); got != "INFO  connected conn=id1 url=ws://x" {
		t.Fatalf("Format = %q", got)
	}
	if got := (Entry{Msg: "raw"}).Format(); got != "raw" {
		t.Fatalf("Format = %q", got)
	}
}
