package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short  ", 10, "short"},
		{"abcdefghij", 7, "abcd..."},
		{"abcdef", 2, "ab"},
		{"abc", 0, "abc"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("quarterly-report-final.pdf", 16)
	if len([]rune(got)) != 16 {
		t.Fatalf("truncateMiddle length = %d, want 16 (%q)", len([]rune(got)), got)
	}
	if got[len(got)-4:] != ".pdf" {
		t.Fatalf("truncateMiddle dropped extension: %q", got)
	}
	if got := truncateMiddle("ws://10.0.0.5:8000/ws/files/", 12); len([]rune(got)) != 12 {
		t.Fatalf("truncateMiddle url = %q, want 12 runes", got)
	}
}

func TestPadding(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padLeft("ab", 4); got != "  ab" {
		t.Fatalf("padLeft = %q", got)
	}
	if got := padLeft("abcdef", 4); got != "abcdef" {
		t.Fatalf("padLeft overflow = %q", got)
	}
}

func TestScrollWindow(t *testing.T) {
	cases := []struct {
		total, selected, height int
		start, end              int
	}{
		{3, 0, 5, 0, 3},
		{10, 2, 5, 0, 5},
		{10, 7, 5, 3, 8},
		{10, 9, 5, 5, 10},
	}
	for _, tc := range cases {
		start, end := scrollWindow(tc.total, tc.selected, tc.height)
		if start != tc.start || end != tc.end {
			t.Fatalf("scrollWindow(%d,%d,%d) = %d,%d want %d,%d",
				tc.total, tc.selected, tc.height, start, end, tc.start, tc.end)
		}
	}
}
