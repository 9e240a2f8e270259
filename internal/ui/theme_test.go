package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct{ current, want string }{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%s) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}
	if got := GetTheme("Unknown").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(Unknown).Name = %q, want Nightfox (fallback)", got)
	}
}

func TestThemesCoverStatusClasses(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, class := range []string{"connected", "connecting", "disconnected", "error"} {
			if th.StatusColors[class] == "" {
				t.Fatalf("%s theme has no color for %q", name, class)
			}
		}
		if th.HighlightBg == "" {
			t.Fatalf("%s theme has no highlight background", name)
		}
	}
}

func TestStatusStyleFallsBackToMuted(t *testing.T) {
	th := GetTheme("Slate")
	styles := th.Styles()
	got := styles.StatusStyle("bogus").GetForeground()
	if got != styles.MutedText.GetForeground() {
		t.Fatalf("StatusStyle(bogus) foreground = %v, want muted", got)
	}
}
