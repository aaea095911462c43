package ui

import "testing"

func TestItoa(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{1000, "1000"},
		{-15, "-15"},
	}

	for _, tt := range tests {
		if got := Itoa(tt.in); got != tt.want {
			t.Errorf("Itoa(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short stays", "abc", 10, "abc"},
		{"exact stays", "abcde", 5, "abcde"},
		{"long gets ellipsis", "abcdefghij", 8, "abcde..."},
		{"tiny max hard cut", "abcdefghij", 3, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadLeft(t *testing.T) {
	if got := PadLeft("7", 4); got != "   7" {
		t.Errorf("PadLeft = %q, want %q", got, "   7")
	}
	if got := PadLeft("12345", 4); got != "12345" {
		t.Errorf("PadLeft should not shrink, got %q", got)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}

	if got := wrapText("untouched", 0); got != "untouched" {
		t.Errorf("wrapText with zero width = %q", got)
	}
}

func TestPaletteForFallsBackToDark(t *testing.T) {
	if p := PaletteFor("no-such-theme"); p.Name != "dark" {
		t.Errorf("PaletteFor fallback = %q, want dark", p.Name)
	}
	if p := PaletteFor("light"); p.Name != "light" {
		t.Errorf("PaletteFor(light) = %q", p.Name)
	}
}

func TestFooterHintsDialogOverridesScreen(t *testing.T) {
	got := FooterHints(1, true)
	if got != "Enter:ok  ESC:cancel" {
		t.Errorf("dialog hints = %q", got)
	}
}
