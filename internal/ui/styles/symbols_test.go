package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFormatEmail(t *testing.T) {
	t.Parallel()

	if got := FormatEmail(""); got != "" {
		t.Errorf("FormatEmail(\"\") = %q, want empty", got)
	}

	got := FormatEmail("ana@example.com")
	if !strings.Contains(got, "mailto:ana@example.com") {
		t.Errorf("FormatEmail() missing hyperlink target: %q", got)
	}
	if plain := ansi.Strip(got); plain != "ana@example.com" {
		t.Errorf("visible text = %q, want address", plain)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "short", 10, "short"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdefgh", 5, "abcd…"},
		{"no limit", "abcdefgh", 0, "abcdefgh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestCheckmark(t *testing.T) {
	t.Parallel()

	if got := ansi.Strip(Checkmark("done")); got != "✓ done" {
		t.Errorf("Checkmark() = %q, want %q", got, "✓ done")
	}
}
