package framework

import (
	"testing"
)

func TestFilterRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		runes  []rune
		filter RuneFilter
		want   string
	}{
		{
			name:   "single character with nil filter",
			runes:  []rune{'a'},
			filter: nil,
			want:   "a",
		},
		{
			name:   "pasted name keeps spaces",
			runes:  []rune("Ana Lima"),
			filter: nil,
			want:   "Ana Lima",
		},
		{
			name:   "document number drops spaces",
			runes:  []rune("AB 123 456"),
			filter: RuneFilterNoSpaces,
			want:   "AB123456",
		},
		{
			name:   "newlines and tabs filtered out",
			runes:  []rune("New\nYork\t!"),
			filter: nil,
			want:   "NewYork!",
		},
		{
			name:   "combining accent kept",
			runes:  []rune{'J', 'o', 's', 'e', '\u0301'},
			filter: nil,
			want:   "Jose\u0301",
		},
		{
			name:   "empty input",
			runes:  []rune{},
			filter: nil,
			want:   "",
		},
		{
			name:   "phone keeps digits and punctuation",
			runes:  []rune("+1 (555) 000-0000"),
			filter: RuneFilterPhone,
			want:   "+1 (555) 000-0000",
		},
		{
			name:   "phone drops letters",
			runes:  []rune("call 555-1234 now"),
			filter: RuneFilterPhone,
			want:   " 555-1234 ",
		},
		{
			name:   "control characters filtered out",
			runes:  []rune{'a', '\x00', 'b', '\x1F', 'c'},
			filter: nil,
			want:   "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FilterRunes(tt.runes, tt.filter); got != tt.want {
				t.Errorf("FilterRunes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRuneFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r                     rune
		none, noSpaces, phone bool
	}{
		{'a', true, true, false},
		{'0', true, true, true},
		{' ', true, false, true},
		{'+', true, true, true},
		{'(', true, true, true},
		{'/', true, true, false},
		{'\n', false, false, false},
		{'\t', false, false, false},
	}

	for _, tt := range tests {
		if got := RuneFilterNone(tt.r); got != tt.none {
			t.Errorf("RuneFilterNone(%q) = %v, want %v", tt.r, got, tt.none)
		}
		if got := RuneFilterNoSpaces(tt.r); got != tt.noSpaces {
			t.Errorf("RuneFilterNoSpaces(%q) = %v, want %v", tt.r, got, tt.noSpaces)
		}
		if got := RuneFilterPhone(tt.r); got != tt.phone {
			t.Errorf("RuneFilterPhone(%q) = %v, want %v", tt.r, got, tt.phone)
		}
	}
}

func TestKeyHelp(t *testing.T) {
	t.Parallel()

	if got := KeyHelp(); got != "" {
		t.Errorf("KeyHelp() = %q, want empty", got)
	}
	if got := KeyHelp("enter continue", "esc cancel"); got != "enter continue • esc cancel" {
		t.Errorf("KeyHelp() = %q", got)
	}
}
