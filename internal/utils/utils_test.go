package utils

import (
	"strings"
	"testing"
	"time"
)

func TestSanitize_StripsEscapesAndControlRunes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"ansi color", "\x1b[31mrosso\x1b[0m", "rosso"},
		{"cursor movement", "a\x1b[2Jb", "ab"},
		{"newline and tab", "riga1\nriga2\tfine", "riga1 riga2 fine"},
		{"bell and delete", "ciao\a\x7f", "ciao"},
		{"plain text", "Fido al parco 🐶", "Fido al parco 🐶"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("corto", 10); got != "corto" {
		t.Errorf("short strings pass through, got %q", got)
	}
	if got := Truncate("abcdefghij", 10); got != "abcdefghij" {
		t.Errorf("exact length passes through, got %q", got)
	}
	got := Truncate(strings.Repeat("à", 20), 5)
	if got != strings.Repeat("à", 5)+"..." {
		t.Errorf("truncation must count runes, got %q", got)
	}
}

func TestTomorrow_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2026, 1, 31, 22, 0, 0, 0, time.UTC)
	if got := Tomorrow(now); got != "2026-02-01" {
		t.Errorf("expected 2026-02-01, got %q", got)
	}
	if got := Today(now); got != "2026-01-31" {
		t.Errorf("expected 2026-01-31, got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2026-01-02"); got != "2 Gennaio 2026" {
		t.Errorf("expected Italian rendering, got %q", got)
	}
	if got := FormatDate("not-a-date"); got != "not-a-date" {
		t.Errorf("unparseable dates pass through, got %q", got)
	}
}

func TestFormatMonth(t *testing.T) {
	if got := FormatMonth(2026, 12); got != "Dicembre 2026" {
		t.Errorf("expected Dicembre 2026, got %q", got)
	}
	if got := FormatMonth(2026, 0); got != "2026" {
		t.Errorf("out-of-range months degrade to the year, got %q", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2026, 1, 31},
		{2026, 2, 28},
		{2028, 2, 29}, // leap year
		{2026, 4, 30},
	}
	for _, tc := range cases {
		if got := DaysInMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// February 2026 starts on a Sunday.
	if got := FirstWeekday(2026, 2); got != 0 {
		t.Errorf("expected Sunday (0), got %d", got)
	}
	// January 2026 starts on a Thursday.
	if got := FirstWeekday(2026, 1); got != 4 {
		t.Errorf("expected Thursday (4), got %d", got)
	}
}

func TestNewID_MonotonicAndUnique(t *testing.T) {
	seen := make(map[int64]bool)
	prev := int64(0)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id <= prev {
			t.Fatalf("ids must be strictly increasing: %d after %d", id, prev)
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
		prev = id
	}
}
