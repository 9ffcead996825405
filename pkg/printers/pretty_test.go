package printers

import (
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestBarFill(t *testing.T) {
	cases := []struct {
		name  string
		ratio float64
		full  int
	}{
		{"empty", 0, 0},
		{"half", 0.5, 8},
		{"exact", 1.0, 16},
		{"over", 2.5, 16},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bar := stripANSI(Bar(tc.ratio, true))
			if got := strings.Count(bar, "█"); got != tc.full {
				t.Fatalf("ratio %v: expected %d filled cells, got %d (%q)", tc.ratio, tc.full, got, bar)
			}
			if got := len([]rune(bar)); got != 16 {
				t.Fatalf("bar must be fixed width, got %d runes", got)
			}
		})
	}
}

func TestFormatSpan(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{125, "2h05m"},
	}
	for _, tc := range cases {
		if got := formatSpan(tc.minutes); got != tc.want {
			t.Fatalf("formatSpan(%d): expected %q, got %q", tc.minutes, tc.want, got)
		}
	}
}
