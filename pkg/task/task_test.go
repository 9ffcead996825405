package task

import (
	"math"
	"strings"
	"testing"
)

func TestNewAssignsID(t *testing.T) {
	a := New("write report")
	b := New("write report")
	if a.ID == "" || b.ID == "" {
		t.Fatalf("expected ids to be assigned")
	}
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both were %s", a.ID)
	}
	if !strings.HasPrefix(a.ID, "task_") {
		t.Fatalf("unexpected id shape: %s", a.ID)
	}
}

func TestSetEstimate(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.3, 1.25},
		{-2, 0},
		{math.NaN(), 0},
		{0.25, 0.25},
	}
	for _, tc := range cases {
		tk := New("x")
		tk.SetEstimate(tc.in)
		if tk.EstimateHours != tc.want {
			t.Fatalf("SetEstimate(%v): expected %v, got %v", tc.in, tc.want, tk.EstimateHours)
		}
	}
}

func TestDisplayTitleTruncates(t *testing.T) {
	tk := New(strings.Repeat("a", 90))
	got := tk.DisplayTitle()
	if len([]rune(got)) != MaxTitleRunes {
		t.Fatalf("expected %d runes, got %d (%q)", MaxTitleRunes, len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}

	short := New("short title")
	if short.DisplayTitle() != "short title" {
		t.Fatalf("short titles must pass through, got %q", short.DisplayTitle())
	}
}

func TestTint(t *testing.T) {
	tk := New("x")
	tk.Color = "#ff0000"
	if tk.Tint(3) != "#ff0000" {
		t.Fatalf("stored color must win, got %s", tk.Tint(3))
	}

	tk.Color = ""
	if tk.Tint(2) != DeriveTint(2) {
		t.Fatalf("expected derived tint for position 2")
	}
	if DeriveTint(0) == DeriveTint(1) {
		t.Fatalf("neighboring positions should derive distinct tints")
	}
	if DeriveTint(5) != DeriveTint(5) {
		t.Fatalf("derived tints must be deterministic")
	}
}
