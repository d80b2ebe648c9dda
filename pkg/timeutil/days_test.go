package timeutil

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysUntil(t *testing.T) {
	now := date("2026-09-01")

	tests := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"today", date("2026-09-01"), 0},
		{"tomorrow", date("2026-09-02"), 1},
		{"yesterday", date("2026-08-31"), -1},
		{"next week", date("2026-09-08"), 7},
		{"across a month boundary", date("2026-10-01"), 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysUntil(tc.deadline, now); got != tc.want {
				t.Errorf("DaysUntil(%v, %v) = %d, want %d", tc.deadline, now, got, tc.want)
			}
		})
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// 23:59 today vs 00:01 tomorrow is still one calendar day apart.
	now := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	deadline := time.Date(2026, 9, 2, 0, 1, 0, 0, time.UTC)

	if got := DaysUntil(deadline, now); got != 1 {
		t.Errorf("DaysUntil = %d, want 1", got)
	}
}

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-09-05", "2026-09-05"},
		{"09/05/2026", "2026-09-05"},
		{"9/5/2026", "2026-09-05"},
		{"September 5, 2026", "2026-09-05"},
		{"Sep 5, 2026", "2026-09-05"},
		{"  2026-09-05  ", "2026-09-05"},
	}

	for _, tc := range tests {
		got, err := ParseDeadline(tc.in)
		if err != nil {
			t.Errorf("ParseDeadline(%q): %v", tc.in, err)
			continue
		}
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("ParseDeadline(%q) = %v, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseDeadlineRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "soon", "2026-13-45"} {
		if _, err := ParseDeadline(in); err == nil {
			t.Errorf("ParseDeadline(%q) should fail", in)
		}
	}
}
