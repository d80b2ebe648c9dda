package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// MsPerDay is the millisecond day length used for deadline math.
const MsPerDay = 1000 * 60 * 60 * 24

var deadlineLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseDeadline parses a user-entered deadline string. Only the calendar
// date matters; any time-of-day or zone component is discarded.
func ParseDeadline(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty deadline")
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable deadline %q", s)
}

// DaysUntil returns the number of whole calendar days between now and the
// deadline, both taken at midnight, via floor division of the millisecond
// difference by MsPerDay. Today yields 0, yesterday -1.
func DaysUntil(deadline, now time.Time) int {
	a := atMidnightUTC(deadline)
	b := atMidnightUTC(now)
	return int(a.Sub(b).Milliseconds() / MsPerDay)
}

// atMidnightUTC discards the time and zone information, keeping only the
// calendar date.
func atMidnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
