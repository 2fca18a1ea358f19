package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the storage and wire format for calendar days.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar day. Longer ISO-8601 timestamps are accepted and
// cut to their date part, so "2024-03-01T18:30:00Z" is the same day as "2024-03-01".
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return d, nil
}

// Day truncates t to UTC midnight of its own calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar day in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
