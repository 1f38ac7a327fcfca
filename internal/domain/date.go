package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the layout dates are written with.
	DateLayout = "02/01/2006"

	// PendingToken stands in for a date that has not happened yet.
	PendingToken = "Pending"

	// parseLayout also accepts single digit days and months.
	parseLayout = "2/1/2006"
)

// Pending marks a rental that has not been returned yet.
var Pending = time.Time{}

// IsPending reports whether t is the Pending sentinel.
func IsPending(t time.Time) bool { return t.IsZero() }

// FormatDate renders t as DD/MM/YYYY, or Pending for the sentinel.
func FormatDate(t time.Time) string {
	if IsPending(t) {
		return PendingToken
	}
	return t.Format(DateLayout)
}

// ParseDate is the inverse of FormatDate. The Pending token is matched case-insensitively.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, PendingToken) {
		return Pending, nil
	}
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not DD/MM/YYYY", ErrInvalid, s)
	}
	return t, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole number of days from a to b, rounded down.
func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}
	return days
}
