package domain

import (
	"strings"
	"time"
)

// Canonical dates are pinned to local midday so that formatting them through
// UTC-aware calls can never roll the calendar day backward or forward. Every
// date entering the system goes through NormalizeDate; every date leaving it
// goes through FormatAPIDate or FormatDisplayDate.

const (
	apiDateLayout     = "2006-01-02"
	displayDateLayout = "Jan 2, 2006"
)

// NormalizeDate converts heterogeneous date representations into a canonical
// local-midday time.Time. Accepted inputs: "YYYY-MM-DD", "YYYY/MM/DD",
// ISO-8601 strings with a time component (the date portion is taken as-is,
// never reinterpreted in another zone), and time.Time values (time of day is
// discarded). The second return is false when the input is unparseable;
// callers must treat that as "no date selected".
func NormalizeDate(value any) (time.Time, bool) {
	switch typed := value.(type) {
	case time.Time:
		if typed.IsZero() {
			return time.Time{}, false
		}
		year, month, day := typed.Date()
		return canonicalDay(year, month, day), true
	case string:
		return normalizeDateString(typed)
	default:
		return time.Time{}, false
	}
}

func normalizeDateString(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	// Keep only the date portion of ISO-8601 inputs. The clock and zone are
	// deliberately ignored: "2025-05-15T23:00:00Z" means May 15 to the form
	// that produced it, regardless of the local offset.
	if idx := strings.IndexAny(trimmed, "T "); idx > 0 {
		trimmed = trimmed[:idx]
	}
	trimmed = strings.ReplaceAll(trimmed, "/", "-")
	parsed, err := time.Parse(apiDateLayout, trimmed)
	if err != nil {
		return time.Time{}, false
	}
	year, month, day := parsed.Date()
	return canonicalDay(year, month, day), true
}

func canonicalDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
}

// FormatAPIDate renders a canonical date in the wire format the booking API
// expects.
func FormatAPIDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(apiDateLayout)
}

// FormatDisplayDate renders a canonical date for UI display, e.g. "May 15, 2025".
func FormatDisplayDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(displayDateLayout)
}

// SameDay reports whether two values fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ContainsDay reports whether day falls within the inclusive [start, end]
// calendar interval.
func ContainsDay(day, start, end time.Time) bool {
	if start.IsZero() {
		return false
	}
	if end.IsZero() {
		end = start
	}
	if SameDay(day, start) || SameDay(day, end) {
		return true
	}
	return day.After(start) && day.Before(end)
}

// NightsBetween returns the stay length in nights, never less than one. The
// difference is taken between calendar days, not wall-clock durations: a DST
// transition inside the stay must not shift the night count.
func NightsBetween(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 1
	}
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	from := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	to := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	nights := int(to.Sub(from).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}
