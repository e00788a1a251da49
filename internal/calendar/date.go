// Package calendar provides the date handling for the campaign calendar.
//
// All timestamps in the system are wall-clock values in a single locale
// (KST). Date and time parts are therefore extracted from the string layout
// itself, never by parsing into a zoned instant — parsing "2026-01-29T18:00:00Z"
// through time.Parse and reading local fields would shift the value by the
// process timezone.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	datePartRe = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})`)
	timePartRe = regexp.MustCompile(`T(\d{2}):(\d{2})`)
)

// ExtractDatePart returns the leading YYYY-MM-DD portion of a date-time string.
// Falls back to everything before the first 'T', or the whole string.
func ExtractDatePart(s string) string {
	if m := datePartRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// ExtractTimePart returns the HH:MM portion following the 'T' separator,
// or "00:00" when the string carries no time.
func ExtractTimePart(s string) string {
	if m := timePartRe.FindStringSubmatch(s); m != nil {
		return m[1] + ":" + m[2]
	}
	return "00:00"
}

// DateParts returns year, zero-based month and day extracted from s.
// Malformed fields come back as zero values.
func DateParts(s string) (year, month, day int) {
	parts := strings.Split(ExtractDatePart(s), "-")
	if len(parts) > 0 {
		year, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil && m > 0 {
			month = m - 1
		}
	}
	if len(parts) > 2 {
		day, _ = strconv.Atoi(parts[2])
	}
	return year, month, day
}

// TimeParts returns hours and minutes extracted from s.
func TimeParts(s string) (hours, minutes int) {
	parts := strings.Split(ExtractTimePart(s), ":")
	if len(parts) > 0 {
		hours, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	return hours, minutes
}

// AsLocalMoment builds a time.Time from the extracted wall-clock fields.
// The result reproduces the stored fields bit for bit regardless of the
// process timezone configuration.
func AsLocalMoment(s string) time.Time {
	year, month, day := DateParts(s)
	hours, minutes := TimeParts(s)
	return time.Date(year, time.Month(month+1), day, hours, minutes, 0, 0, time.Local)
}

// FormatDateKey formats a date's own calendar fields as YYYY-MM-DD.
func FormatDateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// FormatTime returns the HH:MM display form of a stored date-time string.
func FormatTime(s string) string {
	return ExtractTimePart(s)
}
