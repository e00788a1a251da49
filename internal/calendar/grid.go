package calendar

import "time"

// GridDays is the fixed size of a month view: six full weeks.
const GridDays = 42

// MonthGrid returns the 42 dates shown for a month view: leading days of the
// previous month back to Sunday, every day of the target month, then leading
// days of the next month until six weeks are filled. month is zero-based.
func MonthGrid(year, month int) []time.Time {
	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local)
	startWeekday := int(first.Weekday())

	days := make([]time.Time, 0, GridDays)

	// Previous month padding
	for i := startWeekday; i > 0; i-- {
		days = append(days, first.AddDate(0, 0, -i))
	}

	// Day 0 of the next month is the last day of this one.
	lastDay := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.Local).Day()
	for d := 1; d <= lastDay; d++ {
		days = append(days, time.Date(year, time.Month(month+1), d, 0, 0, 0, 0, time.Local))
	}

	// Next month padding
	for d := 1; len(days) < GridDays; d++ {
		days = append(days, time.Date(year, time.Month(month+2), d, 0, 0, 0, 0, time.Local))
	}

	return days
}

// IsInMonth reports whether date belongs to the given zero-based month.
func IsInMonth(date time.Time, year, month int) bool {
	return date.Year() == year && int(date.Month()) == month+1
}

// IsSameDay reports whether two dates fall on the same calendar day.
func IsSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether date is today, ignoring time of day.
func IsToday(date time.Time) bool {
	return IsSameDay(date, time.Now())
}

// MonthRange returns the first and last calendar days of a one-based month
// as YYYY-MM-DD strings, for use as an inclusive send_at date filter.
func MonthRange(year, month int) (start, end string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.Local)
	return FormatDateKey(first), FormatDateKey(last)
}
