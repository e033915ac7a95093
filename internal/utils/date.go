package utils

import (
	"fmt"
	"time"

	"petboard/internal/constants"
)

// MonthNames holds the Italian month names, indexed by time.Month.
var MonthNames = [13]string{
	"", "Gennaio", "Febbraio", "Marzo", "Aprile", "Maggio", "Giugno",
	"Luglio", "Agosto", "Settembre", "Ottobre", "Novembre", "Dicembre",
}

// Today returns today's date string (YYYY-MM-DD).
func Today(now time.Time) string {
	return now.Format(constants.DateFormat)
}

// Tomorrow returns tomorrow's date string (YYYY-MM-DD) relative to now.
func Tomorrow(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(constants.DateFormat)
}

// FormatDate renders a YYYY-MM-DD date as "2 Gennaio 2026". Values that fail
// to parse are returned unchanged rather than dropped from the view.
func FormatDate(dateStr string) string {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d %s %d", t.Day(), MonthNames[t.Month()], t.Year())
}

// FormatMonth renders a calendar cursor as "Gennaio 2026".
func FormatMonth(year, month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s %d", MonthNames[month], year)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month
// (0=Sunday .. 6=Saturday).
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}
