// Package dates implements the two date conventions the leave sheets use:
// spreadsheet serial numbers and DD-MM-YYYY text.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// DMYLayout is the canonical-record date format.
const DMYLayout = "02-01-2006"

// serialEpoch is the spreadsheet day-zero (the 1900 leap-year bug keeps it at
// 1899-12-30 rather than 1899-12-31).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// FromSerial converts a spreadsheet serial day offset to a UTC time.
func FromSerial(serial float64) time.Time {
	ms := int64(serial * 86400000)
	return serialEpoch.Add(time.Duration(ms) * time.Millisecond)
}

// FormatDMY renders t as DD-MM-YYYY.
func FormatDMY(t time.Time) string {
	return t.UTC().Format(DMYLayout)
}

// ParseDMY parses a day-month-year string separated by '-' or '/'. Two-digit
// years pivot at 50: 51-99 map to 19xx, 00-50 to 20xx. Malformed input
// returns the zero time and false.
func ParseDMY(s string) (time.Time, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '/'
	})
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}

	if year <= 1000 {
		if year > 50 {
			year += 1900
		} else {
			year += 2000
		}
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// MonthBounds returns the first and last day of the given month, both UTC
// midnight.
func MonthBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}
