package summary

import (
	"sort"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/dates"
)

// FilterByPeriod keeps the records dated in the given year, or year and
// month when month is non-zero. Records with unparseable dates are dropped.
func FilterByPeriod(records []record.CanonicalRecord, year, month int) []record.CanonicalRecord {
	var out []record.CanonicalRecord
	for _, rec := range records {
		t, ok := dates.ParseDMY(rec.Date)
		if !ok || t.Year() != year {
			continue
		}
		if month != 0 && int(t.Month()) != month {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Years lists the distinct years present in the record dates, newest first.
func Years(records []record.CanonicalRecord) []int {
	seen := make(map[int]bool)
	for _, rec := range records {
		if t, ok := dates.ParseDMY(rec.Date); ok {
			seen[t.Year()] = true
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
