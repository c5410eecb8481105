package summary

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/summary"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/arabic"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/dates"
)

const regularMarker = "اعتيادية"

// datedRecord pairs a record with its parsed date. Records whose dates do
// not parse are dropped before any date arithmetic.
type datedRecord struct {
	rec  record.CanonicalRecord
	date time.Time
}

// MonthlyReport projects one row per roster employee for the given month:
// in-month regular and sick leave, the hourly balance converted to days at
// the month boundary, and the remaining regular-leave balance.
func (s *Service) MonthlyReport(year, month int, records []record.CanonicalRecord, roster []employee.Employee) []summary.MonthlyReportRow {
	start, end := dates.MonthBounds(year, month)
	resolver := NewResolver(roster)

	byEmployee := make(map[string][]datedRecord)
	for _, rec := range records {
		t, ok := dates.ParseDMY(rec.Date)
		if !ok {
			continue
		}
		name := resolver.Resolve(rec.Name)
		byEmployee[name] = append(byEmployee[name], datedRecord{rec: rec, date: t})
	}

	s.log.Debug("projecting monthly report",
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("employees", len(roster)),
	)

	rows := make([]summary.MonthlyReportRow, 0, len(roster))
	for _, emp := range roster {
		rows = append(rows, projectEmployee(emp, byEmployee[emp.Name], start, end))
	}
	return rows
}

func projectEmployee(emp employee.Employee, all []datedRecord, start, end time.Time) summary.MonthlyReportRow {
	workdayHours := emp.Hours()
	for _, dr := range all {
		if strings.Contains(dr.rec.Type, regularMarker) {
			if v := parseValue(dr.rec.Value); v == 6 || v == 7 {
				workdayHours = int(v)
			}
			break
		}
	}

	var inMonth, before, untilEnd []datedRecord
	for _, dr := range all {
		if !dr.date.After(end) {
			untilEnd = append(untilEnd, dr)
			if dr.date.Before(start) {
				before = append(before, dr)
			} else {
				inMonth = append(inMonth, dr)
			}
		}
	}

	var regularDays []int
	for _, dr := range inMonth {
		if strings.Contains(dr.rec.Type, regularMarker) {
			regularDays = append(regularDays, dr.date.Day())
		}
	}
	sort.Ints(regularDays)
	dayStrs := make([]string, len(regularDays))
	for i, d := range regularDays {
		dayStrs[i] = arabic.NumeralsInt(d)
	}

	hoursBefore := sumHourly(before) + emp.PriorHourlyBalance
	daysBefore := int(math.Floor(hoursBefore / float64(workdayHours)))

	totalAtEnd := hoursBefore + sumHourly(inMonth)
	daysAtEnd := int(math.Floor(totalAtEnd / float64(workdayHours)))
	remaining := math.Mod(totalAtEnd, float64(workdayHours))

	regularUntilEnd := 0
	for _, dr := range untilEnd {
		if strings.Contains(dr.rec.Type, regularMarker) {
			regularUntilEnd++
		}
	}

	return summary.MonthlyReportRow{
		Name:           emp.Name,
		InitialBalance: emp.Balance,
		RegularLeaves: summary.RegularLeaves{
			Count: len(regularDays),
			Dates: strings.Join(dayStrs, "، "),
		},
		HourlyLeaves: summary.HourlyLeaves{
			Days:  daysAtEnd - daysBefore,
			Hours: remaining,
		},
		SickLeave:    summary.LeaveRange{DateRange: monthRange(inMonth, sickMarker)},
		LongLeave:    summary.LeaveRange{DateRange: monthRange(inMonth, extendedMarker)},
		FinalBalance: emp.Balance - regularUntilEnd - daysAtEnd,
	}
}

func sumHourly(recs []datedRecord) float64 {
	var total float64
	for _, dr := range recs {
		if strings.HasPrefix(dr.rec.Type, hourlyPrefix) {
			total += parseValue(dr.rec.Value)
		}
	}
	return total
}

// monthRange formats the span of in-month dates for one leave category. A
// single day renders as d/m/y; a span keeps the historical end-first
// "endDay-startDay/year" shape the downstream documents expect.
func monthRange(inMonth []datedRecord, marker string) string {
	var ds []time.Time
	for _, dr := range inMonth {
		if strings.Contains(dr.rec.Type, marker) {
			ds = append(ds, dr.date)
		}
	}
	if len(ds) == 0 {
		return ""
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })

	first, last := ds[0], ds[len(ds)-1]
	if first.Equal(last) {
		return arabic.Numerals(fmt.Sprintf("%d/%d/%d", first.Day(), int(first.Month()), first.Year()))
	}
	return arabic.Numerals(fmt.Sprintf("%d-%d/%d", last.Day(), first.Day(), first.Year()))
}
