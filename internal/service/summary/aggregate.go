package summary

import (
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
	"golang.org/x/text/collate"
)

type leaveEntry struct {
	date  string
	value float64
}

// Aggregate groups the record stream by resolved employee and leave type and
// renders one summary per name. The output covers the union of names seen in
// the records and names on the roster, in Arabic dictionary order.
func (s *Service) Aggregate(records []record.CanonicalRecord, roster []employee.Employee) []summary.EmployeeSummary {
	resolver := NewResolver(roster)
	grouped := make(map[string]map[string][]leaveEntry)

	for _, rec := range records {
		if rec.Name == "" {
			continue
		}
		canonical := resolver.Resolve(rec.Name)
		leaveType := strings.TrimSpace(rec.Type)
		if canonical == "" || rec.Date == "" || leaveType == "" {
			continue
		}

		if strings.HasPrefix(leaveType, hourlyPrefix) {
			leaveType = TypeHourly
		} else {
			leaveType = collapseWhitespace(leaveType)
		}
		// Evening credit adjustments are bookkeeping rows, not leave.
		if strings.Contains(leaveType, "رصد") && strings.Contains(leaveType, "مسائي") {
			continue
		}

		if grouped[canonical] == nil {
			grouped[canonical] = make(map[string][]leaveEntry)
		}
		grouped[canonical][leaveType] = append(grouped[canonical][leaveType], leaveEntry{
			date:  rec.Date,
			value: parseValue(rec.Value),
		})
	}

	col := arabic.NewCollator()

	nameSet := make(map[string]bool, len(grouped)+len(roster))
	for name := range grouped {
		nameSet[name] = true
	}
	for _, emp := range roster {
		nameSet[emp.Name] = true
	}
	names := make([]string, 0, len(nameSet))
	for name := range nameSet {
		names = append(names, name)
	}
	col.SortStrings(names)

	s.log.Debug("aggregating leave records",
		slog.Int("records", len(records)),
		slog.Int("employees", len(names)),
	)

	out := make([]summary.EmployeeSummary, 0, len(names))
	for _, name := range names {
		out = append(out, s.summarize(name, grouped[name], findEmployee(roster, name), col))
	}
	return out
}

func findEmployee(roster []employee.Employee, name string) *employee.Employee {
	for i := range roster {
		if roster[i].Name == name {
			return &roster[i]
		}
	}
	return nil
}

func (s *Service) summarize(name string, vacations map[string][]leaveEntry, emp *employee.Employee, col *collate.Collator) summary.EmployeeSummary {
	es := summary.EmployeeSummary{Name: name, Leaves: []summary.LeaveItem{}}

	var prior float64
	workdayHours := employee.DefaultWorkdayHours
	if emp != nil {
		balance := emp.Balance
		es.InitialBalance = &balance
		es.Photo = emp.Photo
		prior = emp.PriorHourlyBalance
		workdayHours = emp.Hours()
	}

	// Observed hours on regular leave rows override the stored workday
	// length when they name a plausible value.
	if regulars := vacations[TypeRegular]; len(regulars) > 0 {
		if v := regulars[0].value; v == 6 || v == 7 {
			workdayHours = int(v)
		}
	}

	types := make([]string, 0, len(vacations)+1)
	for t := range vacations {
		types = append(types, t)
	}
	if prior > 0 && vacations[TypeHourly] == nil {
		types = append(types, TypeHourly)
	}
	sortLeaveTypes(types, col)

	for _, leaveType := range types {
		entries := vacations[leaveType]
		switch {
		case leaveType == TypeHourly:
			if item, ok := hourlyItem(entries, prior, workdayHours); ok {
				es.Leaves = append(es.Leaves, item)
			}
		case strings.Contains(leaveType, sickMarker) || strings.Contains(leaveType, extendedMarker):
			es.Leaves = append(es.Leaves, periodItems(leaveType, entries)...)
		default:
			es.Leaves = append(es.Leaves, countedItem(leaveType, entries))
		}
	}
	for i := range es.Leaves {
		es.Leaves[i].Duration = arabic.FormatDaysHours(es.Leaves[i].DayCount, es.Leaves[i].HourCount)
	}
	return es
}

// sortLeaveTypes orders the priority types first, then everything else in
// Arabic dictionary order.
func sortLeaveTypes(types []string, col *collate.Collator) {
	priority := []string{TypeRegular, TypeSick, TypeHourlySummary}
	rank := func(s string) int {
		for i, p := range priority {
			if s == p {
				return i
			}
		}
		return -1
	}
	sort.SliceStable(types, func(i, j int) bool {
		ri, rj := rank(types[i]), rank(types[j])
		switch {
		case ri > -1 && rj > -1:
			return ri < rj
		case ri > -1:
			return true
		case rj > -1:
			return false
		}
		return col.CompareString(types[i], types[j]) < 0
	})
}

// hourlyItem folds all hourly entries plus the prior balance into a single
// day/hour line against the workday length.
func hourlyItem(entries []leaveEntry, prior float64, workdayHours int) (summary.LeaveItem, bool) {
	var fromSheet float64
	for _, e := range entries {
		fromSheet += e.value
	}
	total := fromSheet + prior
	if total <= 0 {
		return summary.LeaveItem{}, false
	}

	wh := float64(workdayHours)
	days := int(math.Floor(total / wh))
	remaining := math.Round(math.Mod(total, wh)*100) / 100

	var details strings.Builder
	if len(entries) > 0 {
		details.WriteString("إجمالي " + arabic.NumeralsFloat(fromSheet) + " ساعة عبر " + arabic.NumeralsInt(len(entries)) + " إدخال")
	}
	if prior > 0 {
		if details.Len() > 0 {
			details.WriteString(" + ")
		}
		details.WriteString(arabic.NumeralsFloat(prior) + " ساعة رصيد سابق")
	}

	return summary.LeaveItem{
		Type:        TypeHourlySummary,
		DayCount:    days,
		HourCount:   remaining,
		DateDetails: details.String(),
	}, true
}

// periodItems merges consecutive dates into contiguous periods, one leave
// item per period. Duplicate dates start a fresh period rather than merging.
func periodItems(leaveType string, entries []leaveEntry) []summary.LeaveItem {
	var ds []time.Time
	for _, e := range entries {
		if t, ok := dates.ParseDMY(e.date); ok {
			ds = append(ds, t)
		}
	}
	if len(ds) == 0 {
		return nil
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })

	type period struct{ start, end time.Time }
	periods := []period{{ds[0], ds[0]}}
	for _, d := range ds[1:] {
		last := &periods[len(periods)-1]
		if last.end.AddDate(0, 0, 1).Equal(d) {
			last.end = d
			continue
		}
		periods = append(periods, period{d, d})
	}

	items := make([]summary.LeaveItem, 0, len(periods))
	for _, p := range periods {
		dayCount := int(math.Round(p.end.Sub(p.start).Hours()/24)) + 1
		details := dates.FormatDMY(p.start)
		if dayCount > 1 {
			details = "من " + dates.FormatDMY(p.start) + " إلى " + dates.FormatDMY(p.end)
		}
		items = append(items, summary.LeaveItem{
			Type:        leaveType,
			DayCount:    dayCount,
			DateDetails: details,
		})
	}
	return items
}

// countedItem counts one day per entry and lists the dates grouped by
// month: "5،12/1/2024 | 3/2/2024" rendered in Eastern Arabic numerals.
func countedItem(leaveType string, entries []leaveEntry) summary.LeaveItem {
	var ds []time.Time
	for _, e := range entries {
		if t, ok := dates.ParseDMY(e.date); ok {
			ds = append(ds, t)
		}
	}
	sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })

	type monthKey struct{ year, month int }
	var order []monthKey
	byMonth := make(map[monthKey][]int)
	for _, d := range ds {
		key := monthKey{d.Year(), int(d.Month())}
		if byMonth[key] == nil {
			order = append(order, key)
		}
		byMonth[key] = append(byMonth[key], d.Day())
	}

	parts := make([]string, 0, len(order))
	for _, key := range order {
		days := byMonth[key]
		sort.Ints(days)
		dayStrs := make([]string, len(days))
		for i, d := range days {
			dayStrs[i] = arabic.NumeralsInt(d)
		}
		parts = append(parts, strings.Join(dayStrs, "،")+"/"+arabic.NumeralsInt(key.month)+"/"+arabic.NumeralsInt(key.year))
	}

	return summary.LeaveItem{
		Type:        leaveType,
		DayCount:    len(entries),
		DateDetails: strings.Join(parts, " | "),
	}
}
