package summary

import (
	"sort"
	"strings"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/summary"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/arabic"
)

// RegularAndHourlyDays is the day total the ranked views order by: regular
// leave days plus the converted hourly summary days.
func RegularAndHourlyDays(es summary.EmployeeSummary) int {
	total := 0
	for _, l := range es.Leaves {
		if l.Type == TypeRegular || l.Type == TypeHourlySummary {
			total += l.DayCount
		}
	}
	return total
}

// Ranked returns the employees with at least one counted day, ordered by
// ascending day total.
func Ranked(summaries []summary.EmployeeSummary) []summary.EmployeeSummary {
	sorted := make([]summary.EmployeeSummary, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return RegularAndHourlyDays(sorted[i]) < RegularAndHourlyDays(sorted[j])
	})

	ranked := sorted[:0:0]
	for _, es := range sorted {
		if RegularAndHourlyDays(es) >= 1 {
			ranked = append(ranked, es)
		}
	}
	return ranked
}

// Alphabetical reorders a ranked slice into Arabic dictionary order.
func Alphabetical(ranked []summary.EmployeeSummary) []summary.EmployeeSummary {
	out := make([]summary.EmployeeSummary, len(ranked))
	copy(out, ranked)
	col := arabic.NewCollator()
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// GroupByTotalDays buckets ranked employees by their day total. Within a
// bucket, employees whose total involves no hourly conversion come first,
// then Arabic dictionary order.
func GroupByTotalDays(ranked []summary.EmployeeSummary) map[int][]summary.EmployeeSummary {
	groups := make(map[int][]summary.EmployeeSummary)
	for _, es := range ranked {
		if total := RegularAndHourlyDays(es); total > 0 {
			groups[total] = append(groups[total], es)
		}
	}

	hourlyDays := func(es summary.EmployeeSummary) int {
		for _, l := range es.Leaves {
			if l.Type == TypeHourlySummary {
				return l.DayCount
			}
		}
		return 0
	}

	col := arabic.NewCollator()
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			hi, hj := hourlyDays(group[i]), hourlyDays(group[j])
			if hi == 0 && hj > 0 {
				return true
			}
			if hj == 0 && hi > 0 {
				return false
			}
			return col.CompareString(group[i].Name, group[j].Name) < 0
		})
	}
	return groups
}

// GroupTitle is the heading for one day-total bucket in the grouped view.
func GroupTitle(totalDays int) string {
	return "اسماء الموظفين الذين تم منحهم إجازة اعتيادية لمدة " + arabic.FormatDays(totalDays)
}

// ShortSickLeave is one sick-leave period of at most five days, attributed
// to its employee for the follow-up list.
type ShortSickLeave struct {
	Name  string
	Leave summary.LeaveItem
}

// ShortSickLeaves lists every sick-leave period of five days or fewer,
// ordered by length then name.
func ShortSickLeaves(summaries []summary.EmployeeSummary) []ShortSickLeave {
	var out []ShortSickLeave
	for _, es := range summaries {
		for _, l := range es.Leaves {
			if strings.Contains(l.Type, sickMarker) && l.DayCount <= 5 {
				out = append(out, ShortSickLeave{Name: es.Name, Leave: l})
			}
		}
	}
	col := arabic.NewCollator()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Leave.DayCount != out[j].Leave.DayCount {
			return out[i].Leave.DayCount < out[j].Leave.DayCount
		}
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
