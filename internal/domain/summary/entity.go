// Package summary defines the aggregated output shapes: per-employee leave
// summaries and the monthly balance report.
package summary

// LeaveItem is one aggregated line in an employee summary: either a
// contiguous sick/extended period, the hourly-leave rollup, or a per-type
// count with its formatted date details.
type LeaveItem struct {
	Type        string  `json:"type"`
	DayCount    int     `json:"dayCount"`
	HourCount   float64 `json:"hourCount"`
	DateDetails string  `json:"dateDetails"`
	// Duration is the day/hour total pre-rendered for display,
	// e.g. "٣ يوم" or "٢ يوم و ١.٥ ساعة".
	Duration string `json:"duration"`
}

// EmployeeSummary is the full aggregation for one employee.
type EmployeeSummary struct {
	Name           string      `json:"name"`
	Leaves         []LeaveItem `json:"leaves"`
	InitialBalance *int        `json:"initialBalance,omitempty"`
	Photo          []byte      `json:"photo,omitempty"`
}

// RegularLeaves is the in-month regular leave tally: how many days were
// taken and the formatted day-of-month list.
type RegularLeaves struct {
	Count int    `json:"count"`
	Dates string `json:"dates"`
}

// HourlyLeaves is the in-month hourly leave consumption after conversion
// against the employee's workday length.
type HourlyLeaves struct {
	Days  int     `json:"days"`
	Hours float64 `json:"hours"`
}

// LeaveRange is a formatted in-month date range for one leave category.
type LeaveRange struct {
	DateRange string `json:"dateRange"`
}

// MonthlyReportRow is one employee's line in the month-end balance report.
type MonthlyReportRow struct {
	Name           string        `json:"name"`
	InitialBalance int           `json:"initialBalance"`
	RegularLeaves  RegularLeaves `json:"regularLeaves"`
	HourlyLeaves   HourlyLeaves  `json:"hourlyLeaves"`
	SickLeave      LeaveRange    `json:"sickLeave"`
	LongLeave      LeaveRange    `json:"longLeave"`
	FinalBalance   int           `json:"finalBalance"`
}
