package employee

// Employee is one roster entry. Balance is the annual regular-leave balance
// in days and may go negative. PriorHourlyBalance carries hours accumulated
// before the first ingested sheet.
type Employee struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Balance            int     `json:"balance"`
	Username           string  `json:"username"`
	Password           string  `json:"password"`
	Photo              []byte  `json:"photo,omitempty"`
	PriorHourlyBalance float64 `json:"priorHourlyBalance"`
	WorkdayHours       int     `json:"workdayHours"`
}

// DefaultWorkdayHours applies when a roster entry does not set its own.
const DefaultWorkdayHours = 7

// Hours returns the employee's workday length, falling back to the default.
func (e Employee) Hours() int {
	if e.WorkdayHours > 0 {
		return e.WorkdayHours
	}
	return DefaultWorkdayHours
}
