package employee

// CreateEmployeeRequest carries a new roster entry. Username and Password
// are optional; the service generates credentials when they are blank.
type CreateEmployeeRequest struct {
	Name               string
	Balance            int
	WorkdayHours       int
	Username           string
	Password           string
	Photo              []byte
	PriorHourlyBalance float64
}

// UpdateEmployeeRequest rewrites an existing roster entry. A blank Password
// keeps the stored hash.
type UpdateEmployeeRequest struct {
	Name               string
	Balance            int
	WorkdayHours       int
	Username           string
	Password           string
	Photo              []byte
	PriorHourlyBalance float64
}
