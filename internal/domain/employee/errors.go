package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUsernameTaken    = errors.New("username already in use")
	ErrEmptyName        = errors.New("employee name is required")
)
