package employee

import "context"

// Repository - durable store for the employee roster
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	Save(ctx context.Context, employees []Employee) error
}
