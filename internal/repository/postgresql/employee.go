package postgresql

import (
	"context"

	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var roster []employee.Employee
	if err := loadBlob(ctx, r.db, blobEmployees, &roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// Save implements employee.Repository.
func (r *employeeRepositoryImpl) Save(ctx context.Context, employees []employee.Employee) error {
	if employees == nil {
		employees = []employee.Employee{}
	}
	return saveBlob(ctx, r.db, blobEmployees, employees)
}
