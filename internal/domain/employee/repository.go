package employee

import (
	"context"
)

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	UpdateStatus(ctx context.Context, id string, status string) (Employee, error)

	// ListActiveIDs returns ids of employees counted in dashboard
	// denominators (role employee, status active).
	ListActiveIDs(ctx context.Context) ([]string, error)

	ListDepartments(ctx context.Context) ([]Department, error)
}
