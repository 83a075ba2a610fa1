package employee

import (
	"context"
)

// EmployeeService exposes the admin directory view over the read-only
// identity context.
type EmployeeService interface {
	// List returns all employees with department info (admin)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateStatus activates or deactivates an employee (admin)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (EmployeeResponse, error)

	// ListDepartments returns the seeded department list
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
}
