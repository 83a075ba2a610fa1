package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.MapEmployeeToResponse(e))
	}

	return responses, nil
}

// UpdateStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateStatus(ctx context.Context, req employee.UpdateStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.UpdateStatus(ctx, req.EmployeeID, strings.ToLower(req.Status))
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.MapEmployeeToResponse(updated), nil
}

// ListDepartments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]employee.DepartmentResponse, error) {
	departments, err := s.EmployeeRepository.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]employee.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, employee.DepartmentResponse{ID: d.ID, Name: d.Name})
	}

	return responses, nil
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}
