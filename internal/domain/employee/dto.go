package employee

import (
	"strings"

	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

type UpdateStatusRequest struct {
	EmployeeID string `json:"-"`
	Status     string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(strings.ToLower(r.Status), []string{StatusActive, StatusInactive}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	Status         string  `json:"status"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MapEmployeeToResponse converts an Employee entity to EmployeeResponse
func MapEmployeeToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Role:           e.Role,
		Status:         e.Status,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		CreatedAt:      e.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
