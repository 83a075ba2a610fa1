package leave

import (
	"strings"

	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type SubmitLeaveRequest struct {
	EmployeeID string `json:"-"`
	FromDate   string `json:"from_date"` // YYYY-MM-DD
	ToDate     string `json:"to_date"`   // YYYY-MM-DD
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	from, fromOK := validator.IsValidDate(r.FromDate)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	to, toOK := validator.IsValidDate(r.ToDate)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	if to.Before(from) {
		return ErrInvalidLeaveRange
	}

	if validator.IsEmpty(r.Reason) {
		return ErrInvalidReason
	}

	return nil
}

// LeaveFilter narrows the admin listing; employees always see only their own.
type LeaveFilter struct {
	Status *string `json:"status,omitempty"`
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(strings.ToLower(*f.Status), []string{StatusPending, StatusApproved, StatusRejected}) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	EmployeeEmail  *string `json:"employee_email,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	FromDate       string  `json:"from_date"`
	ToDate         string  `json:"to_date"`
	Reason         string  `json:"reason"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	ResolvedAt     *string `json:"resolved_at,omitempty"`
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Leaves     []LeaveResponse `json:"leaves"`
}

// MapLeaveToResponse converts a LeaveRequest entity to LeaveResponse
func MapLeaveToResponse(l LeaveRequest) LeaveResponse {
	var resolvedAt *string
	if l.ResolvedAt != nil {
		v := l.ResolvedAt.Format("2006-01-02 15:04:05")
		resolvedAt = &v
	}

	return LeaveResponse{
		ID:             l.ID,
		EmployeeID:     l.EmployeeID,
		EmployeeName:   l.EmployeeName,
		EmployeeEmail:  l.EmployeeEmail,
		DepartmentName: l.DepartmentName,
		FromDate:       l.FromDate.Format("2006-01-02"),
		ToDate:         l.ToDate.Format("2006-01-02"),
		Reason:         l.Reason,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt.Format("2006-01-02 15:04:05"),
		ResolvedAt:     resolvedAt,
	}
}
