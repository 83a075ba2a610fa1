package leave

import (
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// LeaveRequest is an employee's time-off request. Once approved or rejected
// it is terminal and never transitions again.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	FromDate   time.Time // inclusive
	ToDate     time.Time // inclusive
	Reason     string
	Status     string
	CreatedAt  time.Time
	ResolvedAt *time.Time

	// DTO
	EmployeeName   *string
	EmployeeEmail  *string
	DepartmentName *string
}

// Covers reports whether day falls inside the request's date range.
func (l LeaveRequest) Covers(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !d.Before(l.FromDate.Truncate(24*time.Hour)) && !d.After(l.ToDate.Truncate(24*time.Hour))
}
