package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// Create inserts a pending request and returns the stored row.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID returns the request, joined with employee info.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List returns requests newest first. employeeID narrows to one
	// employee; status narrows to one lifecycle state.
	List(ctx context.Context, employeeID *string, status *string) ([]LeaveRequest, error)

	// Resolve transitions a pending request to a terminal status. The update
	// is conditional on status still being pending; when the compare-and-swap
	// loses it reports ErrLeaveAlreadyResolved, and ErrLeaveRequestNotFound
	// when no such row exists at all.
	Resolve(ctx context.Context, id string, status string) (LeaveRequest, error)

	// ListApprovedOverlapping returns approved requests whose range touches
	// [from, to]. employeeID narrows to one employee.
	ListApprovedOverlapping(ctx context.Context, employeeID *string, from, to time.Time) ([]LeaveRequest, error)
}
