package leave

import (
	"context"
)

// LeaveService owns the leave-request lifecycle.
type LeaveService interface {
	// Submit creates a pending request for the employee
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveResponse, error)

	// ListAll returns every request, optionally filtered by status (admin)
	ListAll(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	// ListMine returns the employee's own requests, newest first
	ListMine(ctx context.Context, employeeID string) (ListLeaveResponse, error)

	// Approve resolves a pending request (admin). Exactly one of two
	// concurrent resolutions wins; the loser gets ErrLeaveAlreadyResolved.
	Approve(ctx context.Context, leaveID string) (LeaveResponse, error)

	// Reject resolves a pending request (admin)
	Reject(ctx context.Context, leaveID string) (LeaveResponse, error)
}
