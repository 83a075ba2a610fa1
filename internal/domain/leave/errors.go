package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveAlreadyResolved = errors.New("leave request has already been approved or rejected")
	ErrInvalidLeaveRange    = errors.New("to_date must not be earlier than from_date")
	ErrInvalidReason        = errors.New("a reason is required for a leave request")
)
