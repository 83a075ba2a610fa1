package verification

import (
	"context"
)

type AttemptRepository interface {
	// IncrementFailed bumps the employee's consecutive-failure counter and
	// returns the new count.
	IncrementFailed(ctx context.Context, employeeID string) (int, error)

	// ResetFailed zeroes the counter.
	ResetFailed(ctx context.Context, employeeID string) error
}
