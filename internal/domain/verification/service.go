package verification

import (
	"context"
)

// VerificationService consumes identity-verification outcomes. A run of
// consecutive failures reaching the policy threshold raises an admin alert
// and resets the counter; any success resets it too.
type VerificationService interface {
	RecordAttempt(ctx context.Context, req AttemptRequest) (AttemptResponse, error)
}
