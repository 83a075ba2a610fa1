package verification

import (
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// AttemptRequest is the pass/fail outcome the external biometric service
// reports after matching an employee. The match itself happens elsewhere;
// this engine only keeps the consecutive-failure count.
type AttemptRequest struct {
	EmployeeID string `json:"-"`
	Success    bool   `json:"success"`
}

func (r *AttemptRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttemptResponse struct {
	EmployeeID     string `json:"employee_id"`
	FailedAttempts int    `json:"failed_attempts"`
	AlertTriggered bool   `json:"alert_triggered"`
}
