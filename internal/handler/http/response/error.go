package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/leave"
	"github.com/attendly/attendly-backend-go/internal/domain/notification"
	"github.com/attendly/attendly-backend-go/internal/domain/policy"
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Field-level validation failures carry their own detail map.
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrOutsideGeofence):
		Forbidden(w, "Location is outside the office geofence")
	case errors.Is(err, attendance.ErrAlreadyPunchedIn):
		Conflict(w, "Already punched in today")
	case errors.Is(err, attendance.ErrAlreadyCompleted):
		Conflict(w, "Attendance for today is already completed")
	case errors.Is(err, attendance.ErrNoActivePunchIn):
		BadRequest(w, "No active punch-in for today", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyResolved):
		Conflict(w, "Leave request already resolved")
	case errors.Is(err, leave.ErrInvalidLeaveRange):
		BadRequest(w, "to_date must not be earlier than from_date", nil)
	case errors.Is(err, leave.ErrInvalidReason):
		BadRequest(w, "Leave reason is required", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Policy domain errors
	case errors.Is(err, policy.ErrSettingsNotFound):
		NotFound(w, "Policy settings not found")

	// Default: never leak internals
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
