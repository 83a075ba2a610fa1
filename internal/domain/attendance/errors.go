package attendance

import "errors"

// Attendance domain errors
var (
	// Punch errors
	ErrOutsideGeofence  = errors.New("you are outside the office geofence")
	ErrAlreadyPunchedIn = errors.New("you have already punched in today")
	ErrAlreadyCompleted = errors.New("attendance for today is already completed")
	ErrNoActivePunchIn  = errors.New("no punch-in record found for today")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
