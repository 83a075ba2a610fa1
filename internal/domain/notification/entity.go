package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeFailedVerificationAlert NotificationType = "failed_verification_alert"
	TypeLeaveSubmitted          NotificationType = "leave_submitted"
)

// Notification is a persisted admin alert.
type Notification struct {
	ID         string
	EmployeeID *string // subject employee, when the alert concerns one
	Type       NotificationType
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
