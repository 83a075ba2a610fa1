package employee

import (
	"time"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"

	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is read-only identity context owned by the external identity
// subsystem; this backend only manages the account status flag and the
// failed-verification counter.
type Employee struct {
	ID             string
	Name           string
	Email          string
	Role           string
	Status         string
	DepartmentID   *string
	FailedAttempts int
	CreatedAt      time.Time

	// DTO
	DepartmentName *string
}

// Department groups employees; seeded at deployment.
type Department struct {
	ID   string
	Name string
}
