package attendance

import (
	"time"
)

// Record statuses stored on a row. Absent days are never stored; they are
// derived at read time by the stats aggregator.
const (
	StatusPresent  = "present"
	StatusLate     = "late"
	StatusOvertime = "overtime"
)

// Record is the one-per-(employee, date) attendance row. It is created
// implicitly on the first punch-in of the day.
type Record struct {
	ID                string
	EmployeeID        string
	Date              time.Time // office-local calendar day
	PunchIn           *time.Time
	PunchInLatitude   *float64
	PunchInLongitude  *float64
	PunchOut          *time.Time
	PunchOutLatitude  *float64
	PunchOutLongitude *float64
	IsLate            bool
	WorkingHours      *float64
	OvertimeHours     *float64
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	EmployeeName  *string
	EmployeeEmail *string
}

// Completed reports whether the day's punch pair is closed.
func (r Record) Completed() bool {
	return r.PunchIn != nil && r.PunchOut != nil
}
