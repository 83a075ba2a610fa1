package stats

import (
	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// StatsRequest selects the aggregation window. Without a range the current
// month is used. With EmployeeID set the snapshot adds the per-employee
// section (day counts and attendance rate).
type StatsRequest struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (r *StatsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil && *r.StartDate != "" {
		if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil && *r.EndDate != "" {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	if r.StartDate != nil && r.EndDate != nil && *r.StartDate != "" && *r.EndDate != "" {
		from, _ := validator.IsValidDate(*r.StartDate)
		to, _ := validator.IsValidDate(*r.EndDate)
		if to.Before(from) {
			return validator.ValidationErrors{{
				Field:   "end_date",
				Message: "end_date must not be earlier than start_date",
			}}
		}
	}

	return nil
}

// DayCount is one point of the trailing-week series.
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// StatsSnapshot is the read-side dashboard/report aggregate. It is derived
// on demand and never stored.
type StatsSnapshot struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	TotalEmployees int `json:"total_employees"`
	PresentToday   int `json:"present_today"`
	LateToday      int `json:"late_today"`
	AbsentToday    int `json:"absent_today"`
	OnLeaveToday   int `json:"on_leave_today"`

	// Trailing 7 days, oldest first.
	WeeklyAttendance []DayCount `json:"weekly_attendance"`
	WeeklyLate       []DayCount `json:"weekly_late"`

	OvertimeHours float64 `json:"overtime_hours"`

	// Per-employee section, present only when the request named an employee.
	PresentDays    *int `json:"present_days,omitempty"`
	LateDays       *int `json:"late_days,omitempty"`
	AbsentDays     *int `json:"absent_days,omitempty"`
	AttendanceRate *int `json:"attendance_rate,omitempty"` // percent, rounded
}
