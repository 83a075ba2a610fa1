package attendance

import (
	"strings"
	"time"

	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// PunchInRequest carries the device coordinate for a punch-in. The
// coordinate is optional at the validation layer; a missing coordinate fails
// the geofence check instead (fails closed).
type PunchInRequest struct {
	EmployeeID string   `json:"-"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (r *PunchInRequest) Validate() error {
	return validatePunch(r.EmployeeID, r.Latitude, r.Longitude)
}

type PunchOutRequest struct {
	EmployeeID string   `json:"-"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

func (r *PunchOutRequest) Validate() error {
	return validatePunch(r.EmployeeID, r.Latitude, r.Longitude)
}

func validatePunch(employeeID string, lat, lng *float64) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if lat != nil && (!validator.IsFinite(*lat) || *lat < -90 || *lat > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if lng != nil && (!validator.IsFinite(*lng) || *lng < -180 || *lng > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	Date              string   `json:"date"`
	PunchInTime       *string  `json:"punch_in_time,omitempty"`
	PunchOutTime      *string  `json:"punch_out_time,omitempty"`
	PunchInLatitude   *float64 `json:"punch_in_latitude,omitempty"`
	PunchInLongitude  *float64 `json:"punch_in_longitude,omitempty"`
	PunchOutLatitude  *float64 `json:"punch_out_latitude,omitempty"`
	PunchOutLongitude *float64 `json:"punch_out_longitude,omitempty"`
	IsLate            bool     `json:"is_late"`
	WorkingHours      *float64 `json:"working_hours,omitempty"`
	OvertimeHours     *float64 `json:"overtime_hours,omitempty"`
	Status            string   `json:"status"`
}

// HistoryFilter selects an employee's trailing history window.
type HistoryFilter struct {
	Period string `json:"period"` // week, month, year
	Page   int    `json:"page"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Period == "" {
		f.Period = "week"
	}
	if !validator.IsInSlice(strings.ToLower(f.Period), []string{"week", "month", "year"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of: week, month, year",
		})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Days returns the trailing window length for the period.
func (f *HistoryFilter) Days() int {
	switch strings.ToLower(f.Period) {
	case "month":
		return 30
	case "year":
		return 365
	default:
		return 7
	}
}

// ReportFilter selects attendance rows for the admin report feed.
type ReportFilter struct {
	EmployeeID   *string `json:"employee_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}

// MapRecordToResponse converts a Record entity to RecordResponse
func MapRecordToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		EmployeeName:      rec.EmployeeName,
		Date:              rec.Date.Format("2006-01-02"),
		PunchInTime:       timePtrToString(rec.PunchIn),
		PunchOutTime:      timePtrToString(rec.PunchOut),
		PunchInLatitude:   rec.PunchInLatitude,
		PunchInLongitude:  rec.PunchInLongitude,
		PunchOutLatitude:  rec.PunchOutLatitude,
		PunchOutLongitude: rec.PunchOutLongitude,
		IsLate:            rec.IsLate,
		WorkingHours:      rec.WorkingHours,
		OvertimeHours:     rec.OvertimeHours,
		Status:            rec.Status,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}
