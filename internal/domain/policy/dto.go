package policy

import (
	"time"

	"github.com/attendly/attendly-backend-go/internal/pkg/validator"
)

// UpdateSettingsRequest replaces the full policy. Partial updates are not
// supported; the previous value is simply overwritten.
type UpdateSettingsRequest struct {
	LatePunchTime               string  `json:"late_punch_time"`
	MandatoryWorkingHours       float64 `json:"mandatory_working_hours"`
	OfficeLatitude              float64 `json:"office_latitude"`
	OfficeLongitude             float64 `json:"office_longitude"`
	GeofenceRadiusMeters        float64 `json:"geofence_radius_meters"`
	FailedAttemptAlertThreshold int     `json:"failed_attempt_alert_threshold"`
	Timezone                    string  `json:"timezone"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidTimeOfDay(r.LatePunchTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "late_punch_time",
			Message: "late_punch_time must be in HH:MM format",
		})
	}

	if r.MandatoryWorkingHours < 1 || r.MandatoryWorkingHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "mandatory_working_hours",
			Message: "mandatory_working_hours must be between 1 and 24",
		})
	}

	if !validator.IsFinite(r.OfficeLatitude) || r.OfficeLatitude < -90 || r.OfficeLatitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}

	if !validator.IsFinite(r.OfficeLongitude) || r.OfficeLongitude < -180 || r.OfficeLongitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}

	if !validator.IsFinite(r.GeofenceRadiusMeters) || r.GeofenceRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius_meters",
			Message: "geofence_radius_meters must be a positive number",
		})
	}

	if r.FailedAttemptAlertThreshold < 1 || r.FailedAttemptAlertThreshold > 10 {
		errs = append(errs, validator.ValidationError{
			Field:   "failed_attempt_alert_threshold",
			Message: "failed_attempt_alert_threshold must be between 1 and 10",
		})
	}

	if validator.IsEmpty(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone is required",
		})
	} else if _, err := time.LoadLocation(r.Timezone); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone name",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	LatePunchTime               string  `json:"late_punch_time"`
	MandatoryWorkingHours       float64 `json:"mandatory_working_hours"`
	OfficeLatitude              float64 `json:"office_latitude"`
	OfficeLongitude             float64 `json:"office_longitude"`
	GeofenceRadiusMeters        float64 `json:"geofence_radius_meters"`
	FailedAttemptAlertThreshold int     `json:"failed_attempt_alert_threshold"`
	Timezone                    string  `json:"timezone"`
	UpdatedAt                   string  `json:"updated_at"`
}
