package policy

import (
	"time"

	"github.com/attendly/attendly-backend-go/internal/pkg/utils"
)

// Settings is the singleton, admin-mutable attendance policy. Every punch
// and every stats derivation reads one consistent snapshot of it.
type Settings struct {
	ID                          string
	LatePunchTime               string // "HH:MM", office-local
	MandatoryWorkingHours       float64
	OfficeLatitude              float64
	OfficeLongitude             float64
	GeofenceRadiusMeters        float64
	FailedAttemptAlertThreshold int
	Timezone                    string // IANA name the office clock runs on
	UpdatedAt                   time.Time
}

// Location resolves the office timezone. Falls back to UTC when the stored
// name cannot be loaded so punches never fail on a bad timezone row.
func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// WithinOffice reports whether a coordinate lies inside the office geofence.
// A missing coordinate fails closed.
func (s Settings) WithinOffice(lat, lng *float64) bool {
	if lat == nil || lng == nil {
		return false
	}
	distance := utils.CalculateHaversineDistance(*lat, *lng, s.OfficeLatitude, s.OfficeLongitude)
	return distance <= s.GeofenceRadiusMeters
}

// IsLate reports whether a punch-in at t (office-local) is past the cutoff.
func (s Settings) IsLate(t time.Time) bool {
	cutoff, err := time.Parse("15:04", s.LatePunchTime)
	if err != nil {
		return false
	}
	minuteOfDay := t.Hour()*60 + t.Minute()
	cutoffMinute := cutoff.Hour()*60 + cutoff.Minute()
	return minuteOfDay > cutoffMinute
}
