package policy

import (
	"testing"
	"time"
)

func officeSettings() Settings {
	return Settings{
		LatePunchTime:               "09:00",
		MandatoryWorkingHours:       8,
		OfficeLatitude:              28.7041,
		OfficeLongitude:             77.1025,
		GeofenceRadiusMeters:        100,
		FailedAttemptAlertThreshold: 3,
		Timezone:                    "Asia/Kolkata",
	}
}

func TestSettings_WithinOffice(t *testing.T) {
	s := officeSettings()

	atOffice := func(v float64) *float64 { return &v }

	if !s.WithinOffice(atOffice(28.7041), atOffice(77.1025)) {
		t.Error("exact office coordinate should be within the geofence")
	}

	// ~50 m north of the office, inside a 100 m radius.
	if !s.WithinOffice(atOffice(28.70455), atOffice(77.1025)) {
		t.Error("coordinate 50m from office should be within a 100m geofence")
	}

	// ~1 km away.
	if s.WithinOffice(atOffice(28.7131), atOffice(77.1025)) {
		t.Error("coordinate 1km from office should be outside the geofence")
	}
}

func TestSettings_WithinOffice_FailsClosed(t *testing.T) {
	s := officeSettings()
	lat := 28.7041

	if s.WithinOffice(nil, nil) {
		t.Error("missing coordinate must fail closed")
	}
	if s.WithinOffice(&lat, nil) {
		t.Error("missing longitude must fail closed")
	}
}

func TestSettings_IsLate(t *testing.T) {
	s := officeSettings()
	loc := s.Location()

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before cutoff", time.Date(2024, 12, 10, 8, 59, 0, 0, loc), false},
		{"exactly at cutoff", time.Date(2024, 12, 10, 9, 0, 59, 0, loc), false},
		{"one minute past", time.Date(2024, 12, 10, 9, 1, 0, 0, loc), true},
		{"well past", time.Date(2024, 12, 10, 9, 5, 0, 0, loc), true},
	}

	for _, c := range cases {
		if got := s.IsLate(c.at); got != c.want {
			t.Errorf("%s: IsLate(%v) = %v, want %v", c.name, c.at, got, c.want)
		}
	}
}

func TestSettings_Location_FallsBackToUTC(t *testing.T) {
	s := officeSettings()
	s.Timezone = "Not/AZone"
	if s.Location() != time.UTC {
		t.Error("unknown timezone should fall back to UTC")
	}
}
