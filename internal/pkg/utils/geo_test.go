package utils

import (
	"math"
	"testing"
)

func TestCalculateHaversineDistance_SamePoint(t *testing.T) {
	d := CalculateHaversineDistance(28.7041, 77.1025, 28.7041, 77.1025)
	if d != 0 {
		t.Errorf("distance between identical points = %f, want 0", d)
	}
}

func TestCalculateHaversineDistance_KnownDistances(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		// One degree of latitude is ~111.2 km everywhere.
		{"one degree latitude", 0, 0, 1, 0, 111195, 100},
		// ~50 m north of the office coordinate used in seed data.
		{"fifty meters north", 28.7041, 77.1025, 28.70455, 77.1025, 50, 2},
		// Delhi to Mumbai, ~1150 km.
		{"delhi to mumbai", 28.7041, 77.1025, 19.0760, 72.8777, 1150000, 20000},
	}

	for _, c := range cases {
		got := CalculateHaversineDistance(c.lat1, c.lon1, c.lat2, c.lon2)
		if math.Abs(got-c.want) > c.tolerance {
			t.Errorf("%s: distance = %f, want %f ± %f", c.name, got, c.want, c.tolerance)
		}
	}
}

func TestCalculateHaversineDistance_Symmetric(t *testing.T) {
	a := CalculateHaversineDistance(28.7041, 77.1025, 19.0760, 72.8777)
	b := CalculateHaversineDistance(19.0760, 72.8777, 28.7041, 77.1025)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance not symmetric: %f vs %f", a, b)
	}
}
