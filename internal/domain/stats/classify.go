package stats

import (
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
)

// Day classifications derived at read time. Stored record statuses pass
// through unchanged; absent and on_leave only ever exist here.
const (
	ClassOnLeave   = "on_leave"
	ClassAbsent    = "absent"
	ClassNotMarked = "not_marked"
)

// ClassifyDay resolves what a calendar day counts as for one employee.
// Precedence: approved leave > recorded status > absent. A day with neither
// is absent only once it is fully in the past; today and future days stay
// not_marked.
func ClassifyDay(rec *attendance.Record, onApprovedLeave bool, day, today time.Time) string {
	if onApprovedLeave {
		return ClassOnLeave
	}
	if rec != nil {
		return rec.Status
	}
	if day.Before(today) {
		return ClassAbsent
	}
	return ClassNotMarked
}

// Attended reports whether a classification counts toward the attendance
// rate numerator.
func Attended(class string) bool {
	switch class {
	case attendance.StatusPresent, attendance.StatusLate, attendance.StatusOvertime:
		return true
	}
	return false
}
