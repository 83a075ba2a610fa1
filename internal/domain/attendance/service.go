package attendance

import (
	"context"
)

// AttendanceService owns the punch-in/punch-out state machine per employee
// per day.
type AttendanceService interface {
	// PunchIn starts the day's work session after geofence validation
	PunchIn(ctx context.Context, req PunchInRequest) (RecordResponse, error)

	// PunchOut closes the day's session and derives working/overtime hours
	PunchOut(ctx context.Context, req PunchOutRequest) (RecordResponse, error)

	// GetToday returns today's record, or nil if the employee has not punched
	GetToday(ctx context.Context, employeeID string) (*RecordResponse, error)

	// GetHistory returns the employee's records over a trailing period, paged
	GetHistory(ctx context.Context, employeeID string, filter HistoryFilter) (ListRecordsResponse, error)

	// ListRecords returns raw records over a range for report consumers (admin)
	ListRecords(ctx context.Context, filter ReportFilter) ([]RecordResponse, error)
}
