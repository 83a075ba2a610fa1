package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts the day's record. The (employee_id, date) pair is
	// unique; when another writer got there first the insert reports
	// ErrAlreadyPunchedIn instead of corrupting the row.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByEmployeeAndDate returns the record for the day, or nil.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Complete closes an open punch pair. The update is conditional on
	// punch_out still being NULL; a lost race reports ErrAlreadyCompleted.
	Complete(ctx context.Context, rec Record) (Record, error)

	// ListByEmployeeInRange returns an employee's records between two dates,
	// newest first, paged.
	ListByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time, page, limit int) ([]Record, int64, error)

	// ListInRange returns records across employees for reports and stats.
	ListInRange(ctx context.Context, filter ReportFilter) ([]Record, error)

	// ListOpenBefore returns records from past days whose punch pair was
	// never closed. The auto-close job sweeps these.
	ListOpenBefore(ctx context.Context, date time.Time) ([]Record, error)
}
