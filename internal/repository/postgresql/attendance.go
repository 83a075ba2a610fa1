package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.employee_id, a.date,
	a.punch_in, a.punch_in_latitude, a.punch_in_longitude,
	a.punch_out, a.punch_out_latitude, a.punch_out_longitude,
	a.is_late, a.working_hours, a.overtime_hours, a.status,
	a.created_at, a.updated_at, e.name, e.email
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.PunchIn, &rec.PunchInLatitude, &rec.PunchInLongitude,
		&rec.PunchOut, &rec.PunchOutLatitude, &rec.PunchOutLongitude,
		&rec.IsLate, &rec.WorkingHours, &rec.OvertimeHours, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.EmployeeEmail,
	)
	return rec, err
}

// Create implements attendance.AttendanceRepository. The unique
// (employee_id, date) index makes the insert the serialization point for
// concurrent punch-ins: the loser's insert affects no row.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date,
			punch_in, punch_in_latitude, punch_in_longitude,
			is_late, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID,
		rec.Date,
		rec.PunchIn,
		rec.PunchInLatitude,
		rec.PunchInLongitude,
		rec.IsLate,
		rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict path: a record for the day already exists.
			return attendance.Record{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// Complete implements attendance.AttendanceRepository. The punch_out IS NULL
// guard is the compare-and-swap: zero rows back means another writer already
// closed the day.
func (a *attendanceRepository) Complete(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records SET
			punch_out = $2,
			punch_out_latitude = $3,
			punch_out_longitude = $4,
			working_hours = $5,
			overtime_hours = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $1
		  AND punch_out IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.PunchOut,
		rec.PunchOutLatitude,
		rec.PunchOutLongitude,
		rec.WorkingHours,
		rec.OvertimeHours,
		rec.Status,
	).Scan(&rec.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrAlreadyCompleted
		}
		return attendance.Record{}, fmt.Errorf("failed to complete attendance record: %w", err)
	}

	return rec, nil
}

// ListByEmployeeInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time, page, limit int) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
	`

	var total int64
	if err := q.QueryRow(ctx, countQuery, employeeID, from, to).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2 AND $3
		ORDER BY a.date DESC
		LIMIT $4 OFFSET $5
	`

	rows, err := q.Query(ctx, query, employeeID, from, to, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListInRange(ctx context.Context, filter attendance.ReportFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		query += fmt.Sprintf(" AND a.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}

	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		query += fmt.Sprintf(" AND e.department_id = $%d", argPos)
		args = append(args, *filter.DepartmentID)
		argPos++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		query += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}

	if filter.EndDate != nil && *filter.EndDate != "" {
		query += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query += " ORDER BY a.date DESC, e.name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListOpenBefore implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListOpenBefore(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.punch_out IS NULL
		  AND a.date < $1
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendance records: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	records := []attendance.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}
	return records, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
