package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/leave"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

const leaveColumns = `
	l.id, l.employee_id, l.from_date, l.to_date, l.reason, l.status,
	l.created_at, l.resolved_at, e.name, e.email, d.name
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.FromDate, &l.ToDate, &l.Reason, &l.Status,
		&l.CreatedAt, &l.ResolvedAt, &l.EmployeeName, &l.EmployeeEmail, &l.DepartmentName,
	)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
		}
		req.ID = id.String()
	}

	query := `
		INSERT INTO leave_requests (id, employee_id, from_date, to_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.FromDate,
		req.ToDate,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE l.id = $1
	`

	l, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return l, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, employeeID *string, status *string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if employeeID != nil && *employeeID != "" {
		query += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, *employeeID)
		argPos++
	}

	if status != nil && *status != "" {
		query += fmt.Sprintf(" AND l.status = $%d", argPos)
		args = append(args, *status)
		argPos++
	}

	query += " ORDER BY l.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	leaves := []leave.LeaveRequest{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leave requests: %w", err)
	}

	return leaves, nil
}

// Resolve implements leave.LeaveRequestRepository. The status = 'pending'
// guard is the compare-and-swap: between two admins racing on the same
// request exactly one UPDATE matches. The update and the follow-up reads run
// in one transaction so the returned row is the resolved one.
func (r *leaveRequestRepository) Resolve(ctx context.Context, id string, status string) (leave.LeaveRequest, error) {
	query := `
		UPDATE leave_requests SET
			status = $2,
			resolved_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
		RETURNING id
	`

	var resolved leave.LeaveRequest
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		var resolvedID string
		if err := q.QueryRow(ctx, query, id, status).Scan(&resolvedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Either the request never existed or it is already terminal.
				if _, getErr := r.GetByID(ctx, id); getErr != nil {
					return getErr
				}
				return leave.ErrLeaveAlreadyResolved
			}
			return fmt.Errorf("failed to resolve leave request: %w", err)
		}

		var err error
		resolved, err = r.GetByID(ctx, resolvedID)
		return err
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return resolved, nil
}

// ListApprovedOverlapping implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListApprovedOverlapping(ctx context.Context, employeeID *string, from, to time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN departments d ON d.id = e.department_id
		WHERE l.status = 'approved'
		  AND l.from_date <= $1
		  AND l.to_date >= $2
	`
	args := []interface{}{to, from}
	argPos := 3

	if employeeID != nil && *employeeID != "" {
		query += fmt.Sprintf(" AND l.employee_id = $%d", argPos)
		args = append(args, *employeeID)
	}

	query += " ORDER BY l.from_date ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	leaves := []leave.LeaveRequest{}
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read approved leaves: %w", err)
	}

	return leaves, nil
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}
