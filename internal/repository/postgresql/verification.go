package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/verification"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attemptRepository struct {
	db *database.DB
}

// IncrementFailed implements verification.AttemptRepository. The increment
// happens in the database so concurrent reports never lose a count.
func (r *attemptRepository) IncrementFailed(ctx context.Context, employeeID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET failed_attempts = failed_attempts + 1
		WHERE id = $1
		RETURNING failed_attempts
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, employee.ErrEmployeeNotFound
		}
		return 0, fmt.Errorf("failed to increment failed attempts: %w", err)
	}

	return count, nil
}

// ResetFailed implements verification.AttemptRepository.
func (r *attemptRepository) ResetFailed(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET failed_attempts = 0 WHERE id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to reset failed attempts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func NewAttemptRepository(db *database.DB) verification.AttemptRepository {
	return &attemptRepository{db: db}
}
