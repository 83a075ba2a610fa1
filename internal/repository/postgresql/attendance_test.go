package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*database.DB, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &database.DB{Pool: mock}, mock
}

func TestAttendanceRepository_Create_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	punchIn := time.Date(2026, 3, 2, 9, 5, 0, 0, time.UTC)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO attendance_records").
		WithArgs("emp-1", date, &punchIn, (*float64)(nil), (*float64)(nil), true, attendance.StatusLate).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("rec-1", now, now))

	rec, err := repo.Create(context.Background(), attendance.Record{
		EmployeeID: "emp-1",
		Date:       date,
		PunchIn:    &punchIn,
		IsLate:     true,
		Status:     attendance.StatusLate,
	})

	require.NoError(t, err)
	assert.Equal(t, "rec-1", rec.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_Create_ConflictLosesRace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	// ON CONFLICT DO NOTHING returns no row to the losing writer.
	mock.ExpectQuery("INSERT INTO attendance_records").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Create(context.Background(), attendance.Record{
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendance.ErrAlreadyPunchedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_Complete_AlreadyClosed(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	// The punch_out IS NULL guard matches no row once the day is closed.
	mock.ExpectQuery("UPDATE attendance_records").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Complete(context.Background(), attendance.Record{
		ID:     "rec-1",
		Status: attendance.StatusPresent,
	})

	assert.ErrorIs(t, err, attendance.ErrAlreadyCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepository_GetByEmployeeAndDate_NoRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	mock.ExpectQuery("SELECT").
		WillReturnError(pgx.ErrNoRows)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Nil(t, rec)
	assert.NoError(t, mock.ExpectationsWereMet())
}
