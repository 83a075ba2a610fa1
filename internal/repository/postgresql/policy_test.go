package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/attendly/attendly-backend-go/internal/domain/policy"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var policySettingsColumns = []string{
	"id", "late_punch_time", "mandatory_working_hours",
	"office_latitude", "office_longitude", "geofence_radius_meters",
	"failed_attempt_alert_threshold", "timezone", "updated_at",
}

func TestPolicyRepository_Get_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPolicyRepository(db)

	mock.ExpectQuery("SELECT").
		WillReturnRows(pgxmock.NewRows(policySettingsColumns).
			AddRow("settings", "09:00", 8.0, 28.7041, 77.1025, 100.0, 3, "Asia/Kolkata", time.Now()))

	settings, err := repo.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "09:00", settings.LatePunchTime)
	assert.Equal(t, 100.0, settings.GeofenceRadiusMeters)
	assert.Equal(t, "Asia/Kolkata", settings.Timezone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPolicyRepository_Get_MissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPolicyRepository(db)

	mock.ExpectQuery("SELECT").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background())

	assert.ErrorIs(t, err, policy.ErrSettingsNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPolicyRepository_Update_ReturnsStoredRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPolicyRepository(db)

	mock.ExpectQuery("UPDATE policy_settings").
		WithArgs("10:00", 9.0, 28.7041, 77.1025, 150.0, 5, "Asia/Kolkata").
		WillReturnRows(pgxmock.NewRows(policySettingsColumns).
			AddRow("settings", "10:00", 9.0, 28.7041, 77.1025, 150.0, 5, "Asia/Kolkata", time.Now()))

	settings, err := repo.Update(context.Background(), policy.Settings{
		LatePunchTime:               "10:00",
		MandatoryWorkingHours:       9,
		OfficeLatitude:              28.7041,
		OfficeLongitude:             77.1025,
		GeofenceRadiusMeters:        150,
		FailedAttemptAlertThreshold: 5,
		Timezone:                    "Asia/Kolkata",
	})

	require.NoError(t, err)
	assert.Equal(t, "10:00", settings.LatePunchTime)
	assert.Equal(t, 150.0, settings.GeofenceRadiusMeters)
	assert.NoError(t, mock.ExpectationsWereMet())
}
