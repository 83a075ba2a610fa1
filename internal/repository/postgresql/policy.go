package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendly-backend-go/internal/domain/policy"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type policyRepository struct {
	db *database.DB
}

// Get implements policy.PolicyRepository.
func (r *policyRepository) Get(ctx context.Context) (policy.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, late_punch_time, mandatory_working_hours,
			   office_latitude, office_longitude, geofence_radius_meters,
			   failed_attempt_alert_threshold, timezone, updated_at
		FROM policy_settings
		LIMIT 1
	`

	var s policy.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID, &s.LatePunchTime, &s.MandatoryWorkingHours,
		&s.OfficeLatitude, &s.OfficeLongitude, &s.GeofenceRadiusMeters,
		&s.FailedAttemptAlertThreshold, &s.Timezone, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Settings{}, policy.ErrSettingsNotFound
		}
		return policy.Settings{}, fmt.Errorf("failed to get policy settings: %w", err)
	}

	return s, nil
}

// Update implements policy.PolicyRepository. The single settings row is
// replaced in one UPDATE, so readers never see a partial policy.
func (r *policyRepository) Update(ctx context.Context, settings policy.Settings) (policy.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE policy_settings SET
			late_punch_time = $1,
			mandatory_working_hours = $2,
			office_latitude = $3,
			office_longitude = $4,
			geofence_radius_meters = $5,
			failed_attempt_alert_threshold = $6,
			timezone = $7,
			updated_at = NOW()
		RETURNING id, late_punch_time, mandatory_working_hours,
				  office_latitude, office_longitude, geofence_radius_meters,
				  failed_attempt_alert_threshold, timezone, updated_at
	`

	var s policy.Settings
	err := q.QueryRow(ctx, query,
		settings.LatePunchTime,
		settings.MandatoryWorkingHours,
		settings.OfficeLatitude,
		settings.OfficeLongitude,
		settings.GeofenceRadiusMeters,
		settings.FailedAttemptAlertThreshold,
		settings.Timezone,
	).Scan(
		&s.ID, &s.LatePunchTime, &s.MandatoryWorkingHours,
		&s.OfficeLatitude, &s.OfficeLongitude, &s.GeofenceRadiusMeters,
		&s.FailedAttemptAlertThreshold, &s.Timezone, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return policy.Settings{}, policy.ErrSettingsNotFound
		}
		return policy.Settings{}, fmt.Errorf("failed to update policy settings: %w", err)
	}

	return s, nil
}

func NewPolicyRepository(db *database.DB) policy.PolicyRepository {
	return &policyRepository{db: db}
}
