package policy

import (
	"context"
	"fmt"

	"github.com/attendly/attendly-backend-go/internal/domain/policy"
)

type PolicyServiceImpl struct {
	policy.PolicyRepository
}

// Get implements policy.PolicyService.
func (s *PolicyServiceImpl) Get(ctx context.Context) (policy.SettingsResponse, error) {
	settings, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return policy.SettingsResponse{}, fmt.Errorf("failed to get policy settings: %w", err)
	}

	return mapSettingsToResponse(settings), nil
}

// Update implements policy.PolicyService. The whole settings row is replaced
// in one write so concurrent readers never observe a half-applied policy.
func (s *PolicyServiceImpl) Update(ctx context.Context, req policy.UpdateSettingsRequest) (policy.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return policy.SettingsResponse{}, err
	}

	settings, err := s.PolicyRepository.Update(ctx, policy.Settings{
		LatePunchTime:               req.LatePunchTime,
		MandatoryWorkingHours:       req.MandatoryWorkingHours,
		OfficeLatitude:              req.OfficeLatitude,
		OfficeLongitude:             req.OfficeLongitude,
		GeofenceRadiusMeters:        req.GeofenceRadiusMeters,
		FailedAttemptAlertThreshold: req.FailedAttemptAlertThreshold,
		Timezone:                    req.Timezone,
	})
	if err != nil {
		return policy.SettingsResponse{}, fmt.Errorf("failed to update policy settings: %w", err)
	}

	return mapSettingsToResponse(settings), nil
}

func mapSettingsToResponse(s policy.Settings) policy.SettingsResponse {
	return policy.SettingsResponse{
		LatePunchTime:               s.LatePunchTime,
		MandatoryWorkingHours:       s.MandatoryWorkingHours,
		OfficeLatitude:              s.OfficeLatitude,
		OfficeLongitude:             s.OfficeLongitude,
		GeofenceRadiusMeters:        s.GeofenceRadiusMeters,
		FailedAttemptAlertThreshold: s.FailedAttemptAlertThreshold,
		Timezone:                    s.Timezone,
		UpdatedAt:                   s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func NewPolicyService(policyRepository policy.PolicyRepository) policy.PolicyService {
	return &PolicyServiceImpl{
		PolicyRepository: policyRepository,
	}
}
