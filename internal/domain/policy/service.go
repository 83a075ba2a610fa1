package policy

import (
	"context"
)

// PolicyService defines business logic for policy settings
type PolicyService interface {
	// Get returns the current policy snapshot
	Get(ctx context.Context) (SettingsResponse, error)

	// Update atomically replaces the policy settings (admin)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
