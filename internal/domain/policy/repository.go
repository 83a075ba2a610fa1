package policy

import (
	"context"
)

type PolicyRepository interface {
	// Get returns the current settings row. Readers always observe a fully
	// applied snapshot; the row is replaced in a single UPDATE.
	Get(ctx context.Context) (Settings, error)

	// Update overwrites the settings row and returns the stored value.
	Update(ctx context.Context, settings Settings) (Settings, error)
}
