package stats

import (
	"context"
)

// StatsService is the pure read side over attendance and leave state. It
// never mutates either.
type StatsService interface {
	GetStats(ctx context.Context, req StatsRequest) (StatsSnapshot, error)
}
