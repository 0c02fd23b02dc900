package plans

import "context"

// Repo persists generated plans.
type Repo interface {
	Create(ctx context.Context, record PlanRecord) error
	GetByID(ctx context.Context, id string) (PlanRecord, error)
	// ListByProfile returns a profile's plans newest first.
	ListByProfile(ctx context.Context, profileID string, limit, offset int) ([]PlanRecord, error)
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
