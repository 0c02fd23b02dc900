package plans

import (
	"context"
	"slices"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	records []PlanRecord
	byID    map[string]int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]int)}
}

func (r *MemoryRepo) Create(ctx context.Context, record PlanRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx, ok := r.byID[record.ID]; ok {
		r.records[idx] = record
		return nil
	}
	r.byID[record.ID] = len(r.records)
	r.records = append(r.records, record)
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (PlanRecord, error) {
	if err := ctx.Err(); err != nil {
		return PlanRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return PlanRecord{}, ErrNotFound
	}
	return r.records[idx], nil
}

func (r *MemoryRepo) ListByProfile(ctx context.Context, profileID string, limit, offset int) ([]PlanRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)

	r.mu.RLock()
	var matched []PlanRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].ProfileID == profileID {
			matched = append(matched, r.records[i])
		}
	}
	r.mu.RUnlock()

	// Later inserts win ties on created_at.
	slices.SortStableFunc(matched, func(a, b PlanRecord) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if offset >= len(matched) {
		return []PlanRecord{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}
