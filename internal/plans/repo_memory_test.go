package plans

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoRoundTrip(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, PlanRecord{ID: "a", ProfileID: "p", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, PlanRecord{ID: "b", ProfileID: "p", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, PlanRecord{ID: "c", ProfileID: "p", CreatedAt: base.Add(-time.Hour)}))
	require.NoError(t, repo.Create(ctx, PlanRecord{ID: "d", ProfileID: "other", CreatedAt: base}))

	got, err := repo.GetByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "p", got.ProfileID)

	_, err = repo.GetByID(ctx, "zzz")
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := repo.ListByProfile(ctx, "p", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, recordIDs(list))

	list, err = repo.ListByProfile(ctx, "p", 10, 5)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryRepoHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryRepo()
	assert.ErrorIs(t, repo.Create(ctx, PlanRecord{ID: "a"}), context.Canceled)
	_, err := repo.ListByProfile(ctx, "p", 1, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
