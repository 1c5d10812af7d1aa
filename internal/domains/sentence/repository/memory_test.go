package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotebook-backend/internal/domains/sentence/model"
)

// stepClock returns the queued instants in order, then repeats the last one
type stepClock struct {
	times []time.Time
}

func (c *stepClock) now() time.Time {
	t := c.times[0]
	if len(c.times) > 1 {
		c.times = c.times[1:]
	}
	return t
}

func TestMemoryRepository_OrderNewestFirstWithTies(t *testing.T) {
	same := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := newMemoryRepository(func() time.Time { return same })
	ctx := context.Background()

	a, err := repo.Create(ctx, "A", "甲")
	require.NoError(t, err)
	b, err := repo.Create(ctx, "B", "乙")
	require.NoError(t, err)
	c, err := repo.Create(ctx, "C", "丙")
	require.NoError(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{c.ID, b.ID, a.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
}

func TestMemoryRepository_CreateTimestampsEqual(t *testing.T) {
	repo := NewMemoryRepository()

	s, err := repo.Create(context.Background(), "Stay hungry", "保持饥饿")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)
}

func TestMemoryRepository_UpdateKeepsUpdatedAtMonotonic(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &stepClock{times: []time.Time{t0, t0.Add(time.Minute), t0.Add(-time.Hour)}}
	repo := newMemoryRepository(clock.now)
	ctx := context.Background()

	s, err := repo.Create(ctx, "Stay hungry", "保持饥饿")
	require.NoError(t, err)

	first, err := repo.Update(ctx, s.ID, nil, strPtr("饥饿感"))
	require.NoError(t, err)
	assert.Equal(t, t0.Add(time.Minute), first.UpdatedAt)
	assert.Equal(t, "Stay hungry", first.English)
	assert.Equal(t, s.CreatedAt, first.CreatedAt)

	// clock went backwards: updatedAt must not
	second, err := repo.Update(ctx, s.ID, strPtr("Stay foolish"), nil)
	require.NoError(t, err)
	assert.Equal(t, first.UpdatedAt, second.UpdatedAt)
	assert.Equal(t, "饥饿感", second.Chinese)
}

func TestMemoryRepository_UpdateMissingNeverCreates(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	got, err := repo.Update(ctx, uuid.New(), strPtr("x"), strPtr("y"))
	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrSentenceNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryRepository_DeleteIdempotent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	s, err := repo.Create(ctx, "Stay hungry", "保持饥饿")
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, s.ID))
	assert.NoError(t, repo.Delete(ctx, s.ID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	s, err := repo.Create(ctx, "Stay hungry", "保持饥饿")
	require.NoError(t, err)
	s.English = "mutated"

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Stay hungry", list[0].English)
}

func TestMemoryRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.Create(ctx, "a", "b")
	assert.ErrorIs(t, err, context.Canceled)
}
