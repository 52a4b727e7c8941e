package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/erp-gateway/internal/domain/model"
)

func storedJob(id string, state model.JobState, completedAt *time.Time) *model.Job {
	return &model.Job{
		ID:          id,
		Kind:        model.JobKindStart,
		Target:      model.PartitionKOL,
		State:       state,
		CreatedAt:   time.Now(),
		CompletedAt: completedAt,
	}
}

func TestMemoryJobStore_PutAndGet(t *testing.T) {
	store := NewMemoryJobStore()
	store.Put(storedJob("a", model.JobStatePending, nil))

	got, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, model.JobStatePending, got.State)
}

func TestMemoryJobStore_GetReturnsSnapshot(t *testing.T) {
	store := NewMemoryJobStore()
	store.Put(storedJob("a", model.JobStatePending, nil))

	first, err := store.Get("a")
	require.NoError(t, err)
	first.State = model.JobStateFailed

	// Mutating the returned copy must not leak into the store.
	second, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, model.JobStatePending, second.State)
}

func TestMemoryJobStore_GetUnknown(t *testing.T) {
	store := NewMemoryJobStore()

	_, err := store.Get("missing")
	require.ErrorIs(t, err, ErrJobNotFound)
}

func TestMemoryJobStore_RemoveIsIdempotent(t *testing.T) {
	store := NewMemoryJobStore()
	store.Put(storedJob("a", model.JobStateCompleted, nil))

	store.Remove("a")
	store.Remove("a")
	store.Remove("never-existed")

	assert.Equal(t, 0, store.Len())
}

func TestMemoryJobStore_RemoveTerminalBefore(t *testing.T) {
	store := NewMemoryJobStore()
	old := time.Now().Add(-10 * time.Minute)
	fresh := time.Now()

	store.Put(storedJob("expired-completed", model.JobStateCompleted, &old))
	store.Put(storedJob("expired-failed", model.JobStateFailed, &old))
	store.Put(storedJob("recent", model.JobStateCompleted, &fresh))
	store.Put(storedJob("in-flight", model.JobStateProcessing, nil))

	removed := store.RemoveTerminalBefore(time.Now().Add(-5 * time.Minute))
	assert.Equal(t, 2, removed)

	_, err := store.Get("expired-completed")
	require.ErrorIs(t, err, ErrJobNotFound)
	_, err = store.Get("expired-failed")
	require.ErrorIs(t, err, ErrJobNotFound)

	_, err = store.Get("recent")
	require.NoError(t, err)
	_, err = store.Get("in-flight")
	require.NoError(t, err)
}
