package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira_tracker/internal/tracker"
)

func TestMemoryOptionsStore(t *testing.T) {
	store := NewMemoryOptionsStore()
	ctx := context.Background()

	_, err := store.Load(ctx, "jira")
	assert.ErrorIs(t, err, ErrNotFound)

	opts := tracker.Options{tracker.KeyProjectID: "PROJ"}
	require.NoError(t, store.Save(ctx, "jira", opts))
	opts[tracker.KeyProjectID] = "CHANGED"

	got, err := store.Load(ctx, "jira")
	require.NoError(t, err)
	assert.Equal(t, "PROJ", got[tracker.KeyProjectID])

	got[tracker.KeyProjectID] = "MUTATED"
	again, err := store.Load(ctx, "jira")
	require.NoError(t, err)
	assert.Equal(t, "PROJ", again[tracker.KeyProjectID])
}
