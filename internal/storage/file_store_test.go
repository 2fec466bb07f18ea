package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira_tracker/internal/tracker"
)

func TestFileOptionsStoreRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jira:
  base_url: https://jira.example.org
  context_path: /jira
  username: johndoe
  password: secret
  project_id: PROJ
  issue_priority: Normal
  issue_type_id: 10007
`), 0o600))

	opts, err := NewFileOptionsStore(path).Load(context.Background(), "jira")
	require.NoError(t, err)
	assert.Equal(t, "https://jira.example.org", opts[tracker.KeyBaseURL])
	assert.Equal(t, "10007", opts.EffectiveIssueTypeID())
	assert.Empty(t, opts.ValidationErrors())

	_, err = NewFileOptionsStore(path).Load(context.Background(), "other")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileOptionsStoreSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackers.json")
	store := NewFileOptionsStore(path)
	ctx := context.Background()

	_, err := store.Load(ctx, "jira")
	assert.ErrorIs(t, err, ErrNotFound)

	first := tracker.Options{tracker.KeyBaseURL: "https://a.example.org", tracker.KeyProjectID: "A"}
	second := tracker.Options{tracker.KeyBaseURL: "https://b.example.org", tracker.KeyProjectID: "B"}
	require.NoError(t, store.Save(ctx, "jira", first))
	require.NoError(t, store.Save(ctx, "staging", second))

	got, err := store.Load(ctx, "jira")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = NewFileOptionsStore(path).Load(ctx, "staging")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestFileOptionsStoreBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jira: [unclosed"), 0o600))

	_, err := NewFileOptionsStore(path).Load(context.Background(), "jira")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
