package storage

import (
	"context"
	"errors"

	"jira_tracker/internal/tracker"
)

// ErrNotFound is returned when no options are stored for a tracker.
var ErrNotFound = errors.New("tracker options not found")

// OptionsStore defines the interface for tracker options storage.
// Options are stored as given; credentials are not encrypted.
type OptionsStore interface {
	Load(ctx context.Context, name string) (tracker.Options, error)
	Save(ctx context.Context, name string, options tracker.Options) error
}
