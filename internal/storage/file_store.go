package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"

	"jira_tracker/internal/tracker"
)

// FileOptionsStore keeps the options of every tracker in one config file,
// keyed by tracker name. Any format viper reads (yaml, json, toml) works.
type FileOptionsStore struct {
	path string
	mu   sync.Mutex
}

// NewFileOptionsStore creates a store backed by the file at path.
func NewFileOptionsStore(path string) *FileOptionsStore {
	return &FileOptionsStore{path: path}
}

func (s *FileOptionsStore) read() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return v, nil
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}
	return v, nil
}

// Load reads the options of the named tracker
func (s *FileOptionsStore) Load(_ context.Context, name string) (tracker.Options, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.read()
	if err != nil {
		return nil, err
	}
	if !v.IsSet(name) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return tracker.Options(v.GetStringMapString(name)), nil
}

// Save writes the options of the named tracker, keeping other trackers intact
func (s *FileOptionsStore) Save(_ context.Context, name string, options tracker.Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.read()
	if err != nil {
		return err
	}
	values := make(map[string]any, len(options))
	for k, val := range options {
		values[k] = val
	}
	v.Set(name, values)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write options file: %w", err)
	}
	return nil
}
