// Package trackertest provides an in-memory Jira collaborator for tests.
package trackertest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"jira_tracker/internal/model"
	"jira_tracker/internal/tracker"
)

// ErrTransport is the raw failure the fake returns when told to fail.
var ErrTransport = errors.New("fake jira: connection refused")

// Jira records every call and answers from its fields.
type Jira struct {
	mu sync.Mutex

	ProjectID        string // remote id returned for any key
	FailConnect      bool
	FailLookup       bool
	FailSave         bool
	ValidationErrors string // non-empty makes saves report validation errors

	Credentials []tracker.Credentials
	Payloads    []model.IssuePayload
	next        int
}

// NewJira returns a fake that resolves every project to id 10100.
func NewJira() *Jira {
	return &Jira{ProjectID: "10100"}
}

// NewClient implements tracker.Connector.
func (j *Jira) NewClient(_ context.Context, creds tracker.Credentials) (tracker.Client, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Credentials = append(j.Credentials, creds)
	if j.FailConnect {
		return nil, ErrTransport
	}
	return &client{jira: j}, nil
}

type client struct {
	jira *Jira
}

func (c *client) FindProject(_ context.Context, key string) (tracker.Project, error) {
	c.jira.mu.Lock()
	defer c.jira.mu.Unlock()
	if c.jira.FailLookup {
		return tracker.Project{}, ErrTransport
	}
	return tracker.Project{ID: c.jira.ProjectID, Key: key}, nil
}

func (c *client) BuildIssue() tracker.IssueBuilder {
	return &builder{jira: c.jira}
}

type builder struct {
	jira   *Jira
	key    string
	errors string
}

func (b *builder) Save(_ context.Context, payload model.IssuePayload) error {
	b.jira.mu.Lock()
	defer b.jira.mu.Unlock()
	b.jira.Payloads = append(b.jira.Payloads, payload)
	if b.jira.FailSave {
		return ErrTransport
	}
	if b.jira.ValidationErrors != "" {
		b.errors = b.jira.ValidationErrors
		return nil
	}
	b.jira.next++
	b.key = fmt.Sprintf("PROJ-%d", b.jira.next)
	return nil
}

func (b *builder) HasErrors() bool { return b.errors != "" }

func (b *builder) Errors() string { return b.errors }

func (b *builder) Key() string { return b.key }

// Options returns a complete set of tracker options.
func Options() tracker.Options {
	return tracker.Options{
		tracker.KeyBaseURL:       "https://jira.example.org",
		tracker.KeyContextPath:   "/",
		tracker.KeyUsername:      "johndoe",
		tracker.KeyPassword:      "p@assW0rd",
		tracker.KeyProjectID:     "PROJ",
		tracker.KeyIssuePriority: "Normal",
	}
}
