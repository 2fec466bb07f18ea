package tracker

import (
	"context"

	"jira_tracker/internal/model"
)

// Connector builds remote clients from credentials.
type Connector interface {
	NewClient(ctx context.Context, creds Credentials) (Client, error)
}

// Client is the subset of the Jira API the tracker needs.
type Client interface {
	FindProject(ctx context.Context, key string) (Project, error)
	BuildIssue() IssueBuilder
}

// Project is a Jira project as resolved from its key.
type Project struct {
	ID  string
	Key string
}

// IssueBuilder saves a single new issue.
// After Save returns nil, HasErrors tells whether Jira rejected the fields.
type IssueBuilder interface {
	Save(ctx context.Context, payload model.IssuePayload) error
	HasErrors() bool
	Errors() string
	Key() string
}
