package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jiraapi "github.com/ctreminiom/go-atlassian/v2/jira/v2"
	models "github.com/ctreminiom/go-atlassian/v2/pkg/infra/models"

	"jira_tracker/internal/model"
	"jira_tracker/internal/tracker"
)

// DefaultTimeout bounds every Jira request when no HTTP client is injected.
const DefaultTimeout = 30 * time.Second

const userAgent = "jira-tracker"

// Connector builds go-atlassian backed clients.
type Connector struct {
	// HTTPClient is used as is when set; otherwise a client with Timeout is created per call.
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewConnector returns a Connector whose requests time out after timeout.
func NewConnector(timeout time.Duration) *Connector {
	return &Connector{Timeout: timeout}
}

// NewClient creates a Jira REST client for the given credentials.
func (c *Connector) NewClient(_ context.Context, creds tracker.Credentials) (tracker.Client, error) {
	if creds.AuthType != "" && creds.AuthType != tracker.AuthBasic {
		return nil, fmt.Errorf("jira: unsupported auth type %q", creds.AuthType)
	}

	site, err := siteURL(creds.Site, creds.ContextPath)
	if err != nil {
		return nil, err
	}

	api, err := jiraapi.New(c.httpClient(), site)
	if err != nil {
		return nil, fmt.Errorf("jira: initialise client: %w", err)
	}
	api.Auth.SetUserAgent(userAgent)
	api.Auth.SetBasicAuth(creds.Username, creds.Password)

	return &Client{api: api}, nil
}

func (c *Connector) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// siteURL joins the base URL and context path into the root the SDK resolves API paths against.
func siteURL(base, contextPath string) (string, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return "", fmt.Errorf("jira: site is required to construct client")
	}

	parsed, err := url.Parse(trimmed + contextPath)
	if err != nil {
		return "", fmt.Errorf("jira: parse site: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("jira: site %q must be an absolute URL", trimmed)
	}

	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}
	return parsed.String(), nil
}

// Client wraps the go-atlassian Jira v2 client.
type Client struct {
	api *jiraapi.Client
}

// FindProject resolves a project key to its remote id.
func (c *Client) FindProject(ctx context.Context, key string) (tracker.Project, error) {
	project, _, err := c.api.Project.Get(ctx, key, nil)
	if err != nil {
		return tracker.Project{}, fmt.Errorf("jira: get project %s: %w", key, err)
	}
	if project == nil || project.ID == "" {
		return tracker.Project{}, fmt.Errorf("jira: project %s not found", key)
	}
	return tracker.Project{ID: project.ID, Key: project.Key}, nil
}

// BuildIssue returns a builder for one new issue.
func (c *Client) BuildIssue() tracker.IssueBuilder {
	return &IssueBuilder{api: c.api}
}

// IssueBuilder creates one issue and remembers Jira's answer.
type IssueBuilder struct {
	api    *jiraapi.Client
	key    string
	errors model.JiraErrorCollection
}

// Save posts the issue. A 400 carrying a Jira error collection is recorded
// as validation errors and does not return an error.
func (b *IssueBuilder) Save(ctx context.Context, payload model.IssuePayload) error {
	created, res, err := b.api.Issue.Create(ctx, toSchema(payload), nil)
	if err != nil {
		if res != nil && res.Code == http.StatusBadRequest {
			var collection model.JiraErrorCollection
			if jsonErr := json.Unmarshal(res.Bytes.Bytes(), &collection); jsonErr == nil && !collection.Empty() {
				b.errors = collection
				return nil
			}
		}
		return fmt.Errorf("jira: create issue: %w", err)
	}
	if created == nil || created.Key == "" {
		return fmt.Errorf("jira: create issue: empty response")
	}

	b.key = created.Key
	return nil
}

// HasErrors reports whether Jira rejected the issue fields.
func (b *IssueBuilder) HasErrors() bool {
	return !b.errors.Empty()
}

// Errors returns Jira's validation messages.
func (b *IssueBuilder) Errors() string {
	return b.errors.String()
}

// Key returns the key of the saved issue.
func (b *IssueBuilder) Key() string {
	return b.key
}

func toSchema(payload model.IssuePayload) *models.IssueSchemeV2 {
	f := payload.Fields
	return &models.IssueSchemeV2{
		Fields: &models.IssueFieldsSchemeV2{
			Summary:     f.Summary,
			Description: f.Description,
			Project:     &models.ProjectScheme{ID: f.Project.ID},
			IssueType:   &models.IssueTypeScheme{ID: f.IssueType.ID},
			Priority:    &models.PriorityScheme{Name: f.Priority.Name},
		},
	}
}
