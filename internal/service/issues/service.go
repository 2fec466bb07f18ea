package issues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jira_tracker/internal/logger"
	"jira_tracker/internal/model"
	"jira_tracker/internal/notify"
	"jira_tracker/internal/storage"
	"jira_tracker/internal/tracker"
)

// ErrNotConfigured means no project has been set up for the tracker yet.
var ErrNotConfigured = errors.New("tracker is not configured")

// ErrEmptyTitle is returned when a request has no usable title.
var ErrEmptyTitle = errors.New("title is required")

// Request asks for one new issue.
// When Body is empty and Problem is set, the body is rendered from the problem.
type Request struct {
	Title   string         `json:"title"`
	Body    string         `json:"body,omitempty"`
	Problem *model.Problem `json:"problem,omitempty"`
	User    model.User     `json:"user"`
}

// Validation is the outcome of checking a set of options.
type Validation struct {
	Configured bool     `json:"configured"`
	Errors     []string `json:"errors"`
}

// Service is what the host surfaces (HTTP, MCP, CLI) call into.
type Service struct {
	name      string
	store     storage.OptionsStore
	connector tracker.Connector
	notifier  notify.Notifier
}

// NewService wires a tracker name to its options store and Jira connector.
// A nil notifier disables notifications.
func NewService(name string, store storage.OptionsStore, connector tracker.Connector, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{
		name:      name,
		store:     store,
		connector: connector,
		notifier:  notifier,
	}
}

// Describe returns the tracker metadata.
func (s *Service) Describe() tracker.Descriptor {
	return tracker.Describe()
}

// Validate checks options without storing them.
func (s *Service) Validate(options tracker.Options, detailed bool) Validation {
	errs := options.ValidationErrors()
	if detailed {
		errs = options.FieldErrors()
	}
	v := Validation{Configured: options.IsConfigured(), Errors: []string{}}
	for _, err := range errs {
		v.Errors = append(v.Errors, err.Error())
	}
	return v
}

// SaveOptions stores options once they are valid.
func (s *Service) SaveOptions(ctx context.Context, options tracker.Options) error {
	if errs := options.ValidationErrors(); len(errs) > 0 {
		return errs[0]
	}
	if err := s.store.Save(ctx, s.name, options); err != nil {
		return fmt.Errorf("failed to save options for %s: %w", s.name, err)
	}
	return nil
}

// Tracker loads the options and returns a tracker ready to create issues.
func (s *Service) Tracker(ctx context.Context) (*tracker.Tracker, error) {
	options, err := s.store.Load(ctx, s.name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotConfigured
		}
		return nil, fmt.Errorf("failed to load options for %s: %w", s.name, err)
	}
	if !options.IsConfigured() {
		return nil, ErrNotConfigured
	}
	if errs := options.ValidationErrors(); len(errs) > 0 {
		return nil, errs[0]
	}
	return tracker.New(options, s.connector), nil
}

// CreateIssue files an issue and announces it. Notification failures are only logged.
func (s *Service) CreateIssue(ctx context.Context, req Request) (tracker.Issue, error) {
	if strings.TrimSpace(tracker.SanitizeTitle(req.Title)) == "" {
		return tracker.Issue{}, ErrEmptyTitle
	}

	t, err := s.Tracker(ctx)
	if err != nil {
		return tracker.Issue{}, err
	}

	body := req.Body
	if body == "" && req.Problem != nil {
		body, err = tracker.RenderBody(*req.Problem)
		if err != nil {
			return tracker.Issue{}, err
		}
	}

	issue, err := t.CreateIssue(ctx, req.Title, body, req.User)
	if err != nil {
		return tracker.Issue{}, err
	}

	if err := s.notifier.IssueCreated(ctx, issue, req.Title); err != nil {
		logger.GetLogger().Warn("failed to announce issue", zap.String("key", issue.Key), zap.Error(err))
	}
	return issue, nil
}
