package tracker

import (
	"context"
	"strings"

	"jira_tracker/internal/logger"
	"jira_tracker/internal/model"

	"go.uber.org/zap"
)

// Issue is a created Jira issue.
type Issue struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Tracker files issues in Jira for one set of options.
// It holds no state besides its options and is safe for concurrent use.
type Tracker struct {
	options   Options
	connector Connector
}

// New creates a Tracker. The options are copied.
func New(options Options, connector Connector) *Tracker {
	return &Tracker{
		options:   options.Clone(),
		connector: connector,
	}
}

// Options returns a copy of the tracker options.
func (t *Tracker) Options() Options {
	return t.options.Clone()
}

// CommentsAllowed is always false: this tracker never posts comments.
func (t *Tracker) CommentsAllowed() bool {
	return false
}

// URL returns the configured Jira root.
func (t *Tracker) URL() string {
	return t.options.URL()
}

// CreateIssue files a new issue and returns its key and browse URL.
// Options are not re-validated here; the host gates on ValidationErrors.
func (t *Tracker) CreateIssue(ctx context.Context, title, body string, user model.User) (Issue, error) {
	log := logger.GetLogger().With(
		zap.String("project", t.options.get(KeyProjectID)),
		zap.String("reporter", user.ID),
	)

	client, err := t.connector.NewClient(ctx, t.options.Credentials())
	if err != nil {
		log.Error("failed to create jira client", zap.Error(err))
		return Issue{}, transportError()
	}

	project, err := client.FindProject(ctx, t.options.get(KeyProjectID))
	if err != nil {
		log.Error("failed to find jira project", zap.Error(err))
		return Issue{}, transportError()
	}

	payload := model.IssuePayload{
		Fields: model.IssueFields{
			Summary:     SanitizeTitle(title),
			Description: body,
			Project:     model.JiraProject{ID: project.ID},
			IssueType:   model.JiraIssueType{ID: t.options.EffectiveIssueTypeID()},
			Priority:    model.JiraPriority{Name: t.options.get(KeyIssuePriority)},
		},
	}

	builder := client.BuildIssue()
	if err := builder.Save(ctx, payload); err != nil {
		log.Error("failed to save jira issue", zap.Error(err))
		return Issue{}, transportError()
	}

	if builder.HasErrors() {
		detail := builder.Errors()
		log.Warn("jira rejected issue fields", zap.String("errors", detail))
		return Issue{}, &Error{
			Kind:    RemoteValidationError,
			Message: "Jira validation errors: " + detail,
		}
	}

	key := builder.Key()
	log.Info("created jira issue", zap.String("key", key))
	return Issue{Key: key, URL: t.options.BrowseURL(key)}, nil
}

func transportError() *Error {
	return &Error{Kind: RemoteTransportError, Message: msgCouldNotCreate}
}

var lineBreaks = map[rune]bool{
	'\n':     true,
	'\r':     true,
	'\v':     true,
	'\f':     true,
	'\u0085': true,
	'\u2028': true,
	'\u2029': true,
}

// SanitizeTitle removes every line break from a title without replacing it.
func SanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		if lineBreaks[r] {
			return -1
		}
		return r
	}, title)
}
