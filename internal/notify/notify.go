package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"jira_tracker/internal/logger"
	"jira_tracker/internal/tracker"
)

// Notifier announces created issues.
type Notifier interface {
	IssueCreated(ctx context.Context, issue tracker.Issue, title string) error
}

// Nop drops every notification.
type Nop struct{}

// IssueCreated does nothing.
func (Nop) IssueCreated(context.Context, tracker.Issue, string) error { return nil }

// SlackNotifier posts a message to one channel per created issue.
type SlackNotifier struct {
	api       *slack.Client
	channelID string
}

// NewSlackNotifier creates a notifier posting as the bot behind token.
func NewSlackNotifier(token, channelID string, options ...slack.Option) *SlackNotifier {
	return &SlackNotifier{
		api:       slack.New(token, options...),
		channelID: channelID,
	}
}

// IssueCreated posts a link to the issue.
func (n *SlackNotifier) IssueCreated(ctx context.Context, issue tracker.Issue, title string) error {
	text := fmt.Sprintf(":jira: Created <%s|%s>: %s", issue.URL, issue.Key, tracker.SanitizeTitle(title))
	_, ts, err := n.api.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionDisableLinkUnfurl(),
	)
	if err != nil {
		return fmt.Errorf("failed to post slack message: %w", err)
	}
	logger.GetLogger().Debug("posted issue notification",
		zap.String("channel", n.channelID),
		zap.String("ts", ts),
		zap.String("key", issue.Key))
	return nil
}
