// Package bootstrap wires the issue service from process configuration.
package bootstrap

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"jira_tracker/internal/config"
	"jira_tracker/internal/logger"
	"jira_tracker/internal/notify"
	"jira_tracker/internal/service/issues"
	"jira_tracker/internal/service/jira"
	"jira_tracker/internal/storage"
)

// NewService builds the issue service described by cfg.
func NewService(ctx context.Context, cfg *config.Config) (*issues.Service, error) {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var notifier notify.Notifier = notify.Nop{}
	if cfg.SlackEnabled() {
		notifier = notify.NewSlackNotifier(cfg.SlackBotToken, cfg.SlackChannelID)
	}

	return issues.NewService(cfg.TrackerName, store, jira.NewConnector(cfg.JiraTimeout), notifier), nil
}

func newStore(ctx context.Context, cfg *config.Config) (storage.OptionsStore, error) {
	if cfg.OptionsBucket == "" {
		logger.GetLogger().Info("using options file", zap.String("path", cfg.OptionsFile))
		return storage.NewFileOptionsStore(cfg.OptionsFile), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	logger.GetLogger().Info("using options bucket", zap.String("bucket", cfg.OptionsBucket))
	return storage.NewS3OptionsStore(s3.NewFromConfig(awsCfg), cfg.OptionsBucket), nil
}
