package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Log level
	LogLevel string

	// TrackerName selects the options entry to use
	TrackerName string

	// Options storage. Exactly one of the two is used; the bucket wins.
	OptionsBucket string // S3 bucket holding trackers/<name>.json
	OptionsFile   string // local yaml/json/toml file

	// JiraTimeout bounds every request to Jira
	JiraTimeout time.Duration

	// Slack notification of created issues, optional
	SlackBotToken  string
	SlackChannelID string
}

var (
	mu sync.RWMutex
	// instance holds the singleton config instance
	instance *Config
)

// Get returns the singleton config instance
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// Load creates a new Config instance from environment variables
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TRACKER_NAME", "jira")
	v.SetDefault("JIRA_HTTP_TIMEOUT", "30s")

	cfg := &Config{
		LogLevel:       v.GetString("LOG_LEVEL"),
		TrackerName:    v.GetString("TRACKER_NAME"),
		OptionsBucket:  v.GetString("TRACKER_OPTIONS_BUCKET"),
		OptionsFile:    v.GetString("TRACKER_OPTIONS_FILE"),
		SlackBotToken:  v.GetString("SLACK_BOT_TOKEN"),
		SlackChannelID: v.GetString("SLACK_CHANNEL_ID"),
	}

	timeout, err := time.ParseDuration(v.GetString("JIRA_HTTP_TIMEOUT"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid JIRA_HTTP_TIMEOUT %q", v.GetString("JIRA_HTTP_TIMEOUT"))
	}
	cfg.JiraTimeout = timeout

	var missingVars []string
	if cfg.OptionsBucket == "" && cfg.OptionsFile == "" {
		missingVars = append(missingVars, "TRACKER_OPTIONS_BUCKET or TRACKER_OPTIONS_FILE")
	}
	// the Slack pair is optional but must be complete
	if (cfg.SlackBotToken == "") != (cfg.SlackChannelID == "") {
		if cfg.SlackBotToken == "" {
			missingVars = append(missingVars, "SLACK_BOT_TOKEN")
		} else {
			missingVars = append(missingVars, "SLACK_CHANNEL_ID")
		}
	}

	if len(missingVars) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	// Store the instance
	mu.Lock()
	instance = cfg
	mu.Unlock()

	return cfg, nil
}

// SlackEnabled reports whether created issues are announced in Slack
func (c *Config) SlackEnabled() bool {
	return c.SlackBotToken != "" && c.SlackChannelID != ""
}
