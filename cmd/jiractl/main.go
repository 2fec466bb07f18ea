package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jira_tracker/internal/logger"
	"jira_tracker/internal/service/issues"
	"jira_tracker/internal/service/jira"
	"jira_tracker/internal/storage"
	"jira_tracker/internal/tracker"
)

var (
	optionsFile string
	trackerName string
	timeout     time.Duration
	logLevel    string

	newConnector = func(timeout time.Duration) tracker.Connector {
		return jira.NewConnector(timeout)
	}
)

var rootCmd = &cobra.Command{
	Use:           "jiractl",
	Short:         "Configure the Jira issue tracker and file issues with it",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Init(logLevel, "stderr")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&optionsFile, "options", "jira.yaml", "file holding tracker options (yaml, json or toml)")
	rootCmd.PersistentFlags().StringVar(&trackerName, "tracker", "jira", "tracker entry in the options file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", jira.DefaultTimeout, "timeout of each Jira request")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")
}

func newService() *issues.Service {
	return issues.NewService(trackerName, storage.NewFileOptionsStore(optionsFile), newConnector(timeout), nil)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
