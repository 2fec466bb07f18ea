package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"jira_tracker/internal/model"
	"jira_tracker/internal/service/issues"
)

var (
	createTitle    string
	createBody     string
	createBodyFile string
	createReporter string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a Jira issue and print its browse URL",
	Example: `  jiractl create --title "NoMethodError in orders#show" --body-file body.txt
  echo "details" | jiractl create --title "Crash" --body-file -`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		body := createBody
		if createBodyFile != "" {
			data, err := readBody(cmd, createBodyFile)
			if err != nil {
				return err
			}
			body = string(data)
		}

		issue, err := newService().CreateIssue(cmd.Context(), issues.Request{
			Title: createTitle,
			Body:  body,
			User:  model.User{ID: createReporter},
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), issue)
	},
}

func readBody(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "issue summary")
	createCmd.Flags().StringVar(&createBody, "body", "", "issue description")
	createCmd.Flags().StringVar(&createBodyFile, "body-file", "", "read the description from a file, - for stdin")
	createCmd.Flags().StringVar(&createReporter, "reporter", "", "id of the reporting user")
	_ = createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagsMutuallyExclusive("body", "body-file")
	rootCmd.AddCommand(createCmd)
}
