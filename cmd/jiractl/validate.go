package main

import (
	"errors"

	"github.com/spf13/cobra"

	"jira_tracker/internal/storage"
)

var errInvalidOptions = errors.New("tracker options are incomplete")

var validateDetailed bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every non optional value is set",
	Long: `Check the tracker options in the options file.

Exits non-zero when a required value is blank. With --detailed every
missing value is listed instead of a single summary error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := storage.NewFileOptionsStore(optionsFile).Load(cmd.Context(), trackerName)
		if err != nil {
			return err
		}

		v := newService().Validate(opts, validateDetailed)
		if err := printJSON(cmd.OutOrStdout(), v); err != nil {
			return err
		}
		if len(v.Errors) > 0 {
			return errInvalidOptions
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVar(&validateDetailed, "detailed", false, "report one error per missing value")
	rootCmd.AddCommand(validateCmd)
}
