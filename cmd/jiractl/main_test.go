package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jira_tracker/internal/service/issues"
	"jira_tracker/internal/tracker"
	"jira_tracker/internal/tracker/trackertest"
)

const completeOptions = `
jira:
  base_url: https://jira.example.org
  context_path: /jira
  username: johndoe
  password: secret
  project_id: PROJ
  issue_priority: Normal
`

func writeOptions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jira.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	// flags keep their values between Execute calls
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func useFakeJira(t *testing.T) *trackertest.Jira {
	t.Helper()
	fake := trackertest.NewJira()
	prev := newConnector
	newConnector = func(time.Duration) tracker.Connector { return fake }
	t.Cleanup(func() { newConnector = prev })
	return fake
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "", "describe")
	require.NoError(t, err)

	var d tracker.Descriptor
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "jira", d.Label)
}

func TestValidate(t *testing.T) {
	path := writeOptions(t, completeOptions)
	out, err := run(t, "", "validate", "--options", path)
	require.NoError(t, err)

	var v issues.Validation
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.True(t, v.Configured)
	assert.Empty(t, v.Errors)
}

func TestValidateIncomplete(t *testing.T) {
	path := writeOptions(t, strings.Replace(completeOptions, "password: secret", `password: ""`, 1))

	out, err := run(t, "", "validate", "--options", path, "--detailed")
	assert.ErrorIs(t, err, errInvalidOptions)

	var v issues.Validation
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, []string{"password is required"}, v.Errors)
}

func TestCreate(t *testing.T) {
	fake := useFakeJira(t)
	path := writeOptions(t, completeOptions)

	out, err := run(t, "from stdin\n", "create", "--options", path, "--title", "Crash\nin\nmodule", "--body-file", "-")
	require.NoError(t, err)

	var issue tracker.Issue
	require.NoError(t, json.Unmarshal([]byte(out), &issue))
	assert.Equal(t, tracker.Issue{Key: "PROJ-1", URL: "https://jira.example.org/jirabrowse/PROJ-1"}, issue)
	require.Len(t, fake.Payloads, 1)
	assert.Equal(t, "Crashinmodule", fake.Payloads[0].Fields.Summary)
	assert.Equal(t, "from stdin\n", fake.Payloads[0].Fields.Description)
}

func TestCreateTransportError(t *testing.T) {
	fake := useFakeJira(t)
	fake.FailConnect = true
	path := writeOptions(t, completeOptions)

	_, err := run(t, "", "create", "--options", path, "--title", "t")
	require.Error(t, err)
	assert.Equal(t, "Could not create an issue. Please check your credentials.", err.Error())
}
