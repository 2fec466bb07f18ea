package model

import (
	"fmt"
	"sort"
	"strings"
)

// IssuePayload represents the body of a Jira issue creation request
type IssuePayload struct {
	Fields IssueFields `json:"fields"`
}

// IssueFields represents the fields set on a new Jira issue
type IssueFields struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Project     JiraProject   `json:"project"`
	IssueType   JiraIssueType `json:"issuetype"`
	Priority    JiraPriority  `json:"priority"`
}

// JiraProject references a project by its remote id
type JiraProject struct {
	ID string `json:"id"`
}

// JiraIssueType references an issue type by id
type JiraIssueType struct {
	ID string `json:"id"`
}

// JiraPriority references a priority by name
type JiraPriority struct {
	Name string `json:"name"`
}

// JiraErrorCollection is the body Jira returns when it rejects field values
type JiraErrorCollection struct {
	ErrorMessages []string          `json:"errorMessages"`
	Errors        map[string]string `json:"errors"`
}

// Empty reports whether the collection carries no messages at all
func (c JiraErrorCollection) Empty() bool {
	return len(c.ErrorMessages) == 0 && len(c.Errors) == 0
}

// String joins the general messages first, then field errors sorted by field
func (c JiraErrorCollection) String() string {
	parts := make([]string, 0, len(c.ErrorMessages)+len(c.Errors))
	for _, msg := range c.ErrorMessages {
		if strings.TrimSpace(msg) != "" {
			parts = append(parts, msg)
		}
	}

	fields := make([]string, 0, len(c.Errors))
	for field := range c.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, c.Errors[field]))
	}

	return strings.Join(parts, "; ")
}
