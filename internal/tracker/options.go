package tracker

import (
	"fmt"
	"strings"
)

// Option keys recognised in a tracker configuration.
const (
	KeyBaseURL       = "base_url"
	KeyContextPath   = "context_path"
	KeyUsername      = "username"
	KeyPassword      = "password"
	KeyProjectID     = "project_id"
	KeyIssuePriority = "issue_priority"
	KeyIssueTypeID   = "issue_type_id"
)

// DefaultIssueTypeID is used when issue_type_id is left blank.
const DefaultIssueTypeID = "10004"

// AuthBasic is the only auth type the tracker speaks.
const AuthBasic = "basic"

// Options is the operator supplied configuration of one tracker.
// It is loaded once by the host and never mutated by this package.
type Options map[string]string

// Credentials holds what the remote collaborator needs to build a client.
type Credentials struct {
	Username    string
	Password    string
	Site        string
	AuthType    string
	ContextPath string
}

func (o Options) get(key string) string {
	return o[key]
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsConfigured reports whether an operator has started setting the tracker up.
// It only checks project_id; use ValidationErrors for completeness.
func (o Options) IsConfigured() bool {
	return !blank(o.get(KeyProjectID))
}

// ValidationErrors returns a single error when any non-optional value is blank.
func (o Options) ValidationErrors() []error {
	for _, f := range fieldSchema {
		if !f.Optional && blank(o.get(f.Key)) {
			return []error{configurationError("base", msgMissingValues)}
		}
	}
	return nil
}

// FieldErrors returns one error per blank non-optional value, in schema order.
func (o Options) FieldErrors() []error {
	var errs []error
	for _, f := range fieldSchema {
		if !f.Optional && blank(o.get(f.Key)) {
			errs = append(errs, configurationError(f.Key, fmt.Sprintf("%s is required", f.Key)))
		}
	}
	return errs
}

// Valid reports whether every non-optional value is present.
func (o Options) Valid() bool {
	return len(o.ValidationErrors()) == 0
}

// EffectiveContextPath maps "/" to the empty string.
func (o Options) EffectiveContextPath() string {
	cp := o.get(KeyContextPath)
	if cp == "/" {
		return ""
	}
	return cp
}

// EffectiveIssueTypeID falls back to DefaultIssueTypeID when unset.
func (o Options) EffectiveIssueTypeID() string {
	id := o.get(KeyIssueTypeID)
	if blank(id) {
		return DefaultIssueTypeID
	}
	return id
}

// BrowseURL builds the link to an issue by plain concatenation:
// base_url + context_path + "browse/" + key. Nothing is escaped.
func (o Options) BrowseURL(issueKey string) string {
	return o.get(KeyBaseURL) + o.get(KeyContextPath) + "browse/" + issueKey
}

// URL returns the configured Jira root.
func (o Options) URL() string {
	return o.get(KeyBaseURL)
}

// Credentials returns the connection settings for the remote client.
func (o Options) Credentials() Credentials {
	return Credentials{
		Username:    o.get(KeyUsername),
		Password:    o.get(KeyPassword),
		Site:        o.get(KeyBaseURL),
		AuthType:    AuthBasic,
		ContextPath: o.EffectiveContextPath(),
	}
}

// Clone returns a copy that is safe to hand to another owner.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}
