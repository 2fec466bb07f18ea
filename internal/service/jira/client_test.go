package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"jira_tracker/internal/model"
	"jira_tracker/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJira struct {
	t           *testing.T
	prefix      string
	createCode  int
	createBody  string
	projectCode int

	mu       sync.Mutex
	requests []string
	payload  map[string]any
}

func (f *fakeJira) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
	f.mu.Unlock()

	user, pass, ok := r.BasicAuth()
	if !ok || user != "johndoe" || pass != "secret" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == f.prefix+"/rest/api/2/project/PROJ":
		if f.projectCode != 0 {
			w.WriteHeader(f.projectCode)
			_, _ = w.Write([]byte(`{"errorMessages":["No project could be found with key 'PROJ'."],"errors":{}}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":"10100","key":"PROJ","name":"Project"}`))
	case r.Method == http.MethodPost && r.URL.Path == f.prefix+"/rest/api/2/issue":
		var payload map[string]any
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&payload))
		f.mu.Lock()
		f.payload = payload
		f.mu.Unlock()
		code := f.createCode
		if code == 0 {
			code = http.StatusCreated
		}
		w.WriteHeader(code)
		body := f.createBody
		if body == "" {
			body = `{"id":"10000","key":"PROJ-42","self":"http://jira/rest/api/2/issue/10000"}`
		}
		_, _ = w.Write([]byte(body))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func startJira(t *testing.T, fake *fakeJira) *httptest.Server {
	t.Helper()
	fake.t = t
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	return srv
}

func creds(site, contextPath string) tracker.Credentials {
	return tracker.Credentials{
		Username:    "johndoe",
		Password:    "secret",
		Site:        site,
		AuthType:    tracker.AuthBasic,
		ContextPath: contextPath,
	}
}

func samplePayload() model.IssuePayload {
	return model.IssuePayload{Fields: model.IssueFields{
		Summary:     "Crashinmodule",
		Description: "body\ntext",
		Project:     model.JiraProject{ID: "10100"},
		IssueType:   model.JiraIssueType{ID: "10004"},
		Priority:    model.JiraPriority{Name: "Normal"},
	}}
}

func TestCreateIssueRoundTrip(t *testing.T) {
	fake := &fakeJira{prefix: "/jira"}
	srv := startJira(t, fake)
	ctx := context.Background()

	client, err := NewConnector(0).NewClient(ctx, creds(srv.URL, "/jira"))
	require.NoError(t, err)

	project, err := client.FindProject(ctx, "PROJ")
	require.NoError(t, err)
	assert.Equal(t, tracker.Project{ID: "10100", Key: "PROJ"}, project)

	builder := client.BuildIssue()
	require.NoError(t, builder.Save(ctx, samplePayload()))
	assert.False(t, builder.HasErrors())
	assert.Equal(t, "PROJ-42", builder.Key())

	fields, ok := fake.payload["fields"].(map[string]any)
	require.True(t, ok, "payload: %v", fake.payload)
	assert.Equal(t, "Crashinmodule", fields["summary"])
	assert.Equal(t, "body\ntext", fields["description"])
	assert.Equal(t, "10100", fields["project"].(map[string]any)["id"])
	assert.Equal(t, "10004", fields["issuetype"].(map[string]any)["id"])
	assert.Equal(t, "Normal", fields["priority"].(map[string]any)["name"])

	assert.Equal(t, []string{"GET /jira/rest/api/2/project/PROJ", "POST /jira/rest/api/2/issue"}, fake.requests)
}

func TestCreateIssueWithoutContextPath(t *testing.T) {
	fake := &fakeJira{}
	srv := startJira(t, fake)

	client, err := NewConnector(0).NewClient(context.Background(), creds(srv.URL, ""))
	require.NoError(t, err)
	_, err = client.FindProject(context.Background(), "PROJ")
	require.NoError(t, err)
	assert.Equal(t, []string{"GET /rest/api/2/project/PROJ"}, fake.requests)
}

func TestSaveValidationErrors(t *testing.T) {
	fake := &fakeJira{
		createCode: http.StatusBadRequest,
		createBody: `{"errorMessages":["Field values rejected"],"errors":{"priority":"Priority name 'Urgent' is not valid","issuetype":"valid issue type is required"}}`,
	}
	srv := startJira(t, fake)

	client, err := NewConnector(0).NewClient(context.Background(), creds(srv.URL, ""))
	require.NoError(t, err)

	builder := client.BuildIssue()
	require.NoError(t, builder.Save(context.Background(), samplePayload()))
	assert.True(t, builder.HasErrors())
	assert.Equal(t, "", builder.Key())
	assert.Equal(t, "Field values rejected; issuetype: valid issue type is required; priority: Priority name 'Urgent' is not valid", builder.Errors())
}

func TestSaveTransportErrors(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
	}{
		{name: "server error", code: http.StatusInternalServerError, body: `{"errorMessages":["boom"]}`},
		{name: "bad request without error collection", code: http.StatusBadRequest, body: `not json`},
		{name: "forbidden", code: http.StatusForbidden, body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := startJira(t, &fakeJira{createCode: tt.code, createBody: tt.body})
			client, err := NewConnector(0).NewClient(context.Background(), creds(srv.URL, ""))
			require.NoError(t, err)

			builder := client.BuildIssue()
			assert.Error(t, builder.Save(context.Background(), samplePayload()))
			assert.False(t, builder.HasErrors())
		})
	}
}

func TestAuthenticationRejected(t *testing.T) {
	srv := startJira(t, &fakeJira{})
	c := creds(srv.URL, "")
	c.Password = "wrong"

	client, err := NewConnector(0).NewClient(context.Background(), c)
	require.NoError(t, err)
	_, err = client.FindProject(context.Background(), "PROJ")
	assert.Error(t, err)
}

func TestProjectNotFound(t *testing.T) {
	srv := startJira(t, &fakeJira{projectCode: http.StatusNotFound})
	client, err := NewConnector(0).NewClient(context.Background(), creds(srv.URL, ""))
	require.NoError(t, err)

	_, err = client.FindProject(context.Background(), "PROJ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROJ")
}

func TestNewClientRejectsBadSites(t *testing.T) {
	connector := NewConnector(0)
	for _, site := range []string{"", "   ", "jira.example.org", "://bad"} {
		_, err := connector.NewClient(context.Background(), creds(site, ""))
		assert.Error(t, err, "site %q", site)
	}

	c := creds("https://jira.example.org", "")
	c.AuthType = "oauth"
	_, err := connector.NewClient(context.Background(), c)
	assert.Error(t, err)
}

func TestSiteURL(t *testing.T) {
	tests := []struct {
		base, contextPath, want string
	}{
		{"https://jira.example.org", "", "https://jira.example.org/"},
		{"https://jira.example.org", "/jira", "https://jira.example.org/jira/"},
		{" https://jira.example.org ", "/jira/", "https://jira.example.org/jira/"},
	}
	for _, tt := range tests {
		got, err := siteURL(tt.base, tt.contextPath)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestConnectorHTTPClient(t *testing.T) {
	injected := &http.Client{}
	assert.Same(t, injected, (&Connector{HTTPClient: injected}).httpClient())
	assert.Equal(t, DefaultTimeout, NewConnector(0).httpClient().Timeout)
	assert.Equal(t, 5*time.Second, NewConnector(5*time.Second).httpClient().Timeout)
}
