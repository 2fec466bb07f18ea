package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jira_tracker/internal/model"
	"jira_tracker/internal/service/issues"
	"jira_tracker/internal/tracker"
)

type jiraTools struct {
	service *issues.Service
}

// registerJiraTools registers all Jira-related tools with the server
func registerJiraTools(s *server.MCPServer, tools *jiraTools) error {
	createIssueTool := mcp.NewTool("create_jira_issue",
		mcp.WithDescription("Create a Jira issue in the configured project and return its browse URL"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Issue summary; line breaks are removed"),
		),
		mcp.WithString("body",
			mcp.Description("Issue description in Jira wiki markup"),
		),
		mcp.WithString("reporter_id",
			mcp.Description("Id of the user reporting the issue"),
		),
	)

	describeTool := mcp.NewTool("describe_jira_tracker",
		mcp.WithDescription("Describe the Jira tracker and the options it needs"),
	)

	s.AddTool(createIssueTool, tools.handleCreateIssue)
	s.AddTool(describeTool, tools.handleDescribe)

	return nil
}

func (t *jiraTools) handleCreateIssue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	issue, err := t.service.CreateIssue(ctx, issues.Request{
		Title: title,
		Body:  request.GetString("body", ""),
		User:  model.User{ID: request.GetString("reporter_id", "")},
	})
	if err != nil {
		var te *tracker.Error
		if errors.As(err, &te) || errors.Is(err, issues.ErrNotConfigured) || errors.Is(err, issues.ErrEmptyTitle) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	return jsonResult(issue)
}

func (t *jiraTools) handleDescribe(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(t.service.Describe())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
