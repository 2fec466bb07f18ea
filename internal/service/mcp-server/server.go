package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"jira_tracker/internal/service/issues"
)

// NewServer creates a new MCP server instance
func NewServer(svc *issues.Service) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		"jira tracker",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	if err := registerJiraTools(s, &jiraTools{service: svc}); err != nil {
		return nil, err
	}

	return s, nil
}

// Serve starts the MCP server on stdio
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
