package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"jira_tracker/internal/bootstrap"
	"jira_tracker/internal/config"
	"jira_tracker/internal/logger"
	mcpserver "jira_tracker/internal/service/mcp-server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// stdout carries the MCP protocol, so logs go to stderr
	if err := logger.Init(cfg.LogLevel, "stderr"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	svc, err := bootstrap.NewService(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to build issue service: %v", err)
	}

	server, err := mcpserver.NewServer(svc)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	logger.GetLogger().Info("starting jira tracker MCP server", zap.String("tracker", cfg.TrackerName))
	if err := mcpserver.Serve(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
