package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"

	"jira_tracker/internal/bootstrap"
	"jira_tracker/internal/config"
	"jira_tracker/internal/handler"
	"jira_tracker/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	svc, err := bootstrap.NewService(context.Background(), cfg)
	if err != nil {
		logger.GetLogger().Fatal("failed to build issue service", zap.Error(err))
	}

	// project lookup and issue save each get a full Jira timeout
	router := handler.NewRouter(handler.NewTrackerHandler(svc), 2*cfg.JiraTimeout)
	ginLambda = ginadapter.New(router)

	lambda.Start(handleRequest)
}
