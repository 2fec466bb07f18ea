package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"jira_tracker/internal/logger"
)

// NewRouter builds the gin engine with request logging and recovery
func NewRouter(h *TrackerHandler, timeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(logger.GinLogMiddleware(), gin.Recovery(), RequestTimeout(timeout))
	h.RegisterRoutes(r)
	return r
}
