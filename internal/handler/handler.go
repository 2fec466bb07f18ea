package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"jira_tracker/internal/logger"
	"jira_tracker/internal/service/issues"
	"jira_tracker/internal/tracker"
)

// TrackerHandler serves the tracker to the host application over HTTP
type TrackerHandler struct {
	service *issues.Service
}

// NewTrackerHandler creates a handler backed by service
func NewTrackerHandler(service *issues.Service) *TrackerHandler {
	return &TrackerHandler{service: service}
}

// RegisterRoutes mounts the tracker endpoints on r
func (h *TrackerHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/tracker", h.HandleDescribe)
	r.GET("/tracker/icons/:kind", h.HandleIcon)
	r.POST("/tracker/validate", h.HandleValidate)
	r.PUT("/tracker/options", h.HandleSaveOptions)
	r.POST("/issues", h.HandleCreateIssue)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HandleDescribe returns label, note and field schema
func (h *TrackerHandler) HandleDescribe(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Describe())
}

// HandleIcon returns one of the tracker icons
func (h *TrackerHandler) HandleIcon(c *gin.Context) {
	icon, err := tracker.LoadIcon(tracker.IconKind(c.Param("kind")))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "not_found", Message: err.Error()})
		return
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, icon.ContentType, icon.Data)
}

// HandleValidate checks posted options without storing them
func (h *TrackerHandler) HandleValidate(c *gin.Context) {
	var options tracker.Options
	if err := c.ShouldBindJSON(&options); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "Invalid request body"})
		return
	}
	detailed, _ := strconv.ParseBool(c.Query("detailed"))
	c.JSON(http.StatusOK, h.service.Validate(options, detailed))
}

// HandleSaveOptions stores posted options after validating them
func (h *TrackerHandler) HandleSaveOptions(c *gin.Context) {
	var options tracker.Options
	if err := c.ShouldBindJSON(&options); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "Invalid request body"})
		return
	}
	if err := h.service.SaveOptions(c.Request.Context(), options); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.service.Validate(options, false))
}

// HandleCreateIssue files an issue in Jira
func (h *TrackerHandler) HandleCreateIssue(c *gin.Context) {
	var req issues.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: "Invalid request body"})
		return
	}

	issue, err := h.service.CreateIssue(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}

func (h *TrackerHandler) writeError(c *gin.Context, err error) {
	var te *tracker.Error
	switch {
	case errors.As(err, &te):
		status := http.StatusUnprocessableEntity
		if te.Kind == tracker.RemoteTransportError {
			status = http.StatusBadGateway
		}
		c.JSON(status, errorResponse{Error: string(te.Kind), Message: te.Message})
	case errors.Is(err, issues.ErrNotConfigured):
		c.JSON(http.StatusConflict, errorResponse{Error: "not_configured", Message: err.Error()})
	case errors.Is(err, issues.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid_request", Message: err.Error()})
	default:
		logger.GetLogger().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal_error", Message: "Something went wrong, please try again later"})
	}
}
