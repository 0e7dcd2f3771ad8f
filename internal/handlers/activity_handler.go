package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/discoverypromo/raffle-admin-backend/internal/services"
)

// ActivityHandler handles audit trail HTTP requests
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GetActivityLogs handles GET /api/v1/activity-logs
func (h *ActivityHandler) GetActivityLogs(c *gin.Context) {
	logs, err := h.activityService.GetActivityLogs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
