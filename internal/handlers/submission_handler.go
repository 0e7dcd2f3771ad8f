package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/discoverypromo/raffle-admin-backend/internal/services"
)

// SubmissionHandler handles raffle entry HTTP requests
type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// GetSubmissions handles GET /api/v1/submissions
func (h *SubmissionHandler) GetSubmissions(c *gin.Context) {
	submissions, err := h.submissionService.GetSubmissions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}
