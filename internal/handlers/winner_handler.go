package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/discoverypromo/raffle-admin-backend/internal/middleware"
	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	"github.com/discoverypromo/raffle-admin-backend/internal/services"
)

// WinnerHandler handles winner management HTTP requests. Mutations leave an
// audit trail entry attributed to the signed-in admin.
type WinnerHandler struct {
	winnerService   *services.WinnerService
	activityService *services.ActivityService
}

// NewWinnerHandler creates a new WinnerHandler
func NewWinnerHandler(winnerService *services.WinnerService, activityService *services.ActivityService) *WinnerHandler {
	return &WinnerHandler{
		winnerService:   winnerService,
		activityService: activityService,
	}
}

// SaveWinnersRequest is the body of a winner replacement.
type SaveWinnersRequest struct {
	Winners []models.Submission `json:"winners" binding:"required"`
}

// GetAllWinners handles GET /api/v1/winners
func (h *WinnerHandler) GetAllWinners(c *gin.Context) {
	c.JSON(http.StatusOK, h.winnerService.LoadAllWinners(c.Request.Context()))
}

// GetWinners handles GET /api/v1/winners/:prize
func (h *WinnerHandler) GetWinners(c *gin.Context) {
	winners, err := h.winnerService.LoadWinners(c.Request.Context(), c.Param("prize"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, winners)
}

// SaveWinners handles PUT /api/v1/winners/:prize
func (h *WinnerHandler) SaveWinners(c *gin.Context) {
	prizeName := c.Param("prize")

	var req SaveWinnersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.winnerService.SaveWinners(c.Request.Context(), prizeName, req.Winners); err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Log(c.Request.Context(), models.ActivityLog{
		Action:      "save_winners",
		Description: fmt.Sprintf("Replaced winners for %s (%d drawn)", prizeName, len(req.Winners)),
		TargetName:  prizeName,
	}, middleware.AdminFromContext(c))

	c.JSON(http.StatusOK, gin.H{"saved": len(req.Winners)})
}

// ClearWinners handles DELETE /api/v1/winners/:prize
func (h *WinnerHandler) ClearWinners(c *gin.Context) {
	prizeName := c.Param("prize")

	if err := h.winnerService.ClearWinners(c.Request.Context(), prizeName); err != nil {
		respondError(c, err)
		return
	}

	h.activityService.Log(c.Request.Context(), models.ActivityLog{
		Action:      "clear_winners",
		Description: fmt.Sprintf("Cleared all winners for %s", prizeName),
		TargetName:  prizeName,
	}, middleware.AdminFromContext(c))

	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
