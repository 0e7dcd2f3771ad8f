package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	"github.com/discoverypromo/raffle-admin-backend/internal/store"
)

// respondError maps service failures to HTTP responses with messages the UI
// can show directly. No connection, access denied and timeouts each need
// different user remediation, so they get distinct statuses and wording.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrUnknownPrize):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, store.ErrNetworkUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No internet connection available. Please check your connection and try again."})
		return
	}

	switch store.KindOf(err) {
	case store.KindPermissionDenied:
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Please check your permissions."})
	case store.KindTimeout:
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Connection timeout. Please try again."})
	case store.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "The requested data was not found."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
