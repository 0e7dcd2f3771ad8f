package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/discoverypromo/raffle-admin-backend/internal/authgate"
)

// RequestID attaches a request identifier, honoring one supplied by the
// caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("requestId", c.GetString("requestID")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// AuthGate guards a page route behind the authentication gate, redirecting
// between the login and dashboard pages per the gate's decision. The wait is
// bounded only by the request context.
func AuthGate(gate *authgate.Gate, route authgate.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, err := gate.Authorize(c.Request.Context(), route)
		if err != nil {
			// The request context ended before the auth state resolved.
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "authentication state unavailable"})
			return
		}
		switch decision {
		case authgate.RedirectToLogin:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		case authgate.RedirectToDashboard:
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
		default:
			c.Next()
		}
	}
}
