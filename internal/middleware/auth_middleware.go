package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/discoverypromo/raffle-admin-backend/internal/models"
	jwtpkg "github.com/discoverypromo/raffle-admin-backend/pkg/jwt"
)

const bearerSchema = "Bearer "

// JWTAuth validates the Authorization bearer token and stores the admin
// identity in the request context.
func JWTAuth(tokens *jwtpkg.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		if !strings.HasPrefix(authHeader, bearerSchema) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			return
		}

		claims, err := tokens.Validate(authHeader[len(bearerSchema):])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		adminID, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		c.Set("admin", &models.AdminInfo{ID: adminID, Email: email})
		c.Next()
	}
}

// AdminFromContext returns the admin identity set by JWTAuth, or nil.
func AdminFromContext(c *gin.Context) *models.AdminInfo {
	if v, ok := c.Get("admin"); ok {
		if admin, ok := v.(*models.AdminInfo); ok {
			return admin
		}
	}
	return nil
}
