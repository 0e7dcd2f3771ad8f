package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/discoverypromo/raffle-admin-backend/internal/authgate"
	"github.com/discoverypromo/raffle-admin-backend/internal/config"
	"github.com/discoverypromo/raffle-admin-backend/internal/handlers"
	"github.com/discoverypromo/raffle-admin-backend/internal/middleware"
	jwtpkg "github.com/discoverypromo/raffle-admin-backend/pkg/jwt"
	"github.com/discoverypromo/raffle-admin-backend/pkg/version"
)

// HandlerDependencies collects the handlers wired into the router.
type HandlerDependencies struct {
	AuthHandler       *handlers.AuthHandler
	SubmissionHandler *handlers.SubmissionHandler
	WinnerHandler     *handlers.WinnerHandler
	ActivityHandler   *handlers.ActivityHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, log zerolog.Logger, gate *authgate.Gate, tokens *jwtpkg.TokenService, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, version.Get())
	})

	// Page routes mirror the dashboard's navigation: the gate waits for the
	// auth state before letting a navigation through or redirecting it.
	router.GET("/",
		middleware.AuthGate(gate, authgate.Route{Name: authgate.RouteLogin}),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"page": "login"}) })
	router.GET("/dashboard",
		middleware.AuthGate(gate, authgate.Route{Name: authgate.RouteDashboard, RequiresAuth: true}),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"page": "dashboard"}) })

	// Public routes
	public := router.Group("/api/v1")
	{
		public.POST("/auth/login", deps.AuthHandler.Login)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuth(tokens))
	{
		protected.POST("/auth/logout", deps.AuthHandler.Logout)
		protected.GET("/submissions", deps.SubmissionHandler.GetSubmissions)
		protected.GET("/activity-logs", deps.ActivityHandler.GetActivityLogs)

		winners := protected.Group("/winners")
		{
			winners.GET("", deps.WinnerHandler.GetAllWinners)
			winners.GET("/:prize", deps.WinnerHandler.GetWinners)
			winners.PUT("/:prize", deps.WinnerHandler.SaveWinners)
			winners.DELETE("/:prize", deps.WinnerHandler.ClearWinners)
		}
	}

	return router
}
