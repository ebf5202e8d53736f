package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iumatch/coursematch-backend/internal/config"
	"github.com/iumatch/coursematch-backend/internal/handler"
	"github.com/iumatch/coursematch-backend/internal/middleware"
	"github.com/iumatch/coursematch-backend/internal/response"
	"github.com/iumatch/coursematch-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Session *handler.SessionHandler
	Deck    *handler.DeckHandler
	Planner *handler.PlannerHandler
	Catalog *handler.CatalogHandler
	WS      *handler.WSHandler
	System  *handler.SystemHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	tokenService *service.TokenService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli and metrics middlewares globally.
	router.Use(middleware.Brotli())
	router.Use(middleware.Metrics())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ─── 1. Catalog Group (Public, Cached) ─────────────────────────────
	catalogAPI := router.Group("/api/v1/catalog")
	catalogAPI.Use(middleware.CacheControl(300))
	{
		catalogAPI.GET("/courses", handlers.Catalog.Courses)
		catalogAPI.GET("/courses/:id", handlers.Catalog.Course)
		catalogAPI.GET("/majors", handlers.Catalog.Majors)
	}

	// Rate limiter for session creation (30 requests per minute per IP).
	createLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 2. Session Creation (Public, Rate Limited) ────────────────────
	router.POST("/api/v1/sessions", createLimiter.Middleware(), handlers.Session.Create)

	// ─── 3. Session Group (Session Token) ──────────────────────────────
	sessionAPI := router.Group("/api/v1/session")
	sessionAPI.Use(middleware.RequireSession(tokenService))
	{
		sessionAPI.GET("/profile", handlers.Session.GetProfile)
		sessionAPI.PUT("/profile", handlers.Session.UpdateProfile)
		sessionAPI.DELETE("", handlers.Session.End)

		sessionAPI.GET("/deck", handlers.Deck.GetDeck)
		sessionAPI.GET("/deck/current", handlers.Deck.Current)
		sessionAPI.POST("/deck/accept", handlers.Deck.Accept)
		sessionAPI.POST("/deck/reject", handlers.Deck.Reject)
		sessionAPI.POST("/deck/reset-rejections", handlers.Deck.ResetRejections)
		sessionAPI.GET("/deck/breakdown/:course_id", handlers.Deck.Breakdown)

		sessionAPI.GET("/schedule", handlers.Planner.Schedule)
		sessionAPI.GET("/progress", handlers.Planner.Progress)
	}

	// ─── 4. WebSocket Group (Session Token via Query) ──────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireSession(tokenService))
	{
		ws.GET("/deck", handlers.WS.DeckStream)
	}

	// ─── 5. Ops ────────────────────────────────────────────────────────
	router.GET("/api/v1/system/metrics", handlers.System.SystemMetricsSSE)

	return router
}
