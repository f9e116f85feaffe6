package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guttosm/cookbook-service/internal/metrics"
	"github.com/guttosm/cookbook-service/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	StaticDir   string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the cookbook service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler)
	registerCookbookRoutes(router, handler)

	api := router.Group("/api")
	api.Use(middleware.TimeoutWithDuration(15 * time.Second))
	registerAPIRoutes(api, handler)

	// Optional static web UI; NoRoute keeps it from shadowing the API paths.
	if cfg.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.StaticDir))
		router.NoRoute(gin.WrapH(fileServer))
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "accept", "Cache-Control", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health and metrics routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerCookbookRoutes registers the plain-shape routes consumed by
// the web UI.
func registerCookbookRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/store", handler.ListStores)
	router.GET("/category", handler.ListCategories)
	router.GET("/ingredient", handler.ListIngredients)
	router.PUT("/ingredient/:name", handler.AddToShoppingList)
	router.PUT("/ingredient/:name/:category/:store", handler.UpsertIngredient)
	router.DELETE("/ingredient/:name", handler.RemoveFromShoppingList)
	router.GET("/shopping_list", handler.GetShoppingList)
}

// registerAPIRoutes registers the enveloped API routes.
func registerAPIRoutes(api *gin.RouterGroup, handler *Handler) {
	api.GET("/recipes", handler.QueryRecipes)
	api.PUT("/ingredients", handler.CreateIngredient)
	api.DELETE("/ingredients/:name", handler.DeleteIngredient)
}
