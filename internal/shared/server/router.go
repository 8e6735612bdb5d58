package server

import (
	"github.com/gin-gonic/gin"

	"ats-screener-backend/internal/results"
	"ats-screener-backend/internal/services/health"
	"ats-screener-backend/internal/shared/config"
	"ats-screener-backend/internal/shared/metrics"
	"ats-screener-backend/internal/shared/server/middleware"
	"ats-screener-backend/internal/shared/server/respond"
)

// Deps carries the handlers and services the router wires up.
type Deps struct {
	Results *results.Handler
	Health  *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes
// registered.
func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, deps.Health.Status(c.Request.Context()))
	})
	api.GET("/metrics", metrics.Handler())

	// Health and metrics stay outside the limiter.
	api.Use(middleware.RateLimit(
		middleware.RateLimitRule{Rate: 1, Burst: 5},
		middleware.NewRateLimiter(nil),
	))
	deps.Results.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
