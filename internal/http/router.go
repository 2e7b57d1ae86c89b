// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tripgen/internal/config"
	"tripgen/internal/http/handlers"
	"tripgen/internal/http/middleware"
	"tripgen/internal/infra"
)

type RouterDeps struct {
	Trips           handlers.TripService
	Quota           handlers.QuotaReader
	Verifier        infra.TokenVerifier
	CORSOrigins     []string
	RateLimit       config.RateLimitConfig
	GenerateTimeout time.Duration
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery(), middleware.CORS(deps.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api", middleware.Auth(deps.Verifier))
	tripHandler := handlers.NewTripHandler(deps.Trips, deps.GenerateTimeout)
	api.POST("/trips", middleware.RateLimit(deps.RateLimit), tripHandler.Create)
	api.GET("/trips", tripHandler.List)
	api.GET("/trips/:id", tripHandler.Get)
	if deps.Quota != nil {
		api.GET("/quota", handlers.NewQuotaHandler(deps.Quota).Get)
	}

	return r
}
