package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MiroBartanus/business-days-sk/internal/metrics"
	"github.com/MiroBartanus/business-days-sk/internal/middleware"
)

// RouterConfig tunes the cross-cutting parts of the router.
type RouterConfig struct {
	// Metrics, when set, records request latency and serves /metrics.
	Metrics *metrics.Metrics
	// RateLimitPerMinute per client IP; 0 disables the limiter.
	RateLimitPerMinute int
	// RequestTimeout bounds the request context; 0 means 10 seconds.
	RequestTimeout time.Duration
}

// NewRouter creates a Gin engine with routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Adds request timeout handling.
//   - Mounts Swagger docs (/swagger/*any) and Prometheus metrics (/metrics).
//   - Configures API v1 routes (/api/v1).
//
// Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, rc RouterConfig) *gin.Engine {
	router := gin.New()

	var (
		obs      middleware.HTTPObserver
		panicObs middleware.PanicObserver
	)
	if rc.Metrics != nil {
		obs, panicObs = rc.Metrics, rc.Metrics
	}
	timeout := rc.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(obs),
		middleware.Recovery(panicObs),
		middleware.ErrorHandler,
		middleware.RateLimiter(rc.RateLimitPerMinute, time.Minute),
	)

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger / metrics ────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if rc.Metrics != nil {
		router.GET("/metrics", gin.WrapH(rc.Metrics.Handler()))
	}

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/api/v1")
	{
		v1.GET("/days/:date", handler.GetDay)
		v1.GET("/days/:date/next", handler.GetNextBusinessDay)
		v1.GET("/days/:date/prev", handler.GetPrevBusinessDay)
		v1.GET("/days/:date/add", handler.AddBusinessDays)
		v1.GET("/business-days", handler.CountBusinessDays)
		v1.GET("/easter/:year", handler.GetEaster)
		v1.GET("/holidays", handler.ListHolidays)
		v1.POST("/holidays", handler.AddHoliday)
	}

	return router
}
