package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MiroBartanus/business-days-sk/internal/logger"
)

// HTTPObserver receives the latency of every handled request.
// *metrics.Metrics satisfies it.
type HTTPObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RequestLogger is a Gin middleware that logs method, route, status code,
// request latency and request ID (if available), and reports the latency
// to obs when it is not nil.
//
// The route is the registered pattern (/api/v1/days/:date), not the raw
// path, so metric labels stay bounded.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger(m))
//
// Example log output:
//
//	{"component":"http","request_id":"123e4567-...","method":"GET","route":"/api/v1/days/:date","status":200,"latency_ms":1,"message":"http_request"}
func RequestLogger(obs HTTPObserver) gin.HandlerFunc {
	log := logger.Component("http")
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		route := c.FullPath()

		if obs != nil {
			obs.ObserveHTTP(method, route, status, latency)
		}

		rid, _ := c.Get(RequestIDKey)
		ev := log.Info()
		if status >= 500 {
			ev = log.Error()
		}
		ev.Str("request_id", toString(rid)).
			Str("method", method).
			Str("route", route).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
