package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/MiroBartanus/business-days-sk/internal/logger"
)

// PanicObserver counts recovered panics per route template.
// *metrics.Metrics satisfies it.
type PanicObserver interface {
	ObservePanic(route string)
}

// Recovery turns a panic in a later handler into a 500 dto.ErrorResponse.
//
// The panic value and stack go to the log only; clients get a generic
// message. http.ErrAbortHandler is re-panicked so net/http can drop the
// connection, and a response that was already written is left alone.
// obs may be nil.
func Recovery(obs PanicObserver) gin.HandlerFunc {
	log := logger.Component("http")
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(r)
			}

			rid, _ := c.Get(RequestIDKey)
			log.Error().
				Str("request_id", toString(rid)).
				Str("route", c.FullPath()).
				Str("panic", fmt.Sprint(r)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")
			if obs != nil {
				obs.ObservePanic(c.FullPath())
			}

			if c.Writer.Written() {
				c.Abort()
				return
			}
			AbortWithError(c, http.StatusInternalServerError, "Internal server error", nil)
		}()

		c.Next()
	}
}
