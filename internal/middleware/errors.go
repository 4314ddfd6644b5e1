package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MiroBartanus/business-days-sk/internal/domain/dto"
	"github.com/MiroBartanus/business-days-sk/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON
// dto.ErrorResponse when the handler did not write a response itself.
// The status defaults to 500 unless the handler already set one.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}
	last := c.Errors.Last()
	status := c.Writer.Status()
	if !c.Writer.Written() && status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	ev := logger.L().Warn()
	if status >= http.StatusInternalServerError {
		ev = logger.L().Error()
	}
	ev.Err(last.Err).Int("status", status).Str("route", c.FullPath()).Msg("request error")

	if c.Writer.Written() {
		return
	}
	c.JSON(status, dto.NewErrorResponse(http.StatusText(status), last.Err))
}

// AbortWithError stops the chain and writes a dto.ErrorResponse with the
// given status. err may be nil.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
