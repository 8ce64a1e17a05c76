package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"appointment-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders an envelope for handlers that recorded an error
// without writing a response. Already written responses are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		if public := c.Errors.ByType(gin.ErrorTypePublic).Last(); public != nil {
			if resp, ok := public.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		last := c.Errors.Last()
		slog.Error("unrendered handler error",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", last.Error(),
		)
		resp := httperr.InternalResponse()
		c.JSON(resp.Status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.InternalResponse())
			}
		}()
		c.Next()
	}
}
