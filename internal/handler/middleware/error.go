package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"voicefront/internal/handler/dto/response"
	"voicefront/internal/pkg/errs"
)

const maxStackLines = 20

// Recovery turns panics into the voice error envelope instead of an empty 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.ErrorContext(c.Request.Context(), "panic recovered",
			slog.Any("panic", recovered),
			slog.String("request_id", GetRequestID(c)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.Voice{
			Code:   response.CodeInternalError,
			Speech: "Sorry, something went wrong on my end. Please try again.",
		})
	})
}

// ErrorLogger records errors attached to the context, with stack traces for
// server-side failures.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			attrs := []any{
				slog.String("error", ginErr.Error()),
				slog.String("path", c.Request.URL.Path),
				slog.String("request_id", GetRequestID(c)),
			}
			if c.Writer.Status() >= 500 {
				attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(ginErr.Err, maxStackLines)))
				slog.ErrorContext(c.Request.Context(), "handler error", attrs...)
			} else {
				slog.WarnContext(c.Request.Context(), "handler error", attrs...)
			}
		}
	}
}
