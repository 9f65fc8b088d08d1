package middleware

import (
	"log/slog"
	"net/http"

	"github.com/GabrielVilchis-215460/nextjs-practice/internal/apperrors"
	"github.com/GabrielVilchis-215460/nextjs-practice/internal/dto"
	"github.com/gin-gonic/gin"
)

// BoundaryMessage is the generic text shown when an action fails on storage.
const BoundaryMessage = "Something went wrong!"

// ErrorBoundary renders a generic failure view for persistence errors and panics
// raised inside a route segment. The view offers retryPath as the retry target.
// Handlers report such failures with c.Error and leave the response unwritten.
func ErrorBoundary(retryPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLoggerFromContext(c).Error("Recovered panic in route segment", slog.Any("panic", r))
				renderBoundary(c, retryPath)
			}
		}()

		c.Next()

		if c.Writer.Written() {
			return
		}
		for _, ginErr := range c.Errors {
			if apperrors.IsPersistence(ginErr.Err) {
				GetLoggerFromContext(c).Error("Route segment failed", slog.String("error", ginErr.Err.Error()))
				renderBoundary(c, retryPath)
				return
			}
		}
	}
}

func renderBoundary(c *gin.Context, retryPath string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorBoundaryResponse{
		Error: BoundaryMessage,
		Retry: retryPath,
	})
}
