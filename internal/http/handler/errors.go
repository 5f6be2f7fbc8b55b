package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardtracker.app/api/internal/export"
	"cardtracker.app/api/internal/service"
	"cardtracker.app/api/internal/trello"
)

// respondError maps service errors to status codes. Upstream failures are
// reported verbatim and flagged retryable.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *service.ValidationError
		fetchErr      *trello.FetchError
	)

	switch {
	case errors.As(err, &validationErr), errors.Is(err, export.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCardNotFound), errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &fetchErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"retryable": fetchErr.Retryable(),
		})
	default:
		slog.ErrorContext(c.Request.Context(), "request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
