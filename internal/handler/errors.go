package handler

import (
	"log/slog"
	"net/http"

	"cribinfo/internal/domain"

	"github.com/gin-gonic/gin"
)

// respondError maps domain error kinds to HTTP status codes. Backend and
// store outages are 503: the request was fine, a dependency was not.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var status int
	var message string

	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	case domain.IsKind(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = "property not found"
	case domain.IsKind(err, domain.ErrParserUnavailable):
		status = http.StatusServiceUnavailable
		message = "query parsing service unavailable"
	case domain.IsKind(err, domain.ErrEmbeddingUnavailable):
		status = http.StatusServiceUnavailable
		message = "embedding service unavailable"
	case domain.IsKind(err, domain.ErrStore):
		status = http.StatusServiceUnavailable
		message = "database unavailable"
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	}
	c.JSON(status, gin.H{"error": message})
}
