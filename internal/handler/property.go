package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cribinfo/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	minCompareIDs = 2
	maxCompareIDs = 5
)

// PropertyReader is the lookup surface the property endpoints need.
type PropertyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Property, error)
}

// PropertyHandler serves property detail and comparison.
type PropertyHandler struct {
	repo   PropertyReader
	logger *slog.Logger
}

// NewPropertyHandler creates a property handler.
func NewPropertyHandler(repo PropertyReader, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{repo: repo, logger: logger}
}

// GetProperty handles GET /api/v1/properties/:id.
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	property, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// Compare handles POST /api/v1/compare. Accepts between 2 and 5 ids.
func (h *PropertyHandler) Compare(c *gin.Context) {
	var req model.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_ids is required"})
		return
	}
	if len(req.PropertyIDs) < minCompareIDs || len(req.PropertyIDs) > maxCompareIDs {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide between 2 and 5 property ids"})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.PropertyIDs))
	for _, raw := range req.PropertyIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id: " + raw})
			return
		}
		ids = append(ids, id)
	}

	properties, err := h.repo.GetByIDs(c.Request.Context(), ids)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, model.CompareResponse{Properties: properties})
}
