package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cribinfo/internal/model"

	"github.com/gin-gonic/gin"
)

// CityReader is the lookup surface the city endpoints need.
type CityReader interface {
	Cities(ctx context.Context) ([]string, error)
	AreasByCity(ctx context.Context, city string) ([]string, error)
}

// CityHandler serves the city and area directory endpoints.
type CityHandler struct {
	repo   CityReader
	logger *slog.Logger
}

// NewCityHandler creates a city handler.
func NewCityHandler(repo CityReader, logger *slog.Logger) *CityHandler {
	return &CityHandler{repo: repo, logger: logger}
}

// Cities handles GET /api/v1/cities.
func (h *CityHandler) Cities(c *gin.Context) {
	cities, err := h.repo.Cities(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if cities == nil {
		cities = []string{}
	}
	c.JSON(http.StatusOK, model.CitiesResponse{Cities: cities})
}

// Areas handles GET /api/v1/cities/:city/areas.
func (h *CityHandler) Areas(c *gin.Context) {
	city := c.Param("city")
	areas, err := h.repo.AreasByCity(c.Request.Context(), city)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if areas == nil {
		areas = []string{}
	}
	c.JSON(http.StatusOK, model.AreasResponse{City: city, Areas: areas})
}
