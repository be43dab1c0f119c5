package handler

import (
	"log/slog"
	"net/http"

	"cribinfo/internal/model"
	"cribinfo/internal/observability/metrics"
	"cribinfo/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler serves natural-language property search.
type SearchHandler struct {
	parser       *service.QueryParser
	engine       *service.Engine
	metrics      *metrics.HTTPServerMetrics
	logger       *slog.Logger
	defaultLimit int
	maxLimit     int
}

// NewSearchHandler creates a search handler.
func NewSearchHandler(parser *service.QueryParser, engine *service.Engine,
	m *metrics.HTTPServerMetrics, logger *slog.Logger, defaultLimit, maxLimit int) *SearchHandler {
	return &SearchHandler{
		parser:       parser,
		engine:       engine,
		metrics:      m,
		logger:       logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// Search handles POST /api/v1/search.
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}
	if limit > h.maxLimit {
		limit = h.maxLimit
	}

	parsed, err := h.parser.Parse(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	outcome, err := h.engine.Search(c.Request.Context(), parsed, req.City, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.metrics.RecordSearch(string(outcome.MatchType))
	h.logger.Info("search completed",
		"query", req.Query,
		"match_type", outcome.MatchType,
		"results", len(outcome.Properties))

	c.JSON(http.StatusOK, model.SearchResponse{
		Results:        outcome.Properties,
		ParsedFilters:  parsed.Filters(),
		Total:          len(outcome.Properties),
		MatchType:      outcome.MatchType,
		RelaxedFilters: outcome.RelaxedFilters,
	})
}
