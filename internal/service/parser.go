package service

import (
	"context"
	"log/slog"
	"strings"

	"cribinfo/internal/location"
	"cribinfo/internal/model"
	"cribinfo/internal/provider"
	"cribinfo/internal/utils"
)

const parserSystemPrompt = `You are a query parser for a real estate search engine.
Extract structured filters from natural language queries about properties.

Return ONLY a valid JSON object with these fields (use null for missing values):
- bhk: number of bedrooms (integer)
- min_price: minimum price in lakhs (number)
- max_price: maximum price in lakhs (number). Note: 1 Cr = 100 lakhs
- min_sqft: minimum square footage (integer)
- max_sqft: maximum square footage (integer)
- area: location/neighborhood name (string)
- amenities: list of amenities mentioned (array of strings)

Examples:
Query: "2BHK under 1Cr with gym"
{"bhk": 2, "max_price": 100, "amenities": ["gym"], "min_price": null, "min_sqft": null, "max_sqft": null, "area": null}

Query: "3BHK in Koramangala"
{"bhk": 3, "area": "Koramangala", "min_price": null, "max_price": null, "min_sqft": null, "max_sqft": null, "amenities": []}

Query: "flat between 50L to 80L with parking"
{"min_price": 50, "max_price": 80, "amenities": ["parking"], "bhk": null, "min_sqft": null, "max_sqft": null, "area": null}

Return ONLY the JSON object, no other text.`

// QueryParser turns free-text housing queries into structured filters
// using the configured language backend.
type QueryParser struct {
	llm    provider.LLM
	logger *slog.Logger
}

// NewQueryParser creates a query parser.
func NewQueryParser(llm provider.LLM, logger *slog.Logger) *QueryParser {
	return &QueryParser{llm: llm, logger: logger}
}

// parsedFields is the wire shape the language backend is asked to return.
type parsedFields struct {
	BHK       *int     `json:"bhk"`
	MinPrice  *float64 `json:"min_price"`
	MaxPrice  *float64 `json:"max_price"`
	MinSqft   *int     `json:"min_sqft"`
	MaxSqft   *int     `json:"max_sqft"`
	Area      *string  `json:"area"`
	Amenities []string `json:"amenities"`
}

// Parse extracts structured filters from query.
//
// An empty or whitespace-only query short-circuits without a backend call.
// Malformed backend output degrades to an empty filter set; a failed
// backend call is returned to the caller, who decides whether the request
// can proceed without filters. RawQuery always carries the input verbatim.
func (p *QueryParser) Parse(ctx context.Context, query string) (model.ParsedQuery, error) {
	parsed := model.ParsedQuery{RawQuery: query, Amenities: []string{}}

	if strings.TrimSpace(query) == "" {
		return parsed, nil
	}

	response, err := p.llm.Chat(ctx, parserSystemPrompt, "Query: "+query)
	if err != nil {
		return parsed, err
	}

	var fields parsedFields
	if !utils.DecodeLenient(response, &fields) {
		p.logger.Warn("unparseable language backend output, using empty filters",
			"query", query)
	}

	parsed.BHK = fields.BHK
	parsed.MinPrice = fields.MinPrice
	parsed.MaxPrice = fields.MaxPrice
	parsed.MinSqft = fields.MinSqft
	parsed.MaxSqft = fields.MaxSqft
	parsed.Area = fields.Area
	if fields.Amenities != nil {
		parsed.Amenities = fields.Amenities
	}

	if fields.Area != nil {
		if city := location.InferCity(*fields.Area); city != "" {
			parsed.InferredCity = &city
		}
	}

	return parsed, nil
}
