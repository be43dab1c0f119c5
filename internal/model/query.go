package model

// ParsedQuery holds the structured filters extracted from a free-text
// housing query. RawQuery always carries the original input verbatim,
// whatever the language backend returned.
type ParsedQuery struct {
	BHK          *int     `json:"bhk"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	MinSqft      *int     `json:"min_sqft"`
	MaxSqft      *int     `json:"max_sqft"`
	Area         *string  `json:"area"`
	Amenities    []string `json:"amenities"`
	RawQuery     string   `json:"raw_query"`
	InferredCity *string  `json:"inferred_city"`
}

// MatchType labels the quality of a search outcome.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPartial MatchType = "partial"
	MatchSimilar MatchType = "similar"
)

// SearchOutcome is the result of one retrieval: properties ordered by
// ascending vector distance, with relaxation metadata.
type SearchOutcome struct {
	Properties     []Property
	MatchType      MatchType
	RelaxedFilters []string
}

// SearchRequest is the caller-facing search input.
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	City  string `json:"city"`
	Limit int    `json:"limit"`
}

// ParsedFilters echoes what the parser understood, minus the raw text.
type ParsedFilters struct {
	BHK          *int     `json:"bhk"`
	MinPrice     *float64 `json:"min_price"`
	MaxPrice     *float64 `json:"max_price"`
	MinSqft      *int     `json:"min_sqft"`
	MaxSqft      *int     `json:"max_sqft"`
	Area         *string  `json:"area"`
	Amenities    []string `json:"amenities"`
	InferredCity *string  `json:"inferred_city"`
}

// Filters strips the raw query text for echoing back to the caller.
func (p ParsedQuery) Filters() ParsedFilters {
	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return ParsedFilters{
		BHK:          p.BHK,
		MinPrice:     p.MinPrice,
		MaxPrice:     p.MaxPrice,
		MinSqft:      p.MinSqft,
		MaxSqft:      p.MaxSqft,
		Area:         p.Area,
		Amenities:    amenities,
		InferredCity: p.InferredCity,
	}
}

// SearchResponse is the caller-facing search output.
type SearchResponse struct {
	Results        []Property    `json:"results"`
	ParsedFilters  ParsedFilters `json:"parsed_filters"`
	Total          int           `json:"total"`
	MatchType      MatchType     `json:"match_type"`
	RelaxedFilters []string      `json:"relaxed_filters"`
}

// CompareRequest asks for a small fixed set of properties side by side.
type CompareRequest struct {
	PropertyIDs []string `json:"property_ids" binding:"required"`
}

// CompareResponse returns the requested properties.
type CompareResponse struct {
	Properties []Property `json:"properties"`
}

// CitiesResponse lists the cities with listed properties.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// AreasResponse lists the known areas within one city.
type AreasResponse struct {
	City  string   `json:"city"`
	Areas []string `json:"areas"`
}
