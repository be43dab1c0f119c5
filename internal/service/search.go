package service

import (
	"context"
	"log/slog"

	"cribinfo/internal/model"
	"cribinfo/internal/provider"
)

// PropertyStore is the single capability the engine needs from persistent
// storage: filter, order by ascending vector distance, take the first
// limit records.
type PropertyStore interface {
	SearchSimilar(ctx context.Context, filters model.FilterSet, queryVec []float32, limit int) ([]model.Property, error)
}

// tier is one step of the relaxation ladder: which constraint switches it
// applies and what match quality a hit at this step means. Tiers are
// evaluated strictly in table order with early exit, so the ordering
// contract lives in data, not control flow.
type tier struct {
	name     string
	useBHK   bool
	useArea  bool
	usePrice bool
	match    model.MatchType
	// enter reports whether the tier is worth attempting for this query;
	// a tier that only drops constraints the query never had is skipped.
	enter func(q model.ParsedQuery) bool
}

func always(model.ParsedQuery) bool { return true }

// ladder relaxes location last among the soft constraints: area is a
// stronger intent signal than bedroom count, so bhk goes first. Price and
// sqft stay hard until the final pure-similarity step (sqft is never
// individually relaxed at all).
var ladder = []tier{
	{name: "exact", useBHK: true, useArea: true, usePrice: true, match: model.MatchExact, enter: always},
	{name: "relax_bhk", useBHK: false, useArea: true, usePrice: true, match: model.MatchPartial,
		enter: func(q model.ParsedQuery) bool { return hasArea(q) }},
	{name: "relax_area", useBHK: true, useArea: false, usePrice: true, match: model.MatchPartial,
		enter: func(q model.ParsedQuery) bool { return q.BHK != nil }},
	{name: "relax_bhk_area", useBHK: false, useArea: false, usePrice: true, match: model.MatchPartial, enter: always},
	{name: "similar", useBHK: false, useArea: false, usePrice: false, match: model.MatchSimilar, enter: always},
}

// Engine executes the relaxation ladder against the property store.
type Engine struct {
	store    PropertyStore
	embedder provider.Embedder
	logger   *slog.Logger
}

// NewEngine creates a hybrid retrieval engine.
func NewEngine(store PropertyStore, embedder provider.Embedder, logger *slog.Logger) *Engine {
	return &Engine{store: store, embedder: embedder, logger: logger}
}

// Search runs the relaxation ladder and returns the first non-empty tier.
//
// An explicit city always overrides the inferred one; inference only fills
// in when the caller supplied none. The query embedding is computed once
// and reused by every tier. All tiers empty is a valid outcome, not an
// error: MatchSimilar with no properties.
func (e *Engine) Search(ctx context.Context, parsed model.ParsedQuery, explicitCity string, limit int) (model.SearchOutcome, error) {
	effectiveCity := explicitCity
	if effectiveCity == "" && parsed.InferredCity != nil {
		effectiveCity = *parsed.InferredCity
	}

	queryVec, err := e.embedder.Embed(ctx, parsed.RawQuery)
	if err != nil {
		return model.SearchOutcome{}, err
	}

	for _, t := range ladder {
		if err := ctx.Err(); err != nil {
			return model.SearchOutcome{}, err
		}
		if !t.enter(parsed) {
			continue
		}

		properties, err := e.store.SearchSimilar(ctx, buildFilters(parsed, effectiveCity, t), queryVec, limit)
		if err != nil {
			return model.SearchOutcome{}, err
		}
		if len(properties) > 0 {
			e.logger.Debug("search resolved", "tier", t.name, "results", len(properties))
			return model.SearchOutcome{
				Properties:     properties,
				MatchType:      t.match,
				RelaxedFilters: relaxedFilters(parsed, t),
			}, nil
		}
	}

	last := ladder[len(ladder)-1]
	return model.SearchOutcome{
		Properties:     []model.Property{},
		MatchType:      last.match,
		RelaxedFilters: relaxedFilters(parsed, last),
	}, nil
}

// buildFilters assembles the constraint set one tier applies. Sqft bounds
// and the city filter are carried by every tier.
func buildFilters(q model.ParsedQuery, city string, t tier) model.FilterSet {
	f := model.FilterSet{
		City:    city,
		MinSqft: q.MinSqft,
		MaxSqft: q.MaxSqft,
	}
	if t.useBHK {
		f.BHK = q.BHK
	}
	if t.usePrice {
		f.MinPrice = q.MinPrice
		f.MaxPrice = q.MaxPrice
	}
	if t.useArea && hasArea(q) {
		f.Area = model.SanitizeArea(*q.Area)
	}
	return f
}

// relaxedFilters names the constraint categories this tier dropped that
// the query actually carried. Price counts as relaxed when either bound
// was set.
func relaxedFilters(q model.ParsedQuery, t tier) []string {
	relaxed := []string{}
	if !t.useBHK && q.BHK != nil {
		relaxed = append(relaxed, "bhk")
	}
	if !t.useArea && hasArea(q) {
		relaxed = append(relaxed, "area")
	}
	if !t.usePrice && (q.MinPrice != nil || q.MaxPrice != nil) {
		relaxed = append(relaxed, "price")
	}
	return relaxed
}

func hasArea(q model.ParsedQuery) bool {
	return q.Area != nil && *q.Area != ""
}
