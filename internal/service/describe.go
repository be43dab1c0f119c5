package service

import (
	"strconv"
	"strings"

	"cribinfo/internal/model"
)

// PropertyText composes the natural-language description a property is
// embedded under. Field order is fixed and absent fields are omitted
// entirely; this text defines what "similar" means, so queries and records
// must be embedded from the same shape.
func PropertyText(p model.Property) string {
	var parts []string

	if p.Title != nil && *p.Title != "" {
		parts = append(parts, *p.Title)
	}
	if p.BHK != nil {
		parts = append(parts, strconv.Itoa(*p.BHK)+" BHK")
	}
	if p.Area != nil && *p.Area != "" {
		parts = append(parts, "in "+*p.Area)
	}
	if p.Sqft != nil {
		parts = append(parts, strconv.Itoa(*p.Sqft)+" sqft")
	}
	if p.PriceLakhs != nil {
		parts = append(parts, strconv.FormatFloat(*p.PriceLakhs, 'f', -1, 64)+" lakhs")
	}
	if len(p.Amenities) > 0 {
		parts = append(parts, "amenities: "+strings.Join(p.Amenities, ", "))
	}

	return strings.Join(parts, " ")
}
