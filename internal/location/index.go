// Package location maps neighborhood names to their city.
package location

import "strings"

type entry struct {
	area string
	city string
}

// index is ordered: when several keys could match an input by containment,
// the first one in table order wins, keeping inference deterministic.
var index = []entry{
	// Bangalore
	{"koramangala", "bangalore"},
	{"indiranagar", "bangalore"},
	{"whitefield", "bangalore"},
	{"electronic city", "bangalore"},
	{"hsr layout", "bangalore"},
	{"btm layout", "bangalore"},
	{"sarjapur", "bangalore"},
	{"sarjapur road", "bangalore"},
	{"hebbal", "bangalore"},
	{"marathahalli", "bangalore"},
	{"yelahanka", "bangalore"},
	{"bannerghatta", "bangalore"},
	{"bannerghatta road", "bangalore"},
	{"mg road", "bangalore"},
	{"jp nagar", "bangalore"},
	{"kundanahalli", "bangalore"},
	{"banashankari", "bangalore"},
	{"jayanagar", "bangalore"},
	{"malleshwaram", "bangalore"},
	{"rajajinagar", "bangalore"},
	// Mumbai
	{"bandra", "mumbai"},
	{"bandra west", "mumbai"},
	{"bandra east", "mumbai"},
	{"andheri", "mumbai"},
	{"andheri west", "mumbai"},
	{"andheri east", "mumbai"},
	{"worli", "mumbai"},
	{"thane", "mumbai"},
	{"thane west", "mumbai"},
	{"powai", "mumbai"},
	{"lower parel", "mumbai"},
	{"goregaon", "mumbai"},
	{"goregaon east", "mumbai"},
	{"goregaon west", "mumbai"},
	{"juhu", "mumbai"},
	{"vikhroli", "mumbai"},
	{"mulund", "mumbai"},
	{"mulund west", "mumbai"},
	{"navi mumbai", "mumbai"},
	{"nariman point", "mumbai"},
	{"kandivali", "mumbai"},
	{"kandivali east", "mumbai"},
	{"dadar", "mumbai"},
	{"chembur", "mumbai"},
	{"borivali", "mumbai"},
	{"malad", "mumbai"},
	// Delhi / NCR
	{"greater kailash", "delhi"},
	{"gk", "delhi"},
	{"dwarka", "delhi"},
	{"vasant vihar", "delhi"},
	{"noida", "delhi"},
	{"noida sector 62", "delhi"},
	{"noida sector 18", "delhi"},
	{"saket", "delhi"},
	{"hauz khas", "delhi"},
	{"gurgaon", "delhi"},
	{"gurugram", "delhi"},
	{"dlf", "delhi"},
	{"dlf phase 5", "delhi"},
	{"defence colony", "delhi"},
	{"rohini", "delhi"},
	{"connaught place", "delhi"},
	{"cp", "delhi"},
	{"indirapuram", "delhi"},
	{"south extension", "delhi"},
	{"lajpat nagar", "delhi"},
	{"green park", "delhi"},
}

// InferCity resolves an area name to its city, or "" when unknown.
//
// Lookup is case-insensitive. After an exact match fails, the table is
// scanned in order and the first key related to the input by substring
// containment in either direction wins; "Near Whitefield" therefore
// resolves through the "whitefield" key. Short keys like "gk" can match
// inside unrelated longer inputs; that is a known limit of the heuristic.
func InferCity(area string) string {
	a := strings.ToLower(strings.TrimSpace(area))
	if a == "" {
		return ""
	}

	for _, e := range index {
		if e.area == a {
			return e.city
		}
	}

	for _, e := range index {
		if strings.Contains(a, e.area) || strings.Contains(e.area, a) {
			return e.city
		}
	}

	return ""
}
