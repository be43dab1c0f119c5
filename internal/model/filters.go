package model

import (
	"strings"
	"unicode/utf8"
)

// maxAreaFilterLen bounds the sanitized area substring used in ILIKE
// patterns so a pathological parse cannot force an unbounded scan.
const maxAreaFilterLen = 100

// FilterSet is the constraint set one store query applies. Nil / empty
// fields mean "no constraint". This is the only shape the engine hands to
// the property store.
type FilterSet struct {
	City     string
	BHK      *int
	MinPrice *float64
	MaxPrice *float64
	MinSqft  *int
	MaxSqft  *int
	Area     string
}

// SanitizeArea strips SQL wildcard characters from an area fragment and
// truncates it before it is used in a pattern match. Truncation backs up
// to a rune boundary so the result stays valid UTF-8.
func SanitizeArea(area string) string {
	s := strings.NewReplacer("%", "", "_", "").Replace(area)
	if len(s) > maxAreaFilterLen {
		cut := maxAreaFilterLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}
