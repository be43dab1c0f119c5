package utils

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strings"
)

var (
	flatObjectRe = regexp.MustCompile(`\{[^{}]*\}`)
	fencedRe     = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
)

// DecodeLenient extracts a JSON object from model output and decodes it
// into target, which must be a non-nil pointer. Model output is messy: the
// object may be wrapped in prose, a markdown fence, or be the whole
// response. Tried in order:
//
//  1. the first brace-delimited substring with no nested braces
//  2. the body of a ``` fence
//  3. the whole trimmed input
//
// Each candidate decodes into a fresh value and is copied to target only
// when it decodes cleanly, so a candidate that fails partway (a type
// mismatch after some fields were set) cannot leak fields. Returns false
// when nothing decodes; target is left untouched, never an error. Garbage
// in means an empty filter set, not a failed request.
func DecodeLenient(input string, target any) bool {
	candidates := []string{}
	if m := flatObjectRe.FindString(input); m != "" {
		candidates = append(candidates, m)
	}
	if m := fencedRe.FindStringSubmatch(input); len(m) > 1 {
		candidates = append(candidates, m[1])
	}
	if trimmed := strings.TrimSpace(strings.TrimPrefix(input, "\ufeff")); trimmed != "" {
		candidates = append(candidates, trimmed)
	}

	dst := reflect.ValueOf(target).Elem()
	for _, candidate := range candidates {
		fresh := reflect.New(dst.Type())
		if json.Unmarshal([]byte(candidate), fresh.Interface()) == nil {
			dst.Set(fresh.Elem())
			return true
		}
	}
	return false
}
