package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferCity(t *testing.T) {
	tests := []struct {
		name string
		area string
		want string
	}{
		{name: "known bangalore area", area: "Koramangala", want: "bangalore"},
		{name: "known mumbai area", area: "bandra", want: "mumbai"},
		{name: "known delhi area", area: "Hauz Khas", want: "delhi"},
		{name: "case insensitive", area: "WHITEFIELD", want: "bangalore"},
		{name: "surrounding whitespace", area: "  indiranagar  ", want: "bangalore"},
		{name: "area embedded in phrase", area: "near whitefield", want: "bangalore"},
		{name: "input embedded in key", area: "hsr", want: "bangalore"},
		{name: "unknown area", area: "atlantis", want: ""},
		{name: "empty", area: "", want: ""},
		{name: "whitespace only", area: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCity(tt.area))
		})
	}
}

func TestInferCityShortAbbreviations(t *testing.T) {
	// gk and cp are real Delhi abbreviations; they resolve even though the
	// keys are only two characters.
	assert.Equal(t, "delhi", InferCity("gk"))
	assert.Equal(t, "delhi", InferCity("CP"))
}
