package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchDreamSymbols(t *testing.T) {
	var tests = []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name: "Lexicon order",
			text: "I was flying over water",
			expected: []string{
				"water: Represents emotions and the subconscious mind",
				"flying: Suggests freedom, ambition, or desire to escape limitations",
			},
		},
		{
			name: "Case insensitive substring",
			text: "A huge WATERFALL",
			expected: []string{
				"water: Represents emotions and the subconscious mind",
			},
		},
		{
			name: "Several symbols",
			text: "I got lost in my childhood house while something would chase me",
			expected: []string{
				"house: Symbolizes the self or different aspects of your life",
				"chase: May indicate avoidance of something in waking life",
				"lost: Could represent feeling directionless or confused",
			},
		},
		{
			name:     "No symbol",
			text:     "A quiet night",
			expected: []string{},
		},
		{
			name:     "Empty",
			text:     "",
			expected: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchDreamSymbols(tt.text))
		})
	}
}

func TestDreamSymbols(t *testing.T) {
	symbols := DreamSymbols()
	assert.Len(t, symbols, 8)
	assert.Equal(t, "water", symbols[0].Symbol)
	assert.Equal(t, "lost", symbols[7].Symbol)

	// Returned slices are copies
	symbols[0].Symbol = "fire"
	assert.Equal(t, "water", DreamSymbols()[0].Symbol)
}
