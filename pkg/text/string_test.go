package text_test

import (
	"testing"

	"github.com/julien-sobczak/the-moodwriter/pkg/text"
	"github.com/stretchr/testify/assert"
)

func TestSquashBlankLines(t *testing.T) {
	var tests = []struct {
		name     string // name
		input    string // input
		expected string // expected result
	}{
		{
			"TwoLines",
			"I slept badly.\n\n\n\nStill grateful for the sun.\n",
			"I slept badly.\n\nStill grateful for the sun.\n",
		},
		{
			"NoEmptyLines",
			"A\nB\n",
			"A\nB\n",
		},
		{
			"WhitespaceOnly",
			"A\n  \n\t\nB",
			"A\n  \nB\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.SquashBlankLines(tt.input))
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, text.IsBlank(""))
	assert.True(t, text.IsBlank("  \n\t "))
	assert.False(t, text.IsBlank(" calm "))
}

func TestAbbreviate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"Short", "Feeling calm", 20, "Feeling calm"},
		{"Truncated", "Feeling calm and focused today", 13, "Feeling calm…"},
		{"Multiline", "First line\nSecond line", 40, "First line…"},
		{"Unicode", "Très très fatigué", 6, "Très…"},
		{"Tiny", "Anything", 1, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, text.Abbreviate(tt.input, tt.max))
		})
	}
}
