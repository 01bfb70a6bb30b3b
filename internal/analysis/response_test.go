package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondCrisis(t *testing.T) {
	for _, score := range []int{0, 42, 50, 100} {
		for _, style := range ResponseStyles() {
			analysis := EmotionalAnalysis{PrimaryEmotion: Happy, EmotionalScore: score, CrisisRisk: true}
			assert.Equal(t, CrisisMessage, Respond(analysis, style), "style %s, score %d", style, score)
		}
	}
}

func TestRespond(t *testing.T) {
	var tests = []struct {
		name     string
		style    ResponseStyle
		emotion  Emotion
		score    int
		expected string
	}{
		{
			name:     "Gentle low",
			style:    Gentle,
			emotion:  Sad,
			score:    12,
			expected: "I can sense you're feeling sad right now, and that's completely okay. Your emotions are valid, and it's brave of you to acknowledge them. Take things one moment at a time, and be gentle with yourself. 💝",
		},
		{
			name:     "Gentle below neutral",
			style:    Gentle,
			emotion:  Anxious,
			score:    30,
			expected: "It sounds like you're experiencing some anxious feelings today. Remember that it's normal to have ups and downs. You're doing the best you can, and that's enough. 🌸",
		},
		{
			name:     "Gentle positive",
			style:    Gentle,
			emotion:  Calm,
			score:    50,
			expected: "I'm glad to hear you're feeling calm! It's wonderful when we can recognize and appreciate these positive moments. Keep nurturing this feeling. ✨",
		},
		{
			name:     "Motivational low",
			style:    Motivational,
			emotion:  Stressed,
			score:    29,
			expected: "I see you're dealing with stressed right now - and you know what? You're still here, still fighting, and that makes you incredibly strong! Every challenge is an opportunity to grow stronger. You've got this! 💪",
		},
		{
			name:     "Motivational below neutral",
			style:    Motivational,
			emotion:  Angry,
			score:    49,
			expected: "Feeling angry is part of the human experience, and you're handling it like a champion! Use this as fuel to push forward and create positive change. Your resilience is inspiring! 🔥",
		},
		{
			name:     "Motivational positive",
			style:    Motivational,
			emotion:  Motivated,
			score:    90,
			expected: "Yes! That motivated energy is exactly what I love to see! You're radiating positivity and strength. Channel this amazing energy into achieving your goals! 🚀",
		},
		{
			name:     "Neutral low",
			style:    NeutralStyle,
			emotion:  Sad,
			score:    0,
			expected: "Analysis shows primary emotion: sad. Emotional score: 0/100. Consider implementing stress management techniques and seeking support if needed.",
		},
		{
			name:     "Neutral below neutral",
			style:    NeutralStyle,
			emotion:  Sad,
			score:    42,
			expected: "Current emotional state: sad. Score: 42/100. This indicates room for improvement through targeted wellness activities.",
		},
		{
			name:     "Neutral positive",
			style:    NeutralStyle,
			emotion:  Happy,
			score:    70,
			expected: "Emotional analysis: happy with score of 70/100. This reflects a positive mental state. Continue current practices.",
		},
		{
			name:     "Unknown style falls back to neutral",
			style:    ResponseStyle("sarcastic"),
			emotion:  Happy,
			score:    70,
			expected: "Emotional analysis: happy with score of 70/100. This reflects a positive mental state. Continue current practices.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := EmotionalAnalysis{PrimaryEmotion: tt.emotion, EmotionalScore: tt.score}
			assert.Equal(t, tt.expected, Respond(analysis, tt.style))
		})
	}
}

func TestParseResponseStyle(t *testing.T) {
	style, err := ParseResponseStyle(" Gentle ")
	require.NoError(t, err)
	assert.Equal(t, Gentle, style)

	style, err = ParseResponseStyle("neutral")
	require.NoError(t, err)
	assert.Equal(t, NeutralStyle, style)

	_, err = ParseResponseStyle("sarcastic")
	assert.ErrorIs(t, err, ErrUnknownResponseStyle)
}
