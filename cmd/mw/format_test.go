package main

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestFormatAnalysis(t *testing.T) {
	result := analysis.Analyze("I feel so anxious and worried, I can't sleep")
	actual := FormatAnalysis(result)
	assert.Contains(t, actual, "Primary emotion: Anxious\n")
	assert.Contains(t, actual, "Stress indicators: can't sleep\n")
	assert.Contains(t, actual, "Positive indicators: -\n")
	assert.Contains(t, actual, "Crisis risk: no\n")
}

func TestFormatReport(t *testing.T) {
	report := AnalysisReport{
		EmotionalAnalysis: analysis.Analyze("I am grateful and happy"),
		Response:          "Keep going!",
	}

	t.Run("Text", func(t *testing.T) {
		actual, err := FormatReport(report, FormatText)
		require.NoError(t, err)
		assert.Contains(t, actual, "Primary emotion: Happy\n")
		assert.True(t, strings.HasSuffix(actual, "\nKeep going!\n"))
	})

	t.Run("JSON", func(t *testing.T) {
		actual, err := FormatReport(report, FormatJSON)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(actual), &decoded))
		assert.Equal(t, "Keep going!", decoded["response"])
		assert.Contains(t, decoded, "emotionalScore")
	})

	t.Run("YAML", func(t *testing.T) {
		actual, err := FormatReport(report, FormatYAML)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal([]byte(actual), &decoded))
		assert.Equal(t, "Keep going!", decoded["response"])
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := FormatReport(report, "xml")
		assert.ErrorContains(t, err, `unsupported format "xml"`)
	})
}

func TestFormatDreamSymbols(t *testing.T) {
	assert.Equal(t, "No known dream symbol found.\n", FormatDreamSymbols(nil))
	assert.Equal(t, "Dream symbols:\n  🔮 Water: Emotions\n", FormatDreamSymbols([]string{"Water: Emotions"}))
}

func TestFormatOutcome(t *testing.T) {
	outcome := &core.Outcome{
		Response:      "Thank you for sharing.",
		Notifications: []string{"Take a walk"},
		XP:            15,
		JournalPath:   "/tmp/journal/2023/2023-01-01.md",
	}
	expected := "Thank you for sharing.\n\nTake a walk\n+15 XP (saved in /tmp/journal/2023/2023-01-01.md)\n"
	assert.Equal(t, expected, FormatOutcome(outcome))
}

func TestFormatProfile(t *testing.T) {
	state := core.InitialState("alice")
	state.Profile = &core.MentalHealthProfile{
		UserID:        "alice",
		CrisisSupport: true,
		ResponseStyle: analysis.Motivational,
	}
	game := core.NewGameProfile("alice")
	game.Level = 3
	game.XP = 40
	game.TotalXP = 240
	game.Streaks[core.ActivityMeditation] = 2
	state.GameProfile = game

	actual := FormatProfile(state)
	assert.Contains(t, actual, "User: alice\n")
	assert.Contains(t, actual, "Response style: Motivational\n")
	assert.Contains(t, actual, "Crisis support: enabled\n")
	assert.Contains(t, actual, "Level 3")
	assert.Contains(t, actual, "60 XP to level 4")
	assert.Contains(t, actual, "🔥 Meditation: 2 day(s)\n")
	assert.Contains(t, actual, "🔒 Inner Calm: 5-day mindfulness streak (2/5)\n")
}

func TestFormatHistory(t *testing.T) {
	assert.Equal(t, "No entry yet.\n", FormatHistory(nil))

	entry := core.NewJournalEntry("alice", "A quiet day at the beach", analysis.Analyze("A quiet day at the beach"))
	actual := FormatHistory([]core.MoodEntry{*entry})
	assert.Contains(t, actual, "journal")
	assert.Contains(t, actual, "A quiet day at the beach")
}

func TestFormatQueryResults(t *testing.T) {
	actual, err := FormatQueryResults([]any{"sad", 42, map[string]any{"a": true}})
	require.NoError(t, err)
	assert.Equal(t, "sad\n42\n{\"a\":true}\n", actual)
}

func TestFormatNotifications(t *testing.T) {
	assert.Equal(t, "No notification.\n", FormatNotifications([]string{}))
	assert.Equal(t, "🔔 b\n🔔 a\n", FormatNotifications([]string{"b", "a"}))
}

func TestFormatHelplines(t *testing.T) {
	actual := FormatHelplines(core.Helplines)
	assert.Contains(t, actual, "988 Suicide & Crisis Lifeline (24/7)\n")
	assert.Contains(t, actual, "  💬 Text HOME to 741741\n")
	assert.Contains(t, actual, "  📞 911\n")
}
