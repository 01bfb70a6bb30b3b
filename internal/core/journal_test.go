package core

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalTrackMood(t *testing.T) {

	t.Run("Crisis with support enabled", func(t *testing.T) {
		dir := SetUpHomeFromTempDir(t)
		FreezeAt(t, time.Date(2023, time.May, 2, 22, 10, 0, 0, time.UTC))
		journal := NewJournal(CurrentConfig(), CurrentStore())

		sad, err := ParseMoodLabel("sad")
		require.NoError(t, err)
		outcome, err := journal.TrackMood(MoodInput{
			Mood:   sad,
			Text:   "I feel hopeless and I want to end it all",
			Levels: Levels{Stress: 80, Energy: 20, Anxiety: 75},
		})
		require.NoError(t, err)

		require.NotNil(t, outcome.Analysis)
		assert.Equal(t, 42, outcome.Analysis.EmotionalScore)
		assert.True(t, outcome.Analysis.CrisisRisk)
		assert.Equal(t, "Sad", outcome.Entry.Mood)
		assert.Equal(t, 20, outcome.XP)
		assert.False(t, outcome.LeveledUp)
		assert.Empty(t, outcome.Response)

		expected := append(analysis.Recommendations(42), HelplineMessage)
		assert.Equal(t, expected, outcome.Notifications)

		state := CurrentStore().State()
		require.Len(t, state.RecentMoods, 1, DumpState(state))
		assert.Equal(t, outcome.Entry.OID, state.RecentMoods[0].OID)
		// Newest notifications first
		assert.Equal(t, HelplineMessage, state.Notifications[0])
		assert.Equal(t, "Take a short walk outside", state.Notifications[len(state.Notifications)-1])
		assert.Equal(t, 20, state.GameProfile.TotalXP)
		assert.Equal(t, 1, state.GameProfile.Streaks[ActivityMood])

		// Files
		assert.Equal(t, filepath.Join(dir, "journal", "2023", "2023-05-02.md"), outcome.JournalPath)
		ok, err := ContainsMarkdownSection(outcome.JournalPath, "Mood: Sad at 22:10")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.FileExists(t, filepath.Join(dir, ".mw", "state.yaml"))
	})

	t.Run("Crisis with support disabled", func(t *testing.T) {
		SetUpHomeFromTempDirWithConfig(t, "[profile]\ncrisis_support=false\n")
		journal := NewJournal(CurrentConfig(), CurrentStore())

		outcome, err := journal.TrackMood(MoodInput{
			Mood:   MoodScale[0],
			Text:   "I feel worthless",
			Levels: DefaultLevels(),
		})
		require.NoError(t, err)
		assert.True(t, outcome.Analysis.CrisisRisk)
		assert.NotContains(t, outcome.Notifications, HelplineMessage)
		// Score 50 has no recommendation
		assert.Empty(t, outcome.Notifications)
	})

	t.Run("Invalid input", func(t *testing.T) {
		SetUpHomeFromTempDir(t)
		journal := NewJournal(CurrentConfig(), CurrentStore())

		_, err := journal.TrackMood(MoodInput{Text: "fine", Levels: DefaultLevels()})
		assert.ErrorIs(t, err, ErrUnknownMood)

		_, err = journal.TrackMood(MoodInput{Mood: MoodScale[2], Levels: Levels{Stress: 150}})
		assert.ErrorIs(t, err, ErrInvalidLevel)

		assert.Empty(t, CurrentStore().State().RecentMoods)
	})
}

func TestJournalSaveJournal(t *testing.T) {
	SetUpHomeFromTempDirWithConfig(t, "[profile]\nresponse_style=\"neutral\"\n")
	journal := NewJournal(CurrentConfig(), CurrentStore())

	_, err := journal.SaveJournal("   \n\t")
	assert.ErrorIs(t, err, ErrBlankEntry)

	outcome, err := journal.SaveJournal("I am grateful and proud of today")
	require.NoError(t, err)
	assert.Equal(t, KindJournal, outcome.Entry.Kind)
	assert.Equal(t, "happy", outcome.Entry.Mood)
	assert.Equal(t, 70, outcome.Entry.EmotionalScore)
	assert.Equal(t, 15, outcome.XP)
	assert.Equal(t, analysis.Respond(*outcome.Analysis, analysis.NeutralStyle), outcome.Response)
	assert.Equal(t, []string{"🎯 Journal entry saved. Your emotional score today: 70"}, outcome.Notifications)

	state := CurrentStore().State()
	assert.Equal(t, 1, state.GameProfile.Counts[ActivityJournaling])
}

func TestJournalSaveDream(t *testing.T) {
	SetUpHomeFromTempDirWithConfig(t, "[profile]\nresponse_style=\"motivational\"\n")
	journal := NewJournal(CurrentConfig(), CurrentStore())

	_, err := journal.SaveDream("", "")
	assert.ErrorIs(t, err, ErrBlankEntry)

	outcome, err := journal.SaveDream("I was lost in a house full of animals", "curious")
	require.NoError(t, err)
	assert.Nil(t, outcome.Analysis)
	assert.Equal(t, "curious", outcome.Entry.Mood)
	assert.Equal(t, DreamEmotionalScore, outcome.Entry.EmotionalScore)
	require.Len(t, outcome.DreamSymbols, 3)
	assert.Contains(t, outcome.DreamSymbols[0], "animals")
	assert.Contains(t, outcome.DreamSymbols[1], "house")
	assert.Contains(t, outcome.DreamSymbols[2], "lost")
	assert.Equal(t, 25, outcome.XP)
	assert.Equal(t, []string{"⭐ Excellent dream journaling! You're exploring the depths of your subconscious mind."}, outcome.Notifications)

	ok, err := ContainsMarkdownSection(outcome.JournalPath, "Dream at")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestJournalLogSession(t *testing.T) {

	t.Run("Invalid sessions", func(t *testing.T) {
		SetUpHomeFromTempDir(t)
		journal := NewJournal(CurrentConfig(), CurrentStore())

		_, err := journal.LogSession("juggling", 10)
		assert.ErrorIs(t, err, ErrUnknownActivity)
		_, err = journal.LogSession(ActivityYoga, 0)
		assert.ErrorIs(t, err, ErrInvalidDuration)
		_, err = journal.LogSession(ActivityYoga, 121)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("Streak unlocks an ability", func(t *testing.T) {
		SetUpHomeFromTempDir(t)
		testClock := FreezeAt(t, time.Date(2023, time.January, 1, 7, 0, 0, 0, time.UTC))
		journal := NewJournal(CurrentConfig(), CurrentStore())

		outcome, err := journal.LogSession("Meditation", 60)
		require.NoError(t, err)
		assert.Equal(t, 120, outcome.XP)
		assert.True(t, outcome.LeveledUp)
		assert.Equal(t, 2, outcome.Level)
		assert.Nil(t, outcome.Entry)
		assert.Equal(t, []string{
			"🌸 Beautiful work! You've completed a 60-minute Meditation session.",
			"🎉 Level up! You reached level 2.",
		}, outcome.Notifications)

		for i := 0; i < 3; i++ {
			testClock.NextDay()
			outcome, err = journal.LogSession(ActivityMeditation, 5)
			require.NoError(t, err)
			assert.Empty(t, outcome.Unlocked)
		}

		testClock.NextDay()
		outcome, err = journal.LogSession(ActivityMeditation, 5)
		require.NoError(t, err)
		require.Len(t, outcome.Unlocked, 1)
		assert.Equal(t, "inner-calm", outcome.Unlocked[0].ID)
		assert.Contains(t, outcome.Notifications, "🏆 New ability unlocked: Inner Calm (5-day mindfulness streak)")

		state := CurrentStore().State()
		assert.Equal(t, 5, state.GameProfile.Streaks[ActivityMeditation])
		assert.Equal(t, []string{"Inner Calm"}, state.GameProfile.Abilities)
		// Sessions are not mood entries
		assert.Empty(t, state.RecentMoods)

		ok, err := ContainsMarkdownSection(outcome.JournalPath, "Meditation at 07:00")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestJournalDryRun(t *testing.T) {
	dir := SetUpHomeFromTempDir(t)
	config := CurrentConfig()
	config.DryRun = true
	journal := NewJournal(config, CurrentStore())

	outcome, err := journal.SaveJournal("A calm day")
	require.NoError(t, err)
	assert.Empty(t, outcome.JournalPath)
	assert.NoFileExists(t, filepath.Join(dir, ".mw", "state.yaml"))

	// The in-memory state is still updated
	assert.Len(t, CurrentStore().State().RecentMoods, 1)
}

func TestJournalPersistsBetweenInvocations(t *testing.T) {
	SetUpHomeFromTempDir(t)

	_, err := NewJournal(CurrentConfig(), CurrentStore()).SaveJournal("I feel calm")
	require.NoError(t, err)

	// Simulate a new invocation of the CLI
	Reset()
	state := CurrentStore().State()
	require.Len(t, state.RecentMoods, 1, DumpState(state))
	assert.Equal(t, "I feel calm", state.RecentMoods[0].JournalEntry)
	assert.Equal(t, 15, state.GameProfile.TotalXP)
}
