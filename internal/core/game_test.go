package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameProfileAddXP(t *testing.T) {
	g := NewGameProfile("alice")
	assert.Equal(t, 1, g.Level)
	assert.Equal(t, 0, g.XP)
	assert.Equal(t, 100, g.XPToNextLevel())

	assert.False(t, g.AddXP(20))
	assert.Equal(t, 1, g.Level)
	assert.Equal(t, 20, g.XP)
	assert.Equal(t, 80, g.XPToNextLevel())
	assert.Equal(t, 20, g.ProgressPercent())

	assert.True(t, g.AddXP(80))
	assert.Equal(t, 2, g.Level)
	assert.Equal(t, 0, g.XP)
	assert.Equal(t, 100, g.TotalXP)

	// Several levels at once
	assert.True(t, g.AddXP(250))
	assert.Equal(t, 4, g.Level)
	assert.Equal(t, 50, g.XP)
	assert.Equal(t, 350, g.TotalXP)
	assert.Equal(t, 50, g.XPToNextLevel())

	// Negative amounts are ignored
	assert.False(t, g.AddXP(-500))
	assert.False(t, g.AddXP(0))
	assert.Equal(t, 350, g.TotalXP)
	assert.Equal(t, 4, g.Level)
}

func TestGameProfileRecordActivity(t *testing.T) {
	day1 := time.Date(2023, time.January, 1, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2023, time.January, 2, 7, 0, 0, 0, time.UTC)
	day4 := time.Date(2023, time.January, 4, 7, 0, 0, 0, time.UTC)

	g := NewGameProfile("alice")

	g.RecordActivity(ActivityMeditation, day1)
	assert.Equal(t, 1, g.Streaks[ActivityMeditation])
	assert.Equal(t, 1, g.Counts[ActivityMeditation])

	// Same day
	g.RecordActivity(ActivityMeditation, day1.Add(30*time.Minute))
	assert.Equal(t, 1, g.Streaks[ActivityMeditation])
	assert.Equal(t, 2, g.Counts[ActivityMeditation])

	// Next day, less than 24 hours later
	g.RecordActivity(ActivityMeditation, day2)
	assert.Equal(t, 2, g.Streaks[ActivityMeditation])

	// A day is missing
	g.RecordActivity(ActivityMeditation, day4)
	assert.Equal(t, 1, g.Streaks[ActivityMeditation])
	assert.Equal(t, 4, g.Counts[ActivityMeditation])
	assert.Equal(t, "2023-01-04", g.LastActivities[ActivityMeditation])

	// Activities are independent
	assert.Equal(t, 0, g.Streaks[ActivityBreathing])
}

func TestGameProfileRecordActivityWithoutMaps(t *testing.T) {
	g := &GameProfile{UserID: "alice", Level: 1}
	g.RecordActivity(ActivityMood, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, g.Streaks[ActivityMood])
}

func TestGameProfileUnlockAbilities(t *testing.T) {
	start := time.Date(2023, time.January, 1, 8, 0, 0, 0, time.UTC)
	g := NewGameProfile("alice")

	for i := 0; i < 4; i++ {
		g.RecordActivity(ActivityMeditation, start.AddDate(0, 0, i))
		assert.Empty(t, g.UnlockAbilities())
	}
	assert.Equal(t, 4, Abilities[0].Progress(g))

	g.RecordActivity(ActivityMeditation, start.AddDate(0, 0, 4))
	unlocked := g.UnlockAbilities()
	require.Len(t, unlocked, 1)
	assert.Equal(t, "inner-calm", unlocked[0].ID)
	assert.True(t, g.HasAbility("Inner Calm"))

	// Already unlocked
	g.RecordActivity(ActivityMeditation, start.AddDate(0, 0, 5))
	assert.Empty(t, g.UnlockAbilities())
	assert.Equal(t, []string{"Inner Calm"}, g.Abilities)

	// Count-based abilities do not require consecutive days
	for i := 0; i < 10; i++ {
		g.RecordActivity(ActivityDreams, start.AddDate(0, 0, i*3))
	}
	unlocked = g.UnlockAbilities()
	require.Len(t, unlocked, 1)
	assert.Equal(t, "dream-walker", unlocked[0].ID)
	assert.Equal(t, []string{"Inner Calm", "Dream Walker"}, g.Abilities)
}
