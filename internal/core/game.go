package core

import (
	"slices"
	"time"

	"github.com/julien-sobczak/the-moodwriter/pkg/clock"
)

const xpPerLevel = 100

const dateLayout = "2006-01-02"

// Tracked activities
const (
	ActivityMood       = "mood"
	ActivityJournaling = "journaling"
	ActivityDreams     = "dreams"
	ActivityMusic      = "music"
	ActivityYoga       = "yoga"
	ActivityExercise   = "exercise"
	ActivityMeditation = "meditation"
	ActivityBreathing  = "breathing"
)

// Ability is a badge earned by practicing an activity regularly.
type Ability struct {
	ID          string
	Name        string
	Description string
	Activity    string
	Requirement int
	// Streak abilities require consecutive days, others a number of entries.
	Streak bool
}

var Abilities = []Ability{
	{ID: "inner-calm", Name: "Inner Calm", Description: "5-day mindfulness streak", Activity: ActivityMeditation, Requirement: 5, Streak: true},
	{ID: "anxiety-shield", Name: "Anxiety Shield", Description: "7-day breathing practice streak", Activity: ActivityBreathing, Requirement: 7, Streak: true},
	{ID: "mood-master", Name: "Mood Master", Description: "Track mood for 14 days", Activity: ActivityMood, Requirement: 14, Streak: true},
	{ID: "dream-walker", Name: "Dream Walker", Description: "Log 10 dreams", Activity: ActivityDreams, Requirement: 10},
	{ID: "journal-sage", Name: "Journal Sage", Description: "Write 20 journal entries", Activity: ActivityJournaling, Requirement: 20},
}

// Progress returns the current counter of the ability for a player.
func (a Ability) Progress(g *GameProfile) int {
	if a.Streak {
		return g.Streaks[a.Activity]
	}
	return g.Counts[a.Activity]
}

// GameProfile tracks the gamification progress of a user.
type GameProfile struct {
	UserID string `yaml:"user_id"`
	Level  int    `yaml:"level"`
	// XP earned inside the current level (0-99)
	XP        int      `yaml:"xp"`
	TotalXP   int      `yaml:"total_xp"`
	Abilities []string `yaml:"abilities"`
	// Consecutive days per activity
	Streaks map[string]int `yaml:"streaks"`
	// Lifetime number of sessions per activity
	Counts map[string]int `yaml:"counts"`
	// Last day (YYYY-MM-DD) each activity was practiced
	LastActivities map[string]string `yaml:"last_activities"`
}

func NewGameProfile(userID string) *GameProfile {
	return &GameProfile{
		UserID:         userID,
		Level:          1,
		Abilities:      []string{},
		Streaks:        make(map[string]int),
		Counts:         make(map[string]int),
		LastActivities: make(map[string]string),
	}
}

// AddXP credits experience points and recomputes the level.
// It returns true when the player reached a new level.
func (g *GameProfile) AddXP(amount int) bool {
	if amount <= 0 {
		return false
	}
	previousLevel := g.Level
	g.TotalXP += amount
	g.Level = g.TotalXP/xpPerLevel + 1
	g.XP = g.TotalXP - (g.Level-1)*xpPerLevel
	return g.Level > previousLevel
}

// XPToNextLevel returns the number of points missing to reach the next level.
func (g *GameProfile) XPToNextLevel() int {
	return max(0, g.Level*xpPerLevel-g.TotalXP)
}

// ProgressPercent returns the completion of the current level.
func (g *GameProfile) ProgressPercent() int {
	return g.XP * 100 / xpPerLevel
}

// RecordActivity updates the streak and the counter of an activity.
// Several sessions the same day keep the streak unchanged.
func (g *GameProfile) RecordActivity(activity string, at time.Time) {
	g.ensureMaps()

	day := clock.StartOfDay(at)
	today := day.Format(dateLayout)
	yesterday := day.AddDate(0, 0, -1).Format(dateLayout)

	last, ok := g.LastActivities[activity]
	switch {
	case ok && last == today:
		// Already counted
	case ok && last == yesterday:
		g.Streaks[activity]++
	default:
		g.Streaks[activity] = 1
	}
	g.Counts[activity]++
	g.LastActivities[activity] = today
}

// HasAbility returns if the player already earned an ability (by name).
func (g *GameProfile) HasAbility(name string) bool {
	return slices.Contains(g.Abilities, name)
}

// UnlockAbilities grants every ability whose requirement is met and returns the new ones.
func (g *GameProfile) UnlockAbilities() []Ability {
	var unlocked []Ability
	for _, ability := range Abilities {
		if g.HasAbility(ability.Name) {
			continue
		}
		if ability.Progress(g) >= ability.Requirement {
			g.Abilities = append(g.Abilities, ability.Name)
			unlocked = append(unlocked, ability)
		}
	}
	return unlocked
}

func (g *GameProfile) ensureMaps() {
	if g.Streaks == nil {
		g.Streaks = make(map[string]int)
	}
	if g.Counts == nil {
		g.Counts = make(map[string]int)
	}
	if g.LastActivities == nil {
		g.LastActivities = make(map[string]string)
	}
}
