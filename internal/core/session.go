package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownActivity = errors.New("unknown wellness activity")
	ErrInvalidDuration = errors.New("session duration must be between 1 and 120 minutes")
)

const (
	MinSessionMinutes = 1
	MaxSessionMinutes = 120

	xpPerSessionMinute = 2
)

// WellnessActivity is an activity that can be practiced during a session.
type WellnessActivity struct {
	ID      string
	Title   string
	Emoji   string
	Benefit string
}

var WellnessActivities = []WellnessActivity{
	{ID: ActivityMusic, Title: "Music Therapy", Emoji: "🎵", Benefit: "Regulates emotions and reduces cortisol"},
	{ID: ActivityYoga, Title: "Yoga Practice", Emoji: "🧘", Benefit: "Improves flexibility and mental clarity"},
	{ID: ActivityExercise, Title: "Exercise Routine", Emoji: "💪", Benefit: "Boosts endorphins and energy levels"},
	{ID: ActivityMeditation, Title: "Meditation", Emoji: "🎯", Benefit: "Reduces anxiety and improves focus"},
	{ID: ActivityBreathing, Title: "Breathing Exercise", Emoji: "🌬️", Benefit: "Calms the nervous system"},
}

// ParseWellnessActivity finds an activity by its identifier (case-insensitive).
func ParseWellnessActivity(value string) (WellnessActivity, error) {
	for _, activity := range WellnessActivities {
		if strings.EqualFold(activity.ID, strings.TrimSpace(value)) {
			return activity, nil
		}
	}
	return WellnessActivity{}, fmt.Errorf("%w %q", ErrUnknownActivity, value)
}

// Session is a completed wellness session.
type Session struct {
	Activity    string
	Minutes     int
	CompletedAt time.Time
}

// Validate checks the activity and the duration.
func (s Session) Validate() error {
	if _, err := ParseWellnessActivity(s.Activity); err != nil {
		return err
	}
	if s.Minutes < MinSessionMinutes || s.Minutes > MaxSessionMinutes {
		return fmt.Errorf("invalid duration %d: %w", s.Minutes, ErrInvalidDuration)
	}
	return nil
}

// XP returns the experience points earned by the session.
func (s Session) XP() int {
	return s.Minutes * xpPerSessionMinute
}

func (s Session) Title() string {
	if activity, err := ParseWellnessActivity(s.Activity); err == nil {
		return activity.Title
	}
	return s.Activity
}

func (s Session) Emoji() string {
	if activity, err := ParseWellnessActivity(s.Activity); err == nil {
		return activity.Emoji
	}
	return "✨"
}

var (
	yogaBeginner = []string{
		"Mountain Pose (2 min)",
		"Child's Pose (3 min)",
		"Cat-Cow Stretch (2 min)",
		"Downward Dog (2 min)",
		"Savasana (3 min)",
	}
	yogaStressRelief = []string{
		"Deep Breathing (3 min)",
		"Neck Rolls (2 min)",
		"Shoulder Shrugs (2 min)",
		"Seated Spinal Twist (3 min)",
		"Legs Up Wall (5 min)",
	}
	yogaEnergyBoost = []string{
		"Sun Salutation A (5 min)",
		"Warrior I & II (4 min)",
		"Tree Pose (2 min)",
		"Bridge Pose (3 min)",
		"Final Relaxation (3 min)",
	}

	exerciseLowIntensity = []string{
		"Gentle Stretching (5 min)",
		"Walking in Place (5 min)",
		"Arm Circles (2 min)",
		"Deep Breathing (3 min)",
	}
	exerciseModerate = []string{
		"Jumping Jacks (2 min)",
		"Push-ups (3 min)",
		"Squats (3 min)",
		"Plank (2 min)",
		"Cool Down Stretch (5 min)",
	}
	exerciseHighEnergy = []string{
		"Burpees (3 min)",
		"Mountain Climbers (3 min)",
		"High Knees (2 min)",
		"Jump Squats (3 min)",
		"Sprint Intervals (4 min)",
	}
)

// SuggestedRoutine returns the guided steps adapted to the last mood entry (optional).
// Activities without guided steps return an empty slice.
func SuggestedRoutine(activity string, lastMood *MoodEntry) []string {
	var routine []string
	switch activity {
	case ActivityYoga:
		routine = yogaBeginner
		if lastMood != nil {
			if lastMood.StressLevel > 70 {
				routine = yogaStressRelief
			} else if lastMood.EnergyLevel < 40 {
				routine = yogaEnergyBoost
			}
		}
	case ActivityExercise:
		routine = exerciseLowIntensity
		if lastMood != nil {
			if lastMood.EnergyLevel > 70 {
				routine = exerciseHighEnergy
			} else if lastMood.EnergyLevel > 40 {
				routine = exerciseModerate
			}
		}
	}
	return append([]string{}, routine...)
}
