package core

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
)

// MaxRecentMoods is the number of entries kept in the history.
const MaxRecentMoods = 10

// AppState is the state shared by every command.
type AppState struct {
	CurrentUser   string               `yaml:"current_user"`
	Profile       *MentalHealthProfile `yaml:"profile,omitempty"`
	GameProfile   *GameProfile         `yaml:"game_profile,omitempty"`
	IsOnboarding  bool                 `yaml:"is_onboarding"`
	RecentMoods   []MoodEntry          `yaml:"recent_moods"`
	Notifications []string             `yaml:"notifications"`
}

// InitialState returns the state of a user who has not completed the onboarding.
func InitialState(user string) AppState {
	return AppState{
		CurrentUser:   user,
		IsOnboarding:  true,
		RecentMoods:   []MoodEntry{},
		Notifications: []string{},
	}
}

// Clone returns a deep copy sharing no memory with the original state.
func (s AppState) Clone() AppState {
	clone := *deepCopy(&s)
	if clone.RecentMoods == nil {
		clone.RecentMoods = []MoodEntry{}
	}
	if clone.Notifications == nil {
		clone.Notifications = []string{}
	}
	return clone
}

/* Actions */

// Action describes a change to apply on the state.
type Action interface {
	Type() string
}

// SetProfile replaces the mental-health profile and ends the onboarding.
type SetProfile struct {
	Profile *MentalHealthProfile
}

// SetGameProfile replaces the game profile.
type SetGameProfile struct {
	GameProfile *GameProfile
}

// AddMood prepends an entry to the history.
type AddMood struct {
	Entry MoodEntry
}

// AddXP credits experience points. Ignored without a game profile.
type AddXP struct {
	Amount int
}

// RecordActivity updates the streaks and unlocks the abilities. Ignored without a game profile.
type RecordActivity struct {
	Activity string
	At       time.Time
}

// AddNotification prepends a message to the notifications.
type AddNotification struct {
	Message string
}

// ClearNotifications empties the notifications.
type ClearNotifications struct{}

func (SetProfile) Type() string         { return "SET_PROFILE" }
func (SetGameProfile) Type() string     { return "SET_GAME_PROFILE" }
func (AddMood) Type() string            { return "ADD_MOOD" }
func (AddXP) Type() string              { return "ADD_XP" }
func (RecordActivity) Type() string     { return "RECORD_ACTIVITY" }
func (AddNotification) Type() string    { return "ADD_NOTIFICATION" }
func (ClearNotifications) Type() string { return "CLEAR_NOTIFICATIONS" }

// Reduce returns the next state. The input state is never modified.
func Reduce(state AppState, action Action) AppState {
	next := state.Clone()

	switch a := action.(type) {
	case SetProfile:
		next.Profile = deepCopy(a.Profile)
		next.IsOnboarding = false
	case SetGameProfile:
		next.GameProfile = deepCopy(a.GameProfile)
	case AddMood:
		moods := make([]MoodEntry, 0, MaxRecentMoods)
		moods = append(moods, *deepCopy(&a.Entry))
		moods = append(moods, next.RecentMoods[:min(len(next.RecentMoods), MaxRecentMoods-1)]...)
		next.RecentMoods = moods
	case AddXP:
		if next.GameProfile != nil {
			next.GameProfile.AddXP(a.Amount)
		}
	case RecordActivity:
		if next.GameProfile != nil {
			next.GameProfile.RecordActivity(a.Activity, a.At)
			next.GameProfile.UnlockAbilities()
		}
	case AddNotification:
		next.Notifications = append([]string{a.Message}, next.Notifications...)
	case ClearNotifications:
		next.Notifications = []string{}
	default:
		CurrentLogger().Debugf("Ignoring unknown action %T", action)
		return state
	}

	return next
}

var deepCopyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			// time.Time only has unexported fields
			SrcType: time.Time{},
			DstType: time.Time{},
			Fn: func(src any) (any, error) {
				return src.(time.Time), nil
			},
		},
	},
}

func deepCopy[T any](src *T) *T {
	if src == nil {
		return nil
	}
	var dst T
	if err := copier.CopyWithOption(&dst, src, deepCopyOption); err != nil {
		// Only happens when types are incompatible
		panic(fmt.Sprintf("unable to copy %T: %v", src, err))
	}
	return &dst
}
