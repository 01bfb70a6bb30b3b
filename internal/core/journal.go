package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
	"github.com/julien-sobczak/the-moodwriter/pkg/clock"
	"github.com/julien-sobczak/the-moodwriter/pkg/text"
)

var ErrBlankEntry = errors.New("entry must not be blank")

// HelplineMessage is notified when a crisis is detected and the user enabled crisis support.
const HelplineMessage = "I notice you might be struggling. Please consider reaching out to a crisis helpline: 988 (US) or emergency services."

// MoodInput is the content of the mood tracker form.
type MoodInput struct {
	Mood   MoodLabel
	Text   string
	Levels Levels
}

// Outcome reports what an operation saved and what the user must be told.
type Outcome struct {
	Entry    *MoodEntry
	Session  *Session
	Analysis *analysis.EmotionalAnalysis // nil for dreams and sessions
	// Interpretations of the symbols found in a dream
	DreamSymbols []string
	Response     string
	// Notifications added by the operation, in emission order
	Notifications []string
	XP            int
	LeveledUp     bool
	Level         int
	Unlocked      []Ability
	// Journal file updated by the operation (empty in dry-run mode)
	JournalPath string
}

// Journal saves the user entries, rewards them, and keeps the daily journal files.
type Journal struct {
	config *Config
	store  *Store
}

func NewJournal(config *Config, store *Store) *Journal {
	return &Journal{
		config: config,
		store:  store,
	}
}

// CurrentJournal returns a journal bound to the current configuration and state.
func CurrentJournal() *Journal {
	return NewJournal(CurrentConfig(), CurrentStore())
}

// TrackMood saves a mood check-in. Recommendations are notified, and the helpline too
// when a crisis is detected for a user who enabled crisis support.
func (j *Journal) TrackMood(input MoodInput) (*Outcome, error) {
	if input.Mood.Label == "" {
		return nil, fmt.Errorf("%w: missing mood", ErrUnknownMood)
	}

	state := j.store.State()
	result := analysis.Analyze(input.Text)
	entry := NewMoodEntry(state.CurrentUser, input.Mood, input.Text, input.Levels, result)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	notifications := append([]string{}, result.Recommendations...)
	if result.CrisisRisk && state.Profile.WantsCrisisSupport() {
		notifications = append(notifications, HelplineMessage)
	}

	outcome := &Outcome{
		Entry:    entry,
		Analysis: &result,
	}
	return j.commit(outcome, ActivityMood, j.config.ConfigFile.Rewards.Mood, notifications)
}

// SaveJournal saves a free journal entry and generates the personalized response.
func (j *Journal) SaveJournal(content string) (*Outcome, error) {
	if text.IsBlank(content) {
		return nil, ErrBlankEntry
	}

	state := j.store.State()
	style := state.Profile.Style()
	result := analysis.Analyze(content)
	entry := NewJournalEntry(state.CurrentUser, content, result)

	outcome := &Outcome{
		Entry:    entry,
		Analysis: &result,
		Response: analysis.Respond(result, style),
	}
	notifications := []string{journalAcknowledgement(style, result.EmotionalScore)}
	return j.commit(outcome, ActivityJournaling, j.config.ConfigFile.Rewards.Journal, notifications)
}

// SaveDream saves a dream with the interpretations of its symbols.
func (j *Journal) SaveDream(content string, mood string) (*Outcome, error) {
	if text.IsBlank(content) {
		return nil, ErrBlankEntry
	}

	state := j.store.State()
	entry := NewDreamEntry(state.CurrentUser, content, mood)

	outcome := &Outcome{
		Entry:        entry,
		DreamSymbols: entry.DreamSymbols,
	}
	notifications := []string{dreamAcknowledgement(state.Profile.Style())}
	return j.commit(outcome, ActivityDreams, j.config.ConfigFile.Rewards.Dream, notifications)
}

// LogSession rewards a completed wellness session.
func (j *Journal) LogSession(activity string, minutes int) (*Outcome, error) {
	wellness, err := ParseWellnessActivity(activity)
	if err != nil {
		return nil, err
	}
	session := Session{
		Activity:    wellness.ID,
		Minutes:     minutes,
		CompletedAt: clock.Now(),
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	state := j.store.State()
	outcome := &Outcome{
		Session: &session,
	}
	notifications := []string{sessionMessage(state.Profile.Style(), session)}
	return j.commit(outcome, session.Activity, session.XP(), notifications)
}

// commit dispatches the changes of an operation and persists them.
func (j *Journal) commit(outcome *Outcome, activity string, xp int, notifications []string) (*Outcome, error) {
	now := clock.Now()
	before := j.store.State().GameProfile

	var actions []Action
	if outcome.Entry != nil {
		actions = append(actions, AddMood{Entry: *outcome.Entry})
	}
	actions = append(actions,
		AddXP{Amount: xp},
		RecordActivity{Activity: activity, At: now},
	)
	after := j.store.Dispatch(actions...).GameProfile

	outcome.XP = xp
	if before != nil && after != nil {
		outcome.Level = after.Level
		if after.Level > before.Level {
			outcome.LeveledUp = true
			notifications = append(notifications, fmt.Sprintf("🎉 Level up! You reached level %d.", after.Level))
		}
		for _, ability := range Abilities {
			if !before.HasAbility(ability.Name) && after.HasAbility(ability.Name) {
				outcome.Unlocked = append(outcome.Unlocked, ability)
				notifications = append(notifications, fmt.Sprintf("🏆 New ability unlocked: %s (%s)", ability.Name, ability.Description))
			}
		}
	}

	var notificationActions []Action
	for _, notification := range notifications {
		notificationActions = append(notificationActions, AddNotification{Message: notification})
	}
	j.store.Dispatch(notificationActions...)
	outcome.Notifications = notifications

	if j.config.DryRun {
		CurrentLogger().Info("Dry-run mode: nothing written")
		return outcome, nil
	}

	path, err := j.appendToJournal(outcome, now)
	if err != nil {
		return nil, err
	}
	outcome.JournalPath = path

	if err := j.store.Save(); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (j *Journal) appendToJournal(outcome *Outcome, now time.Time) (string, error) {
	var title, content string
	switch {
	case outcome.Entry != nil:
		title, content = EntrySection(outcome.Entry)
	case outcome.Session != nil:
		title, content = SessionSection(*outcome.Session)
	default:
		return "", nil
	}

	journalDir := j.config.JournalDir()
	path, err := CreateJournalFileIfMissing(journalDir, now)
	if err != nil {
		return "", fmt.Errorf("unable to create journal file: %w", err)
	}
	if err := AppendToJournal(path, title, content); err != nil {
		return "", err
	}
	if err := GenerateTodaySymlink(journalDir, path); err != nil {
		CurrentLogger().Warnf("Unable to update today.md: %v", err)
	}
	CurrentLogger().Infof("Section %q appended to %s", title, path)
	return path, nil
}

func journalAcknowledgement(style analysis.ResponseStyle, score int) string {
	switch style {
	case analysis.Gentle:
		return "💝 Thank you for sharing your thoughts. Your feelings are valid and important."
	case analysis.Motivational:
		return "⚡ Great job journaling! You're building emotional awareness and resilience."
	default:
		return fmt.Sprintf("🎯 Journal entry saved. Your emotional score today: %d", score)
	}
}

func dreamAcknowledgement(style analysis.ResponseStyle) string {
	switch style {
	case analysis.Gentle:
		return "🌙 Thank you for sharing your dream. Dreams can offer beautiful insights into our inner world."
	case analysis.Motivational:
		return "⭐ Excellent dream journaling! You're exploring the depths of your subconscious mind."
	default:
		return "🎯 Dream logged successfully. Your subconscious patterns are being tracked."
	}
}

func sessionMessage(style analysis.ResponseStyle, session Session) string {
	switch style {
	case analysis.Gentle:
		return fmt.Sprintf("🌸 Beautiful work! You've completed a %d-minute %s session.", session.Minutes, session.Title())
	case analysis.Motivational:
		return fmt.Sprintf("🔥 Amazing! You crushed that %d-minute %s session!", session.Minutes, session.Title())
	default:
		return fmt.Sprintf("✅ Session complete: %d minutes of %s", session.Minutes, session.Title())
	}
}
