package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
	"github.com/julien-sobczak/the-moodwriter/pkg/clock"
	"github.com/julien-sobczak/the-moodwriter/pkg/oid"
)

var (
	ErrUnknownMood  = errors.New("unknown mood")
	ErrInvalidLevel = errors.New("level must be between 0 and 100")
	ErrMissingOID   = errors.New("missing oid")
)

type EntryKind string

const (
	KindMood    EntryKind = "mood"
	KindJournal EntryKind = "journal"
	KindDream   EntryKind = "dream"
)

// Default values for entries without explicit levels
const (
	DefaultLevel = 50

	DreamMood           = "dreamy"
	DreamEmotionalScore = 60
	DreamStressLevel    = 30
	DreamEnergyLevel    = 70
	DreamAnxietyLevel   = 20
)

// MoodLabel is an entry of the mood scale proposed by the mood tracker.
type MoodLabel struct {
	Label string
	Emoji string
	Value int
}

// MoodScale is ordered from the worst to the best mood.
var MoodScale = []MoodLabel{
	{Label: "Very Sad", Emoji: "😢", Value: 10},
	{Label: "Sad", Emoji: "😞", Value: 25},
	{Label: "Neutral", Emoji: "😐", Value: 50},
	{Label: "Happy", Emoji: "🙂", Value: 75},
	{Label: "Very Happy", Emoji: "😄", Value: 90},
}

// ParseMoodLabel finds a mood on the scale (case-insensitive, "very-sad" is accepted).
func ParseMoodLabel(value string) (MoodLabel, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), "-", " ")
	for _, mood := range MoodScale {
		if strings.EqualFold(mood.Label, normalized) {
			return mood, nil
		}
	}
	return MoodLabel{}, fmt.Errorf("%w %q", ErrUnknownMood, value)
}

// MoodEntry is a mood, journal or dream entry kept in the recent history.
type MoodEntry struct {
	OID            oid.OID   `yaml:"oid" json:"oid"`
	Kind           EntryKind `yaml:"kind" json:"kind"`
	UserID         string    `yaml:"user_id" json:"userId"`
	Mood           string    `yaml:"mood" json:"mood"`
	EmotionalScore int       `yaml:"emotional_score" json:"emotionalScore"`
	JournalEntry   string    `yaml:"journal_entry,omitempty" json:"journalEntry,omitempty"`
	DreamEntry     string    `yaml:"dream_entry,omitempty" json:"dreamEntry,omitempty"`
	DreamSymbols   []string  `yaml:"dream_symbols,omitempty" json:"dreamSymbols,omitempty"`
	StressLevel    int       `yaml:"stress_level" json:"stressLevel"`
	EnergyLevel    int       `yaml:"energy_level" json:"energyLevel"`
	AnxietyLevel   int       `yaml:"anxiety_level" json:"anxietyLevel"`
	Tags           []string  `yaml:"tags" json:"tags"`
	CrisisRisk     bool      `yaml:"crisis_risk,omitempty" json:"crisisRisk,omitempty"`
	CreatedAt      time.Time `yaml:"created_at" json:"createdAt"`
}

// Levels groups the self-assessed levels of the mood tracker.
type Levels struct {
	Stress  int
	Energy  int
	Anxiety int
}

// DefaultLevels are used when the user did not assess them.
func DefaultLevels() Levels {
	return Levels{Stress: DefaultLevel, Energy: DefaultLevel, Anxiety: DefaultLevel}
}

// NewMoodEntry creates an entry from the mood tracker.
func NewMoodEntry(userID string, mood MoodLabel, text string, levels Levels, result analysis.EmotionalAnalysis) *MoodEntry {
	return &MoodEntry{
		OID:            oid.New(),
		Kind:           KindMood,
		UserID:         userID,
		Mood:           mood.Label,
		EmotionalScore: result.EmotionalScore,
		JournalEntry:   text,
		StressLevel:    levels.Stress,
		EnergyLevel:    levels.Energy,
		AnxietyLevel:   levels.Anxiety,
		Tags:           result.Tags(),
		CrisisRisk:     result.CrisisRisk,
		CreatedAt:      clock.Now(),
	}
}

// NewJournalEntry creates an entry from a free journal text. The mood is the primary emotion.
func NewJournalEntry(userID string, text string, result analysis.EmotionalAnalysis) *MoodEntry {
	return &MoodEntry{
		OID:            oid.New(),
		Kind:           KindJournal,
		UserID:         userID,
		Mood:           result.PrimaryEmotion.String(),
		EmotionalScore: result.EmotionalScore,
		JournalEntry:   text,
		StressLevel:    DefaultLevel,
		EnergyLevel:    DefaultLevel,
		AnxietyLevel:   DefaultLevel,
		Tags:           result.Tags(),
		CrisisRisk:     result.CrisisRisk,
		CreatedAt:      clock.Now(),
	}
}

// NewDreamEntry creates a dream entry. Dreams are not scored: they use fixed levels.
func NewDreamEntry(userID string, text string, mood string) *MoodEntry {
	if strings.TrimSpace(mood) == "" {
		mood = DreamMood
	}
	return &MoodEntry{
		OID:            oid.New(),
		Kind:           KindDream,
		UserID:         userID,
		Mood:           mood,
		EmotionalScore: DreamEmotionalScore,
		DreamEntry:     text,
		DreamSymbols:   analysis.MatchDreamSymbols(text),
		StressLevel:    DreamStressLevel,
		EnergyLevel:    DreamEnergyLevel,
		AnxietyLevel:   DreamAnxietyLevel,
		Tags:           []string{"dream", "subconscious"},
		CreatedAt:      clock.Now(),
	}
}

// Text returns the journal or dream text of the entry.
func (e *MoodEntry) Text() string {
	if e.Kind == KindDream {
		return e.DreamEntry
	}
	return e.JournalEntry
}

// Validate checks the entry is identified and the levels are percentages.
func (e *MoodEntry) Validate() error {
	if e.OID.IsNil() {
		return ErrMissingOID
	}
	levels := []struct {
		name  string
		value int
	}{
		{"stress", e.StressLevel},
		{"energy", e.EnergyLevel},
		{"anxiety", e.AnxietyLevel},
	}
	for _, level := range levels {
		if level.value < 0 || level.value > 100 {
			return fmt.Errorf("invalid %s level %d: %w", level.name, level.value, ErrInvalidLevel)
		}
	}
	return nil
}

func (e *MoodEntry) String() string {
	return fmt.Sprintf("%s %s %q (score: %d)", e.OID.Short(), e.Kind, e.Mood, e.EmotionalScore)
}
