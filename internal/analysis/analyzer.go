// Package analysis scores free text for emotional tone and crisis risk.
//
// The analysis is a fixed-vocabulary scan: the text is lower-cased and every lexicon phrase
// is searched as a plain substring. There are no word boundaries, so "downtown" counts as "down"
// and "unworthless" as "worthless". This is a known weakness of the heuristic and is kept as is.
//
// All functions are pure and safe for concurrent use. Lexicons are package-level values never mutated.
package analysis

import (
	"strings"
)

const (
	baselineScore = 50
	minScore      = 0
	maxScore      = 100

	positiveEmotionWeight = 10
	positiveWordWeight    = 5
	negativeEmotionWeight = 8
)

// EmotionalAnalysis is the result of analyzing a text.
type EmotionalAnalysis struct {
	PrimaryEmotion     Emotion  `json:"primaryEmotion" yaml:"primary_emotion"`
	EmotionalScore     int      `json:"emotionalScore" yaml:"emotional_score"`
	StressIndicators   []string `json:"stressIndicators" yaml:"stress_indicators"`
	PositiveIndicators []string `json:"positiveIndicators" yaml:"positive_indicators"`
	Recommendations    []string `json:"recommendations" yaml:"recommendations"`
	CrisisRisk         bool     `json:"crisisRisk" yaml:"crisis_risk"`
}

// Tags returns the detected indicators, stress first, as stored on journal entries.
func (a EmotionalAnalysis) Tags() []string {
	tags := make([]string, 0, len(a.StressIndicators)+len(a.PositiveIndicators))
	tags = append(tags, a.StressIndicators...)
	tags = append(tags, a.PositiveIndicators...)
	return tags
}

// Band returns the score band of the analysis.
func (a EmotionalAnalysis) Band() Band {
	return BandOf(a.EmotionalScore)
}

// Analyze classifies a text. It never fails: an empty text yields the neutral baseline.
func Analyze(text string) EmotionalAnalysis {
	lowerText := strings.ToLower(text)

	counts := make(map[Emotion]int, len(emotionCategories))
	primary := emotionCategories[0].Emotion
	for _, category := range emotionCategories {
		counts[category.Emotion] = countContained(lowerText, category.Keywords)
		// Strict comparison: the first category wins ties
		if counts[category.Emotion] > counts[primary] {
			primary = category.Emotion
		}
	}

	positiveEmotions := counts[Happy] + counts[Calm] + counts[Motivated]
	negativeEmotions := counts[Sad] + counts[Anxious] + counts[Angry] + counts[Stressed]
	positiveWords := countContained(lowerText, positiveIndicators)

	score := baselineScore
	score += positiveEmotions*positiveEmotionWeight + positiveWords*positiveWordWeight
	score -= negativeEmotions * negativeEmotionWeight
	score = clamp(score, minScore, maxScore)

	return EmotionalAnalysis{
		PrimaryEmotion:     primary,
		EmotionalScore:     score,
		StressIndicators:   filterContained(lowerText, stressIndicators),
		PositiveIndicators: filterContained(lowerText, positiveIndicators),
		Recommendations:    Recommendations(score),
		CrisisRisk:         containsAny(lowerText, crisisPhrases),
	}
}

// EmotionCounts returns the number of keywords found for each category, in declaration order.
// Useful to explain the primary emotion chosen by Analyze.
func EmotionCounts(text string) []EmotionCount {
	lowerText := strings.ToLower(text)
	result := make([]EmotionCount, 0, len(emotionCategories))
	for _, category := range emotionCategories {
		result = append(result, EmotionCount{
			Emotion: category.Emotion,
			Matches: filterContained(lowerText, category.Keywords),
		})
	}
	return result
}

// EmotionCount lists the keywords of a category present in a text.
type EmotionCount struct {
	Emotion Emotion
	Matches []string
}

func (c EmotionCount) Count() int {
	return len(c.Matches)
}

/* Helpers */

// filterContained returns the phrases present in the text, in lexicon order.
// The result is never nil to keep the output shape stable.
func filterContained(text string, phrases []string) []string {
	result := []string{}
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			result = append(result, phrase)
		}
	}
	return result
}

func countContained(text string, phrases []string) int {
	count := 0
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			count++
		}
	}
	return count
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func clamp(value, low, high int) int {
	return max(low, min(high, value))
}
