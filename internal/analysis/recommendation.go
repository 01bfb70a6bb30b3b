package analysis

// Band is a score interval mapped to a fixed set of recommendations.
type Band string

const (
	// BandLow covers scores below 30.
	BandLow Band = "low"
	// BandBelowNeutral covers scores in [30,50).
	BandBelowNeutral Band = "below-neutral"
	// BandNeutral covers scores in [50,70). No recommendations.
	BandNeutral Band = "neutral"
	// BandHigh covers scores from 70.
	BandHigh Band = "high"
)

var recommendationsByBand = map[Band][]string{
	BandLow: {
		"Try a 5-minute breathing exercise",
		"Consider journaling about what's bothering you",
		"Reach out to a trusted friend or family member",
		"Play a stress relief game to calm your mind",
		"Try a guided meditation or yoga session",
	},
	BandBelowNeutral: {
		"Take a short walk outside",
		"Practice gratitude by listing 3 good things from today",
		"Listen to calming music",
		"Engage in a mindfulness activity",
	},
	BandHigh: {
		"Share your positive energy with others",
		"Try a new creative activity",
		"Set a new personal goal",
		"Consider scheduling a wellness activity",
	},
}

// BandOf returns the band of a score.
func BandOf(score int) Band {
	switch {
	case score < 30:
		return BandLow
	case score < 50:
		return BandBelowNeutral
	case score >= 70:
		return BandHigh
	default:
		return BandNeutral
	}
}

// Recommendations returns the suggestions for a score. The result is a fresh slice, never nil.
func Recommendations(score int) []string {
	return append([]string{}, recommendationsByBand[BandOf(score)]...)
}
