package analysis

import (
	"errors"
	"fmt"
	"strings"
)

// ResponseStyle is the tone used when talking back to the user.
type ResponseStyle string

const (
	Gentle       ResponseStyle = "gentle"
	Motivational ResponseStyle = "motivational"
	NeutralStyle ResponseStyle = "neutral"
)

var ErrUnknownResponseStyle = errors.New("unknown response style")

// ResponseStyles lists the supported styles.
func ResponseStyles() []ResponseStyle {
	return []ResponseStyle{Gentle, Motivational, NeutralStyle}
}

// ParseResponseStyle parses a style name (case-insensitive).
func ParseResponseStyle(value string) (ResponseStyle, error) {
	candidate := ResponseStyle(strings.ToLower(strings.TrimSpace(value)))
	for _, style := range ResponseStyles() {
		if candidate == style {
			return style, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected gentle, motivational or neutral)", ErrUnknownResponseStyle, value)
}

// CrisisMessage is returned whatever the style when a crisis risk was detected.
const CrisisMessage = "I notice you might be going through a really difficult time right now. Your feelings are valid, and you don't have to face this alone. Please consider reaching out to a crisis support line or a trusted person in your life. You matter, and there is help available."

// Respond writes a short personalized message about an analysis.
// Unknown styles use the neutral templates.
func Respond(analysis EmotionalAnalysis, style ResponseStyle) string {
	if analysis.CrisisRisk {
		return CrisisMessage
	}

	emotion := analysis.PrimaryEmotion
	score := analysis.EmotionalScore

	switch style {
	case Gentle:
		switch {
		case score < 30:
			return fmt.Sprintf("I can sense you're feeling %s right now, and that's completely okay. Your emotions are valid, and it's brave of you to acknowledge them. Take things one moment at a time, and be gentle with yourself. 💝", emotion)
		case score < 50:
			return fmt.Sprintf("It sounds like you're experiencing some %s feelings today. Remember that it's normal to have ups and downs. You're doing the best you can, and that's enough. 🌸", emotion)
		default:
			return fmt.Sprintf("I'm glad to hear you're feeling %s! It's wonderful when we can recognize and appreciate these positive moments. Keep nurturing this feeling. ✨", emotion)
		}
	case Motivational:
		switch {
		case score < 30:
			return fmt.Sprintf("I see you're dealing with %s right now - and you know what? You're still here, still fighting, and that makes you incredibly strong! Every challenge is an opportunity to grow stronger. You've got this! 💪", emotion)
		case score < 50:
			return fmt.Sprintf("Feeling %s is part of the human experience, and you're handling it like a champion! Use this as fuel to push forward and create positive change. Your resilience is inspiring! 🔥", emotion)
		default:
			return fmt.Sprintf("Yes! That %s energy is exactly what I love to see! You're radiating positivity and strength. Channel this amazing energy into achieving your goals! 🚀", emotion)
		}
	default:
		switch {
		case score < 30:
			return fmt.Sprintf("Analysis shows primary emotion: %s. Emotional score: %d/100. Consider implementing stress management techniques and seeking support if needed.", emotion, score)
		case score < 50:
			return fmt.Sprintf("Current emotional state: %s. Score: %d/100. This indicates room for improvement through targeted wellness activities.", emotion, score)
		default:
			return fmt.Sprintf("Emotional analysis: %s with score of %d/100. This reflects a positive mental state. Continue current practices.", emotion, score)
		}
	}
}
