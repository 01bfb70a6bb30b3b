package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
	"github.com/julien-sobczak/the-moodwriter/internal/core"
	"github.com/julien-sobczak/the-moodwriter/pkg/console"
	"github.com/julien-sobczak/the-moodwriter/pkg/text"
)

var (
	titleCaser = cases.Title(language.English)

	bold    = color.New(color.Bold).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
	red     = color.New(color.FgRed, color.Bold).SprintFunc()
	yellow  = color.New(color.FgYellow).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	magenta = color.New(color.FgMagenta).SprintFunc()
)

// Supported values for --format
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// display converts a label to a human-friendly title ("very sad" => "Very Sad").
func display(label string) string {
	return titleCaser.String(label)
}

func listOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func colorScore(score int) string {
	value := fmt.Sprintf("%d/100", score)
	switch analysis.BandOf(score) {
	case analysis.BandLow:
		return red(value)
	case analysis.BandBelowNeutral:
		return yellow(value)
	case analysis.BandHigh:
		return green(value)
	default:
		return value
	}
}

// FormatAnalysis renders an analysis for the terminal.
func FormatAnalysis(result analysis.EmotionalAnalysis) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", bold("Primary emotion:"), display(result.PrimaryEmotion.String())))
	sb.WriteString(fmt.Sprintf("%s %s (%s)\n", bold("Emotional score:"), colorScore(result.EmotionalScore), result.Band()))
	sb.WriteString(fmt.Sprintf("%s %s\n", bold("Stress indicators:"), listOrDash(result.StressIndicators)))
	sb.WriteString(fmt.Sprintf("%s %s\n", bold("Positive indicators:"), listOrDash(result.PositiveIndicators)))
	if result.CrisisRisk {
		sb.WriteString(fmt.Sprintf("%s %s\n", bold("Crisis risk:"), red("yes")))
	} else {
		sb.WriteString(fmt.Sprintf("%s %s\n", bold("Crisis risk:"), "no"))
	}
	if len(result.Recommendations) > 0 {
		sb.WriteString(bold("Recommendations:"))
		sb.WriteString("\n")
		for _, recommendation := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("  • %s\n", recommendation))
		}
	}
	return sb.String()
}

// AnalysisReport is the structured output of `mw analyze`.
type AnalysisReport struct {
	analysis.EmotionalAnalysis `yaml:",inline"`
	Response                   string `json:"response,omitempty" yaml:"response,omitempty"`
}

// FormatReport renders an analysis report in the given format.
func FormatReport(report AnalysisReport, format string) (string, error) {
	switch format {
	case FormatText, "":
		result := FormatAnalysis(report.EmotionalAnalysis)
		if report.Response != "" {
			result += "\n" + magenta(report.Response) + "\n"
		}
		return result, nil
	case FormatYAML:
		data, err := yaml.Marshal(report)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format %q (use %s, %s or %s)", format, FormatText, FormatYAML, FormatJSON)
	}
}

// FormatDreamSymbols renders the symbols found in a dream.
func FormatDreamSymbols(symbols []string) string {
	if len(symbols) == 0 {
		return "No known dream symbol found.\n"
	}
	var sb strings.Builder
	sb.WriteString(bold("Dream symbols:"))
	sb.WriteString("\n")
	for _, symbol := range symbols {
		sb.WriteString(fmt.Sprintf("  🔮 %s\n", symbol))
	}
	return sb.String()
}

// FormatOutcome renders what an operation saved and the notifications to show.
func FormatOutcome(outcome *core.Outcome) string {
	var sb strings.Builder
	if outcome.Response != "" {
		sb.WriteString(magenta(outcome.Response))
		sb.WriteString("\n\n")
	}
	for _, notification := range outcome.Notifications {
		if notification == core.HelplineMessage {
			sb.WriteString(red(notification))
		} else {
			sb.WriteString(notification)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(green(fmt.Sprintf("+%d XP", outcome.XP)))
	if outcome.JournalPath != "" {
		sb.WriteString(faint(fmt.Sprintf(" (saved in %s)", outcome.JournalPath)))
	}
	sb.WriteString("\n")
	return sb.String()
}

// FormatProfile renders the profile and the game progress of a user.
func FormatProfile(state core.AppState) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", bold("User:"), state.CurrentUser))
	if profile := state.Profile; profile != nil {
		sb.WriteString(fmt.Sprintf("%s %s\n", bold("Response style:"), display(string(profile.Style()))))
		crisisSupport := "disabled"
		if profile.CrisisSupport {
			crisisSupport = "enabled"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", bold("Crisis support:"), crisisSupport))
		sb.WriteString(fmt.Sprintf("%s %s\n", bold("Conditions:"), listOrDash(profile.Conditions)))
	}

	game := state.GameProfile
	if game == nil {
		return sb.String()
	}

	gauge := console.NewGauge(100, console.Width(20), console.Runes("█", "░"), console.ShowPercent())
	sb.WriteString("\n")
	sb.WriteString(console.Box(
		fmt.Sprintf("Level %d (%d XP)", game.Level, game.TotalXP),
		gauge.Render(game.ProgressPercent(), "of the level"),
		fmt.Sprintf("%d XP to level %d", game.XPToNextLevel(), game.Level+1),
	))
	sb.WriteString("\n\n")

	sb.WriteString(bold("Streaks:"))
	sb.WriteString("\n")
	hasStreak := false
	for _, activity := range trackedActivities() {
		if days := game.Streaks[activity]; days > 0 {
			hasStreak = true
			sb.WriteString(fmt.Sprintf("  🔥 %s: %d day(s)\n", display(activity), days))
		}
	}
	if !hasStreak {
		sb.WriteString("  -\n")
	}

	sb.WriteString(bold("Abilities:"))
	sb.WriteString("\n")
	for _, ability := range core.Abilities {
		if game.HasAbility(ability.Name) {
			sb.WriteString(fmt.Sprintf("  🏆 %s: %s\n", ability.Name, ability.Description))
		} else {
			progress := min(ability.Progress(game), ability.Requirement)
			sb.WriteString(faint(fmt.Sprintf("  🔒 %s: %s (%d/%d)", ability.Name, ability.Description, progress, ability.Requirement)))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func trackedActivities() []string {
	activities := []string{core.ActivityMood, core.ActivityJournaling, core.ActivityDreams}
	for _, activity := range core.WellnessActivities {
		activities = append(activities, activity.ID)
	}
	return activities
}

// FormatHistory renders the recent entries, newest first.
func FormatHistory(moods []core.MoodEntry) string {
	if len(moods) == 0 {
		return "No entry yet.\n"
	}
	var sb strings.Builder
	for _, mood := range moods {
		summary := text.Abbreviate(mood.Text(), 50)
		if summary == "" {
			summary = faint("(no text)")
		}
		sb.WriteString(fmt.Sprintf("%s  %-7s %-10s %s  %s\n",
			mood.CreatedAt.Format("2006-01-02 15:04"),
			mood.Kind,
			display(mood.Mood),
			colorScore(mood.EmotionalScore),
			summary))
	}
	return sb.String()
}

// FormatQueryResults renders the values emitted by a jq expression, one per line.
func FormatQueryResults(values []any) (string, error) {
	var sb strings.Builder
	for _, value := range values {
		if s, ok := value.(string); ok {
			sb.WriteString(s)
			sb.WriteString("\n")
			continue
		}
		data, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		sb.Write(data)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// FormatNotifications renders the notifications, newest first.
func FormatNotifications(notifications []string) string {
	if len(notifications) == 0 {
		return "No notification.\n"
	}
	var sb strings.Builder
	for _, notification := range notifications {
		sb.WriteString(fmt.Sprintf("🔔 %s\n", notification))
	}
	return sb.String()
}

// FormatHelplines renders the crisis resources.
func FormatHelplines(helplines []core.Helpline) string {
	var sb strings.Builder
	sb.WriteString(red("If you are in immediate danger, call 911 or your local emergency number."))
	sb.WriteString("\n\n")
	for _, helpline := range helplines {
		sb.WriteString(fmt.Sprintf("%s %s\n", bold(helpline.Name), faint("("+helpline.Availability+")")))
		sb.WriteString(fmt.Sprintf("  %s\n", helpline.Description))
		if helpline.Phone != "" {
			sb.WriteString(fmt.Sprintf("  📞 %s\n", helpline.Phone))
		}
		if helpline.Text != "" {
			sb.WriteString(fmt.Sprintf("  💬 %s\n", helpline.Text))
		}
		if helpline.URL != "" {
			sb.WriteString(fmt.Sprintf("  🌐 %s\n", helpline.URL))
		}
	}
	return sb.String()
}
