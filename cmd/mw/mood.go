package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var moodLabel string
var moodStress int
var moodEnergy int
var moodAnxiety int

func init() {
	moodCmd.Flags().StringVarP(&moodLabel, "mood", "m", "", "mood (very-sad, sad, neutral, happy, very-happy)")
	moodCmd.Flags().IntVarP(&moodStress, "stress", "", core.DefaultLevel, "stress level (0-100)")
	moodCmd.Flags().IntVarP(&moodEnergy, "energy", "", core.DefaultLevel, "energy level (0-100)")
	moodCmd.Flags().IntVarP(&moodAnxiety, "anxiety", "", core.DefaultLevel, "anxiety level (0-100)")
	rootCmd.AddCommand(moodCmd)
}

// Run locally:
//
//	$ go run ./cmd/mw mood --mood sad --stress 80 "Work was overwhelming today"
var moodCmd = &cobra.Command{
	Use:   "mood [text...]",
	Short: "Track your mood",
	Long:  `Check in with a mood, optional levels, and an optional note.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mood, err := selectMood(moodLabel)
		if err != nil {
			return err
		}

		outcome, err := core.CurrentJournal().TrackMood(core.MoodInput{
			Mood: mood,
			Text: strings.Join(args, " "),
			Levels: core.Levels{
				Stress:  moodStress,
				Energy:  moodEnergy,
				Anxiety: moodAnxiety,
			},
		})
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), FormatAnalysis(*outcome.Analysis))
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), FormatOutcome(outcome))
		return nil
	},
}

func selectMood(label string) (core.MoodLabel, error) {
	if label != "" {
		return core.ParseMoodLabel(label)
	}
	if !IsInteractive() {
		return core.MoodLabel{}, errors.New("missing --mood flag")
	}
	return ChooseMood()
}
