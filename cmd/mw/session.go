package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var sessionMinutes int

func init() {
	sessionCmd.Flags().IntVarP(&sessionMinutes, "minutes", "m", 10, "duration of the session")
	rootCmd.AddCommand(sessionCmd)
}

// Run locally:
//
//	$ go run ./cmd/mw session yoga --minutes 20
var sessionCmd = &cobra.Command{
	Use:       "session <activity>",
	Short:     "Log a wellness session",
	Long:      `Log a completed session of music, yoga, exercise, meditation, or breathing.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: wellnessActivityIDs(),
	RunE: func(cmd *cobra.Command, args []string) error {
		journal := core.CurrentJournal()

		// Routines depend on the mood before the session
		var lastMood *core.MoodEntry
		if moods := core.CurrentStore().State().RecentMoods; len(moods) > 0 {
			lastMood = &moods[0]
		}

		outcome, err := journal.LogSession(args[0], sessionMinutes)
		if err != nil {
			return err
		}

		if routine := core.SuggestedRoutine(outcome.Session.Activity, lastMood); len(routine) > 0 {
			fmt.Fprintln(cmd.OutOrStdout(), bold("Suggested routine:"))
			for _, step := range routine {
				fmt.Fprintf(cmd.OutOrStdout(), "  • %s\n", step)
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprint(cmd.OutOrStdout(), FormatOutcome(outcome))
		return nil
	},
}

func wellnessActivityIDs() []string {
	var ids []string
	for _, activity := range core.WellnessActivities {
		ids = append(ids, activity.ID)
	}
	return ids
}
