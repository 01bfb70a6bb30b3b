package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var dreamSave bool
var dreamMood string

func init() {
	dreamCmd.Flags().BoolVarP(&dreamSave, "save", "", false, "save the dream in the journal")
	dreamCmd.Flags().StringVarP(&dreamMood, "mood", "m", core.DreamMood, "mood felt during the dream")
	rootCmd.AddCommand(dreamCmd)
}

var dreamCmd = &cobra.Command{
	Use:   "dream [text...]",
	Short: "Interpret a dream",
	Long:  `Search for known symbols in a dream (read from stdin when missing). Use --save to log it in the journal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := ReadText(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		if !dreamSave {
			fmt.Fprint(cmd.OutOrStdout(), FormatDreamSymbols(analysis.MatchDreamSymbols(content)))
			return nil
		}

		// Saving requires a journal
		CheckConfig()
		outcome, err := core.CurrentJournal().SaveDream(content, dreamMood)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), FormatDreamSymbols(outcome.DreamSymbols))
		fmt.Fprint(cmd.OutOrStdout(), FormatOutcome(outcome))
		return nil
	},
}
