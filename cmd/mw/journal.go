package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var journalEdit bool

func init() {
	journalCmd.Flags().BoolVarP(&journalEdit, "edit", "e", false, "open the journal file in $EDITOR after saving")
	rootCmd.AddCommand(journalCmd)
}

var journalCmd = &cobra.Command{
	Use:   "journal [text...]",
	Short: "Write a journal entry",
	Long:  `Save a free-form entry (read from stdin when missing) and receive a personalized response.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := ReadText(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		outcome, err := core.CurrentJournal().SaveJournal(content)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), FormatOutcome(outcome))

		if outcome.JournalPath == "" {
			// Nothing written
			return nil
		}
		edit := journalEdit
		if !edit && len(args) > 0 && IsInteractive() {
			edit, err = AskToOpenInEditor()
			if err != nil {
				return err
			}
		}
		if edit {
			return OpenInEditor(outcome.JournalPath)
		}
		return nil
	},
}
