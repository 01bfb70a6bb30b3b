package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var historyQuery string

func init() {
	historyCmd.Flags().StringVarP(&historyQuery, "query", "q", "", "filter entries using a jq expression")
	rootCmd.AddCommand(historyCmd)
}

// Run locally:
//
//	$ go run ./cmd/mw history --query '.[] | select(.stressLevel > 70) | .mood'
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the recent entries",
	Long:  `Show the last entries, newest first. Use --query to filter them with a jq expression.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		moods := core.CurrentStore().State().RecentMoods

		if historyQuery == "" {
			fmt.Fprint(cmd.OutOrStdout(), FormatHistory(moods))
			return nil
		}

		results, err := core.QueryMoods(moods, historyQuery)
		if err != nil {
			return err
		}
		output, err := FormatQueryResults(results)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}
