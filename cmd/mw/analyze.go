package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
)

var analyzeStyle string
var analyzeFormat string

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeStyle, "style", "s", "", "add a personalized response (gentle, motivational, neutral)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", FormatText, "output format (text, yaml, json)")
	rootCmd.AddCommand(analyzeCmd)
}

// Run locally:
//
//	$ echo "I feel anxious and I can't sleep" | go run ./cmd/mw analyze --style gentle
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze the emotions of a text",
	Long:  `Classify the emotions of a text (read from stdin when missing) without saving anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := ReadText(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		report := AnalysisReport{
			EmotionalAnalysis: analysis.Analyze(content),
		}
		if analyzeStyle != "" {
			style, err := analysis.ParseResponseStyle(analyzeStyle)
			if err != nil {
				return err
			}
			report.Response = analysis.Respond(report.EmotionalAnalysis, style)
		}

		output, err := FormatReport(report, analyzeFormat)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}
