package main

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var sosOpen bool

func init() {
	sosCmd.Flags().BoolVarP(&sosOpen, "open", "o", false, "open the website of the first helpline")
	rootCmd.AddCommand(sosCmd)
}

var sosCmd = &cobra.Command{
	Use:   "sos",
	Short: "Show crisis helplines",
	Long:  `If you are in immediate danger, call your local emergency number.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), FormatHelplines(core.Helplines))
		if sosOpen {
			return browser.OpenURL(core.Helplines[0].URL)
		}
		return nil
	},
}
