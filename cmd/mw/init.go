package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Init a journal",
	Long:  `Create the .mw directory and the journal directory in the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		config, err := core.InitHome(cwd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✨ Journal initialized in %s\n", config.HomeDir())
		fmt.Fprintf(cmd.OutOrStdout(), "Edit %s to choose your response style.\n", config.ConfigPath())
		return nil
	},
}
