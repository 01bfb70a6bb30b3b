package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var verboseInfo bool
var verboseDebug bool
var verboseTrace bool

var dryRun bool

// Commands usable outside a .mw directory
var standaloneCommands = map[string]bool{
	"init":    true,
	"analyze": true,
	"dream":   true,
	"sos":     true,
	"help":    true,
}

var rootCmd = &cobra.Command{
	Use:   "mw",
	Short: "The MoodWriter is a file-based mood journal",
	Long:  `Track your mood, journal, and log your dreams using only Markdown files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Enable verbose output. The most verbose level wins when multiple flags are passed.
		if verboseInfo {
			core.CurrentLogger().SetVerboseLevel(core.VerboseInfo)
		}
		if verboseDebug {
			core.CurrentLogger().SetVerboseLevel(core.VerboseDebug)
		}
		if verboseTrace {
			core.CurrentLogger().SetVerboseLevel(core.VerboseTrace)
		}

		if !standaloneCommands[cmd.Name()] {
			// Exit when no configuration is found
			CheckConfig()
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		core.CurrentLogger().Sync()
	},
	SilenceUsage: true,
}

func init() {
	// Use PersistentFlags to make flags accessible to sub-commands
	rootCmd.PersistentFlags().BoolVarP(&verboseInfo, "v", "", false, "enable verbose info output")
	rootCmd.PersistentFlags().BoolVarP(&verboseDebug, "vv", "", false, "enable verbose debug output")
	rootCmd.PersistentFlags().BoolVarP(&verboseTrace, "vvv", "", false, "enable verbose trace output")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "do not write any file")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func CheckConfig() {
	config := core.CurrentConfig()
	if err := config.Check(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	config.DryRun = dryRun
}

func main() {
	Execute()
}
