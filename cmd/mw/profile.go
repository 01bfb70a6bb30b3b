package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/analysis"
	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var profileStyle string
var profileCrisisSupport bool

func init() {
	profileCmd.Flags().StringVarP(&profileStyle, "style", "s", "", "change the response style (gentle, motivational, neutral)")
	profileCmd.Flags().BoolVarP(&profileCrisisSupport, "crisis-support", "", false, "enable or disable helpline notifications")
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and progress",
	Long:  `Show the response style, the level, the streaks, and the abilities. Flags update the profile.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := core.CurrentConfig()

		changed := false
		if cmd.Flags().Changed("style") {
			style, err := analysis.ParseResponseStyle(profileStyle)
			if err != nil {
				return err
			}
			config.ConfigFile.Profile.ResponseStyle = string(style)
			changed = true
		}
		if cmd.Flags().Changed("crisis-support") {
			config.ConfigFile.Profile.CrisisSupport = profileCrisisSupport
			changed = true
		}

		store := core.CurrentStore()
		if changed {
			store.Dispatch(core.SetProfile{Profile: config.Profile()})
			if config.DryRun {
				core.CurrentLogger().Info("Dry-run mode: profile not saved")
			} else {
				if err := config.Save(); err != nil {
					return err
				}
				if err := store.Save(); err != nil {
					return err
				}
				core.CurrentLogger().Infof("Profile updated in %s", config.ConfigPath())
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), FormatProfile(store.State()))
		return nil
	},
}
