package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/julien-sobczak/the-moodwriter/internal/core"
)

var notificationsClear bool

func init() {
	notificationsCmd.Flags().BoolVarP(&notificationsClear, "clear", "", false, "clear all notifications")
	rootCmd.AddCommand(notificationsCmd)
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List pending notifications",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := core.CurrentStore()
		if !notificationsClear {
			fmt.Fprint(cmd.OutOrStdout(), FormatNotifications(store.State().Notifications))
			return nil
		}

		store.Dispatch(core.ClearNotifications{})
		if core.CurrentConfig().DryRun {
			return nil
		}
		return store.Save()
	},
}
