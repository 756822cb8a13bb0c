package main

import (
	"todolist/config"
	"todolist/helper"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back database migrations",
}

func migrateAction(use, short, action string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return helper.Runner(config.Get(), action)
		},
	}
}

func init() {
	migrateCmd.AddCommand(migrateAction(helper.ActionUp, "Apply every pending migration", helper.ActionUp))
	migrateCmd.AddCommand(migrateAction(helper.ActionStepUp, "Apply the next pending migration", helper.ActionStepUp))
	migrateCmd.AddCommand(migrateAction(helper.ActionDown, "Roll back the last applied migration", helper.ActionDown))
	migrateCmd.AddCommand(migrateAction(helper.ActionDrop, "Roll back every migration", helper.ActionDrop))
	migrateCmd.AddCommand(migrateAction(helper.ActionVersion, "Show the applied migration version", helper.ActionVersion))
	rootCmd.AddCommand(migrateCmd)
}
