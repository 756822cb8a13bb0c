package main

import (
	"os"
	"todolist/config"
	"todolist/shared/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ctl",
	Short: "Operator commands for the todo list service",
	Long: `Operator commands for the todo list service.

Configuration is read from .env and the environment, the same way the
server reads it.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.InitLogger()
		logger.Configure(config.Get())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
