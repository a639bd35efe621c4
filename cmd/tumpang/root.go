package main

import (
	"github.com/spf13/cobra"
)

const appName = "tumpang"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          appName,
		Short:        "Ride-bidding marketplace backend",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config/tumpang.env", "env file loaded when APP_ENV=local")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newMigrateCmd(&configPath))
	return root
}
