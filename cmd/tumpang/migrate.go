package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piresc/tumpang/internal/pkg/config"
	"github.com/piresc/tumpang/internal/pkg/database"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}

	run := func(action func(*database.Migrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			configs := config.InitConfig(*configPath)

			migrator, err := database.NewMigrator(configs.Database)
			if err != nil {
				return err
			}
			defer migrator.Close()

			return action(migrator)
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: run(func(m *database.Migrator) error {
			return m.Up()
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		RunE: run(func(m *database.Migrator) error {
			return m.Down()
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(m *database.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
				return nil
			})(cmd, args)
		},
	})

	return cmd
}
