package main

import (
	"canteen/cmd"
	"canteen/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the PostgreSQL schema",
	RunE: func(c *cobra.Command, _ []string) error {
		configs := getConfigs()
		logger := cmd.NewLogger(configs.AppEnv)

		db, err := cmd.OpenDatabase(configs)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err = postgres.Migrate(db); err != nil {
			return err
		}

		logger.InfoContext(c.Context(), "Schema is up to date", "database", configs.DBName)
		return nil
	},
}
