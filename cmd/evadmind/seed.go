package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evcharge-admin-backend/internal/app"
	"evcharge-admin-backend/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate the database and load the bundled fixtures",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer log.Sync()

		gormDB, err := db.Init(&cfg.Database, log)
		if err != nil {
			return err
		}
		if err := app.Seed(cmd.Context(), gormDB, log); err != nil {
			return err
		}
		log.Info("database seeded", zap.String("dsn", cfg.Database.DSN))
		return nil
	},
}
