package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/meinhoongagan/handyhub/config"
	"github.com/meinhoongagan/handyhub/db"
	"github.com/meinhoongagan/handyhub/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Setup(cfg.App.Environment, cfg.App.LogLevel)

		gdb, err := db.Open(cfg.Database)
		if err != nil {
			return err
		}
		if err := db.Migrate(gdb); err != nil {
			return err
		}
		slog.Info("migrations applied", "driver", cfg.Database.Driver)
		return nil
	},
}
