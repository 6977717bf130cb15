package main

import (
	"github.com/spf13/cobra"

	"mooh-ads/internal/db"
)

func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
				return err
			}
			a.logger.Info("migrations applied successfully")
			return nil
		},
	}
}
