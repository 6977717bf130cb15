package main

import (
	"github.com/spf13/cobra"

	"mooh-ads/internal/adapter/postgres"
	"mooh-ads/internal/db"
)

func (a *app) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo campaigns and route traces",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			err = db.Seed(ctx, postgres.NewCampaignRepository(pool), postgres.NewTraceRepository(pool))
			if err != nil {
				return err
			}
			a.logger.Info("demo data inserted")
			return nil
		},
	}
}
