package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"

	httpadapter "mooh-ads/internal/adapter/http"
	"mooh-ads/internal/adapter/postgres"
	"mooh-ads/internal/adapter/usecase"
	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/db"
)

func (a *app) ledgerCommand() *cobra.Command {
	var (
		campaignID int64
		unitID     string
	)
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Print the route ledger of a campaign or a reporting unit as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (campaignID == 0) == (unitID == "") {
				return errors.New("exactly one of --campaign or --unit is required")
			}
			ctx := cmd.Context()
			pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
			if err != nil {
				return err
			}
			defer pool.Close()

			svc := usecase.NewFleetUseCase(
				postgres.NewCampaignRepository(pool),
				postgres.NewTraceRepository(pool),
				usecase.WithLogger(a.logger),
			)
			var ledger *domain.Ledger
			if campaignID != 0 {
				ledger, err = svc.LedgerByCampaign(ctx, campaignID)
			} else {
				ledger, err = svc.LedgerByUnit(ctx, unitID)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(httpadapter.NewLedgerResponse(ledger))
		},
	}
	cmd.Flags().Int64Var(&campaignID, "campaign", 0, "campaign id")
	cmd.Flags().StringVar(&unitID, "unit", "", "reporting unit id")
	return cmd
}
