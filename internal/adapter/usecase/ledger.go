package usecase

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"mooh-ads/internal/core/domain"
)

// campaignLookupLimit bounds concurrent campaign lookups of a unit ledger.
const campaignLookupLimit = 8

// LedgerByCampaign aggregates every trace of a campaign. The creative ref
// comes from the campaign record once.
func (u *FleetUseCase) LedgerByCampaign(ctx context.Context, campaignID int64) (*domain.Ledger, error) {
	var (
		campaign *domain.Campaign
		traces   []domain.RouteTrace
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		campaign, err = u.campaigns.GetCampaign(gctx, campaignID)
		return err
	})
	g.Go(func() (err error) {
		traces, err = u.traces.ListTracesByCampaign(gctx, campaignID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}

	ledger := u.buildLedger(traces)
	ledger.CreativeRef = campaign.CreativeRef
	for i := range ledger.Entries {
		ledger.Entries[i].CreativeRef = campaign.CreativeRef
	}
	return &ledger, nil
}

// LedgerByUnit aggregates every trace of a reporting unit. A unit may have
// served several campaigns, so each entry carries its own creative ref.
func (u *FleetUseCase) LedgerByUnit(ctx context.Context, unitID string) (*domain.Ledger, error) {
	traces, err := u.traces.ListTracesByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	ledger := u.buildLedger(traces)

	var (
		mu   sync.Mutex
		refs = make(map[int64]string)
		seen = make(map[int64]bool)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(campaignLookupLimit)
	for _, e := range ledger.Entries {
		if e.CampaignID == 0 || seen[e.CampaignID] {
			continue
		}
		seen[e.CampaignID] = true
		id := e.CampaignID
		g.Go(func() error {
			c, err := u.campaigns.GetCampaign(gctx, id)
			if err != nil {
				return err
			}
			if c == nil {
				u.opts.logger.Warn("ledger references unknown campaign",
					slog.Int64("campaign_id", id), slog.String("unit_id", unitID))
				return nil
			}
			mu.Lock()
			refs[id] = c.CreativeRef
			mu.Unlock()
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	for i := range ledger.Entries {
		ledger.Entries[i].CreativeRef = refs[ledger.Entries[i].CampaignID]
	}
	return &ledger, nil
}

func (u *FleetUseCase) buildLedger(traces []domain.RouteTrace) domain.Ledger {
	ledger, err := domain.BuildLedger(traces)
	if err != nil {
		u.opts.logger.Warn("route traces rejected",
			slog.Any("route_ids", ledger.Rejected), slog.Any("error", err))
	}
	return ledger
}
