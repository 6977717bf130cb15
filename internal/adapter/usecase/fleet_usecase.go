package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/core/port"
)

// FleetUseCase provides business logic for position reports, campaign
// submission and route ledgers. It orchestrates domain and repositories to
// implement the port.FleetUseCase interface.
type FleetUseCase struct {
	campaigns port.CampaignRepository
	traces    port.TraceRepository
	opts      fleetOptions
}

var _ port.FleetUseCase = (*FleetUseCase)(nil)

// NewFleetUseCase creates a new usecase with the provided repositories.
func NewFleetUseCase(campaigns port.CampaignRepository, traces port.TraceRepository, options ...Option) *FleetUseCase {
	opts := defaultOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return &FleetUseCase{campaigns: campaigns, traces: traces, opts: opts}
}

// HandleReport returns the reported left-over quota to its campaign, stores the attached
// trace and selects the next campaign for the unit. A trace that fails to
// decode is not stored and does not prevent selection; the decode error is
// returned in the result.
func (u *FleetUseCase) HandleReport(ctx context.Context, report domain.PositionReport) (*port.ReportResult, error) {
	if report.UnitID == "" {
		return nil, &domain.PreconditionError{Field: "unit_id", Value: `""`}
	}
	if err := report.CurrentLocation.Validate(); err != nil {
		return nil, err
	}

	if report.CampaignID != 0 && report.RunTime != nil {
		err := u.campaigns.UpdateQuota(ctx, report.CampaignID, report.UnitID, *report.RunTime)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			u.opts.logger.Warn("quota reported for unknown campaign",
				slog.Int64("campaign_id", report.CampaignID), slog.String("unit_id", report.UnitID))
		case errors.Is(err, domain.ErrNoOpenDispatch):
			u.opts.logger.Warn("quota report matches no open dispatch",
				slog.Int64("campaign_id", report.CampaignID),
				slog.String("unit_id", report.UnitID),
				slog.Int64("run_time", *report.RunTime))
		case err != nil:
			return nil, err
		default:
			u.opts.logger.Info("left-over quota returned",
				slog.Int64("campaign_id", report.CampaignID),
				slog.String("unit_id", report.UnitID),
				slog.Int64("run_time", *report.RunTime))
		}
	}

	result := &port.ReportResult{}
	entry, err := u.ingest(ctx, report)
	var decodeErr *domain.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		result.TraceErr = err
	case err != nil:
		return nil, err
	default:
		result.RouteEntry = entry
	}

	sel, err := u.selectAndConsume(ctx, report.UnitID, report.CurrentLocation)
	if err != nil {
		return nil, err
	}
	result.Selection = *sel
	return result, nil
}

// ingest stores the trace of a report and derives its ledger entry. The
// entry is nil for a trace without samples.
func (u *FleetUseCase) ingest(ctx context.Context, report domain.PositionReport) (*domain.LedgerEntry, error) {
	if _, err := domain.DecodeSamples(report.Locs, report.Times); err != nil {
		u.opts.metrics.TraceRejected()
		u.opts.logger.Warn("rejected route trace",
			slog.String("unit_id", report.UnitID), slog.Any("error", err))
		return nil, err
	}

	trace := &domain.RouteTrace{
		UnitID:     report.UnitID,
		CampaignID: report.CampaignID,
		Locs:       report.Locs,
		Times:      report.Times,
	}
	if err := u.traces.InsertTrace(ctx, trace); err != nil {
		return nil, err
	}

	entry, ok, err := domain.NewLedgerEntry(*trace)
	if err != nil || !ok {
		return nil, err
	}
	u.opts.metrics.RouteIngested(entry.DistanceKm)
	return &entry, nil
}

// selectAndConsume walks the pending campaigns in id order and dispatches
// the first eligible one whose quota can still be consumed. Losing the
// consume race moves on to the candidates after the lost one.
func (u *FleetUseCase) selectAndConsume(ctx context.Context, unitID string, pos domain.Point) (*port.Selection, error) {
	pool, err := u.campaigns.ListPendingCampaigns(ctx)
	var skipped *domain.SkippedCampaignsError
	switch {
	case errors.As(err, &skipped):
		u.opts.metrics.CampaignsSkipped(len(skipped.IDs))
		u.opts.logger.Warn("pending campaigns skipped",
			slog.Any("campaign_ids", skipped.IDs), slog.Any("error", skipped.Err))
	case err != nil:
		return nil, err
	}
	now := u.opts.now().In(u.opts.location)

	for len(pool) > 0 {
		i := domain.SelectEligible(now, pos, pool)
		if i < 0 {
			break
		}
		chosen := pool[i]
		dispatch := &domain.Dispatch{
			Token:      uuid.New(),
			CampaignID: chosen.ID,
			UnitID:     unitID,
			Position:   pos,
			RunTime:    chosen.RunTime,
		}
		err = u.campaigns.ConsumeQuota(ctx, dispatch)
		if errors.Is(err, domain.ErrQuotaExhausted) {
			u.opts.metrics.QuotaRaceLost()
			u.opts.logger.Info("campaign consumed concurrently",
				slog.Int64("campaign_id", chosen.ID), slog.String("unit_id", unitID))
			pool = pool[i+1:]
			continue
		}
		if err != nil {
			return nil, err
		}

		u.opts.metrics.Selected(false)
		u.opts.logger.Info("campaign dispatched",
			slog.Int64("campaign_id", chosen.ID),
			slog.String("unit_id", unitID),
			slog.String("token", dispatch.Token.String()))
		return &port.Selection{
			DispatchToken: dispatch.Token.String(),
			CampaignID:    chosen.ID,
			Center:        chosen.Center,
			RadiusKm:      chosen.RadiusKm,
			RunTime:       chosen.RunTime,
			CreativeRef:   chosen.CreativeRef,
			AssetURL:      u.assetURL(ctx, chosen.CreativeRef),
		}, nil
	}

	u.opts.metrics.Selected(true)
	ref := ""
	if u.opts.fallback != nil {
		ref = u.opts.fallback.Pick()
	}
	return &port.Selection{
		Fallback:    true,
		Center:      pos,
		RadiusKm:    u.opts.fallbackRadiusKm,
		RunTime:     u.opts.fallbackRunTime,
		CreativeRef: ref,
		AssetURL:    u.assetURL(ctx, ref),
	}, nil
}

// assetURL resolves a creative ref. The quota is already consumed at this
// point, so a signing failure only drops the URL.
func (u *FleetUseCase) assetURL(ctx context.Context, ref string) string {
	if u.opts.assets == nil || ref == "" {
		return ""
	}
	url, err := u.opts.assets.AssetURL(ctx, ref)
	if err != nil {
		u.opts.logger.Error("asset url error", slog.String("ref", ref), slog.Any("error", err))
		return ""
	}
	return url
}

// SaveCampaign upserts a campaign keyed by owner, center and creative ref.
func (u *FleetUseCase) SaveCampaign(ctx context.Context, campaign domain.CampaignUpsert) (int64, error) {
	if err := campaign.Validate(); err != nil {
		return 0, err
	}
	id, err := u.campaigns.UpsertCampaign(ctx, campaign)
	if err != nil {
		return 0, err
	}
	u.opts.logger.Info("campaign saved", slog.Int64("campaign_id", id), slog.String("owner", campaign.Owner))
	return id, nil
}

// GetCampaign returns a campaign by id.
func (u *FleetUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// GetStats returns aggregated stats for a period.
func (u *FleetUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.campaigns.GetStats(ctx, req)
}
