package port

import (
	"context"

	"mooh-ads/internal/core/domain"
)

// FleetUseCase defines the business operations exposed to the display
// fleet and to campaign owners. It is the primary port into the domain.
type FleetUseCase interface {
	// HandleReport stores the trace attached to a position report, selects
	// the next campaign for the unit and consumes its quota. When nothing
	// is eligible the result carries a fallback selection. Store failures
	// are returned as errors, never as a fallback.
	HandleReport(ctx context.Context, report domain.PositionReport) (*ReportResult, error)

	// SaveCampaign upserts a campaign and returns its id.
	SaveCampaign(ctx context.Context, campaign domain.CampaignUpsert) (int64, error)

	// GetCampaign returns a campaign or domain.ErrNotFound.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// LedgerByCampaign aggregates every trace recorded for a campaign.
	LedgerByCampaign(ctx context.Context, campaignID int64) (*domain.Ledger, error)

	// LedgerByUnit aggregates every trace recorded by a reporting unit.
	LedgerByUnit(ctx context.Context, unitID string) (*domain.Ledger, error)

	// GetStats returns dispatch and trace counts for an optional campaign
	// and period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// Selection is the outcome of campaign resolution handed to the transport.
// When Fallback is set CampaignID is 0 and the geometry fields only carry
// logging defaults.
type Selection struct {
	Fallback      bool
	DispatchToken string
	CampaignID    int64
	Center        domain.Point
	RadiusKm      float64
	RunTime       int64
	CreativeRef   string
	AssetURL      string
}

// ReportResult bundles the selection with the ledger entry of the trace
// that came with the report. RouteEntry is nil when the trace was empty or
// rejected; TraceErr explains a rejection.
type ReportResult struct {
	Selection  Selection
	RouteEntry *domain.LedgerEntry
	TraceErr   error
}
