package port

import (
	"context"
	"time"

	"mooh-ads/internal/core/domain"
)

// CampaignRepository defines campaign persistence. It is an outbound port
// in hexagonal architecture. Implementations must be concurrency-safe and
// consume quota atomically. Failures are reported as *domain.StoreError.
type CampaignRepository interface {
	// ListPendingCampaigns returns campaigns with quota > 0 in ascending
	// creation (id) order. Stored campaigns whose windows cannot be parsed
	// are left out and reported as *domain.SkippedCampaignsError next to
	// the otherwise complete list.
	ListPendingCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id, or nil when absent.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// UpdateQuota returns the quota a unit has left over to its campaign.
	// It settles the latest open dispatch of the campaign to unitID whose
	// run time is at least runTime, so a report can never mint quota. It
	// returns domain.ErrNotFound for an unknown campaign and
	// domain.ErrNoOpenDispatch when no such dispatch exists.
	UpdateQuota(ctx context.Context, id int64, unitID string, runTime int64) error
	// UpsertCampaign inserts a campaign or updates the supplied fields of
	// the one sharing its (owner, center, creative) key. It returns the id.
	UpsertCampaign(ctx context.Context, campaign domain.CampaignUpsert) (int64, error)
	// ConsumeQuota sets the quota of dispatch.CampaignID to 0 only if it is
	// still > 0 and records the dispatch in the same transaction. It returns
	// domain.ErrQuotaExhausted when nothing was left to consume.
	ConsumeQuota(ctx context.Context, dispatch *domain.Dispatch) error
	// GetStats returns aggregated dispatch and trace counts in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// TraceRepository defines route trace persistence.
type TraceRepository interface {
	// InsertTrace stores a trace and fills its ID and CreatedAt.
	InsertTrace(ctx context.Context, trace *domain.RouteTrace) error
	// ListTracesByCampaign returns the traces of a campaign in id order.
	ListTracesByCampaign(ctx context.Context, campaignID int64) ([]domain.RouteTrace, error)
	// ListTracesByUnit returns the traces of a reporting unit in id order.
	ListTracesByUnit(ctx context.Context, unitID string) ([]domain.RouteTrace, error)
}

// AssetLocator turns a creative reference into a URL the display unit can
// fetch.
type AssetLocator interface {
	AssetURL(ctx context.Context, ref string) (string, error)
}

// StatsResp contains aggregated counts for a period. Dispatches counts
// campaigns sent to units, Traces counts stored route traces.
type StatsResp struct {
	Dispatches int64
	Traces     int64
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}
