package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/core/port"
)

// TraceRepository implements port.TraceRepository using pgxpool.
type TraceRepository struct {
	pool *pgxpool.Pool
}

// NewTraceRepository returns a new repository instance.
func NewTraceRepository(pool *pgxpool.Pool) *TraceRepository {
	return &TraceRepository{pool: pool}
}

var _ port.TraceRepository = (*TraceRepository)(nil)

// InsertTrace stores a trace as submitted.
func (r *TraceRepository) InsertTrace(ctx context.Context, t *domain.RouteTrace) error {
	err := r.pool.QueryRow(ctx, `INSERT INTO route_traces (unit_id, campaign_id, locs, times)
        VALUES ($1,$2,$3,$4) RETURNING id, created_at`,
		t.UnitID, t.CampaignID, t.Locs, t.Times).Scan(&t.ID, &t.CreatedAt)
	return storeErr("insert trace", err)
}

// ListTracesByCampaign returns all traces recorded for a campaign.
func (r *TraceRepository) ListTracesByCampaign(ctx context.Context, campaignID int64) ([]domain.RouteTrace, error) {
	return r.list(ctx, "list traces by campaign",
		`SELECT id, unit_id, campaign_id, locs, times, created_at FROM route_traces WHERE campaign_id = $1 ORDER BY id`,
		campaignID)
}

// ListTracesByUnit returns all traces recorded by a reporting unit.
func (r *TraceRepository) ListTracesByUnit(ctx context.Context, unitID string) ([]domain.RouteTrace, error) {
	return r.list(ctx, "list traces by unit",
		`SELECT id, unit_id, campaign_id, locs, times, created_at FROM route_traces WHERE unit_id = $1 ORDER BY id`,
		unitID)
}

func (r *TraceRepository) list(ctx context.Context, op, query string, arg any) ([]domain.RouteTrace, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, storeErr(op, err)
	}
	traces, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.RouteTrace])
	if err != nil {
		return nil, storeErr(op, err)
	}
	return traces, nil
}
