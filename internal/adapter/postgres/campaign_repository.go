package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mooh-ads/internal/core/domain"
	"mooh-ads/internal/core/port"
)

const campaignColumns = `id, owner, contact, creative_ref, center_lat, center_lon, radius_km,
    from_dates, from_times, to_dates, to_times, run_time, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// campaignRow is a campaign as stored, with windows still in wire form.
type campaignRow struct {
	Campaign domain.Campaign
	Windows  domain.WindowArrays
}

func scanCampaign(row pgx.Row) (campaignRow, error) {
	var cr campaignRow
	err := row.Scan(
		&cr.Campaign.ID,
		&cr.Campaign.Owner,
		&cr.Campaign.Contact,
		&cr.Campaign.CreativeRef,
		&cr.Campaign.Center.Lat,
		&cr.Campaign.Center.Lon,
		&cr.Campaign.RadiusKm,
		&cr.Windows.FromDates,
		&cr.Windows.FromTimes,
		&cr.Windows.ToDates,
		&cr.Windows.ToTimes,
		&cr.Campaign.RunTime,
		&cr.Campaign.CreatedAt,
		&cr.Campaign.UpdatedAt,
	)
	return cr, err
}

func (cr campaignRow) toDomain() (domain.Campaign, error) {
	windows, err := domain.ParseWindows(cr.Windows)
	if err != nil {
		return domain.Campaign{}, err
	}
	c := cr.Campaign
	c.Windows = windows
	return c, nil
}

// ListPendingCampaigns returns campaigns with quota left, oldest first.
func (r *CampaignRepository) ListPendingCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE run_time > 0 ORDER BY id`)
	if err != nil {
		return nil, storeErr("list pending campaigns", err)
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (campaignRow, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, storeErr("list pending campaigns", err)
	}
	var (
		campaigns = make([]domain.Campaign, 0, len(raw))
		skipped   []int64
		errs      []error
	)
	for _, cr := range raw {
		c, err := cr.toDomain()
		if err != nil {
			skipped = append(skipped, cr.Campaign.ID)
			errs = append(errs, fmt.Errorf("campaign %d: %w", cr.Campaign.ID, err))
			continue
		}
		campaigns = append(campaigns, c)
	}
	if len(skipped) > 0 {
		return campaigns, &domain.SkippedCampaignsError{IDs: skipped, Err: errors.Join(errs...)}
	}
	return campaigns, nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	cr, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get campaign", err)
	}
	c, err := cr.toDomain()
	if err != nil {
		return nil, storeErr("get campaign", err)
	}
	return &c, nil
}

// UpdateQuota settles the unit's open dispatch of the campaign and puts
// the reported left-over back. The dispatch must have handed out at least
// runTime. The quota is only restored while the campaign is still held
// (run_time = 0); a re-provisioned campaign keeps its new quota.
func (r *CampaignRepository) UpdateQuota(ctx context.Context, id int64, unitID string, runTime int64) error {
	runTime = max(runTime, 0)

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return storeErr("update quota", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return storeErr("update quota", err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	var dispatchID int64
	err = tx.QueryRow(ctx, `UPDATE dispatches SET settled_at = now()
        WHERE id = (
            SELECT id FROM dispatches
            WHERE campaign_id = $1 AND unit_id = $2 AND settled_at IS NULL AND run_time >= $3
            ORDER BY id DESC
            LIMIT 1
            FOR UPDATE
        )
        RETURNING id`, id, unitID, runTime).Scan(&dispatchID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNoOpenDispatch
	}
	if err != nil {
		return storeErr("settle dispatch", err)
	}

	if runTime > 0 {
		_, err = tx.Exec(ctx,
			`UPDATE campaigns SET run_time = $2, updated_at = now() WHERE id = $1 AND run_time = 0`,
			id, runTime)
		if err != nil {
			return storeErr("update quota", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return storeErr("update quota", err)
	}
	return nil
}

// UpsertCampaign inserts a campaign or updates the supplied fields of the
// campaign with the same owner, center and creative reference.
func (r *CampaignRepository) UpsertCampaign(ctx context.Context, u domain.CampaignUpsert) (int64, error) {
	if err := u.Validate(); err != nil {
		return 0, err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, storeErr("upsert campaign", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `SELECT id FROM campaigns
        WHERE owner = $1 AND center_lat = $2 AND center_lon = $3 AND creative_ref = $4
        FOR UPDATE`, u.Owner, u.Center.Lat, u.Center.Lon, u.CreativeRef).Scan(&id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		if err = u.ValidateInsert(); err != nil {
			return 0, err
		}
		w := domain.FormatWindows(u.Windows)
		err = tx.QueryRow(ctx, `INSERT INTO campaigns
        (owner, contact, creative_ref, center_lat, center_lon, radius_km,
         from_dates, from_times, to_dates, to_times, run_time)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING id`,
			u.Owner, u.Contact, u.CreativeRef, u.Center.Lat, u.Center.Lon, *u.RadiusKm,
			w.FromDates, w.FromTimes, w.ToDates, w.ToTimes, *u.RunTime).Scan(&id)
		if err != nil {
			return 0, storeErr("insert campaign", err)
		}
	case err != nil:
		return 0, storeErr("upsert campaign", err)
	case u.HasUpdates():
		var fromDates, fromTimes, toDates, toTimes any
		if u.Windows != nil {
			w := domain.FormatWindows(u.Windows)
			fromDates, fromTimes, toDates, toTimes = w.FromDates, w.FromTimes, w.ToDates, w.ToTimes
		}
		_, err = tx.Exec(ctx, `UPDATE campaigns SET
            from_dates = COALESCE($2::text[], from_dates),
            from_times = COALESCE($3::text[], from_times),
            to_dates   = COALESCE($4::text[], to_dates),
            to_times   = COALESCE($5::text[], to_times),
            radius_km  = COALESCE($6::double precision, radius_km),
            run_time   = COALESCE($7::bigint, run_time),
            updated_at = now()
        WHERE id = $1`,
			id, fromDates, fromTimes, toDates, toTimes, u.RadiusKm, u.RunTime)
		if err != nil {
			return 0, storeErr("update campaign", err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, storeErr("upsert campaign", err)
	}
	return id, nil
}

// ConsumeQuota zeroes the quota of the dispatched campaign if anything is
// left and records the dispatch. The conditional update is the single
// point that decides which of several concurrent dispatches wins.
func (r *CampaignRepository) ConsumeQuota(ctx context.Context, d *domain.Dispatch) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return storeErr("consume quota", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx,
		`UPDATE campaigns SET run_time = 0, updated_at = now() WHERE id = $1 AND run_time > 0`,
		d.CampaignID)
	if err != nil {
		return storeErr("consume quota", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuotaExhausted
	}

	d.CreatedAt = time.Now().UTC()
	err = tx.QueryRow(ctx, `INSERT INTO dispatches (token, campaign_id, unit_id, lat, lon, run_time, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		d.Token, d.CampaignID, d.UnitID, d.Position.Lat, d.Position.Lon, d.RunTime, d.CreatedAt).Scan(&d.ID)
	if err != nil {
		return storeErr("record dispatch", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return storeErr("consume quota", err)
	}
	return nil
}

// GetStats returns dispatch and trace counts in a period.
func (r *CampaignRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []interface{}{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	var resp port.StatsResp
	dispatchQuery := fmt.Sprintf(`SELECT count(*) FROM dispatches WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	if err := r.pool.QueryRow(ctx, dispatchQuery, args...).Scan(&resp.Dispatches); err != nil {
		return nil, storeErr("dispatch stats", err)
	}
	traceQuery := fmt.Sprintf(`SELECT count(*) FROM route_traces WHERE created_at >= $1 AND created_at <= $2 %s`, whereCampaign)
	if err := r.pool.QueryRow(ctx, traceQuery, args...).Scan(&resp.Traces); err != nil {
		return nil, storeErr("trace stats", err)
	}
	return &resp, nil
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &domain.StoreError{Op: op, Err: err}
}
