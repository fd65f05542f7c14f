package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gaia/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Target audience and platform flags are stored as JSONB columns.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, user_id, title, COALESCE(description, ''), target_audience, budget, ad_text, status, platforms, created_at, launched_at`

// Create inserts a campaign. Status is whatever the caller set; the service
// layer always passes draft.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	audience, err := json.Marshal(c.TargetAudience)
	if err != nil {
		return nil, err
	}
	err = r.pool.QueryRow(ctx, `INSERT INTO campaigns
(id, user_id, title, description, target_audience, budget, ad_text, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING created_at`,
		c.ID, c.UserID, c.Title, c.Description, audience, c.Budget, c.AdText, c.Status).
		Scan(&c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindByID returns a campaign scoped to its owner. A campaign owned by a
// different user is indistinguishable from an absent one.
func (r *CampaignRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
FROM campaigns WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, err
	}
	c, err := pgx.CollectOneRow(rows, scanCampaign)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByUser returns the user's campaigns, newest first.
func (r *CampaignRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// MarkLaunched activates a campaign and records which platforms it went to.
func (r *CampaignRepository) MarkLaunched(ctx context.Context, id uuid.UUID, platforms map[string]bool) error {
	flags, err := json.Marshal(platforms)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns
SET status = $1, platforms = $2, launched_at = $3
WHERE id = $4`, domain.StatusActive, flags, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListMetrics returns stored samples newest first, capped at limit.
func (r *CampaignRepository) ListMetrics(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.MetricSample, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, campaign_id, ts, impressions, clicks, conversions, cost, revenue
FROM campaign_metrics WHERE campaign_id = $1 ORDER BY ts DESC LIMIT $2`, campaignID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MetricSample, error) {
		var m domain.MetricSample
		err := row.Scan(&m.ID, &m.CampaignID, &m.Timestamp,
			&m.Impressions, &m.Clicks, &m.Conversions, &m.Cost, &m.Revenue)
		return m, err
	})
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c            domain.Campaign
		audienceRaw  []byte
		platformsRaw []byte
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Description, &audienceRaw,
		&c.Budget, &c.AdText, &c.Status, &platformsRaw, &c.CreatedAt, &c.LaunchedAt)
	if err != nil {
		return c, err
	}
	if len(audienceRaw) > 0 {
		if err := json.Unmarshal(audienceRaw, &c.TargetAudience); err != nil {
			return c, err
		}
	}
	if len(platformsRaw) > 0 {
		if err := json.Unmarshal(platformsRaw, &c.Platforms); err != nil {
			return c, err
		}
	}
	return c, nil
}
