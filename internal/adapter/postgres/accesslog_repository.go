package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gaia/internal/core/domain"
)

// AccessLogRepository implements port.AccessLogRepository using pgxpool.
type AccessLogRepository struct {
	pool *pgxpool.Pool
}

// NewAccessLogRepository returns a new repository instance.
func NewAccessLogRepository(pool *pgxpool.Pool) *AccessLogRepository {
	return &AccessLogRepository{pool: pool}
}

// Insert appends one audit entry.
func (r *AccessLogRepository) Insert(ctx context.Context, e *domain.AccessLogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	details, err := json.Marshal(e.Details)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO access_logs (id, user_id, ip_address, action, details, ts)
VALUES ($1,$2,$3,$4,$5,$6)`, e.ID, e.UserID, e.IPAddress, e.Action, details, e.Timestamp)
	return err
}

// RecentByUser returns the user's latest entries, newest first.
func (r *AccessLogRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AccessLogEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, ip_address, action, details, ts
FROM access_logs WHERE user_id = $1 ORDER BY ts DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.AccessLogEntry, error) {
		var (
			e          domain.AccessLogEntry
			detailsRaw []byte
		)
		err := row.Scan(&e.ID, &e.UserID, &e.IPAddress, &e.Action, &detailsRaw, &e.Timestamp)
		if err != nil {
			return e, err
		}
		if len(detailsRaw) > 0 {
			if err := json.Unmarshal(detailsRaw, &e.Details); err != nil {
				return e, err
			}
		}
		return e, nil
	})
}
