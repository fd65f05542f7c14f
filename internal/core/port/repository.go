package port

import (
	"context"

	"github.com/google/uuid"

	"gaia/internal/core/domain"
)

// UserRepository is the outbound port for user persistence. Email uniqueness
// is enforced at the store level: Create must fail atomically with
// domain.ErrDuplicateEmail rather than overwrite.
type UserRepository interface {
	// Create inserts a new user and returns the stored row.
	Create(ctx context.Context, email, passwordHash string) (*domain.User, error)
	// FindByEmail returns the user with the given email, or nil when absent.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the user with the given id, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// UpdateAPIKeys replaces the encrypted key blob and bumps updated_at.
	UpdateAPIKeys(ctx context.Context, id uuid.UUID, encryptedBlob string) error
}

// CampaignRepository persists campaigns and their metric samples.
type CampaignRepository interface {
	// Create inserts a campaign in draft status and returns the stored row.
	Create(ctx context.Context, c *domain.Campaign) (*domain.Campaign, error)
	// FindByID returns a campaign only when it is owned by userID, nil when
	// absent or owned by someone else.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.Campaign, error)
	// ListByUser returns the user's campaigns, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)
	// MarkLaunched sets status to active, records the enabled platforms and
	// the launch timestamp.
	MarkLaunched(ctx context.Context, id uuid.UUID, platforms map[string]bool) error
	// ListMetrics returns stored samples for a campaign, newest first,
	// capped at limit.
	ListMetrics(ctx context.Context, campaignID uuid.UUID, limit int) ([]domain.MetricSample, error)
}

// AccessLogRepository appends audit entries. Implementations surface errors
// to the caller; swallowing them is the middleware's job.
type AccessLogRepository interface {
	// Insert appends one entry.
	Insert(ctx context.Context, e *domain.AccessLogEntry) error
	// RecentByUser returns the user's latest entries, newest first.
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AccessLogEntry, error)
}

// AdminRepository exposes the administrative bulk wipe. It deletes every row
// from every table; there is no per-user delete in this product.
type AdminRepository interface {
	WipeAll(ctx context.Context) error
}
