package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"gaia/internal/core/domain"
	"gaia/internal/core/port"
)

// In-memory fakes for the outbound ports. They stand in for the Postgres
// repositories so service behavior is testable without a database.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, email, passwordHash string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	u := &domain.User{ID: uuid.New(), Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	r.users[u.ID] = u
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateAPIKeys(_ context.Context, id uuid.UUID, blob string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.EncryptedAPIKeys = blob
	u.UpdatedAt = time.Now().UTC()
	return nil
}

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]*domain.Campaign
	metrics   map[uuid.UUID][]domain.MetricSample
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{
		campaigns: make(map[uuid.UUID]*domain.Campaign),
		metrics:   make(map[uuid.UUID][]domain.MetricSample),
	}
}

func (r *fakeCampaignRepo) Create(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now().UTC()
	cp := *c
	r.campaigns[c.ID] = &cp
	return c, nil
}

func (r *fakeCampaignRepo) FindByID(_ context.Context, userID, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCampaignRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Campaign
	for _, c := range r.campaigns {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeCampaignRepo) MarkLaunched(_ context.Context, id uuid.UUID, platforms map[string]bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.campaigns[id]
	if !ok {
		return domain.ErrNotFound
	}
	now := time.Now().UTC()
	c.Status = domain.StatusActive
	c.Platforms = platforms
	c.LaunchedAt = &now
	return nil
}

func (r *fakeCampaignRepo) ListMetrics(_ context.Context, campaignID uuid.UUID, limit int) ([]domain.MetricSample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	samples := r.metrics[campaignID]
	if len(samples) > limit {
		samples = samples[:limit]
	}
	return append([]domain.MetricSample(nil), samples...), nil
}

type fakeLogRepo struct {
	mu         sync.Mutex
	entries    []domain.AccessLogEntry
	failInsert bool
}

func (r *fakeLogRepo) Insert(_ context.Context, e *domain.AccessLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failInsert {
		return context.DeadlineExceeded
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeLogRepo) RecentByUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.AccessLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.AccessLogEntry
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := r.entries[i]
		if e.UserID != nil && *e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeConnector answers instantly with a canned result.
type fakeConnector struct {
	platform string
	result   port.ConnectorResult
	err      error
	calls    int
}

func (c *fakeConnector) Platform() string { return c.platform }

func (c *fakeConnector) Launch(context.Context, domain.Campaign) (port.ConnectorResult, error) {
	c.calls++
	if c.err != nil {
		return port.ConnectorResult{}, c.err
	}
	return c.result, nil
}
