package port

import (
	"context"

	"github.com/google/uuid"

	"gaia/internal/core/domain"
)

// AuthUseCase covers registration, login and guest entry. All three return
// an AuthResult carrying a signed bearer token.
type AuthUseCase interface {
	// Register creates an account and signs the user in. Fails with a
	// ValidationError on a malformed email or short password and with
	// domain.ErrDuplicateEmail when the address is taken.
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	// Login verifies credentials. A wrong email or password both fail with
	// domain.ErrUnauthorized; the two cases are indistinguishable on purpose.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// GuestToken issues a 24h demo token for the fixed guest identity.
	GuestToken() (*AuthResult, error)
}

// AuthResult is returned by every authentication operation.
type AuthResult struct {
	Token   string    `json:"token"`
	UserID  uuid.UUID `json:"userId"`
	Email   string    `json:"email"`
	IsGuest bool      `json:"isGuest,omitempty"`
}

// KeyUseCase manages the encrypted advertising-platform credentials.
type KeyUseCase interface {
	// SaveKeys encrypts and stores the provided keys. At least one field
	// must be set. Guests fail with domain.ErrGuestReadOnly.
	SaveKeys(ctx context.Context, ident domain.Identity, keys domain.APIKeys) (*domain.User, error)
	// GetKeys returns the caller's profile, decrypted keys and recent access
	// logs. Guests receive fixed demo keys and no logs. A blob that fails to
	// decrypt yields empty keys, never an error.
	GetKeys(ctx context.Context, ident domain.Identity) (*KeysView, error)
}

// KeysView is the response shape of the key-read operation.
type KeysView struct {
	User       *domain.User            `json:"user"`
	Keys       domain.APIKeys          `json:"keys"`
	RecentLogs []domain.AccessLogEntry `json:"recentLogs"`
	IsGuest    bool                    `json:"isGuest,omitempty"`
}

// CampaignUseCase is the primary port for campaign operations.
type CampaignUseCase interface {
	// Create stores a new draft campaign. Title, positive budget and ad text
	// are required.
	Create(ctx context.Context, ident domain.Identity, in CreateCampaignInput) (*domain.Campaign, error)
	// Launch submits an owned campaign to each enabled platform and marks it
	// active when at least one platform accepts it. Guests fail with
	// domain.ErrGuestReadOnly, unknown or foreign campaigns with
	// domain.ErrNotFound.
	Launch(ctx context.Context, ident domain.Identity, campaignID uuid.UUID, platforms map[string]bool) (*LaunchResult, error)
	// List returns the caller's campaigns newest first. Guests receive the
	// fixed demo list.
	List(ctx context.Context, ident domain.Identity) ([]domain.Campaign, error)
	// Metrics returns stored samples for an owned campaign, or one synthetic
	// unpersisted sample when none exist, together with aggregate KPIs.
	Metrics(ctx context.Context, ident domain.Identity, campaignID uuid.UUID) (*MetricsView, error)
}

// CreateCampaignInput carries the fields of the create operation.
type CreateCampaignInput struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Budget         float64               `json:"budget"`
	AdText         string                `json:"adText"`
	TargetAudience domain.TargetAudience `json:"targetAudience"`
}

// LaunchResult aggregates per-platform connector outcomes. Status reflects
// the campaign after the launch: active when any platform succeeded,
// otherwise the prior status.
type LaunchResult struct {
	CampaignID uuid.UUID                  `json:"campaignId"`
	Status     string                     `json:"status"`
	Results    map[string]ConnectorResult `json:"results"`
}

// MetricsView is the response shape of the metrics-read operation.
type MetricsView struct {
	CampaignID uuid.UUID             `json:"campaignId"`
	Metrics    []domain.MetricSample `json:"metrics"`
	KPIs       domain.KPIs           `json:"kpis"`
}
