package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"gaia/internal/core/domain"
	"gaia/internal/core/port"
)

// metricsLimit caps stored samples returned by the metrics operation.
const metricsLimit = 100

// CampaignUseCase implements campaign CRUD, launching and metrics.
type CampaignUseCase struct {
	campaigns  port.CampaignRepository
	logs       port.AccessLogRepository
	connectors map[string]port.PlatformConnector
	metrics    *MetricsGenerator
	logger     *slog.Logger

	// launchTimeout bounds each connector call. The mocks only sleep, but a
	// real client behind the same interface must not hang a request forever.
	launchTimeout time.Duration
}

// NewCampaignUseCase creates the campaign service. Connectors are indexed by
// their platform identifier.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	logs port.AccessLogRepository,
	connectors []port.PlatformConnector,
	metrics *MetricsGenerator,
	logger *slog.Logger,
) *CampaignUseCase {
	byPlatform := make(map[string]port.PlatformConnector, len(connectors))
	for _, c := range connectors {
		byPlatform[c.Platform()] = c
	}
	return &CampaignUseCase{
		campaigns:     campaigns,
		logs:          logs,
		connectors:    byPlatform,
		metrics:       metrics,
		logger:        logger,
		launchTimeout: 10 * time.Second,
	}
}

// Create stores a new draft campaign after validating the required fields.
func (u *CampaignUseCase) Create(ctx context.Context, ident domain.Identity, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if ident.IsGuest {
		return nil, domain.ErrGuestReadOnly
	}
	if in.Title == "" {
		return nil, domain.Validationf("title is required")
	}
	if in.AdText == "" {
		return nil, domain.Validationf("ad text is required")
	}
	if in.Budget <= 0 {
		return nil, domain.Validationf("budget must be a positive amount")
	}

	c := &domain.Campaign{
		UserID:         ident.UserID,
		Title:          in.Title,
		Description:    in.Description,
		TargetAudience: in.TargetAudience,
		Budget:         in.Budget,
		AdText:         in.AdText,
		Status:         domain.StatusDraft,
	}
	return u.campaigns.Create(ctx, c)
}

// Launch submits an owned campaign to each enabled platform. The campaign
// becomes active when at least one platform accepts it; if every platform
// fails, the status is left as it was and the per-platform results tell the
// caller what happened. The aggregate outcome is audited best-effort.
func (u *CampaignUseCase) Launch(ctx context.Context, ident domain.Identity, campaignID uuid.UUID, platforms map[string]bool) (*port.LaunchResult, error) {
	if ident.IsGuest {
		return nil, domain.ErrGuestReadOnly
	}

	campaign, err := u.campaigns.FindByID(ctx, ident.UserID, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}

	// Every name is validated before any connector runs, so a bogus entry
	// cannot leave a half-launched campaign behind.
	enabled := make([]string, 0, len(platforms))
	for name, on := range platforms {
		if !on {
			continue
		}
		if _, ok := u.connectors[name]; !ok {
			return nil, domain.Validationf("unknown platform %q", name)
		}
		enabled = append(enabled, name)
	}
	if len(enabled) == 0 {
		return nil, domain.Validationf("at least one platform must be enabled")
	}
	sort.Strings(enabled)

	results := make(map[string]port.ConnectorResult, len(enabled))
	anySuccess := false
	for _, name := range enabled {
		res := u.launchOne(ctx, u.connectors[name], *campaign)
		results[name] = res
		if res.Success {
			anySuccess = true
		}
	}

	status := campaign.Status
	if anySuccess {
		if err := u.campaigns.MarkLaunched(ctx, campaign.ID, platforms); err != nil {
			return nil, err
		}
		status = domain.StatusActive
	}

	u.audit(ident, campaign.ID, status, results)

	return &port.LaunchResult{CampaignID: campaign.ID, Status: status, Results: results}, nil
}

func (u *CampaignUseCase) launchOne(ctx context.Context, conn port.PlatformConnector, c domain.Campaign) port.ConnectorResult {
	callCtx, cancel := context.WithTimeout(ctx, u.launchTimeout)
	defer cancel()

	res, err := conn.Launch(callCtx, c)
	if err != nil {
		u.logger.Warn("platform launch failed",
			slog.String("platform", conn.Platform()), slog.Any("error", err))
		return port.ConnectorResult{Success: false, Status: "failed", Error: err.Error()}
	}
	return res
}

// audit records the aggregate launch result. Failures are swallowed: the
// launch already happened and a lost log line must not undo it.
func (u *CampaignUseCase) audit(ident domain.Identity, campaignID uuid.UUID, status string, results map[string]port.ConnectorResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID := ident.UserID
	entry := &domain.AccessLogEntry{
		UserID:    &userID,
		IPAddress: "internal",
		Action:    "campaign.launch",
		Details: map[string]any{
			"campaignId": campaignID.String(),
			"status":     status,
			"results":    results,
		},
	}
	if err := u.logs.Insert(ctx, entry); err != nil {
		u.logger.Warn("launch audit insert failed", slog.Any("error", err))
	}
}

// List returns the caller's campaigns newest first; guests get the fixed
// demo list.
func (u *CampaignUseCase) List(ctx context.Context, ident domain.Identity) ([]domain.Campaign, error) {
	if ident.IsGuest {
		return DemoCampaigns(), nil
	}
	campaigns, err := u.campaigns.ListByUser(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return campaigns, nil
}

// Metrics returns stored samples for an owned campaign, or one synthetic
// sample when none exist. The synthetic sample is never persisted. KPIs are
// derived from whatever set is returned.
func (u *CampaignUseCase) Metrics(ctx context.Context, ident domain.Identity, campaignID uuid.UUID) (*port.MetricsView, error) {
	var samples []domain.MetricSample

	if ident.IsGuest {
		samples = []domain.MetricSample{u.metrics.Sample(campaignID)}
	} else {
		campaign, err := u.campaigns.FindByID(ctx, ident.UserID, campaignID)
		if err != nil {
			return nil, err
		}
		if campaign == nil {
			return nil, domain.ErrNotFound
		}
		samples, err = u.campaigns.ListMetrics(ctx, campaignID, metricsLimit)
		if err != nil {
			return nil, err
		}
		if len(samples) == 0 {
			samples = []domain.MetricSample{u.metrics.Sample(campaignID)}
		}
	}

	var impressions, clicks, conversions int64
	var cost, revenue float64
	for _, s := range samples {
		impressions += s.Impressions
		clicks += s.Clicks
		conversions += s.Conversions
		cost += s.Cost
		revenue += s.Revenue
	}

	return &port.MetricsView{
		CampaignID: campaignID,
		Metrics:    samples,
		KPIs:       domain.ComputeKPIs(impressions, clicks, conversions, cost, revenue),
	}, nil
}
