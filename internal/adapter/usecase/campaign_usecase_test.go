package usecase

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaia/internal/core/domain"
	"gaia/internal/core/port"
)

func newCampaignService(campaigns *fakeCampaignRepo, logs *fakeLogRepo, connectors ...port.PlatformConnector) *CampaignUseCase {
	return NewCampaignUseCase(campaigns, logs, connectors, NewMetricsGenerator(rand.NewSource(42)), discardLogger())
}

func okConnector(platform string) *fakeConnector {
	return &fakeConnector{
		platform: platform,
		result:   port.ConnectorResult{Success: true, ExternalID: platform + "_1", Status: "active"},
	}
}

var owner = domain.Identity{UserID: uuid.New(), Email: "alice@example.com"}

func createDraft(t *testing.T, svc *CampaignUseCase) *domain.Campaign {
	t.Helper()
	c, err := svc.Create(context.Background(), owner, port.CreateCampaignInput{
		Title:  "Black Friday",
		Budget: 5000,
		AdText: "Half price on everything.",
	})
	require.NoError(t, err)
	return c
}

func TestCampaignUseCase_CreateStartsAsDraft(t *testing.T) {
	svc := newCampaignService(newFakeCampaignRepo(), &fakeLogRepo{})

	c := createDraft(t, svc)
	assert.Equal(t, domain.StatusDraft, c.Status)
	assert.Equal(t, owner.UserID, c.UserID)
	assert.Nil(t, c.LaunchedAt)
}

func TestCampaignUseCase_CreateValidation(t *testing.T) {
	svc := newCampaignService(newFakeCampaignRepo(), &fakeLogRepo{})
	ctx := context.Background()

	cases := []struct {
		name string
		in   port.CreateCampaignInput
	}{
		{"missing title", port.CreateCampaignInput{Budget: 100, AdText: "x"}},
		{"missing ad text", port.CreateCampaignInput{Title: "t", Budget: 100}},
		{"zero budget", port.CreateCampaignInput{Title: "t", AdText: "x"}},
		{"negative budget", port.CreateCampaignInput{Title: "t", AdText: "x", Budget: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, owner, tc.in)
			require.Error(t, err)
			assert.True(t, domain.IsValidation(err), "want ValidationError, got %v", err)
		})
	}

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list, "failed creates must not leave records behind")
}

func TestCampaignUseCase_GuestCannotCreateOrLaunch(t *testing.T) {
	svc := newCampaignService(newFakeCampaignRepo(), &fakeLogRepo{}, okConnector(domain.PlatformGoogleAds))
	ctx := context.Background()
	guest := domain.Identity{UserID: domain.GuestID, Email: domain.GuestEmail, IsGuest: true}

	_, err := svc.Create(ctx, guest, port.CreateCampaignInput{Title: "t", Budget: 1, AdText: "x"})
	require.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.Launch(ctx, guest, uuid.New(), map[string]bool{domain.PlatformGoogleAds: true})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCampaignUseCase_LaunchActivatesCampaign(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	logs := &fakeLogRepo{}
	gads := okConnector(domain.PlatformGoogleAds)
	insta := okConnector(domain.PlatformInstagram)
	svc := newCampaignService(campaigns, logs, gads, insta)
	ctx := context.Background()

	c := createDraft(t, svc)
	res, err := svc.Launch(ctx, owner, c.ID, map[string]bool{
		domain.PlatformGoogleAds: true,
		domain.PlatformInstagram: true,
		domain.PlatformTikTok:    false,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, res.Status)
	assert.Len(t, res.Results, 2)
	assert.True(t, res.Results[domain.PlatformGoogleAds].Success)
	assert.Equal(t, 1, gads.calls)
	assert.Equal(t, 1, insta.calls)

	stored, err := campaigns.FindByID(ctx, owner.UserID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, stored.Status)
	assert.NotNil(t, stored.LaunchedAt)

	// aggregate result is audited
	require.Len(t, logs.entries, 1)
	assert.Equal(t, "campaign.launch", logs.entries[0].Action)
}

func TestCampaignUseCase_LaunchTotalFailureKeepsStatus(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	broken := &fakeConnector{platform: domain.PlatformGoogleAds, err: errors.New("platform down")}
	svc := newCampaignService(campaigns, &fakeLogRepo{}, broken)
	ctx := context.Background()

	c := createDraft(t, svc)
	res, err := svc.Launch(ctx, owner, c.ID, map[string]bool{domain.PlatformGoogleAds: true})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, res.Status)
	assert.False(t, res.Results[domain.PlatformGoogleAds].Success)

	stored, err := campaigns.FindByID(ctx, owner.UserID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, stored.Status)
}

func TestCampaignUseCase_LaunchPartialFailureStillActivates(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	broken := &fakeConnector{platform: domain.PlatformInstagram, err: errors.New("platform down")}
	svc := newCampaignService(campaigns, &fakeLogRepo{}, okConnector(domain.PlatformGoogleAds), broken)
	ctx := context.Background()

	c := createDraft(t, svc)
	res, err := svc.Launch(ctx, owner, c.ID, map[string]bool{
		domain.PlatformGoogleAds: true,
		domain.PlatformInstagram: true,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, res.Status)
	assert.True(t, res.Results[domain.PlatformGoogleAds].Success)
	assert.False(t, res.Results[domain.PlatformInstagram].Success)
	assert.NotEmpty(t, res.Results[domain.PlatformInstagram].Error)
}

func TestCampaignUseCase_LaunchUnknownCampaign(t *testing.T) {
	svc := newCampaignService(newFakeCampaignRepo(), &fakeLogRepo{}, okConnector(domain.PlatformGoogleAds))

	_, err := svc.Launch(context.Background(), owner, uuid.New(), map[string]bool{domain.PlatformGoogleAds: true})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignUseCase_LaunchForeignCampaignIsNotFound(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	svc := newCampaignService(campaigns, &fakeLogRepo{}, okConnector(domain.PlatformGoogleAds))
	ctx := context.Background()

	c := createDraft(t, svc)
	mallory := domain.Identity{UserID: uuid.New(), Email: "mallory@example.com"}

	_, err := svc.Launch(ctx, mallory, c.ID, map[string]bool{domain.PlatformGoogleAds: true})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCampaignUseCase_LaunchUnknownPlatformInvokesNothing(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	gads := okConnector(domain.PlatformGoogleAds)
	svc := newCampaignService(campaigns, &fakeLogRepo{}, gads)
	ctx := context.Background()

	c := createDraft(t, svc)
	_, err := svc.Launch(ctx, owner, c.ID, map[string]bool{
		domain.PlatformGoogleAds: true,
		"zz_bogus":               true,
	})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "want ValidationError, got %v", err)
	assert.Zero(t, gads.calls, "no connector may run when any platform name is unknown")

	stored, err := campaigns.FindByID(ctx, owner.UserID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, stored.Status)
}

func TestCampaignUseCase_LaunchAuditFailureDoesNotFailLaunch(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	logs := &fakeLogRepo{failInsert: true}
	svc := newCampaignService(campaigns, logs, okConnector(domain.PlatformGoogleAds))
	ctx := context.Background()

	c := createDraft(t, svc)
	res, err := svc.Launch(ctx, owner, c.ID, map[string]bool{domain.PlatformGoogleAds: true})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, res.Status)
}

func TestCampaignUseCase_GuestListIsDemoData(t *testing.T) {
	svc := newCampaignService(newFakeCampaignRepo(), &fakeLogRepo{})
	guest := domain.Identity{UserID: domain.GuestID, IsGuest: true}

	list, err := svc.List(context.Background(), guest)
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "Black Friday 2025", list[0].Title)
}

func TestCampaignUseCase_MetricsSynthesizedWhenNoneStored(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	svc := newCampaignService(campaigns, &fakeLogRepo{})
	ctx := context.Background()

	c := createDraft(t, svc)
	view, err := svc.Metrics(ctx, owner, c.ID)
	require.NoError(t, err)

	require.Len(t, view.Metrics, 1)
	s := view.Metrics[0]
	assert.Equal(t, uuid.Nil, s.ID, "synthetic sample must not look persisted")
	assert.GreaterOrEqual(t, s.Impressions, int64(1000))
	assert.LessOrEqual(t, s.Clicks, s.Impressions)
	assert.LessOrEqual(t, s.Conversions, s.Clicks)

	// nothing was persisted
	stored, err := campaigns.ListMetrics(ctx, c.ID, 100)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCampaignUseCase_MetricsUsesStoredSamples(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	svc := newCampaignService(campaigns, &fakeLogRepo{})
	ctx := context.Background()

	c := createDraft(t, svc)
	campaigns.metrics[c.ID] = []domain.MetricSample{
		{ID: uuid.New(), CampaignID: c.ID, Impressions: 1000, Clicks: 100, Conversions: 10, Cost: 50, Revenue: 200},
		{ID: uuid.New(), CampaignID: c.ID, Impressions: 1000, Clicks: 100, Conversions: 10, Cost: 50, Revenue: 200},
	}

	view, err := svc.Metrics(ctx, owner, c.ID)
	require.NoError(t, err)
	require.Len(t, view.Metrics, 2)

	// KPIs derived from the aggregate: 200 clicks, 2000 impressions, 100 cost
	assert.InDelta(t, 0.5, view.KPIs.CPC, 0.001)
	assert.InDelta(t, 10.0, view.KPIs.CTR, 0.001)
	assert.InDelta(t, 4.0, view.KPIs.ROAS, 0.001)
}

func TestCampaignUseCase_MetricsZeroClicksNoDivideByZero(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	svc := newCampaignService(campaigns, &fakeLogRepo{})
	ctx := context.Background()

	c := createDraft(t, svc)
	campaigns.metrics[c.ID] = []domain.MetricSample{
		{ID: uuid.New(), CampaignID: c.ID, Impressions: 0, Clicks: 0, Conversions: 0, Cost: 0, Revenue: 0},
	}

	view, err := svc.Metrics(ctx, owner, c.ID)
	require.NoError(t, err)
	assert.Zero(t, view.KPIs.CPC)
	assert.Zero(t, view.KPIs.CTR)
	assert.Zero(t, view.KPIs.ROAS)
}

func TestCampaignUseCase_MetricsUnknownCampaign(t *testing.T) {
	svc := newCampaignService(newFakeCampaignRepo(), &fakeLogRepo{})

	_, err := svc.Metrics(context.Background(), owner, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}
