package usecase

import (
	"time"

	"github.com/google/uuid"

	"gaia/internal/core/domain"
)

// Fixed demo content served to guest identities. Guests never touch
// persisted per-user data; everything below lives in code only.

var demoCampaignIDs = [5]uuid.UUID{
	uuid.MustParse("d0000000-0000-0000-0000-000000000001"),
	uuid.MustParse("d0000000-0000-0000-0000-000000000002"),
	uuid.MustParse("d0000000-0000-0000-0000-000000000003"),
	uuid.MustParse("d0000000-0000-0000-0000-000000000004"),
	uuid.MustParse("d0000000-0000-0000-0000-000000000005"),
}

// DemoCampaigns returns the fixed campaign list shown to guests.
func DemoCampaigns() []domain.Campaign {
	created := time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)
	launched := created.Add(48 * time.Hour)
	return []domain.Campaign{
		{
			ID: demoCampaignIDs[0], UserID: domain.GuestID,
			Title:       "Black Friday 2025",
			Description: "Site-wide 50% off promotion",
			Budget:      5000, AdText: "Half price on everything. Today only.",
			Status:    domain.StatusActive,
			Platforms: map[string]bool{domain.PlatformGoogleAds: true},
			CreatedAt: created, LaunchedAt: &launched,
		},
		{
			ID: demoCampaignIDs[1], UserID: domain.GuestID,
			Title:       "Product X Launch",
			Description: "Launch push for the new Product X",
			Budget:      8000, AdText: "Meet Product X. Built different.",
			Status:    domain.StatusActive,
			Platforms: map[string]bool{domain.PlatformInstagram: true},
			CreatedAt: created.Add(24 * time.Hour), LaunchedAt: &launched,
		},
		{
			ID: demoCampaignIDs[2], UserID: domain.GuestID,
			Title:       "WhatsApp Re-engagement",
			Description: "Win-back flow for dormant customers",
			Budget:      2000, AdText: "We miss you. Here's 20% off.",
			Status:    domain.StatusPaused,
			Platforms: map[string]bool{domain.PlatformWhatsApp: true},
			CreatedAt: created.Add(48 * time.Hour),
		},
		{
			ID: demoCampaignIDs[3], UserID: domain.GuestID,
			Title:       "Free Webinar",
			Description: "Sign-ups for the free growth webinar",
			Budget:      1500, AdText: "Learn growth marketing in 60 minutes.",
			Status:    domain.StatusActive,
			Platforms: map[string]bool{domain.PlatformGoogleAds: true},
			CreatedAt: created.Add(72 * time.Hour), LaunchedAt: &launched,
		},
		{
			ID: demoCampaignIDs[4], UserID: domain.GuestID,
			Title:       "Affiliate Program",
			Description: "Recruiting drive for new affiliates",
			Budget:      3000, AdText: "Earn with every referral.",
			Status:    domain.StatusDraft,
			CreatedAt: created.Add(96 * time.Hour),
		},
	}
}

// DemoKeys returns the fixed test credentials shown to guests instead of a
// store lookup.
func DemoKeys() domain.APIKeys {
	gads := "TEST_GOOGLE_ADS_KEY_12345"
	insta := "TEST_INSTAGRAM_TOKEN_ABCDEF123456"
	wa := "TEST_WHATSAPP_TOKEN_GHIJKL789012"
	return domain.APIKeys{GoogleAds: &gads, Instagram: &insta, WhatsApp: &wa}
}
