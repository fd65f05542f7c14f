package connector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaia/internal/core/domain"
)

func TestMock_Launch(t *testing.T) {
	m := NewMock(domain.PlatformGoogleAds, "gads", "active", 0)

	res, err := m.Launch(context.Background(), domain.Campaign{Title: "t"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "active", res.Status)
	assert.Contains(t, res.ExternalID, "gads_")
}

func TestMock_LaunchHonorsContext(t *testing.T) {
	m := NewMock(domain.PlatformInstagram, "insta", "active", time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.Launch(ctx, domain.Campaign{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDefaultSet_CoversAllPlatforms(t *testing.T) {
	set := DefaultSet()
	require.Len(t, set, 4)

	seen := map[string]bool{}
	for _, c := range set {
		seen[c.Platform()] = true
	}
	for _, p := range []string{
		domain.PlatformGoogleAds, domain.PlatformInstagram,
		domain.PlatformTikTok, domain.PlatformWhatsApp,
	} {
		assert.True(t, seen[p], "missing connector for %s", p)
	}
}
