// Package connector holds the outbound adapters for advertising platforms.
// The bundled implementations are mocks: they answer with synthetic success
// after a fixed simulated latency and never touch the network. Real clients
// replace them behind the same port.PlatformConnector interface.
package connector

import (
	"context"
	"fmt"
	"time"

	"gaia/internal/core/domain"
	"gaia/internal/core/port"
)

// Mock simulates one platform. Delay is the fixed simulated latency; Launch
// honors ctx so a request timeout still cancels the wait.
type Mock struct {
	platform string
	prefix   string
	status   string
	delay    time.Duration
}

// NewMock builds a connector for the given platform identifier.
func NewMock(platform, prefix, status string, delay time.Duration) *Mock {
	return &Mock{platform: platform, prefix: prefix, status: status, delay: delay}
}

// Platform returns the identifier this connector serves.
func (m *Mock) Platform() string { return m.platform }

// Launch waits out the simulated latency and reports success with a
// generated external id.
func (m *Mock) Launch(ctx context.Context, _ domain.Campaign) (port.ConnectorResult, error) {
	select {
	case <-ctx.Done():
		return port.ConnectorResult{}, ctx.Err()
	case <-time.After(m.delay):
	}
	return port.ConnectorResult{
		Success:    true,
		ExternalID: fmt.Sprintf("%s_%d", m.prefix, time.Now().UnixMilli()),
		Status:     m.status,
	}, nil
}

// DefaultSet returns the mock connectors for every supported platform with
// the latencies the demo has always used.
func DefaultSet() []port.PlatformConnector {
	return []port.PlatformConnector{
		NewMock(domain.PlatformGoogleAds, "gads", "active", 1000*time.Millisecond),
		NewMock(domain.PlatformInstagram, "insta", "active", 1200*time.Millisecond),
		NewMock(domain.PlatformTikTok, "tiktok", "scheduled", 1100*time.Millisecond),
		NewMock(domain.PlatformWhatsApp, "whatsapp", "active", 900*time.Millisecond),
	}
}
