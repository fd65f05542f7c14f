package port

import (
	"context"

	"gaia/internal/core/domain"
)

// ConnectorResult is what a platform reports back for a launch attempt.
type ConnectorResult struct {
	Success    bool   `json:"success"`
	ExternalID string `json:"externalId,omitempty"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// PlatformConnector is the capability interface for one advertising platform.
// The bundled implementations are mocks that answer after a simulated delay;
// a real integration swaps in an HTTP client behind the same interface and
// must honor ctx cancellation.
type PlatformConnector interface {
	// Platform returns the identifier this connector serves, e.g. "google_ads".
	Platform() string
	// Launch submits the campaign to the platform.
	Launch(ctx context.Context, c domain.Campaign) (ConnectorResult, error)
}
