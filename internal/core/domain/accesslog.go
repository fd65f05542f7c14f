package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessLogEntry records one authenticated request. Writes are best-effort:
// a failed insert must never fail the request that produced it.
type AccessLogEntry struct {
	ID        uuid.UUID      `json:"id"`
	UserID    *uuid.UUID     `json:"userId,omitempty"`
	IPAddress string         `json:"ipAddress"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
