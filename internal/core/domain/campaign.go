package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses. A campaign is created as draft and becomes active only
// through a launch. Paused exists for future automation but is never set by
// the API itself.
const (
	StatusDraft  = "draft"
	StatusActive = "active"
	StatusPaused = "paused"
)

// Platform identifiers accepted by the launch operation.
const (
	PlatformGoogleAds = "google_ads"
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformWhatsApp  = "whatsapp"
)

// Campaign represents a marketing campaign owned by exactly one user.
// Budget is a decimal amount in currency units.
type Campaign struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	TargetAudience TargetAudience  `json:"targetAudience"`
	Budget         float64         `json:"budget"`
	AdText         string          `json:"adText"`
	Status         string          `json:"status"`
	Platforms      map[string]bool `json:"platforms,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	LaunchedAt     *time.Time      `json:"launchedAt,omitempty"`
}

// TargetAudience describes who a campaign should reach.
type TargetAudience struct {
	Cities    []string `json:"cities,omitempty"`
	AgeMin    int      `json:"ageMin,omitempty"`
	AgeMax    int      `json:"ageMax,omitempty"`
	Interests []string `json:"interests,omitempty"`
}
