package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MetricSample is one append-only observation of campaign performance.
// Samples generated on the fly for the demo path carry a zero ID and are
// never persisted.
type MetricSample struct {
	ID          uuid.UUID `json:"id,omitempty"`
	CampaignID  uuid.UUID `json:"campaignId"`
	Timestamp   time.Time `json:"timestamp"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Cost        float64   `json:"cost"`
	Revenue     float64   `json:"revenue"`
}

// KPIs are derived indicators, never stored. All divisions are zero-guarded.
type KPIs struct {
	CPC  float64 `json:"cpc"`
	CTR  float64 `json:"ctr"`
	ROAS float64 `json:"roas"`
}

// ComputeKPIs derives CPC, CTR and ROAS from raw counters, rounded to two
// decimal places. This is the single place these formulas live; every surface
// that displays KPIs must go through it.
func ComputeKPIs(impressions, clicks, conversions int64, cost, revenue float64) KPIs {
	var k KPIs
	if clicks > 0 {
		k.CPC = round2(cost / float64(clicks))
	}
	if impressions > 0 {
		k.CTR = round2(float64(clicks) / float64(impressions) * 100)
	}
	if cost > 0 {
		k.ROAS = round2(revenue / cost)
	}
	return k
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
