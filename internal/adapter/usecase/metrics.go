package usecase

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"gaia/internal/core/domain"
)

// MetricsGenerator produces plausible synthetic samples for campaigns that
// have no stored metrics. The rand source is injected so tests can pass a
// fixed seed and assert exact values; production seeds from the clock.
type MetricsGenerator struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewMetricsGenerator wraps the given source. rand.Rand is not safe for
// concurrent use, hence the mutex.
func NewMetricsGenerator(src rand.Source) *MetricsGenerator {
	return &MetricsGenerator{r: rand.New(src)}
}

// Sample generates one unpersisted sample. Clicks derive from impressions
// via a random CTR in [1%,6%], conversions from clicks via a rate in
// [2%,12%], cost from clicks at a CPC in [0.50,2.50] and revenue from
// conversions at an order value in [50,150].
func (g *MetricsGenerator) Sample(campaignID uuid.UUID) domain.MetricSample {
	g.mu.Lock()
	defer g.mu.Unlock()

	impressions := int64(g.r.Intn(10000) + 1000)
	ctr := 0.01 + g.r.Float64()*0.05
	clicks := int64(float64(impressions) * ctr)
	convRate := 0.02 + g.r.Float64()*0.10
	conversions := int64(float64(clicks) * convRate)
	cpc := 0.50 + g.r.Float64()*2.00
	cost := round2(float64(clicks) * cpc)
	orderValue := 50 + g.r.Float64()*100
	revenue := round2(float64(conversions) * orderValue)

	return domain.MetricSample{
		CampaignID:  campaignID,
		Timestamp:   time.Now().UTC(),
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Cost:        cost,
		Revenue:     revenue,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
