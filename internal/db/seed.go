package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"gaia/internal/crypto"
)

// Seed inserts demo data for local development: one user, a few campaigns in
// assorted states and a week of metric samples. Safe to run repeatedly.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := crypto.HashPassword("demo-password-for-local-dev!")
	if err != nil {
		return err
	}

	userID := uuid.New()
	err = pool.QueryRow(ctx, `INSERT INTO users (id, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id`, userID, "demo@gaia.local", hash).Scan(&userID)
	if err != nil {
		return err
	}

	titles := []struct {
		title  string
		status string
		budget float64
	}{
		{"Black Friday Blowout", "active", 5000},
		{"Product X Launch", "active", 8000},
		{"WhatsApp Re-engagement", "paused", 2000},
		{"Free Webinar Promo", "draft", 1500},
	}

	for i, tpl := range titles {
		campaignID := uuid.New()
		audience, _ := json.Marshal(map[string]any{
			"cities":    []string{"Lisbon", "Porto"},
			"ageMin":    18 + r.Intn(10),
			"ageMax":    45 + r.Intn(20),
			"interests": []string{"retail", "tech"},
		})
		var launchedAt *time.Time
		if tpl.status == "active" {
			t := time.Now().AddDate(0, 0, -7+i)
			launchedAt = &t
		}
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
(id, user_id, title, description, target_audience, budget, ad_text, status, created_at, launched_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),$9) ON CONFLICT DO NOTHING`,
			campaignID, userID, tpl.title, fmt.Sprintf("Seeded campaign %d", i+1),
			audience, tpl.budget, "Don't miss out, limited time only.", tpl.status, launchedAt)
		if err != nil {
			return err
		}

		if tpl.status == "draft" {
			continue
		}
		for d := 0; d < 7; d++ {
			impressions := int64(r.Intn(9000) + 1000)
			clicks := int64(float64(impressions) * (0.01 + r.Float64()*0.05))
			conversions := int64(float64(clicks) * (0.02 + r.Float64()*0.10))
			cost := float64(clicks) * (0.5 + r.Float64()*2.0)
			revenue := float64(conversions) * (50 + r.Float64()*100)
			_, err = pool.Exec(ctx, `INSERT INTO campaign_metrics
(id, campaign_id, ts, impressions, clicks, conversions, cost, revenue)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
				uuid.New(), campaignID, time.Now().AddDate(0, 0, -d),
				impressions, clicks, conversions, cost, revenue)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
