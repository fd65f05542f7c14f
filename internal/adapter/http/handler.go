package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"gaia/internal/auth"
	"gaia/internal/core/port"
	"gaia/internal/ratelimit"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: one thin binding layer over the service ports, so alternate
// transports can reuse the same services without duplicating route logic.
type Handler struct {
	auth      port.AuthUseCase
	keys      port.KeyUseCase
	campaigns port.CampaignUseCase
	admin     port.AdminRepository
	tokens    *auth.TokenManager
	logs      port.AccessLogRepository
	logger    *slog.Logger
	router    chi.Router

	adminToken string

	loginLimiter   *ratelimit.Limiter
	generalLimiter *ratelimit.Limiter
	keySaveLimiter *ratelimit.Limiter
}

// Deps bundles everything the handler needs.
type Deps struct {
	Auth       port.AuthUseCase
	Keys       port.KeyUseCase
	Campaigns  port.CampaignUseCase
	Admin      port.AdminRepository
	Tokens     *auth.TokenManager
	Logs       port.AccessLogRepository
	Logger     *slog.Logger
	AdminToken string
	// CORSOrigins lists the origins the browser client may call from.
	CORSOrigins []string
}

// NewHandler creates a handler with all routes configured. Rate limits are
// the product's fixed windows: 5 logins, 100 general and 10 key saves per
// minute.
func NewHandler(d Deps) *Handler {
	h := &Handler{
		auth:           d.Auth,
		keys:           d.Keys,
		campaigns:      d.Campaigns,
		admin:          d.Admin,
		tokens:         d.Tokens,
		logs:           d.Logs,
		logger:         d.Logger,
		adminToken:     d.AdminToken,
		loginLimiter:   ratelimit.New(5, time.Minute),
		generalLimiter: ratelimit.New(100, time.Minute),
		keySaveLimiter: ratelimit.New(10, time.Minute),
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(h.requestLogger)
	r.Use(h.rateLimitByIP(h.generalLimiter))
	r.Use(h.sanitizeRequest)

	r.Get("/health", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(h.rateLimitByIP(h.loginLimiter)).Post("/login", h.handleLogin)
			r.Post("/register", h.handleRegister)
			r.Post("/guest", h.handleGuest)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.With(h.rateLimitByUser(h.keySaveLimiter)).Post("/keys/save", h.handleSaveKeys)
			r.Get("/keys/me", h.handleGetKeys)

			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns/{id}/launch", h.handleLaunchCampaign)
			r.Get("/campaigns/{id}/metrics", h.handleCampaignMetrics)
		})

		r.Post("/admin/wipe", h.handleAdminWipe)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
