package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gaia/internal/core/domain"
	"gaia/internal/core/port"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var in port.CreateCampaignInput
	if err := decodeBody(r, &in); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	c, err := h.campaigns.Create(r.Context(), ident, in)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	list, err := h.campaigns.List(r.Context(), ident)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"campaigns": list})
}

type launchRequest struct {
	Platforms map[string]bool `json:"platforms"`
}

func (h *Handler) handleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	id, err := campaignID(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	var req launchRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	res, err := h.campaigns.Launch(r.Context(), ident, id, req.Platforms)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleCampaignMetrics(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	id, err := campaignID(r)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	view, err := h.campaigns.Metrics(r.Context(), ident, id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func campaignID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.Validationf("invalid campaign id")
	}
	return id, nil
}
