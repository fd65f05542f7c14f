package httpadapter

import (
	"net/http"

	"gaia/internal/core/domain"
)

func (h *Handler) handleSaveKeys(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	var keys domain.APIKeys
	if err := decodeBody(r, &keys); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	user, err := h.keys.SaveKeys(r.Context(), ident, keys)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"userId":    user.ID,
		"email":     user.Email,
		"updatedAt": user.UpdatedAt,
	})
}

func (h *Handler) handleGetKeys(w http.ResponseWriter, r *http.Request) {
	ident, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing authorization header")
		return
	}

	view, err := h.keys.GetKeys(r.Context(), ident)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
