package httpadapter

import (
	"crypto/subtle"
	"net/http"

	"log/slog"
)

// handleAdminWipe deletes every row from every table. It is guarded by a
// static token, not a user account, and is disabled entirely when no token
// is configured.
func (h *Handler) handleAdminWipe(w http.ResponseWriter, r *http.Request) {
	if h.adminToken == "" {
		writeError(w, http.StatusForbidden, "admin endpoint is disabled")
		return
	}

	got := r.Header.Get("X-Admin-Token")
	if subtle.ConstantTimeCompare([]byte(got), []byte(h.adminToken)) != 1 {
		writeError(w, http.StatusForbidden, "invalid admin token")
		return
	}

	if err := h.admin.WipeAll(r.Context()); err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	h.logger.Warn("all data wiped", slog.String("ip", clientIP(r)))
	writeJSON(w, http.StatusOK, map[string]string{"message": "all data wiped"})
}
