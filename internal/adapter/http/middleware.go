package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"gaia/internal/core/domain"
	"gaia/internal/ratelimit"
	"gaia/internal/sanitize"
)

type ctxKey int

const identityKey ctxKey = iota

// identityFrom extracts the authenticated identity set by requireAuth.
func identityFrom(ctx context.Context) (domain.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(domain.Identity)
	return ident, ok
}

// requireAuth validates the bearer token and attaches the identity to the
// request context. A missing header is 401, a bad or expired token 403.
// After the handler runs the request is appended to the audit trail; audit
// failures are logged and never affect the response.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization header")
			return
		}
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "authorization header must be a bearer token")
			return
		}

		ident, err := h.tokens.Verify(raw)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), identityKey, ident)))

		h.recordAccess(ident, r, ww.Status(), time.Since(start))
	})
}

// recordAccess appends an audit entry in the background. Guest requests are
// logged without a user id; the guest identity has no users row to
// reference.
func (h *Handler) recordAccess(ident domain.Identity, r *http.Request, status int, took time.Duration) {
	e := &domain.AccessLogEntry{
		IPAddress: clientIP(r),
		Action:    r.Method + " " + r.URL.Path,
		Details: map[string]any{
			"status":     status,
			"durationMs": took.Milliseconds(),
		},
	}
	if !ident.IsGuest {
		id := ident.UserID
		e.UserID = &id
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.logs.Insert(ctx, e); err != nil {
			h.logger.Warn("access log insert failed", slog.String("error", err.Error()))
		}
	}()
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		h.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("ip", clientIP(r)),
		)
	})
}

// rateLimitByIP applies a fixed-window limiter keyed by client address.
func (h *Handler) rateLimitByIP(l *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(clientIP(r)) {
				writeError(w, http.StatusTooManyRequests, "too many requests, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitByUser keys the window on the authenticated user so one user
// cannot dodge the limit by rotating addresses. Falls back to the client
// address when no identity is present.
func (h *Handler) rateLimitByUser(l *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientIP(r)
			if ident, ok := identityFrom(r.Context()); ok {
				key = ident.UserID.String()
			}
			if !l.Allow(key) {
				writeError(w, http.StatusTooManyRequests, "too many requests, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// sanitizeRequest screens query parameters and JSON bodies before any
// handler sees them. Values matching an injection pattern fail the request
// with 400; everything else is HTML-escaped in place.
func (h *Handler) sanitizeRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if query := r.URL.Query(); len(query) > 0 {
			cleaned := make(url.Values, len(query))
			for key, values := range query {
				for _, v := range values {
					cv, ok := sanitize.CleanValue(v)
					if !ok {
						writeError(w, http.StatusBadRequest, "query parameter "+key+" contains forbidden characters")
						return
					}
					cleaned.Add(key, cv)
				}
			}
			r.URL.RawQuery = cleaned.Encode()
		}

		if r.Body != nil && r.Body != http.NoBody && strings.Contains(r.Header.Get("Content-Type"), "application/json") {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				writeError(w, http.StatusBadRequest, "failed to read request body")
				return
			}

			if len(bytes.TrimSpace(body)) > 0 {
				var doc map[string]any
				if err := json.Unmarshal(body, &doc); err != nil {
					writeError(w, http.StatusBadRequest, "invalid request body")
					return
				}
				if field, ok := sanitize.CleanAll(doc); !ok {
					writeError(w, http.StatusBadRequest, "field "+field+" contains forbidden characters")
					return
				}
				body, err = json.Marshal(doc)
				if err != nil {
					writeError(w, http.StatusInternalServerError, "internal server error")
					return
				}
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			r.ContentLength = int64(len(body))
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the remote address without its port. chi's RealIP
// middleware has already folded X-Forwarded-For / X-Real-IP in.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
