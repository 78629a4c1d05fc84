package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/logic"
)

// hashToken creates a SHA256 hash of a token for secure storage lookup
func hashToken(token string) string {
	h := sha256.New()
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"postgres": h.pg.Ping(ctx) == nil,
		"redis":    h.redis.Ping(ctx).Err() == nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !allHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":  allHealthy,
		"checks": checks,
	})
}

// AnalystAuthMiddleware validates analyst tokens on the leaderboard routes.
// Tokens are stored hashed; a validated hash is cached in Redis so repeated
// dashboard refreshes do not hammer Postgres.
func (h *Handler) AnalystAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Analyst-Token")
		if token == "" {
			token = r.Header.Get("Authorization")
			token = strings.TrimPrefix(token, "Bearer ")
		}

		if token == "" {
			h.errorResponse(w, http.StatusUnauthorized, "Missing analyst token")
			return
		}

		ctx := r.Context()
		hashedToken := hashToken(token)
		cacheKey := "auth:analyst:" + hashedToken

		if h.redis != nil {
			if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil && val == "1" {
				next.ServeHTTP(w, r)
				return
			}
		}

		var tokenID string
		err := h.pg.QueryRow(ctx,
			"SELECT id FROM analyst_tokens WHERE token_hash = $1 AND is_active = true",
			hashedToken).Scan(&tokenID)
		if err != nil || tokenID == "" {
			h.errorResponse(w, http.StatusUnauthorized, "Invalid analyst token")
			return
		}

		if h.redis != nil {
			if err := h.redis.Set(ctx, cacheKey, "1", h.tokenCacheTTL).Err(); err != nil {
				h.logger.Warnw("Failed to cache analyst token", "error", err)
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps service failures onto HTTP statuses. Everything that
// is not a missing entity logs and degrades to a 500.
func (h *Handler) serviceError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, logic.ErrNotFound) {
		h.errorResponse(w, http.StatusNotFound, "Not found")
		return
	}
	h.logger.Errorw("Service call failed", "op", op, "error", err)
	h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
}

// queryInt reads an integer query parameter, falling back to def on
// absent or unparseable input and clamping to [min, max].
func queryInt(r *http.Request, name string, def, min, max int) int {
	v := def
	if raw := r.URL.Query().Get(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			v = parsed
		}
	}
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

// queryIntPtr reads an optional integer query parameter, nil when absent
// or unparseable.
func queryIntPtr(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// queryBoolPtr reads an optional boolean query parameter, nil when absent
// or unparseable.
func queryBoolPtr(r *http.Request, name string) *bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &parsed
}
