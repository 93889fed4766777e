package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shotdash/internal/platform/logging"
	"shotdash/internal/usecase"
)

// AdminVerifier checks whether a username carries the admin flag.
type AdminVerifier interface {
	IsAdmin(ctx context.Context, username string) (bool, error)
}

// RequireAdmin gates admin routes. The request must carry the shared admin
// API key and name an acting account whose is_admin flag is set; neither
// alone is enough.
func RequireAdmin(adminKey string, verifier AdminVerifier, next http.Handler) http.Handler {
	expectedKey := strings.TrimSpace(adminKey)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if expectedKey == "" {
			writeError(ctx, w, fmt.Errorf("%w: admin key is not configured", usecase.ErrUnauthorized))
			return
		}

		providedKey := strings.TrimSpace(r.Header.Get("X-Admin-Key"))
		if providedKey == "" || providedKey != expectedKey {
			writeError(ctx, w, fmt.Errorf("%w: invalid admin key", usecase.ErrUnauthorized))
			return
		}

		actor := strings.TrimSpace(r.Header.Get("X-Admin-User"))
		if actor == "" {
			writeError(ctx, w, fmt.Errorf("%w: missing X-Admin-User header", usecase.ErrUnauthorized))
			return
		}

		isAdmin, err := verifier.IsAdmin(ctx, actor)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		if !isAdmin {
			writeError(ctx, w, fmt.Errorf("%w: user %q is not an admin", usecase.ErrUnauthorized, actor))
			return
		}

		next.ServeHTTP(w, r.WithContext(withActor(ctx, actor)))
	})
}

func RequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)

		logger.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}

func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	allowAll := false
	originSet := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
			continue
		}
		originSet[origin] = struct{}{}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else if _, ok := originSet[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Key, X-Admin-User")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
