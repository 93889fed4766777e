package httpapi

import (
	"net/http"

	"shotdash/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	verifier AdminVerifier,
	logger *logging.Logger,
	adminKey string,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	mux := http.NewServeMux()
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, verifier, adminKey)

	return RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)

	mux.HandleFunc("POST /v1/auth/register", handler.Register)
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/password", handler.UpdatePassword)

	mux.HandleFunc("GET /v1/stats", handler.GetStats)
	mux.HandleFunc("GET /v1/stats/matches", handler.GetMatchStats)
	mux.HandleFunc("GET /v1/stats/zones", handler.GetZones)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier AdminVerifier, adminKey string) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(adminKey, verifier, h)
	}

	mux.Handle("GET /v1/overrides", admin(handler.ListOverrides))
	mux.Handle("PUT /v1/overrides/{key}", admin(handler.PutOverride))
	mux.Handle("DELETE /v1/overrides/{key}", admin(handler.DeleteOverride))

	mux.Handle("GET /v1/accounts", admin(handler.ListAccounts))
	mux.Handle("GET /v1/accounts/{username}", admin(handler.GetAccount))
	mux.Handle("PUT /v1/accounts/{username}/admin", admin(handler.SetAccountAdmin))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
