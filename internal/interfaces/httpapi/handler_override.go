package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"shotdash/internal/domain/stats"
	"shotdash/internal/usecase"
)

type overrideRequest struct {
	TotalShots *int     `json:"total_shots"`
	Goals      *int     `json:"goals"`
	Efficiency *float64 `json:"efficiency_%"`
}

func (h *Handler) ListOverrides(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOverrides")
	defer span.End()

	overrides, err := h.overrideService.Load(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "load overrides failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overrides)
}

func (h *Handler) PutOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PutOverride")
	defer span.End()

	actor, ok := actorFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: acting user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	key := r.PathValue("key")

	var req overrideRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}

	override := stats.Override{
		TotalShots: req.TotalShots,
		Goals:      req.Goals,
		Efficiency: req.Efficiency,
	}
	if err := h.overrideService.Set(ctx, actor, key, override); err != nil {
		h.logger.WarnContext(ctx, "set override failed", "key", key, "actor", actor, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "override saved", "key": key})
}

func (h *Handler) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteOverride")
	defer span.End()

	actor, ok := actorFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: acting user is missing from request context", usecase.ErrUnauthorized))
		return
	}

	key := r.PathValue("key")
	if err := h.overrideService.Clear(ctx, actor, key); err != nil {
		h.logger.WarnContext(ctx, "clear override failed", "key", key, "actor", actor, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "override cleared", "key": key})
}
