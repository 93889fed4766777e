package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"shotdash/internal/usecase"
)

type setAdminRequest struct {
	IsAdmin *bool `json:"is_admin" validate:"required"`
}

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAccounts")
	defer span.End()

	infos, err := h.accountService.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list accounts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]userDTO, 0, len(infos))
	for _, info := range infos {
		items = append(items, userToDTO(info))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAccount")
	defer span.End()

	username := r.PathValue("username")
	info, exists, err := h.accountService.GetInfo(ctx, username)
	if err != nil {
		h.logger.ErrorContext(ctx, "get account failed", "username", username, "error", err)
		writeError(ctx, w, err)
		return
	}
	if !exists {
		writeError(ctx, w, fmt.Errorf("%w: user=%s", usecase.ErrNotFound, username))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(info))
}

func (h *Handler) SetAccountAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetAccountAdmin")
	defer span.End()

	username := r.PathValue("username")

	var req setAdminRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.accountService.SetAdmin(ctx, username, *req.IsAdmin); err != nil {
		h.logger.WarnContext(ctx, "set admin failed", "username", username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "admin flag updated", "username": username})
}
