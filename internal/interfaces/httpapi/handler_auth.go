package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"shotdash/internal/domain/account"
	"shotdash/internal/usecase"
)

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type userDTO struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"created_at"`
	LastLogin *string `json:"last_login"`
	IsAdmin   bool    `json:"is_admin"`
}

func userToDTO(info account.Info) userDTO {
	var lastLogin *string
	if info.LastLogin != nil {
		formatted := info.LastLogin.UTC().Format(time.RFC3339)
		lastLogin = &formatted
	}

	return userDTO{
		Username:  info.Username,
		Email:     info.Email,
		CreatedAt: info.CreatedAt.UTC().Format(time.RFC3339),
		LastLogin: lastLogin,
		IsAdmin:   info.IsAdmin,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
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

	info, err := h.accountService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "register failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, userToDTO(info))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
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

	info, err := h.accountService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(info))
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePassword")
	defer span.End()

	var req updatePasswordRequest
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

	if err := h.accountService.UpdatePassword(ctx, req.Username, req.OldPassword, req.NewPassword); err != nil {
		h.logger.WarnContext(ctx, "password update failed", "username", req.Username, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "password updated"})
}
