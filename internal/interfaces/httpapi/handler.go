package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"shotdash/internal/platform/logging"
	"shotdash/internal/usecase"
)

type Handler struct {
	statsService    *usecase.StatsService
	overrideService *usecase.OverrideService
	accountService  *usecase.AccountService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	statsService *usecase.StatsService,
	overrideService *usecase.OverrideService,
	accountService *usecase.AccountService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		statsService:    statsService,
		overrideService: overrideService,
		accountService:  accountService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
