package app

import (
	"fmt"
	"net/http"

	"shotdash/internal/config"
	"shotdash/internal/infrastructure/repository/csvfile"
	"shotdash/internal/infrastructure/repository/jsonfile"
	"shotdash/internal/interfaces/httpapi"
	"shotdash/internal/platform/cache"
	"shotdash/internal/platform/logging"
	"shotdash/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	shotRepo := csvfile.NewShotRepository(cfg.ShotsCSVPath, logger)
	userRepo := jsonfile.NewUserRepository(cfg.UsersFilePath)
	overrideRepo := jsonfile.NewOverrideRepository(cfg.OverridesFilePath, logger)

	var cacheStore *cache.Store
	if cfg.CacheEnabled {
		cacheStore = cache.NewStore(cfg.CacheTTL)
	}

	accountSvc := usecase.NewAccountService(userRepo, logger)
	statsSvc := usecase.NewStatsService(shotRepo, cacheStore, logger)
	overrideSvc := usecase.NewOverrideService(overrideRepo, accountSvc, logger)

	handler := httpapi.NewHandler(statsSvc, overrideSvc, accountSvc, logger)
	router := httpapi.NewRouter(handler, accountSvc, logger, cfg.AdminKey, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
