// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/conceptair/sizing-service/config"
	"github.com/conceptair/sizing-service/internal/http"
	"github.com/conceptair/sizing-service/internal/repository"
	"github.com/conceptair/sizing-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler         *http.Handler
	VariantsHandler *http.VariantsHandler
	HealthHandler   *http.HealthHandler
	Config          http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var variantsRepo repository.VariantsRepositoryInterface
	if dbComponents != nil {
		variantsRepo = dbComponents.VariantsRepo
	}

	// Catalog writes invalidate cached sizing results: a changed variant
	// must never be served a stale solve.
	variantsService := service.NewVariantsService(variantsRepo,
		service.WithStaticCatalog(services.StaticCatalog),
		service.WithWriteHook(services.Sizing.InvalidateCache),
	)

	handler := http.NewHandler(services.Sizing, http.WithSolverConfig(services.SolverConfig))
	variantsHandler := http.NewVariantsHandler(variantsService, services.Sizing)
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.VariantsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_variants", dbComponents.VariantsCircuitBreaker)
		}
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", mongoChecker{db: dbComponents.DB})
		}
	}

	var jwtSecret string
	if cfg.Auth.Enabled {
		jwtSecret = cfg.Auth.JWTSecretKey
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		APIKeys:     cfg.Auth.APIKeys,
		JWTSecret:   jwtSecret,
		CORSOrigins: cfg.Server.CORSOrigins,
		SwaggerUser: cfg.Server.SwaggerUser,
		SwaggerPass: cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:         handler,
		VariantsHandler: variantsHandler,
		HealthHandler:   healthHandler,
		Config:          routerCfg,
	}
}

// mongoChecker adapts the MongoDB ping to the health checker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (c mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.db.HealthCheck(ctx)
}
