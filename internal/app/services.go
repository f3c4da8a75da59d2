// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/conceptair/sizing-service/config"
	"github.com/conceptair/sizing-service/internal/catalog"
	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/conceptair/sizing-service/internal/service"
	"github.com/conceptair/sizing-service/internal/sizing"
)

// ServiceComponents holds the sizing solver and the static variant catalog.
type ServiceComponents struct {
	Sizing        *service.SizingService
	StaticCatalog []model.AircraftVariant
	SolverConfig  sizing.Config
}

// InitializeServices initializes the sizing service and loads the static
// variant catalog (built-in variants plus the optional YAML file).
func InitializeServices(cfg config.Config) *ServiceComponents {
	solverCfg := solverConfig(cfg.Solver)

	var opts []service.Option
	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	sizingService, err := service.NewSizingService(solverCfg, opts...)
	if err != nil {
		// Misconfigured tuning from the environment; fall back to defaults.
		log.Error().Err(err).Msg("Invalid solver configuration - using defaults")
		solverCfg = sizing.DefaultConfig()
		sizingService, _ = service.NewSizingService(solverCfg, opts...)
	}

	static := catalog.Builtin()
	if cfg.Catalog.FilePath != "" {
		fileVariants, err := catalog.LoadFile(cfg.Catalog.FilePath)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.Catalog.FilePath).Msg("Failed to load variant catalog file - using built-ins only")
		} else {
			static = catalog.Merge(static, fileVariants)
			log.Info().Int("variants", len(fileVariants)).Str("path", cfg.Catalog.FilePath).Msg("Loaded variant catalog file")
		}
	}

	return &ServiceComponents{
		Sizing:        sizingService,
		StaticCatalog: static,
		SolverConfig:  solverCfg,
	}
}

// solverConfig maps the environment configuration onto solver tuning,
// keeping the standard segment fractions.
func solverConfig(cfg config.SolverConfig) sizing.Config {
	sc := sizing.DefaultConfig()
	if cfg.SeedW0 > 0 {
		sc.SeedW0 = cfg.SeedW0
	}
	if cfg.Damping > 0 {
		sc.Damping = cfg.Damping
	}
	if cfg.Tolerance > 0 {
		sc.Tolerance = cfg.Tolerance
	}
	if cfg.MaxIterations > 0 {
		sc.MaxIterations = cfg.MaxIterations
	}
	if cfg.ReserveFactor >= 1 {
		sc.ReserveFactor = cfg.ReserveFactor
	}
	return sc
}
