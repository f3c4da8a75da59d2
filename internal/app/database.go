// Package app provides database initialization and setup.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/conceptair/sizing-service/config"
	"github.com/conceptair/sizing-service/internal/circuitbreaker"
	"github.com/conceptair/sizing-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	VariantsRepo           repository.VariantsRepositoryInterface
	VariantsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and builds the
// variant catalog repository behind a circuit breaker.
// Returns nil if the database is disabled or the connection fails; the
// service then runs on the static catalog alone.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with the static catalog")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	variantsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-variants",
	})

	variantsRepo := repository.NewVariantsRepository(db)
	variantsRepoWithCB := repository.NewVariantsRepositoryWithCircuitBreaker(variantsRepo, variantsCB)

	return &DatabaseComponents{
		DB:                     db,
		VariantsRepo:           variantsRepoWithCB,
		VariantsCircuitBreaker: variantsCB,
	}
}
