// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/conceptair/sizing-service/internal/circuitbreaker"
	"github.com/conceptair/sizing-service/internal/domain/model"
)

// VariantsRepositoryWithCircuitBreaker wraps VariantsRepository with circuit
// breaker protection.
type VariantsRepositoryWithCircuitBreaker struct {
	repo           *VariantsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewVariantsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewVariantsRepositoryWithCircuitBreaker(repo *VariantsRepository, cb *circuitbreaker.CircuitBreaker) *VariantsRepositoryWithCircuitBreaker {
	return &VariantsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active variant configuration with circuit breaker
// protection. When the circuit is open it returns nil so callers fall back
// to the built-in catalog.
func (r *VariantsRepositoryWithCircuitBreaker) GetActive(ctx context.Context, name string) (*VariantConfig, error) {
	var result *VariantConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx, name)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - fall back to the built-in catalog
		return nil, nil
	}
	return result, err
}

// ListActive returns the active variant configurations with circuit breaker
// protection. When the circuit is open it returns nil so callers fall back
// to the built-in catalog.
func (r *VariantsRepositoryWithCircuitBreaker) ListActive(ctx context.Context) ([]VariantConfig, error) {
	var result []VariantConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.ListActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	return result, err
}

// Upsert stores a new variant version with circuit breaker protection.
func (r *VariantsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, variant model.AircraftVariant, createdBy string) (*VariantConfig, error) {
	var result *VariantConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Upsert(ctx, variant, createdBy)
		return cbErr
	})
	return result, err
}

// History returns stored variant versions with circuit breaker protection.
func (r *VariantsRepositoryWithCircuitBreaker) History(ctx context.Context, name string, limit int) ([]VariantConfig, error) {
	var result []VariantConfig
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.History(ctx, name, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *VariantsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
