// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/conceptair/sizing-service/internal/domain/model"
)

// VariantsRepositoryInterface defines the interface for variant catalog
// repository operations.
type VariantsRepositoryInterface interface {
	GetActive(ctx context.Context, name string) (*VariantConfig, error)
	ListActive(ctx context.Context) ([]VariantConfig, error)
	Upsert(ctx context.Context, variant model.AircraftVariant, createdBy string) (*VariantConfig, error)
	History(ctx context.Context, name string, limit int) ([]VariantConfig, error)
}
