package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/conceptair/sizing-service/internal/catalog"
	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/conceptair/sizing-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when a write operation needs the
// repository and none is configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrVariantNotFound is returned when no variant matches the requested name.
var ErrVariantNotFound = errors.New("variant not found")

// Variants provides aircraft variant catalog operations.
type Variants interface {
	// Get returns the variant by name, preferring the repository's active
	// document over the static catalog.
	Get(ctx context.Context, name string) (*model.AircraftVariant, error)
	// List returns all known variants: the static catalog merged with the
	// repository's active documents.
	List(ctx context.Context) ([]model.AircraftVariant, error)
	// Upsert stores a new active version of the variant.
	Upsert(ctx context.Context, variant model.AircraftVariant, createdBy string) (*repository.VariantConfig, error)
	// History returns prior versions of the named variant, newest first.
	History(ctx context.Context, name string, limit int) ([]repository.VariantConfig, error)
}

// VariantsService implements Variants over an optional MongoDB repository
// and a static catalog. The static catalog (built-in defaults, optionally
// merged with a YAML file) always answers reads when the repository is
// absent or returns nothing, so the service degrades to read-only rather
// than failing.
type VariantsService struct {
	repo    repository.VariantsRepositoryInterface
	static  []model.AircraftVariant
	onWrite func()
}

// VariantsOption configures a VariantsService.
type VariantsOption func(*VariantsService)

// WithStaticCatalog sets the fallback catalog. Defaults to the built-in
// reference variants.
func WithStaticCatalog(variants []model.AircraftVariant) VariantsOption {
	return func(s *VariantsService) {
		if len(variants) > 0 {
			s.static = variants
		}
	}
}

// WithWriteHook registers a callback invoked after every successful
// upsert. Used to invalidate sizing result caches when a variant changes.
func WithWriteHook(hook func()) VariantsOption {
	return func(s *VariantsService) {
		s.onWrite = hook
	}
}

// NewVariantsService creates a new variants service. A nil repository is
// allowed; the service then serves the static catalog only.
func NewVariantsService(repo repository.VariantsRepositoryInterface, opts ...VariantsOption) *VariantsService {
	s := &VariantsService{
		repo:   repo,
		static: catalog.Builtin(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the variant by name. The repository's active document wins;
// the static catalog answers when the repository has no document (or is
// unavailable behind an open circuit breaker, which surfaces as nil, nil).
func (s *VariantsService) Get(ctx context.Context, name string) (*model.AircraftVariant, error) {
	if s.repo != nil {
		cfg, err := s.repo.GetActive(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to load variant %q: %w", name, err)
		}
		if cfg != nil {
			return &cfg.Variant, nil
		}
	}

	for i := range s.static {
		if s.static[i].Name == name {
			v := s.static[i]
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrVariantNotFound, name)
}

// List returns the static catalog with repository actives merged over it
// by name.
func (s *VariantsService) List(ctx context.Context) ([]model.AircraftVariant, error) {
	if s.repo == nil {
		return catalog.Merge(s.static, nil), nil
	}

	configs, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	overrides := make([]model.AircraftVariant, 0, len(configs))
	for _, cfg := range configs {
		overrides = append(overrides, cfg.Variant)
	}
	return catalog.Merge(s.static, overrides), nil
}

// Upsert validates and stores a new active version of the variant.
func (s *VariantsService) Upsert(ctx context.Context, variant model.AircraftVariant, createdBy string) (*repository.VariantConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	cfg, err := s.repo.Upsert(ctx, variant, createdBy)
	if err != nil {
		return nil, err
	}
	if s.onWrite != nil {
		s.onWrite()
	}
	return cfg, nil
}

// History returns prior versions of the named variant, newest first.
func (s *VariantsService) History(ctx context.Context, name string, limit int) ([]repository.VariantConfig, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.repo.History(ctx, name, limit)
}
