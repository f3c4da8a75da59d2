package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/conceptair/sizing-service/internal/metrics"
	"github.com/conceptair/sizing-service/internal/service/cache"
	"github.com/conceptair/sizing-service/internal/sizing"
)

// Solve modes reported to metrics.
const (
	ModeDesign   = "design"
	ModeFixedW0  = "fixed_w0"
	ModeMaxRange = "max_range"
	ModeSweep    = "sweep"
)

// Sizing defines the interface for aircraft sizing operations.
type Sizing interface {
	// SizeDesign sizes the variant on its design mission (design range plus
	// configured alternate).
	SizeDesign(ctx context.Context, variant model.AircraftVariant) (*model.SizingResult, error)
	// SizeMission sizes the variant on an explicit mission profile.
	SizeMission(ctx context.Context, variant model.AircraftVariant, profile model.MissionProfile) (*model.SizingResult, error)
	// SizeMissionWithConfig sizes with caller-supplied solver tuning,
	// bypassing the cache.
	SizeMissionWithConfig(ctx context.Context, variant model.AircraftVariant, profile model.MissionProfile, cfg sizing.Config) (*model.SizingResult, error)
	// EvaluateFixedW0 checks whether a frozen gross weight closes on the
	// variant's design mission.
	EvaluateFixedW0(ctx context.Context, variant model.AircraftVariant, profile model.MissionProfile, w0 float64) (*model.SizingResult, error)
	// MaxFeasibleRange finds the longest design-profile range a frozen
	// gross weight can fly.
	MaxFeasibleRange(ctx context.Context, variant model.AircraftVariant, w0, loNM, hiNM float64) (*model.SizingResult, float64, error)
	// RangeSweep sizes the variant across a list of design ranges.
	RangeSweep(ctx context.Context, variant model.AircraftVariant, ranges []float64) ([]*model.SizingResult, error)
	// InvalidateCache clears the result cache (useful when a variant changes).
	InvalidateCache()
}

// Option configures a SizingService.
type Option func(*SizingService)

// SizingService implements Sizing on top of the iterative solver, with
// optional result caching. Results live only in memory: a solve is cheap
// and pure, so the cache is an optimization, not a store.
type SizingService struct {
	solver *sizing.Solver
	cache  cache.Cache
}

// NewSizingService creates a new SizingService with the given options.
func NewSizingService(cfg sizing.Config, opts ...Option) (*SizingService, error) {
	solver, err := sizing.NewSolver(cfg)
	if err != nil {
		return nil, err
	}

	s := &SizingService{solver: solver}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *SizingService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *SizingService) {
		s.cache = c
	}
}

// SizeDesign sizes the variant on its design mission.
func (s *SizingService) SizeDesign(ctx context.Context, variant model.AircraftVariant) (*model.SizingResult, error) {
	profile := model.InternationalProfile(variant.DesignRange, variant.AlternateRange)
	return s.SizeMission(ctx, variant, profile)
}

// SizeMission sizes the variant on an explicit mission profile.
func (s *SizingService) SizeMission(ctx context.Context, variant model.AircraftVariant, profile model.MissionProfile) (*model.SizingResult, error) {
	key := s.fingerprint(ModeDesign, variant, profile, 0)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			return result, nil
		}
	}

	result, err := s.instrumented(ModeDesign, func() (*model.SizingResult, error) {
		return s.solver.Solve(variant, profile)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}
	return result, nil
}

// SizeMissionWithConfig sizes with caller-supplied solver tuning. Results
// are not cached: tuning overrides are rare and would fragment the cache.
func (s *SizingService) SizeMissionWithConfig(ctx context.Context, variant model.AircraftVariant, profile model.MissionProfile, cfg sizing.Config) (*model.SizingResult, error) {
	solver, err := sizing.NewSolver(cfg)
	if err != nil {
		return nil, err
	}
	return s.instrumented(ModeDesign, func() (*model.SizingResult, error) {
		return solver.Solve(variant, profile)
	})
}

// EvaluateFixedW0 checks whether a frozen gross weight closes on the given
// mission.
func (s *SizingService) EvaluateFixedW0(ctx context.Context, variant model.AircraftVariant, profile model.MissionProfile, w0 float64) (*model.SizingResult, error) {
	key := s.fingerprint(ModeFixedW0, variant, profile, w0)
	if s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			return result, nil
		}
	}

	result, err := s.instrumented(ModeFixedW0, func() (*model.SizingResult, error) {
		return s.solver.EvaluateFixedW0(variant, profile, w0)
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, result)
	}
	return result, nil
}

// MaxFeasibleRange finds the longest design-profile range the frozen gross
// weight can fly, searching between loNM and hiNM.
func (s *SizingService) MaxFeasibleRange(ctx context.Context, variant model.AircraftVariant, w0, loNM, hiNM float64) (*model.SizingResult, float64, error) {
	build := func(rangeNM float64) model.MissionProfile {
		return model.InternationalProfile(rangeNM, variant.AlternateRange)
	}

	start := time.Now()
	result, rangeNM, err := s.solver.MaxFeasibleRange(variant, w0, build, loNM, hiNM, 1.0)
	metrics.RecordSolve(ModeMaxRange, time.Since(start), outcomeOf(result, err), 0)
	if err != nil {
		return nil, 0, err
	}
	return result, rangeNM, nil
}

// RangeSweep sizes the variant once per requested design range. Infeasible
// ranges produce infeasible results, not errors, so the sweep always
// returns one result per input range unless the variant itself is invalid.
func (s *SizingService) RangeSweep(ctx context.Context, variant model.AircraftVariant, ranges []float64) ([]*model.SizingResult, error) {
	if len(ranges) == 0 {
		return nil, errors.New("range sweep requires at least one range")
	}

	results := make([]*model.SizingResult, 0, len(ranges))
	for _, rangeNM := range ranges {
		swept := variant
		swept.DesignRange = rangeNM
		profile := model.InternationalProfile(rangeNM, variant.AlternateRange)

		result, err := s.instrumented(ModeSweep, func() (*model.SizingResult, error) {
			return s.solver.Solve(swept, profile)
		})
		if err != nil {
			return nil, fmt.Errorf("sweep at %.0f nm: %w", rangeNM, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// InvalidateCache clears the result cache.
func (s *SizingService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// instrumented runs one solve and records solver metrics.
func (s *SizingService) instrumented(mode string, solve func() (*model.SizingResult, error)) (*model.SizingResult, error) {
	start := time.Now()
	result, err := solve()

	iterations := 0
	if result != nil {
		iterations = result.Iterations
	}
	metrics.RecordSolve(mode, time.Since(start), outcomeOf(result, err), iterations)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// fingerprint builds a stable cache key from the solve inputs. The solver
// tuning is part of the key so a reconfigured service never serves stale
// results.
func (s *SizingService) fingerprint(mode string, variant model.AircraftVariant, profile model.MissionProfile, w0 float64) string {
	h := fnv.New64a()
	enc := json.NewEncoder(h)
	_ = enc.Encode(mode)
	_ = enc.Encode(variant)
	_ = enc.Encode(profile)
	_ = enc.Encode(w0)
	_ = enc.Encode(s.solver.Config())
	return fmt.Sprintf("%016x", h.Sum64())
}

// outcomeOf maps a solve outcome to a metrics label.
func outcomeOf(result *model.SizingResult, err error) string {
	switch {
	case err == nil && result != nil && result.Feasible():
		return "converged"
	case err == nil:
		return "infeasible"
	default:
		var convErr *sizing.ConvergenceError
		var domErr *sizing.DomainError
		switch {
		case errors.As(err, &convErr):
			return "convergence_error"
		case errors.As(err, &domErr):
			return "domain_error"
		default:
			return "invalid_input"
		}
	}
}
