package sizing

import (
	"math"

	"github.com/conceptair/sizing-service/internal/domain/model"
)

// Config tunes the fixed-point iteration.
type Config struct {
	// SeedW0 is the initial gross weight guess [lbf].
	SeedW0 float64
	// Damping blends the update: W0 += Damping·(W0computed − W0). Must be
	// in (0,1].
	Damping float64
	// Tolerance is the relative convergence tolerance on W0.
	Tolerance float64
	// MaxIterations bounds the iteration before giving up.
	MaxIterations int
	// ReserveFactor scales mission fuel for reserve and trapped fuel.
	ReserveFactor float64
	// Fractions are the fixed segment weight fractions.
	Fractions SegmentFractions
}

// DefaultConfig returns the standard solver tuning.
func DefaultConfig() Config {
	return Config{
		SeedW0:        60000,
		Damping:       0.75,
		Tolerance:     1e-6,
		MaxIterations: 200,
		ReserveFactor: 1.06,
		Fractions:     DefaultSegmentFractions(),
	}
}

func (c Config) validate() error {
	if c.SeedW0 <= 0 {
		return &DomainError{Quantity: "seed gross weight", Value: c.SeedW0, Reason: "must be positive"}
	}
	if c.Damping <= 0 || c.Damping > 1 {
		return &DomainError{Quantity: "damping factor", Value: c.Damping, Reason: "must be in (0,1]"}
	}
	if c.Tolerance <= 0 {
		return &DomainError{Quantity: "convergence tolerance", Value: c.Tolerance, Reason: "must be positive"}
	}
	if c.MaxIterations <= 0 {
		return &DomainError{Quantity: "max iterations", Value: float64(c.MaxIterations), Reason: "must be positive"}
	}
	if c.ReserveFactor < 1 {
		return &DomainError{Quantity: "reserve factor", Value: c.ReserveFactor, Reason: "must be at least 1"}
	}
	return nil
}

// Solver sizes takeoff gross weight for a variant and mission profile.
type Solver struct {
	cfg Config
}

// NewSolver builds a solver, validating the configuration.
func NewSolver(cfg Config) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: cfg}, nil
}

// Config returns the solver tuning in use.
func (s *Solver) Config() Config { return s.cfg }

// Solve iterates W0 = (Wcrew + Wpayload) / (1 − Wf/W0 − We/W0) with damping
// until the relative change in W0 drops below the tolerance. Both the fuel
// fraction (a full mission walk) and the empty-weight fraction are
// re-evaluated at every iterate. A mission the airframe cannot fly at any
// weight the iteration visits yields an infeasible result, not an error;
// running out of iterations yields a ConvergenceError.
func (s *Solver) Solve(variant model.AircraftVariant, profile model.MissionProfile) (*model.SizingResult, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	fixed := variant.CrewWeight + variant.PayloadWeight
	w0 := s.cfg.SeedW0
	residual := math.Inf(1)

	for iter := 1; iter <= s.cfg.MaxIterations; iter++ {
		fuel, err := MissionFuelFraction(profile, variant, w0, s.cfg.ReserveFactor, s.cfg.Fractions)
		if err != nil {
			return nil, err
		}
		if fuel.Infeasibility != nil {
			return s.infeasibleResult(variant, w0, iter, fuel.Infeasibility)
		}

		weFrac, err := EmptyWeightFraction(w0, variant, variant.Engine.TotalThrust()/w0, w0/variant.WingArea)
		if err != nil {
			return nil, err
		}

		denom := 1.0 - fuel.FuelUsedFraction - weFrac
		if denom <= 0 {
			return s.infeasibleResult(variant, w0, iter, &model.InfeasibilityDiagnostic{
				Segment:    "weight_balance",
				Constraint: "fuel and empty weight fractions leave no payload capacity",
				Required:   fuel.FuelUsedFraction + weFrac,
				Achievable: 1.0,
				Shortfall:  fuel.FuelUsedFraction + weFrac - 1.0,
			})
		}

		computed := fixed / denom
		residual = computed - w0
		if math.Abs(residual)/w0 < s.cfg.Tolerance {
			return s.buildResult(variant, profile, computed, iter)
		}
		w0 += s.cfg.Damping * residual
	}

	return nil, &ConvergenceError{
		Iterations:   s.cfg.MaxIterations,
		LastGuess:    w0,
		LastResidual: residual,
	}
}

// EvaluateFixedW0 checks whether a fixed takeoff gross weight closes the
// weight equation for the variant and mission. The result's WeightMargin is
// W0 minus everything it must carry; a negative margin is reported as an
// infeasible result with the shortfall in the diagnostic.
func (s *Solver) EvaluateFixedW0(variant model.AircraftVariant, profile model.MissionProfile, w0 float64) (*model.SizingResult, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if w0 <= 0 {
		return nil, &DomainError{Quantity: "takeoff gross weight", Value: w0, Reason: "must be positive"}
	}

	fuel, err := MissionFuelFraction(profile, variant, w0, s.cfg.ReserveFactor, s.cfg.Fractions)
	if err != nil {
		return nil, err
	}
	if fuel.Infeasibility != nil {
		return s.infeasibleResult(variant, w0, 0, fuel.Infeasibility)
	}

	weFrac, err := EmptyWeightFraction(w0, variant, variant.Engine.TotalThrust()/w0, w0/variant.WingArea)
	if err != nil {
		return nil, err
	}

	res, err := s.assembleResult(variant, w0, weFrac, fuel)
	if err != nil {
		return nil, err
	}
	res.WeightMargin = w0 - res.We - res.Wf - variant.CrewWeight - variant.PayloadWeight
	if res.WeightMargin < 0 {
		res.Status = model.StatusInfeasible
		res.Infeasibility = &model.InfeasibilityDiagnostic{
			Segment:    "weight_balance",
			Constraint: "fixed takeoff weight cannot carry empty weight, fuel, crew and payload",
			Required:   res.We + res.Wf + variant.CrewWeight + variant.PayloadWeight,
			Achievable: w0,
			Shortfall:  -res.WeightMargin,
		}
	}
	return res, nil
}

// MaxFeasibleRange binary-searches the longest design range a fixed gross
// weight can fly, rebuilding the mission via build for each candidate range.
// When even loNM is infeasible it returns that evaluation and a zero range.
func (s *Solver) MaxFeasibleRange(variant model.AircraftVariant, w0 float64, build func(rangeNM float64) model.MissionProfile, loNM, hiNM, tolNM float64) (*model.SizingResult, float64, error) {
	if loNM <= 0 || hiNM <= loNM {
		return nil, 0, &DomainError{Quantity: "range bracket", Value: hiNM, Reason: "needs 0 < lo < hi"}
	}
	if tolNM <= 0 {
		tolNM = 1.0
	}

	lowRes, err := s.EvaluateFixedW0(variant, build(loNM), w0)
	if err != nil {
		return nil, 0, err
	}
	if !lowRes.Feasible() {
		return lowRes, 0, nil
	}

	hiRes, err := s.EvaluateFixedW0(variant, build(hiNM), w0)
	if err != nil {
		return nil, 0, err
	}
	if hiRes.Feasible() {
		return hiRes, hiNM, nil
	}

	best, bestRange := lowRes, loNM
	lo, hi := loNM, hiNM
	for hi-lo > tolNM {
		mid := 0.5 * (lo + hi)
		res, err := s.EvaluateFixedW0(variant, build(mid), w0)
		if err != nil {
			return nil, 0, err
		}
		if res.Feasible() {
			best, bestRange = res, mid
			lo = mid
		} else {
			hi = mid
		}
	}
	return best, bestRange, nil
}

// buildResult re-walks the mission at the converged weight so segment burns,
// the cruise L/D and the closure all reflect the final W0.
func (s *Solver) buildResult(variant model.AircraftVariant, profile model.MissionProfile, w0 float64, iterations int) (*model.SizingResult, error) {
	fuel, err := MissionFuelFraction(profile, variant, w0, s.cfg.ReserveFactor, s.cfg.Fractions)
	if err != nil {
		return nil, err
	}
	if fuel.Infeasibility != nil {
		return s.infeasibleResult(variant, w0, iterations, fuel.Infeasibility)
	}
	weFrac, err := EmptyWeightFraction(w0, variant, variant.Engine.TotalThrust()/w0, w0/variant.WingArea)
	if err != nil {
		return nil, err
	}
	res, err := s.assembleResult(variant, w0, weFrac, fuel)
	if err != nil {
		return nil, err
	}
	res.Iterations = iterations
	return res, nil
}

// assembleResult fills the common fields of a feasible evaluation at w0.
func (s *Solver) assembleResult(variant model.AircraftVariant, w0, weFrac float64, fuel MissionFuel) (*model.SizingResult, error) {
	cond, err := cruiseConditionsFor(variant)
	if err != nil {
		return nil, err
	}
	ldCruise, err := LiftToDrag(w0, cond.dynamicPressure, variant.WingArea,
		variant.CD0, variant.AspectRatio, variant.OswaldE)
	if err != nil {
		return nil, err
	}

	wf := fuel.FuelUsedFraction * w0
	we := weFrac * w0
	trip := tripFuel(fuel.Segments)
	res := &model.SizingResult{
		VariantName:    variant.Name,
		Status:         model.StatusConverged,
		W0:             w0,
		We:             we,
		Wf:             wf,
		CrewWeight:     variant.CrewWeight,
		PayloadWeight:  variant.PayloadWeight,
		WeFraction:     weFrac,
		WfFraction:     fuel.FuelUsedFraction,
		TripFuel:       trip,
		ReserveFuel:    wf - trip,
		ThrustToWeight: variant.Engine.TotalThrust() / w0,
		WingLoading:    w0 / variant.WingArea,
		LDCruise:       ldCruise,
		LDMax:          cond.ldMax,
		GrowthFactor:   w0 / variant.PayloadWeight,
		Segments:       fuel.Segments,
	}
	return res, nil
}

func (s *Solver) infeasibleResult(variant model.AircraftVariant, w0 float64, iterations int, diag *model.InfeasibilityDiagnostic) (*model.SizingResult, error) {
	return &model.SizingResult{
		VariantName:   variant.Name,
		Status:        model.StatusInfeasible,
		Iterations:    iterations,
		W0:            w0,
		CrewWeight:    variant.CrewWeight,
		PayloadWeight: variant.PayloadWeight,
		Infeasibility: diag,
	}, nil
}

// tripFuel sums segment burn through the attempted landing. Segments after
// it are reserve legs. A profile with no attempted landing is all trip.
func tripFuel(segments []model.SegmentResult) float64 {
	total := 0.0
	for _, seg := range segments {
		total += seg.FuelBurned
		if seg.Kind == model.SegmentAttemptedLanding {
			return total
		}
	}
	return total
}
