package model

// SizingStatus is the terminal outcome of a solver invocation.
type SizingStatus string

const (
	// StatusConverged means the weight balance closed within tolerance.
	StatusConverged SizingStatus = "converged"
	// StatusInfeasible means the mission cannot be flown at the given
	// weight/performance combination. Infeasibility is a first-class
	// result, not an error.
	StatusInfeasible SizingStatus = "infeasible"
)

// InfeasibilityDiagnostic describes which constraint first failed and by
// how much.
//
// @Description Diagnostic for an infeasible sizing outcome
type InfeasibilityDiagnostic struct {
	// Segment names the mission segment that failed, or "weight_balance"
	// when the closure equation itself has no solution
	Segment string `json:"segment" example:"weight_balance"`
	// Constraint describes the violated constraint
	Constraint string `json:"constraint" example:"empty and fuel fractions consume the whole takeoff weight"`
	// Required is the value the mission demands
	Required float64 `json:"required" example:"1.02"`
	// Achievable is the value actually available
	Achievable float64 `json:"achievable" example:"1.0"`
	// Shortfall is required minus achievable, in the constraint's units
	Shortfall float64 `json:"shortfall" example:"0.02"`
} // @name InfeasibilityDiagnostic

// SegmentResult is the evaluated fuel fraction of one mission segment.
//
// @Description Per-segment weight fraction and fuel burn
type SegmentResult struct {
	Name string      `json:"name" example:"Cruise to Destination (1850 nm)"`
	Kind SegmentKind `json:"kind" example:"cruise"`
	// WeightFraction is Wi/Wi-1 for this segment
	WeightFraction float64 `json:"weight_fraction" example:"0.8725"`
	// FuelBurned is the fuel consumed in this segment [lbs]
	FuelBurned float64 `json:"fuel_burned" example:"10981"`
	// CruiseTimeMin is the segment duration for cruise segments [min]
	CruiseTimeMin float64 `json:"cruise_time_min,omitempty" example:"248.2"`
	// LDUsed is the lift-to-drag ratio used, for Breguet segments
	LDUsed float64 `json:"ld_used,omitempty" example:"14.7"`
} // @name SegmentResult

// SizingResult is the immutable output of one sizing solve. For a converged
// result, W0 = We + Wf + crew + payload within the solver tolerance.
//
// @Description Complete sizing output for one variant
type SizingResult struct {
	VariantName string       `json:"variant_name" example:"NA Variant (Composite)"`
	Status      SizingStatus `json:"status" example:"converged"`
	// Iterations is the iteration count at convergence (zero in fixed-W0
	// mode, which does not iterate)
	Iterations int `json:"iterations" example:"7"`

	// W0 is the takeoff gross weight [lbs]
	W0 float64 `json:"w0" example:"85913"`
	// We is the empty weight [lbs]
	We float64 `json:"we" example:"46363"`
	// Wf is the total fuel weight including reserves [lbs]
	Wf            float64 `json:"wf" example:"20707"`
	CrewWeight    float64 `json:"crew_weight" example:"1050"`
	PayloadWeight float64 `json:"payload_weight" example:"18055"`

	WeFraction float64 `json:"we_fraction" example:"0.5397"`
	WfFraction float64 `json:"wf_fraction" example:"0.2410"`

	// TripFuel is the burn through the attempted landing [lbs]
	TripFuel float64 `json:"trip_fuel" example:"15200"`
	// ReserveFuel is total fuel minus trip fuel [lbs]
	ReserveFuel float64 `json:"reserve_fuel" example:"5507"`

	ThrustToWeight float64 `json:"thrust_to_weight" example:"0.360"`
	// WingLoading is W0/S at takeoff [psf]
	WingLoading float64 `json:"wing_loading" example:"214.8"`
	LDCruise    float64 `json:"ld_cruise" example:"14.72"`
	LDMax       float64 `json:"ld_max" example:"15.9"`
	// GrowthFactor is W0 per pound of payload
	GrowthFactor float64 `json:"growth_factor" example:"4.76"`

	// WeightMargin is the closure surplus in fixed-W0 mode [lbs];
	// positive means the mission closes
	WeightMargin float64 `json:"weight_margin,omitempty" example:"1250"`

	Segments []SegmentResult `json:"segments"`

	// Infeasibility is set when Status is infeasible
	Infeasibility *InfeasibilityDiagnostic `json:"infeasibility,omitempty"`
} // @name SizingResult

// Feasible reports whether the result represents a closed mission.
func (r *SizingResult) Feasible() bool {
	return r.Status == StatusConverged
}

// MissionFuel returns the fuel burned over the mission before the
// reserve/trapped margin [lbs].
func (r *SizingResult) MissionFuel() float64 {
	var total float64
	for _, s := range r.Segments {
		total += s.FuelBurned
	}
	return total
}
