// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/conceptair/sizing-service/internal/sizing"
)

// SolverOverrides carries optional per-request solver tuning. Nil fields
// keep the server-configured value.
//
// @Description Optional solver tuning overrides
type SolverOverrides struct {
	// SeedW0 is the initial gross weight guess [lbs]
	SeedW0 *float64 `json:"seed_w0,omitempty" example:"60000"`
	// Damping is the fixed-point relaxation factor, in (0,1]
	Damping *float64 `json:"damping,omitempty" example:"0.75"`
	// Tolerance is the relative convergence tolerance
	Tolerance *float64 `json:"tolerance,omitempty" example:"0.000001"`
	// MaxIterations caps the solver iteration budget
	MaxIterations *int `json:"max_iterations,omitempty" example:"200"`
	// ReserveFactor scales mission fuel for reserves and trapped fuel
	ReserveFactor *float64 `json:"reserve_factor,omitempty" example:"1.06"`
} // @name SolverOverrides

// Apply layers the non-nil overrides on top of the base solver tuning.
func (o *SolverOverrides) Apply(base sizing.Config) sizing.Config {
	if o == nil {
		return base
	}
	if o.SeedW0 != nil {
		base.SeedW0 = *o.SeedW0
	}
	if o.Damping != nil {
		base.Damping = *o.Damping
	}
	if o.Tolerance != nil {
		base.Tolerance = *o.Tolerance
	}
	if o.MaxIterations != nil {
		base.MaxIterations = *o.MaxIterations
	}
	if o.ReserveFactor != nil {
		base.ReserveFactor = *o.ReserveFactor
	}
	return base
}

// SolveRequest represents the JSON request body for the design sizing
// endpoint. When Mission is omitted the FAR 121.645 international profile
// is built from the variant's design and alternate ranges.
//
// @Description Request to size a variant for takeoff gross weight
type SolveRequest struct {
	// Variant is the aircraft configuration to size
	Variant model.AircraftVariant `json:"variant" binding:"required"`
	// Mission optionally replaces the default international reserve profile
	Mission model.MissionProfile `json:"mission,omitempty"`
	// Solver optionally overrides solver tuning for this request
	Solver *SolverOverrides `json:"solver,omitempty"`
} // @name SolveRequest

// FixedW0Request represents the JSON request body for the fixed-W0 closure
// check endpoint.
//
// @Description Request to evaluate mission closure at a frozen gross weight
type FixedW0Request struct {
	// Variant is the aircraft configuration to evaluate
	Variant model.AircraftVariant `json:"variant" binding:"required"`
	// Mission optionally replaces the default international reserve profile
	Mission model.MissionProfile `json:"mission,omitempty"`
	// W0 is the frozen takeoff gross weight [lbs]
	W0 float64 `json:"w0" binding:"required,gt=0" example:"90000"`
} // @name FixedW0Request

// MaxRangeRequest represents the JSON request body for the max feasible
// range endpoint.
//
// @Description Request to find the longest feasible range at a frozen gross weight
type MaxRangeRequest struct {
	// Variant is the aircraft configuration to evaluate
	Variant model.AircraftVariant `json:"variant" binding:"required"`
	// W0 is the frozen takeoff gross weight [lbs]
	W0 float64 `json:"w0" binding:"required,gt=0" example:"80000"`
	// LoNM is the lower search bracket [nm]; defaults to 100
	LoNM float64 `json:"lo_nm,omitempty" example:"100"`
	// HiNM is the upper search bracket [nm]; defaults to 5000
	HiNM float64 `json:"hi_nm,omitempty" example:"5000"`
} // @name MaxRangeRequest

// SweepRequest represents the JSON request body for the range sensitivity
// sweep endpoint.
//
// @Description Request to size a variant across several design ranges
type SweepRequest struct {
	// Variant is the aircraft configuration to sweep
	Variant model.AircraftVariant `json:"variant" binding:"required"`
	// Ranges is the list of design ranges to size at [nm]
	Ranges []float64 `json:"ranges_nm" binding:"required,min=1" example:"1000,1850,2500"`
} // @name SweepRequest

// UpsertVariantRequest represents the JSON request body for storing a new
// active version of a catalog variant.
type UpsertVariantRequest struct {
	// Variant is the configuration to store
	Variant model.AircraftVariant `json:"variant" binding:"required"`
	// UpdatedBy is the identifier of who stored this configuration
	UpdatedBy string `json:"updated_by,omitempty"`
} // @name UpsertVariantRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrInvalidW0 is returned when w0 is not a positive weight.
	ErrInvalidW0 = &ValidationError{
		Field:   "w0",
		Message: "must be a positive weight in lbs",
	}
	// ErrInvalidBracket is returned when the range search bracket is inverted.
	ErrInvalidBracket = &ValidationError{
		Field:   "lo_nm",
		Message: "lower bracket must be positive and below hi_nm",
	}
	// ErrEmptySweep is returned when a sweep request has no ranges.
	ErrEmptySweep = &ValidationError{
		Field:   "ranges_nm",
		Message: "must contain at least one positive range",
	}
)

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Validate performs custom validation on the request.
func (r *SolveRequest) Validate() error {
	if err := r.Variant.Validate(); err != nil {
		return err
	}
	if len(r.Mission) > 0 {
		return r.Mission.Validate()
	}
	return nil
}

// Profile returns the requested mission, or the international reserve
// profile built from the variant when none was supplied.
func (r *SolveRequest) Profile() model.MissionProfile {
	if len(r.Mission) > 0 {
		return r.Mission
	}
	return model.InternationalProfile(r.Variant.DesignRange, r.Variant.AlternateRange)
}

// Validate performs custom validation on the request.
func (r *FixedW0Request) Validate() error {
	if r.W0 <= 0 {
		return ErrInvalidW0
	}
	if err := r.Variant.Validate(); err != nil {
		return err
	}
	if len(r.Mission) > 0 {
		return r.Mission.Validate()
	}
	return nil
}

// Profile returns the requested mission, or the international reserve
// profile built from the variant when none was supplied.
func (r *FixedW0Request) Profile() model.MissionProfile {
	if len(r.Mission) > 0 {
		return r.Mission
	}
	return model.InternationalProfile(r.Variant.DesignRange, r.Variant.AlternateRange)
}

// Validate performs custom validation and fills bracket defaults.
func (r *MaxRangeRequest) Validate() error {
	if r.W0 <= 0 {
		return ErrInvalidW0
	}
	if r.LoNM == 0 {
		r.LoNM = 100
	}
	if r.HiNM == 0 {
		r.HiNM = 5000
	}
	if r.LoNM <= 0 || r.LoNM >= r.HiNM {
		return ErrInvalidBracket
	}
	return r.Variant.Validate()
}

// Validate performs custom validation on the request.
func (r *SweepRequest) Validate() error {
	if len(r.Ranges) == 0 {
		return ErrEmptySweep
	}
	for _, rangeNM := range r.Ranges {
		if rangeNM <= 0 {
			return ErrEmptySweep
		}
	}
	return r.Variant.Validate()
}
