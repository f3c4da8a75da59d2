package sizing

import (
	"math"

	"github.com/conceptair/sizing-service/internal/domain/model"
)

// SegmentFractions holds the fixed empirical weight fractions for the
// non-Breguet segment kinds. The defaults are published historical values
// for jet transports; they are configuration, not derived.
type SegmentFractions struct {
	WarmupTakeoff float64
	Descent       float64
	Landing       float64
}

// DefaultSegmentFractions returns the published jet-transport values.
func DefaultSegmentFractions() SegmentFractions {
	return SegmentFractions{
		WarmupTakeoff: 0.970,
		Descent:       0.990,
		Landing:       0.995,
	}
}

// ClimbFraction returns the climb-and-accelerate weight fraction for a
// subsonic acceleration from M 0.1 (post takeoff) to machEnd:
//
//	Wi/Wi-1 = (1.0065 - 0.0325·machEnd) / (1.0065 - 0.0325·0.1)
func ClimbFraction(machEnd float64) float64 {
	return (1.0065 - 0.0325*machEnd) / (1.0065 - 0.0325*0.1)
}

// CruiseFraction returns the Breguet range weight fraction for a jet:
// exp(−R·C/(V·L/D)), with R in ft, C per second, V in ft/s.
func CruiseFraction(rangeNM, tsfcPerHr, velocityFps, liftToDrag float64) float64 {
	rangeFt := rangeNM * NMToFt
	cPerSec := tsfcPerHr / 3600.0
	return math.Exp(-rangeFt * cPerSec / (velocityFps * liftToDrag))
}

// LoiterFraction returns the Breguet endurance weight fraction for a jet:
// exp(−E·C/(L/D)), with E in seconds and C per second.
func LoiterFraction(enduranceMin, tsfcPerHr, liftToDrag float64) float64 {
	enduranceSec := enduranceMin * 60.0
	cPerSec := tsfcPerHr / 3600.0
	return math.Exp(-enduranceSec * cPerSec / liftToDrag)
}

// cruiseConditions are the flight-condition constants of a variant's cruise
// leg, computed once per solve from the atmosphere model.
type cruiseConditions struct {
	velocityFps     float64
	dynamicPressure float64
	ldMax           float64
}

func cruiseConditionsFor(variant model.AircraftVariant) (cruiseConditions, error) {
	atm, err := Atmosphere(variant.CruiseAltitude)
	if err != nil {
		return cruiseConditions{}, err
	}
	q, err := DynamicPressure(variant.CruiseMach, variant.CruiseAltitude)
	if err != nil {
		return cruiseConditions{}, err
	}
	return cruiseConditions{
		velocityFps:     variant.CruiseMach * atm.SpeedOfSound,
		dynamicPressure: q,
		ldMax:           MaxLiftToDrag(variant.CD0, variant.AspectRatio, variant.OswaldE),
	}, nil
}

// MissionFuel is the outcome of one mission walk at a given gross weight.
type MissionFuel struct {
	// Segments holds the per-segment fractions and fuel burn, in order.
	Segments []model.SegmentResult
	// FinalFraction is the chained product of all segment fractions.
	FinalFraction float64
	// FuelUsedFraction is (1 − FinalFraction) scaled by the reserve and
	// trapped-fuel margin.
	FuelUsedFraction float64
	// Infeasibility is set when a segment's fraction leaves (0,1); the
	// mission cannot be flown at this weight. Not an error.
	Infeasibility *model.InfeasibilityDiagnostic
}

// MissionFuelFraction walks the ordered profile at grossWeight, chaining
// each segment's weight fraction against the weight remaining after the
// previous segment. Cruise segments evaluate the drag polar at the current
// running weight, not at W0; loiter segments fly at max L/D with the loiter
// TSFC. A contingency loiter with no explicit endurance is sized from the
// cruise time flown so far.
func MissionFuelFraction(profile model.MissionProfile, variant model.AircraftVariant, grossWeight, reserveFactor float64, fractions SegmentFractions) (MissionFuel, error) {
	if grossWeight <= 0 {
		return MissionFuel{}, &DomainError{Quantity: "gross weight", Value: grossWeight, Reason: "must be positive"}
	}

	cond, err := cruiseConditionsFor(variant)
	if err != nil {
		return MissionFuel{}, err
	}

	running := 1.0
	cruiseTimeMin := 0.0
	segments := make([]model.SegmentResult, 0, len(profile))

	for _, seg := range profile {
		result := model.SegmentResult{Name: seg.Name, Kind: seg.Kind}

		var fraction float64
		switch {
		case seg.Kind.IsCruise():
			ld, ldErr := LiftToDrag(grossWeight*running, cond.dynamicPressure, variant.WingArea,
				variant.CD0, variant.AspectRatio, variant.OswaldE)
			if ldErr != nil {
				return MissionFuel{}, ldErr
			}
			fraction = CruiseFraction(seg.RangeNM, variant.Engine.TSFCCruise, cond.velocityFps, ld)
			segTimeMin := seg.RangeNM * NMToFt / cond.velocityFps / 60.0
			cruiseTimeMin += segTimeMin
			result.CruiseTimeMin = segTimeMin
			result.LDUsed = ld

		case seg.Kind.IsLoiter():
			endurance := seg.EnduranceMin
			if endurance <= 0 {
				endurance = seg.ContingencyFraction * cruiseTimeMin
			}
			fraction = LoiterFraction(endurance, variant.Engine.TSFCLoiter, cond.ldMax)
			result.CruiseTimeMin = endurance
			result.LDUsed = cond.ldMax

		case seg.WeightFraction > 0:
			fraction = seg.WeightFraction

		case seg.Kind.IsClimb():
			fraction = ClimbFraction(variant.CruiseMach)

		case seg.Kind == model.SegmentWarmupTakeoff:
			fraction = fractions.WarmupTakeoff

		case seg.Kind == model.SegmentDescent:
			fraction = fractions.Descent

		default: // attempted landing, land
			fraction = fractions.Landing
		}

		if fraction <= 0 || fraction >= 1 {
			return MissionFuel{
				Segments: segments,
				Infeasibility: &model.InfeasibilityDiagnostic{
					Segment:    seg.Name,
					Constraint: "segment weight fraction must lie strictly inside (0,1)",
					Required:   fraction,
					Achievable: 1.0,
					Shortfall:  fraction - 1.0,
				},
			}, nil
		}

		result.WeightFraction = fraction
		result.FuelBurned = grossWeight * running * (1.0 - fraction)
		running *= fraction
		segments = append(segments, result)
	}

	return MissionFuel{
		Segments:         segments,
		FinalFraction:    running,
		FuelUsedFraction: reserveFactor * (1.0 - running),
	}, nil
}
