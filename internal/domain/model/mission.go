package model

import "fmt"

// SegmentKind is the closed set of mission segment kinds. The set is fixed
// by the FAR 121.645 reserve mission definition; each kind maps to one fuel
// fraction evaluation rule.
type SegmentKind string

const (
	SegmentWarmupTakeoff     SegmentKind = "warmup_takeoff"
	SegmentClimb             SegmentKind = "climb"
	SegmentCruise            SegmentKind = "cruise"
	SegmentLoiterContingency SegmentKind = "loiter_contingency"
	SegmentDescent           SegmentKind = "descent"
	SegmentAttemptedLanding  SegmentKind = "attempted_landing"
	SegmentGoAround          SegmentKind = "go_around"
	SegmentClimbToAlternate  SegmentKind = "climb_to_alternate"
	SegmentDivertCruise      SegmentKind = "divert_cruise"
	SegmentRegulatoryHold    SegmentKind = "regulatory_hold"
	SegmentLand              SegmentKind = "land"
)

// segmentKinds is the closed membership set used for validation.
var segmentKinds = map[SegmentKind]bool{
	SegmentWarmupTakeoff:     true,
	SegmentClimb:             true,
	SegmentCruise:            true,
	SegmentLoiterContingency: true,
	SegmentDescent:           true,
	SegmentAttemptedLanding:  true,
	SegmentGoAround:          true,
	SegmentClimbToAlternate:  true,
	SegmentDivertCruise:      true,
	SegmentRegulatoryHold:    true,
	SegmentLand:              true,
}

// IsCruise reports whether the kind is evaluated with the Breguet range
// equation.
func (k SegmentKind) IsCruise() bool {
	return k == SegmentCruise || k == SegmentDivertCruise
}

// IsLoiter reports whether the kind is evaluated with the Breguet endurance
// equation.
func (k SegmentKind) IsLoiter() bool {
	return k == SegmentLoiterContingency || k == SegmentRegulatoryHold
}

// IsClimb reports whether the kind defaults to the subsonic climb and
// accelerate fraction.
func (k SegmentKind) IsClimb() bool {
	return k == SegmentClimb || k == SegmentGoAround || k == SegmentClimbToAlternate
}

// MissionSegment is one leg of a mission profile.
//
// @Description Single mission segment definition
type MissionSegment struct {
	// Name labels the segment in results
	Name string `json:"name" bson:"name" yaml:"name" example:"Cruise to Destination"`
	// Kind selects the fuel fraction evaluation rule
	Kind SegmentKind `json:"kind" bson:"kind" yaml:"kind" example:"cruise"`
	// WeightFraction overrides the kind's default Wi/Wi-1 when positive
	WeightFraction float64 `json:"weight_fraction,omitempty" bson:"weight_fraction,omitempty" yaml:"weight_fraction,omitempty"`
	// RangeNM is the segment range for cruise-type segments [nm]
	RangeNM float64 `json:"range_nm,omitempty" bson:"range_nm,omitempty" yaml:"range_nm,omitempty" example:"1850"`
	// EnduranceMin is the loiter duration for loiter-type segments [min]
	EnduranceMin float64 `json:"endurance_min,omitempty" bson:"endurance_min,omitempty" yaml:"endurance_min,omitempty" example:"30"`
	// ContingencyFraction sizes a contingency loiter as a fraction of the
	// cruise time flown so far, when EnduranceMin is zero
	ContingencyFraction float64 `json:"contingency_fraction,omitempty" bson:"contingency_fraction,omitempty" yaml:"contingency_fraction,omitempty" example:"0.10"`
} // @name MissionSegment

// MissionProfile is an ordered sequence of mission segments. Order is
// significant: each segment's fraction is applied against the weight
// remaining after the previous segment.
type MissionProfile []MissionSegment

// Validate checks segment kinds and kind-specific parameters.
func (p MissionProfile) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("mission profile has no segments")
	}
	sawCruise := false
	for i, seg := range p {
		if !segmentKinds[seg.Kind] {
			return fmt.Errorf("segment %d (%s): unknown kind %q", i, seg.Name, seg.Kind)
		}
		if seg.Kind.IsCruise() && seg.RangeNM <= 0 {
			return fmt.Errorf("segment %d (%s): cruise segment needs a positive range", i, seg.Name)
		}
		if seg.Kind.IsCruise() {
			sawCruise = true
		}
		if seg.Kind.IsLoiter() && seg.EnduranceMin <= 0 {
			if seg.ContingencyFraction <= 0 {
				return fmt.Errorf("segment %d (%s): loiter segment needs an endurance or contingency fraction", i, seg.Name)
			}
			// A contingency loiter scales the accumulated cruise time, so
			// it must come after at least one cruise segment.
			if !sawCruise {
				return fmt.Errorf("segment %d (%s): contingency loiter needs a preceding cruise segment", i, seg.Name)
			}
		}
		if seg.WeightFraction < 0 || (seg.WeightFraction >= 1 && seg.WeightFraction != 0) {
			return fmt.Errorf("segment %d (%s): weight fraction override must be in (0,1)", i, seg.Name)
		}
	}
	return nil
}

// CruiseRange returns the range of the first cruise segment, or zero. The
// design-range sweep rewrites this segment.
func (p MissionProfile) CruiseRange() float64 {
	for _, seg := range p {
		if seg.Kind == SegmentCruise {
			return seg.RangeNM
		}
	}
	return 0
}

// InternationalProfile builds the FAR 121.645 international reserve mission:
// warmup and takeoff, climb, cruise to destination, 10% contingency loiter,
// attempted landing, go-around climb, divert to alternate, 30 minute
// regulatory hold, land. Trip fuel is the burn through the attempted
// landing; everything after is reserve.
func InternationalProfile(rangeNM, alternateNM float64) MissionProfile {
	return MissionProfile{
		{Name: "Warmup & Takeoff", Kind: SegmentWarmupTakeoff},
		{Name: "Climb & Accelerate", Kind: SegmentClimb},
		{Name: fmt.Sprintf("Cruise to Destination (%.0f nm)", rangeNM), Kind: SegmentCruise, RangeNM: rangeNM},
		{Name: "Contingency Loiter (10% cruise time)", Kind: SegmentLoiterContingency, ContingencyFraction: 0.10},
		{Name: "Attempt Landing", Kind: SegmentAttemptedLanding},
		{Name: "Climb (go-around)", Kind: SegmentGoAround},
		{Name: fmt.Sprintf("Divert to Alternate (%.0f nm)", alternateNM), Kind: SegmentDivertCruise, RangeNM: alternateNM},
		{Name: "Regulatory Hold (30 min)", Kind: SegmentRegulatoryHold, EnduranceMin: 30},
		{Name: "Land", Kind: SegmentLand},
	}
}
