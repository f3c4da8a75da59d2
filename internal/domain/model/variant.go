package model

import "fmt"

// RegressionCoefficients holds the empirical empty-weight power-law fit
//
//	We/W0 = A · W0^C1 · AR^C2 · (T/W0)^C3 · (W0/S)^C4 · Mmax^C5 · Kvs
//
// The values are published regression data (Raymer Table 6.1, jet
// transport), supplied as configuration rather than computed.
type RegressionCoefficients struct {
	A  float64 `json:"a" bson:"a" yaml:"a"`
	C1 float64 `json:"c1" bson:"c1" yaml:"c1"`
	C2 float64 `json:"c2" bson:"c2" yaml:"c2"`
	C3 float64 `json:"c3" bson:"c3" yaml:"c3"`
	C4 float64 `json:"c4" bson:"c4" yaml:"c4"`
	C5 float64 `json:"c5" bson:"c5" yaml:"c5"`
} // @name RegressionCoefficients

// DefaultRegression returns the jet-transport coefficients.
func DefaultRegression() RegressionCoefficients {
	return RegressionCoefficients{A: 0.869, C1: -0.037, C2: 0.398, C3: 0.100, C4: -0.161, C5: 0.050}
}

// IsZero reports whether no coefficients have been set.
func (r RegressionCoefficients) IsZero() bool {
	return r == RegressionCoefficients{}
}

// AircraftVariant is the complete configuration of one aircraft variant.
// Variants are immutable once configured and read-only to the solver.
//
// @Description Aircraft variant configuration for conceptual sizing
type AircraftVariant struct {
	// Name identifies the variant
	Name string `json:"name" bson:"name" yaml:"name" example:"NA Variant (Composite)"`
	// PayloadWeight is passengers plus cargo [lbs]
	PayloadWeight float64 `json:"payload_weight" bson:"payload_weight" yaml:"payload_weight" example:"18055"`
	// CrewWeight is flight plus cabin crew including bags [lbs]
	CrewWeight float64 `json:"crew_weight" bson:"crew_weight" yaml:"crew_weight" example:"1050"`
	// DesignRange is the still-air design range [nm]
	DesignRange float64 `json:"design_range_nm" bson:"design_range_nm" yaml:"design_range_nm" example:"1850"`
	// AlternateRange is the diversion distance to the alternate [nm]
	AlternateRange float64 `json:"alternate_range_nm" bson:"alternate_range_nm" yaml:"alternate_range_nm" example:"200"`
	// CD0 is the zero-lift drag coefficient
	CD0 float64 `json:"cd0" bson:"cd0" yaml:"cd0" example:"0.02113"`
	// AspectRatio is the wing aspect ratio
	AspectRatio float64 `json:"aspect_ratio" bson:"aspect_ratio" yaml:"aspect_ratio" example:"10.8"`
	// OswaldE is the span efficiency factor
	OswaldE float64 `json:"oswald_e" bson:"oswald_e" yaml:"oswald_e" example:"0.76"`
	// WingArea is the reference wing area [ft²]
	WingArea float64 `json:"wing_area_ft2" bson:"wing_area_ft2" yaml:"wing_area_ft2" example:"400"`
	// MachMax is the maximum operating Mach number
	MachMax float64 `json:"mach_max" bson:"mach_max" yaml:"mach_max" example:"0.85"`
	// CruiseMach is the cruise Mach number
	CruiseMach float64 `json:"cruise_mach" bson:"cruise_mach" yaml:"cruise_mach" example:"0.78"`
	// CruiseAltitude is the cruise altitude [ft]
	CruiseAltitude float64 `json:"cruise_altitude_ft" bson:"cruise_altitude_ft" yaml:"cruise_altitude_ft" example:"41000"`
	// CompositeFactor scales empty weight for composite structure
	// (1.0 = all-metal, <1.0 = composite benefit)
	CompositeFactor float64 `json:"composite_factor" bson:"composite_factor" yaml:"composite_factor" example:"0.97"`
	// Kvs is 1.00 for fixed sweep, 1.04 for variable sweep
	Kvs float64 `json:"kvs,omitempty" bson:"kvs,omitempty" yaml:"kvs,omitempty" example:"1.0"`
	// Engine is the fixed engine for this variant
	Engine Engine `json:"engine" bson:"engine" yaml:"engine"`
	// Regression overrides the empty-weight fit coefficients; zero value
	// selects the jet-transport defaults
	Regression RegressionCoefficients `json:"regression,omitempty" bson:"regression,omitempty" yaml:"regression,omitempty"`
} // @name AircraftVariant

// RegressionOrDefault returns the variant's coefficients, falling back to
// the published jet-transport fit when none are configured.
func (v AircraftVariant) RegressionOrDefault() RegressionCoefficients {
	if v.Regression.IsZero() {
		return DefaultRegression()
	}
	return v.Regression
}

// KvsOrDefault returns the variable-sweep factor, defaulting to fixed sweep.
func (v AircraftVariant) KvsOrDefault() float64 {
	if v.Kvs == 0 {
		return 1.0
	}
	return v.Kvs
}

// Validate checks that the variant is physically configurable.
func (v AircraftVariant) Validate() error {
	switch {
	case v.PayloadWeight <= 0:
		return fmt.Errorf("variant %q: payload_weight must be positive", v.Name)
	case v.CrewWeight < 0:
		return fmt.Errorf("variant %q: crew_weight must be non-negative", v.Name)
	case v.CD0 <= 0:
		return fmt.Errorf("variant %q: cd0 must be positive", v.Name)
	case v.AspectRatio <= 0:
		return fmt.Errorf("variant %q: aspect_ratio must be positive", v.Name)
	case v.OswaldE <= 0 || v.OswaldE > 1:
		return fmt.Errorf("variant %q: oswald_e must be in (0,1]", v.Name)
	case v.WingArea <= 0:
		return fmt.Errorf("variant %q: wing_area_ft2 must be positive", v.Name)
	case v.CruiseMach <= 0:
		return fmt.Errorf("variant %q: cruise_mach must be positive", v.Name)
	case v.CompositeFactor <= 0 || v.CompositeFactor > 1:
		return fmt.Errorf("variant %q: composite_factor must be in (0,1]", v.Name)
	case v.Engine.ThrustPerEngine <= 0 || v.Engine.NumEngines <= 0:
		return fmt.Errorf("variant %q: engine thrust rating must be positive", v.Name)
	case v.Engine.TSFCCruise <= 0 || v.Engine.TSFCLoiter <= 0:
		return fmt.Errorf("variant %q: engine TSFC must be positive", v.Name)
	}
	return nil
}
