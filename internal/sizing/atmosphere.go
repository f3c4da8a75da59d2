// Package sizing implements conceptual-design takeoff weight estimation:
// a standard-atmosphere model, a drag-polar lift-to-drag estimator, a
// per-segment mission fuel-fraction calculator, an empirical empty-weight
// regression, and the damped fixed-point solver that ties them together.
package sizing

import (
	"math"

	"github.com/conceptair/sizing-service/internal/domain/model"
)

// Unit conversions and gas properties.
const (
	NMToFt   = 6076.115 // 1 nautical mile [ft]
	KtsToFps = 1.68781  // 1 knot [ft/s]
	GammaAir = 1.4
	RAir     = 1716.49 // gas constant for air [ft·lbf/(slug·°R)]
)

// Two-layer ISA constants.
const (
	seaLevelTemp     = 518.67   // [°R]
	seaLevelPressure = 2116.22  // [psf]
	seaLevelDensity  = 0.002377 // [slug/ft³]
	lapseRate        = 0.003566 // troposphere lapse [°R/ft]
	tropopauseAlt    = 36089.0  // [ft]
	// stratoDecay is the exponential pressure/density decay rate in the
	// isothermal lower stratosphere [1/ft].
	stratoDecay = -4.806e-5
	// maxAltitude is the validity ceiling of the two-layer approximation.
	maxAltitude = 65000.0
)

// Atmosphere returns ISA properties at a geometric altitude using the
// two-layer approximation: linear lapse with power-law pressure and density
// ratios below the tropopause, isothermal exponential decay above it.
// Altitudes outside [0, 65,000] ft are a DomainError.
func Atmosphere(altitudeFt float64) (model.AtmosphereState, error) {
	if altitudeFt < 0 {
		return model.AtmosphereState{}, &DomainError{Quantity: "altitude", Value: altitudeFt, Reason: "must be non-negative"}
	}
	if altitudeFt > maxAltitude {
		return model.AtmosphereState{}, &DomainError{Quantity: "altitude", Value: altitudeFt, Reason: "exceeds the 65,000 ft model ceiling"}
	}

	var temp, pressure, density float64
	if altitudeFt <= tropopauseAlt {
		temp = seaLevelTemp - lapseRate*altitudeFt
		ratio := temp / seaLevelTemp
		pressure = seaLevelPressure * math.Pow(ratio, 5.2561)
		density = seaLevelDensity * math.Pow(ratio, 4.2561)
	} else {
		tropoTemp := seaLevelTemp - lapseRate*tropopauseAlt
		ratio := tropoTemp / seaLevelTemp
		tropoPressure := seaLevelPressure * math.Pow(ratio, 5.2561)
		tropoDensity := seaLevelDensity * math.Pow(ratio, 4.2561)
		decay := math.Exp(stratoDecay * (altitudeFt - tropopauseAlt))
		temp = tropoTemp
		pressure = tropoPressure * decay
		density = tropoDensity * decay
	}

	return model.AtmosphereState{
		Altitude:     altitudeFt,
		Temperature:  temp,
		Pressure:     pressure,
		Density:      density,
		SpeedOfSound: math.Sqrt(GammaAir * RAir * temp),
	}, nil
}

// DynamicPressure returns q = ½·γ·P·M² [psf] at the given Mach and altitude.
func DynamicPressure(mach, altitudeFt float64) (float64, error) {
	if mach <= 0 {
		return 0, &DomainError{Quantity: "mach", Value: mach, Reason: "must be positive"}
	}
	atm, err := Atmosphere(altitudeFt)
	if err != nil {
		return 0, err
	}
	return 0.5 * GammaAir * atm.Pressure * mach * mach, nil
}
