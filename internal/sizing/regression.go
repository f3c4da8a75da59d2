package sizing

import (
	"math"

	"github.com/conceptair/sizing-service/internal/domain/model"
)

// EmptyWeightFraction evaluates the empirical power-law fit
//
//	We/W0 = A · W0^C1 · AR^C2 · (T/W0)^C3 · (W0/S)^C4 · Mmax^C5 · Kvs
//
// scaled by the variant's composite factor. The gross weight is itself the
// unknown being solved for, so the solver re-evaluates this at every
// iteration with the current guess.
func EmptyWeightFraction(grossWeight float64, variant model.AircraftVariant, thrustToWeight, wingLoading float64) (float64, error) {
	if grossWeight <= 0 {
		return 0, &DomainError{Quantity: "gross weight", Value: grossWeight, Reason: "must be positive"}
	}
	if thrustToWeight <= 0 {
		return 0, &DomainError{Quantity: "thrust-to-weight", Value: thrustToWeight, Reason: "must be positive"}
	}
	if wingLoading <= 0 {
		return 0, &DomainError{Quantity: "wing loading", Value: wingLoading, Reason: "must be positive"}
	}

	c := variant.RegressionOrDefault()
	fraction := c.A *
		math.Pow(grossWeight, c.C1) *
		math.Pow(variant.AspectRatio, c.C2) *
		math.Pow(thrustToWeight, c.C3) *
		math.Pow(wingLoading, c.C4) *
		math.Pow(variant.MachMax, c.C5) *
		variant.KvsOrDefault() *
		variant.CompositeFactor
	return fraction, nil
}
