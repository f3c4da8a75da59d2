package sizing

import (
	"testing"

	"github.com/conceptair/sizing-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEmptyWeightFraction checks the jet-transport fit at a reference point.
func TestEmptyWeightFraction(t *testing.T) {
	variant := testVariant()

	w0 := 86000.0
	frac, err := EmptyWeightFraction(w0, variant, variant.Engine.TotalThrust()/w0, w0/variant.WingArea)
	require.NoError(t, err)
	assert.InDelta(t, 0.53846, frac, 0.0001)
}

// TestEmptyWeightFraction_CompositeScaling verifies the structure factor
// scales the fraction linearly.
func TestEmptyWeightFraction_CompositeScaling(t *testing.T) {
	composite := testVariant()
	metal := testVariant()
	metal.CompositeFactor = 1.0

	w0 := 86000.0
	tw := composite.Engine.TotalThrust() / w0
	ws := w0 / composite.WingArea

	fracComposite, err := EmptyWeightFraction(w0, composite, tw, ws)
	require.NoError(t, err)
	fracMetal, err := EmptyWeightFraction(w0, metal, tw, ws)
	require.NoError(t, err)

	assert.InDelta(t, fracMetal*0.97, fracComposite, 1e-9)
}

// TestEmptyWeightFraction_WeightTrend verifies the fraction shrinks with
// gross weight (C1 is negative): bigger aircraft are structurally more
// efficient.
func TestEmptyWeightFraction_WeightTrend(t *testing.T) {
	variant := testVariant()
	tw := 0.36
	ws := 215.0

	small, err := EmptyWeightFraction(60000, variant, tw, ws)
	require.NoError(t, err)
	large, err := EmptyWeightFraction(120000, variant, tw, ws)
	require.NoError(t, err)

	assert.Less(t, large, small)
}

// TestEmptyWeightFraction_CustomCoefficients verifies a variant-supplied fit
// overrides the default.
func TestEmptyWeightFraction_CustomCoefficients(t *testing.T) {
	variant := testVariant()
	variant.CompositeFactor = 1.0
	variant.Regression = model.RegressionCoefficients{A: 0.5}

	frac, err := EmptyWeightFraction(86000, variant, 0.36, 215.0)
	require.NoError(t, err)
	// All exponents zero: the fraction is just A.
	assert.InDelta(t, 0.5, frac, 1e-12)
}

// TestEmptyWeightFraction_DomainErrors checks invalid inputs.
func TestEmptyWeightFraction_DomainErrors(t *testing.T) {
	variant := testVariant()

	tests := []struct {
		name           string
		grossWeight    float64
		thrustToWeight float64
		wingLoading    float64
	}{
		{name: "zero gross weight", grossWeight: 0, thrustToWeight: 0.36, wingLoading: 215},
		{name: "zero thrust loading", grossWeight: 86000, thrustToWeight: 0, wingLoading: 215},
		{name: "negative wing loading", grossWeight: 86000, thrustToWeight: 0.36, wingLoading: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EmptyWeightFraction(tt.grossWeight, variant, tt.thrustToWeight, tt.wingLoading)
			require.Error(t, err)
			var domainErr *DomainError
			assert.ErrorAs(t, err, &domainErr)
		})
	}
}
