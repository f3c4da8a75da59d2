package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLiftToDrag evaluates the polar at the reference cruise condition
// (M 0.78 at 41,000 ft gives q = 158.99 psf).
func TestLiftToDrag(t *testing.T) {
	ld, err := LiftToDrag(86000, 158.99, 400, 0.02113, 10.8, 0.76)
	require.NoError(t, err)
	assert.InDelta(t, 14.69, ld, 0.01)
}

// TestLiftToDrag_WeightDependence verifies L/D improves as the aircraft
// burns down toward the optimum lift coefficient. At cruise wing loadings
// above the (L/D)max condition, less weight means a better ratio.
func TestLiftToDrag_WeightDependence(t *testing.T) {
	heavy, err := LiftToDrag(86000, 158.99, 400, 0.02113, 10.8, 0.76)
	require.NoError(t, err)
	light, err := LiftToDrag(70000, 158.99, 400, 0.02113, 10.8, 0.76)
	require.NoError(t, err)

	assert.Greater(t, light, heavy)

	ldMax := MaxLiftToDrag(0.02113, 10.8, 0.76)
	assert.Less(t, heavy, ldMax)
	assert.Less(t, light, ldMax)
}

// TestLiftToDrag_DomainErrors checks invalid physical inputs.
func TestLiftToDrag_DomainErrors(t *testing.T) {
	tests := []struct {
		name            string
		weight          float64
		dynamicPressure float64
		wingArea        float64
	}{
		{name: "zero weight", weight: 0, dynamicPressure: 158.99, wingArea: 400},
		{name: "zero dynamic pressure", weight: 86000, dynamicPressure: 0, wingArea: 400},
		{name: "negative wing area", weight: 86000, dynamicPressure: 158.99, wingArea: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LiftToDrag(tt.weight, tt.dynamicPressure, tt.wingArea, 0.02113, 10.8, 0.76)
			require.Error(t, err)
			var domainErr *DomainError
			assert.ErrorAs(t, err, &domainErr)
		})
	}
}

// TestMaxLiftToDrag checks the closed-form optimum.
func TestMaxLiftToDrag(t *testing.T) {
	assert.InDelta(t, 17.467, MaxLiftToDrag(0.02113, 10.8, 0.76), 0.001)

	// Cleaner airframe, better optimum.
	assert.Greater(t, MaxLiftToDrag(0.0180, 10.8, 0.76), MaxLiftToDrag(0.02113, 10.8, 0.76))
}
