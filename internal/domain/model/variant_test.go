package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVariant() AircraftVariant {
	return AircraftVariant{
		Name:            "Test Variant",
		PayloadWeight:   18055,
		CrewWeight:      1050,
		DesignRange:     1850,
		AlternateRange:  200,
		CD0:             0.02113,
		AspectRatio:     10.8,
		OswaldE:         0.76,
		WingArea:        400,
		CruiseMach:      0.78,
		CruiseAltitude:  41000,
		CompositeFactor: 0.97,
		Engine: Engine{
			Name:            "Reference Turbofan",
			TSFCCruise:      0.50,
			TSFCLoiter:      0.40,
			ThrustPerEngine: 15500,
			NumEngines:      2,
		},
	}
}

func TestAircraftVariant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AircraftVariant)
		wantErr string
	}{
		{
			name:   "valid variant",
			mutate: func(v *AircraftVariant) {},
		},
		{
			name:    "zero payload",
			mutate:  func(v *AircraftVariant) { v.PayloadWeight = 0 },
			wantErr: "payload_weight",
		},
		{
			name:    "negative crew weight",
			mutate:  func(v *AircraftVariant) { v.CrewWeight = -1 },
			wantErr: "crew_weight",
		},
		{
			name:    "zero parasite drag",
			mutate:  func(v *AircraftVariant) { v.CD0 = 0 },
			wantErr: "cd0",
		},
		{
			name:    "zero aspect ratio",
			mutate:  func(v *AircraftVariant) { v.AspectRatio = 0 },
			wantErr: "aspect_ratio",
		},
		{
			name:    "oswald efficiency above one",
			mutate:  func(v *AircraftVariant) { v.OswaldE = 1.5 },
			wantErr: "oswald_e",
		},
		{
			name:    "zero wing area",
			mutate:  func(v *AircraftVariant) { v.WingArea = 0 },
			wantErr: "wing_area",
		},
		{
			name:    "zero cruise mach",
			mutate:  func(v *AircraftVariant) { v.CruiseMach = 0 },
			wantErr: "cruise_mach",
		},
		{
			name:    "composite factor above one",
			mutate:  func(v *AircraftVariant) { v.CompositeFactor = 1.2 },
			wantErr: "composite_factor",
		},
		{
			name:    "no engines",
			mutate:  func(v *AircraftVariant) { v.Engine.NumEngines = 0 },
			wantErr: "thrust rating",
		},
		{
			name:    "zero cruise TSFC",
			mutate:  func(v *AircraftVariant) { v.Engine.TSFCCruise = 0 },
			wantErr: "TSFC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVariant()
			tt.mutate(&v)
			err := v.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAircraftVariant_Defaults(t *testing.T) {
	v := validVariant()

	assert.Equal(t, DefaultRegression(), v.RegressionOrDefault())
	assert.Equal(t, 1.0, v.KvsOrDefault())

	v.Regression = RegressionCoefficients{A: 1.02, C2: 0.4}
	assert.Equal(t, v.Regression, v.RegressionOrDefault())

	v.Kvs = 1.04
	assert.Equal(t, 1.04, v.KvsOrDefault())
}

func TestEngine_TotalThrust(t *testing.T) {
	e := Engine{ThrustPerEngine: 15500, NumEngines: 2}
	assert.Equal(t, 31000.0, e.TotalThrust())
}

func TestSizingResult_Feasible(t *testing.T) {
	converged := SizingResult{Status: StatusConverged}
	assert.True(t, converged.Feasible())

	infeasible := SizingResult{Status: StatusInfeasible}
	assert.False(t, infeasible.Feasible())
}

func TestSizingResult_MissionFuel(t *testing.T) {
	res := SizingResult{Segments: []SegmentResult{
		{FuelBurned: 1200.5},
		{FuelBurned: 300.25},
		{FuelBurned: 0},
	}}
	assert.InDelta(t, 1500.75, res.MissionFuel(), 1e-9)
}
