package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptair/sizing-service/internal/catalog"
	"github.com/conceptair/sizing-service/internal/domain/model"
)

func TestSolveRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SolveRequest)
		wantErr bool
	}{
		{
			name:    "valid variant, default mission",
			mutate:  func(r *SolveRequest) {},
			wantErr: false,
		},
		{
			name: "invalid variant",
			mutate: func(r *SolveRequest) {
				r.Variant.CD0 = 0
			},
			wantErr: true,
		},
		{
			name: "explicit valid mission",
			mutate: func(r *SolveRequest) {
				r.Mission = model.InternationalProfile(1200, 200)
			},
			wantErr: false,
		},
		{
			name: "mission with unknown segment kind",
			mutate: func(r *SolveRequest) {
				r.Mission = model.MissionProfile{{Name: "Bad", Kind: "teleport"}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SolveRequest{Variant: catalog.Builtin()[0]}
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSolveRequest_Profile(t *testing.T) {
	t.Run("default international profile", func(t *testing.T) {
		req := SolveRequest{Variant: catalog.Builtin()[0]}
		profile := req.Profile()
		require.Len(t, profile, 9)
		assert.Equal(t, req.Variant.DesignRange, profile.CruiseRange())
	})

	t.Run("explicit mission wins", func(t *testing.T) {
		custom := model.InternationalProfile(999, 150)
		req := SolveRequest{Variant: catalog.Builtin()[0], Mission: custom}
		assert.Equal(t, 999.0, req.Profile().CruiseRange())
	})
}

func TestFixedW0Request_Validate(t *testing.T) {
	tests := []struct {
		name    string
		w0      float64
		wantErr error
	}{
		{name: "valid", w0: 90000},
		{name: "zero weight", w0: 0, wantErr: ErrInvalidW0},
		{name: "negative weight", w0: -100, wantErr: ErrInvalidW0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := FixedW0Request{Variant: catalog.Builtin()[0], W0: tt.w0}
			err := req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaxRangeRequest_Validate(t *testing.T) {
	t.Run("defaults fill empty bracket", func(t *testing.T) {
		req := MaxRangeRequest{Variant: catalog.Builtin()[0], W0: 80000}
		require.NoError(t, req.Validate())
		assert.Equal(t, 100.0, req.LoNM)
		assert.Equal(t, 5000.0, req.HiNM)
	})

	t.Run("inverted bracket rejected", func(t *testing.T) {
		req := MaxRangeRequest{Variant: catalog.Builtin()[0], W0: 80000, LoNM: 3000, HiNM: 500}
		assert.ErrorIs(t, req.Validate(), ErrInvalidBracket)
	})

	t.Run("missing weight rejected", func(t *testing.T) {
		req := MaxRangeRequest{Variant: catalog.Builtin()[0]}
		assert.ErrorIs(t, req.Validate(), ErrInvalidW0)
	})
}

func TestSweepRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ranges  []float64
		wantErr error
	}{
		{name: "valid sweep", ranges: []float64{1000, 1850, 2500}},
		{name: "empty sweep", ranges: nil, wantErr: ErrEmptySweep},
		{name: "non-positive range", ranges: []float64{1000, -5}, wantErr: ErrEmptySweep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := SweepRequest{Variant: catalog.Builtin()[0], Ranges: tt.ranges}
			err := req.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "w0: must be a positive weight in lbs", ErrInvalidW0.Error())
}
