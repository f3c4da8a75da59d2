package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentKindClassification(t *testing.T) {
	tests := []struct {
		kind     SegmentKind
		isCruise bool
		isLoiter bool
		isClimb  bool
	}{
		{SegmentWarmupTakeoff, false, false, false},
		{SegmentClimb, false, false, true},
		{SegmentCruise, true, false, false},
		{SegmentLoiterContingency, false, true, false},
		{SegmentDescent, false, false, false},
		{SegmentAttemptedLanding, false, false, false},
		{SegmentGoAround, false, false, true},
		{SegmentClimbToAlternate, false, false, true},
		{SegmentDivertCruise, true, false, false},
		{SegmentRegulatoryHold, false, true, false},
		{SegmentLand, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.isCruise, tt.kind.IsCruise())
			assert.Equal(t, tt.isLoiter, tt.kind.IsLoiter())
			assert.Equal(t, tt.isClimb, tt.kind.IsClimb())
		})
	}
}

func TestMissionProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile MissionProfile
		wantErr string
	}{
		{
			name:    "international reserve profile is valid",
			profile: InternationalProfile(1850, 200),
		},
		{
			name:    "empty profile",
			profile: MissionProfile{},
			wantErr: "no segments",
		},
		{
			name: "unknown segment kind",
			profile: MissionProfile{
				{Name: "Teleport", Kind: "teleport"},
			},
			wantErr: "unknown kind",
		},
		{
			name: "cruise without a range",
			profile: MissionProfile{
				{Name: "Cruise", Kind: SegmentCruise},
			},
			wantErr: "positive range",
		},
		{
			name: "loiter without endurance or contingency",
			profile: MissionProfile{
				{Name: "Hold", Kind: SegmentRegulatoryHold},
			},
			wantErr: "endurance or contingency",
		},
		{
			name: "contingency loiter before any cruise",
			profile: MissionProfile{
				{Name: "Climb", Kind: SegmentClimb},
				{Name: "Loiter", Kind: SegmentLoiterContingency, ContingencyFraction: 0.10},
				{Name: "Cruise", Kind: SegmentCruise, RangeNM: 1850},
			},
			wantErr: "preceding cruise",
		},
		{
			name: "contingency loiter after a cruise",
			profile: MissionProfile{
				{Name: "Cruise", Kind: SegmentCruise, RangeNM: 1850},
				{Name: "Loiter", Kind: SegmentLoiterContingency, ContingencyFraction: 0.10},
			},
		},
		{
			name: "weight fraction override out of bounds",
			profile: MissionProfile{
				{Name: "Climb", Kind: SegmentClimb, WeightFraction: 1.2},
			},
			wantErr: "weight fraction",
		},
		{
			name: "negative weight fraction override",
			profile: MissionProfile{
				{Name: "Climb", Kind: SegmentClimb, WeightFraction: -0.1},
			},
			wantErr: "weight fraction",
		},
		{
			name: "explicit weight fraction override is accepted",
			profile: MissionProfile{
				{Name: "Climb", Kind: SegmentClimb, WeightFraction: 0.985},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInternationalProfile(t *testing.T) {
	profile := InternationalProfile(1850, 200)

	require.Len(t, profile, 9)
	assert.NoError(t, profile.Validate())
	assert.Equal(t, 1850.0, profile.CruiseRange())

	// The divert leg carries the alternate range, not the design range.
	assert.Equal(t, SegmentDivertCruise, profile[6].Kind)
	assert.Equal(t, 200.0, profile[6].RangeNM)

	// The regulatory hold is the FAR 121.645 thirty minute reserve.
	assert.Equal(t, SegmentRegulatoryHold, profile[7].Kind)
	assert.Equal(t, 30.0, profile[7].EnduranceMin)
}

func TestMissionProfile_CruiseRange(t *testing.T) {
	var empty MissionProfile
	assert.Zero(t, empty.CruiseRange())

	noCruise := MissionProfile{{Name: "Climb", Kind: SegmentClimb}}
	assert.Zero(t, noCruise.CruiseRange())
}
