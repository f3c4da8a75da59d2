// Package model defines the core domain entities for the sizing service.
package model

// Engine holds the fixed parameters of a selected (non-rubber) engine.
// Engines are immutable and may be shared read-only across variants.
//
// @Description Fixed engine parameters used for mission fuel and thrust loading
type Engine struct {
	// Name is the engine designation
	Name string `json:"name" bson:"name" yaml:"name" example:"CF34-8C5"`
	// TSFCCruise is thrust-specific fuel consumption at cruise [lb/(lb·hr)]
	TSFCCruise float64 `json:"tsfc_cruise" bson:"tsfc_cruise" yaml:"tsfc_cruise" example:"0.50"`
	// TSFCLoiter is thrust-specific fuel consumption at loiter [lb/(lb·hr)]
	TSFCLoiter float64 `json:"tsfc_loiter" bson:"tsfc_loiter" yaml:"tsfc_loiter" example:"0.40"`
	// ThrustPerEngine is sea-level static thrust per engine [lbf]
	ThrustPerEngine float64 `json:"thrust_per_engine" bson:"thrust_per_engine" yaml:"thrust_per_engine" example:"15500"`
	// NumEngines is the engine count
	NumEngines int `json:"num_engines" bson:"num_engines" yaml:"num_engines" example:"2"`
	// BypassRatio is the fan bypass ratio
	BypassRatio float64 `json:"bypass_ratio,omitempty" bson:"bypass_ratio,omitempty" yaml:"bypass_ratio,omitempty" example:"5.0"`
} // @name Engine

// TotalThrust returns total sea-level static thrust [lbf].
func (e Engine) TotalThrust() float64 {
	return e.ThrustPerEngine * float64(e.NumEngines)
}
