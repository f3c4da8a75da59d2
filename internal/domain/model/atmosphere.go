package model

// AtmosphereState holds standard-atmosphere properties at one altitude.
// It is computed on demand and has no identity beyond its inputs.
//
// @Description Standard atmosphere properties at a geometric altitude
type AtmosphereState struct {
	// Altitude is the geometric altitude [ft]
	Altitude float64 `json:"altitude_ft" example:"41000"`
	// Temperature is the static temperature [°R]
	Temperature float64 `json:"temperature_r" example:"389.97"`
	// Pressure is the static pressure [psf]
	Pressure float64 `json:"pressure_psf" example:"374.75"`
	// Density is the air density [slug/ft³]
	Density float64 `json:"density_slugft3" example:"0.00056"`
	// SpeedOfSound is the local speed of sound [ft/s]
	SpeedOfSound float64 `json:"speed_of_sound_fps" example:"968.08"`
} // @name AtmosphereState
