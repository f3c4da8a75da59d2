package catalog

import "github.com/conceptair/sizing-service/internal/domain/model"

// referenceEngine is the regional-jet turbofan shared by the built-in
// variants. Not a rubber engine: thrust and TSFC are fixed.
func referenceEngine() model.Engine {
	return model.Engine{
		Name:            "CF34-8C5",
		TSFCCruise:      0.50,
		TSFCLoiter:      0.40,
		ThrustPerEngine: 14510,
		NumEngines:      2,
		BypassRatio:     5.0,
	}
}

// Builtin returns the built-in reference variants. The three share engine
// and cruise conditions and differ in payload, design range, and structure.
func Builtin() []model.AircraftVariant {
	common := model.AircraftVariant{
		CrewWeight:     1050,
		AlternateRange: 200,
		CD0:            0.020,
		AspectRatio:    7.8,
		OswaldE:        0.80,
		WingArea:       520,
		MachMax:        0.85,
		CruiseMach:     0.78,
		CruiseAltitude: 41000,
		Engine:         referenceEngine(),
	}

	na := common
	na.Name = "NA Variant (Composite)"
	na.PayloadWeight = 17005
	na.DesignRange = 1800
	na.CompositeFactor = 0.95

	eu := common
	eu.Name = "EU Variant (Composite)"
	eu.PayloadWeight = 22330
	eu.DesignRange = 1200
	eu.CompositeFactor = 0.95

	naMetal := common
	naMetal.Name = "NA Variant (No Composite)"
	naMetal.PayloadWeight = 17005
	naMetal.DesignRange = 1800
	naMetal.CompositeFactor = 1.0

	return []model.AircraftVariant{na, eu, naMetal}
}
