package sizing

import "math"

// LiftToDrag evaluates the drag polar at one flight condition:
// CL = W/(q·S), CDi = CL²/(π·AR·e), and returns CL/(CD0 + CDi).
//
// L/D is weight-dependent, so the solver re-evaluates it at every iteration
// and the fuel-fraction walk re-evaluates it at the running weight of each
// cruise segment. This coupling is what makes sizing a fixed-point problem
// rather than a closed-form solve.
func LiftToDrag(weight, dynamicPressure, wingArea, cd0, aspectRatio, oswaldE float64) (float64, error) {
	if dynamicPressure <= 0 {
		return 0, &DomainError{Quantity: "dynamic pressure", Value: dynamicPressure, Reason: "must be positive"}
	}
	if wingArea <= 0 {
		return 0, &DomainError{Quantity: "wing area", Value: wingArea, Reason: "must be positive"}
	}
	if weight <= 0 {
		return 0, &DomainError{Quantity: "weight", Value: weight, Reason: "must be positive"}
	}

	cl := weight / (dynamicPressure * wingArea)
	cdi := cl * cl / (math.Pi * aspectRatio * oswaldE)
	return cl / (cd0 + cdi), nil
}

// MaxLiftToDrag returns (L/D)max = 1/(2·√(CD0/(π·AR·e))), the ratio at the
// condition where parasitic and induced drag are equal. Loiter segments fly
// at this optimum.
func MaxLiftToDrag(cd0, aspectRatio, oswaldE float64) float64 {
	return 1.0 / (2.0 * math.Sqrt(cd0/(math.Pi*aspectRatio*oswaldE)))
}
