package sizing

import "fmt"

// DomainError reports an invalid physical input: negative altitude,
// non-positive weight, area, or pressure. It always indicates a
// configuration bug and is never retried.
type DomainError struct {
	// Quantity is the offending input, e.g. "altitude".
	Quantity string
	// Value is the rejected value.
	Value float64
	// Reason explains the violated constraint.
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s = %g %s", e.Quantity, e.Value, e.Reason)
}

// ConvergenceError reports an iteration budget exhausted without meeting
// tolerance. Distinct from infeasibility: the mission may be feasible but
// the seed or damping choice was poor.
type ConvergenceError struct {
	Iterations   int
	LastGuess    float64
	LastResidual float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("sizing did not converge after %d iterations (last guess %.1f lbs, residual %.3f lbs)",
		e.Iterations, e.LastGuess, e.LastResidual)
}
