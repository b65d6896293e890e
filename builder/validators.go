// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"
	"math"
)

// validateBounds enforces 1 ≤ minStates ≤ maxStates.
// Complexity: O(1).
func validateBounds(method string, minStates, maxStates int) error {
	if minStates < MinStates || minStates > maxStates {
		return fmt.Errorf("%s: bounds [%d,%d]: %w", method, minStates, maxStates, ErrInvalidBounds)
	}

	return nil
}

// validateMin ensures that got ≥ min.
// Complexity: O(1).
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewStates)
	}

	return nil
}

// validateDensity rejects densities needing more distinct symbols per state
// than k observable symbols allow.
// Complexity: O(1).
func validateDensity(method string, density float64, k int) error {
	if k < 1 || int(math.Ceil(density)) > k {
		return fmt.Errorf("%s: density %.2f needs %d symbols per state, alphabet has %d: %w",
			method, density, int(math.Ceil(density)), k, ErrAlphabetExhausted)
	}

	return nil
}

// CheckParams runs the RandomDFA parameter checks without building anything.
// Callers that must reject bad input before doing work use it up front.
func CheckParams(minStates, maxStates int, density float64, observable int) error {
	if err := validateBounds(MethodRandomDFA, minStates, maxStates); err != nil {
		return err
	}

	return validateDensity(MethodRandomDFA, density, observable)
}
