package verifier

import "errors"

var (
	// ErrAutomatonNil is returned for a nil automaton.
	ErrAutomatonNil = errors.New("verifier: automaton is nil")

	// ErrTwinPlantTooLarge is returned when the pair-state bound is exceeded.
	ErrTwinPlantTooLarge = errors.New("verifier: twin plant exceeds pair-state bound")

	// ErrTooManyClasses is returned for more fault classes than a label set holds.
	ErrTooManyClasses = errors.New("verifier: too many fault classes")
)
