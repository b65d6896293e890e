// SPDX-License-Identifier: MIT
// Package: rgodd/fault
//
// errors.go: sentinel errors for the fault model.
//
// Callers branch with errors.Is. ErrSilentCycle, ErrNotEnoughTransitions and
// ErrClassUnlabelled describe an unlucky random placement and are retryable;
// errors wrapping core.ErrInvariant are not.

package fault

import "errors"

var (
	// ErrAutomatonNil indicates a nil automaton argument.
	ErrAutomatonNil = errors.New("fault: automaton is nil")

	// ErrNoFaultClasses indicates an empty class list.
	ErrNoFaultClasses = errors.New("fault: no fault classes")

	// ErrNotEnoughTransitions indicates fewer eligible transitions than requested relabels.
	ErrNotEnoughTransitions = errors.New("fault: not enough eligible transitions")

	// ErrNeedRandSource indicates a nil *rand.Rand.
	ErrNeedRandSource = errors.New("fault: rng is required")

	// ErrSilentCycle indicates the placement created a cycle made only of fault transitions.
	ErrSilentCycle = errors.New("fault: cycle of unobservable transitions")

	// ErrClassUnlabelled indicates a declared fault class labels no transition.
	ErrClassUnlabelled = errors.New("fault: fault class labels no transition")

	// ErrNormalHasFaults indicates the normal component carries a fault transition.
	ErrNormalHasFaults = errors.New("fault: normal component has fault transitions")
)
