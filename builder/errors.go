// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrInvalidBounds indicates minStates < 1 or minStates > maxStates.
// Rejected before any generation work begins.
var ErrInvalidBounds = errors.New("builder: invalid state bounds")

// ErrAlphabetExhausted indicates the requested density needs more distinct
// symbols per state than the observable alphabet provides.
var ErrAlphabetExhausted = errors.New("builder: alphabet exhausted")

// ErrTooFewStates indicates a size parameter below the constructor's minimum.
var ErrTooFewStates = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the constructed automaton violated an
// invariant (or the input described one that would). It wraps the core error.
var ErrConstructFailed = errors.New("builder: construction failed")

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//    • ErrInvalidBounds / ErrTooFewStates: size checks first.
//    • ErrAlphabetExhausted: then alphabet capacity.
//    • ErrNeedRandSource: then RNG presence.
//    • ErrConstructFailed: only after building.
