// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng        = nil                   (stochastic constructors then fail with ErrNeedRandSource)
//   • density    = DefaultDensity        (average out-degree)
//   • alphabet   = DefaultObservable observable symbols 'a'.., no fault classes
//   • selfLoops  = true

package builder

import (
	"math/rand"

	"github.com/katalvlaran/rgodd/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Target average out-degree for RandomDFA.
	density float64
	// Alphabet of generated automata; only observable symbols are used for structure.
	alphabet core.Alphabet
	// Whether RandomDFA may add s -σ-> s.
	selfLoops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		density:   DefaultDensity,
		alphabet:  core.MustAlphabet(core.ObservableRange(DefaultObservable), nil),
		selfLoops: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
