// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/rgodd/core"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// instance before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDensity sets the target average out-degree of RandomDFA.
// Panics unless d is finite and > 0.
func WithDensity(d float64) BuilderOption {
	if !(d > 0) || math.IsInf(d, 0) {
		panic(fmt.Sprintf("builder: WithDensity(%v)", d))
	}
	return func(c *builderConfig) {
		c.density = d
	}
}

// WithObservable sets the alphabet to the first k lowercase letters.
// Panics unless 1 ≤ k ≤ core.MaxObservable.
func WithObservable(k int) BuilderOption {
	if k < 1 || k > core.MaxObservable {
		panic(fmt.Sprintf("builder: WithObservable(%d)", k))
	}
	return func(c *builderConfig) {
		c.alphabet = core.MustAlphabet(core.ObservableRange(k), nil)
	}
}

// WithAlphabet sets an explicit alphabet. Fault classes it declares are
// carried on the result but never used for structure.
func WithAlphabet(al core.Alphabet) BuilderOption {
	return func(c *builderConfig) {
		c.alphabet = al
	}
}

// WithSelfLoops toggles whether RandomDFA may add s -σ-> s.
func WithSelfLoops(allowed bool) BuilderOption {
	return func(c *builderConfig) {
		c.selfLoops = allowed
	}
}
