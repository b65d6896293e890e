// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildAutomaton(bopts, con). Resolves cfg, runs con.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed ⇒ identical automata.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rgodd/core"
)

// Constructor produces a new automaton from the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before doing any work and return sentinel errors (no panics).
//   - Return an automaton whose every state is reachable from its initial state.
//   - Preserve determinism for the same config.
type Constructor func(cfg builderConfig) (*core.Automaton, error)

// BuildAutomaton resolves the builder configuration from bopts and runs con.
// Any constructor error is wrapped with the context "BuildAutomaton: %w".
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Cost of con.
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrInvalidBounds, ErrAlphabetExhausted, ...).
func BuildAutomaton(bopts []BuilderOption, con Constructor) (*core.Automaton, error) {
	if con == nil {
		return nil, fmt.Errorf("BuildAutomaton: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	a, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildAutomaton: %w", err)
	}

	return a, nil
}

// =============================================================================
// Factories - implemented in impl_*.go
// =============================================================================
//
// RandomDFA(minStates, maxStates) - random connected DFA (impl_random_dfa.go).
// Cycle(n, sym)                   - ring 0 -sym-> 1 ... n-1 -sym-> 0.
// Path(n, sym)                    - chain 0 -sym-> 1 ... -sym-> n-1.
// Complete(n)                     - every (state, observable symbol) defined.
// FromTransitions(initial, ts)    - explicit transition list.
