// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// impl_from_transitions.go: FromTransitions(initial, ts) constructor.
//
// Contract:
//   • Transitions are inserted in the given order over the configured alphabet.
//   • Two destinations for one (state, symbol) key → ErrConstructFailed
//     wrapping core.ErrNondeterministic (the core table would silently overwrite).
//   • The result must pass core.Validate (reachability, alphabet).

package builder

import (
	"fmt"

	"github.com/katalvlaran/rgodd/core"
)

// FromTransitions returns a Constructor that reproduces an explicit
// transition list; used for fixtures and hand-made plants.
func FromTransitions(initial core.State, ts []core.Transition) Constructor {
	return func(cfg builderConfig) (*core.Automaton, error) {
		if initial < 0 {
			return nil, fmt.Errorf("%s: initial %d: %w: %w", MethodFromTransitions, initial, ErrConstructFailed, core.ErrBadState)
		}
		a := core.New(initial, cfg.alphabet)
		for _, t := range ts {
			if to, ok := a.Step(t.From, t.Symbol); ok && to != t.To {
				return nil, fmt.Errorf("%s: (%d,%q) → %d and %d: %w: %w",
					MethodFromTransitions, t.From, t.Symbol, to, t.To, ErrConstructFailed, core.ErrNondeterministic)
			}
			if err := a.AddTransition(t.From, t.Symbol, t.To); err != nil {
				return nil, fmt.Errorf("%s: %w: %w", MethodFromTransitions, ErrConstructFailed, err)
			}
		}

		return finish(MethodFromTransitions, a)
	}
}
