// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewStates).
//   • Every (state, observable symbol) pair is defined:
//     i -obs[j]-> (i+j+1) mod n. The j=0 transitions form a ring, so every
//     state is reachable.
//
// Complexity:
//   • Time: O(n·|Σobs|). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rgodd/core"
)

// Complete returns a Constructor that builds a complete n-state DFA.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*core.Automaton, error) {
		if err := validateMin(MethodComplete, n, MinStates); err != nil {
			return nil, err
		}
		obs := cfg.alphabet.Observable()
		if len(obs) == 0 {
			return nil, fmt.Errorf("%s: no observable symbols: %w", MethodComplete, ErrAlphabetExhausted)
		}
		a := core.New(0, cfg.alphabet)
		for i := 0; i < n; i++ {
			for j, sym := range obs {
				if err := a.AddTransition(core.State(i), sym, core.State((i+j+1)%n)); err != nil {
					return nil, fmt.Errorf("%s: %w: %w", MethodComplete, ErrConstructFailed, err)
				}
			}
		}

		return finish(MethodComplete, a)
	}
}
