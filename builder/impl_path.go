// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// impl_path.go - implementation of Path(n, sym) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewStates); n = 1 yields a single state without transitions.
//   - Emits transitions (i-1) -sym-> i for i=1..n-1.
//
// Complexity:
//   - Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rgodd/core"
)

// Path returns a Constructor that builds the n-state chain on sym.
func Path(n int, sym core.Symbol) Constructor {
	return func(cfg builderConfig) (*core.Automaton, error) {
		if err := validateMin(MethodPath, n, MinStates); err != nil {
			return nil, err
		}
		a := core.New(0, cfg.alphabet)
		for i := 1; i < n; i++ {
			if err := a.AddTransition(core.State(i-1), sym, core.State(i)); err != nil {
				return nil, fmt.Errorf("%s: %w: %w", MethodPath, ErrConstructFailed, err)
			}
		}

		return finish(MethodPath, a)
	}
}
