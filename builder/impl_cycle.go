// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// impl_cycle.go: implementation of Cycle(n, sym) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewStates); n = 1 yields the self-loop 0 -sym-> 0.
//   • Emits transitions i -sym-> (i+1)%n for i=0..n-1.
//   • sym outside the alphabet → ErrConstructFailed wrapping core.ErrUnknownSymbol.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/rgodd/core"
)

// Cycle returns a Constructor that builds the n-state ring on sym.
func Cycle(n int, sym core.Symbol) Constructor {
	return func(cfg builderConfig) (*core.Automaton, error) {
		if err := validateMin(MethodCycle, n, MinStates); err != nil {
			return nil, err
		}
		a := core.New(0, cfg.alphabet)
		for i := 0; i < n; i++ {
			if err := a.AddTransition(core.State(i), sym, core.State((i+1)%n)); err != nil {
				return nil, fmt.Errorf("%s: %w: %w", MethodCycle, ErrConstructFailed, err)
			}
		}

		return finish(MethodCycle, a)
	}
}
