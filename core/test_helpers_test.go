// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for rgodd/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Automaton.
//   - Keep fixture construction in one auditable place.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rgodd/core"
)

// Common symbols used across core tests.
const (
	SymA core.Symbol = 'a'
	SymB core.Symbol = 'b'
	SymC core.Symbol = 'c'
	SymF core.Symbol = 'A'
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// abAlphabet is {a, b, c} observable plus fault class F1 on 'A'.
func abAlphabet() core.Alphabet {
	return core.MustAlphabet(core.ObservableRange(3), []core.FaultClass{{Name: "F1", Symbol: SymF}})
}

// triangle builds 0 -a-> 1 -b-> 2 -c-> 0 plus 0 -b-> 2.
func triangle(t *testing.T) *core.Automaton {
	t.Helper()
	a := core.New(0, abAlphabet())
	require.NoError(t, a.AddTransition(0, SymA, 1))
	require.NoError(t, a.AddTransition(1, SymB, 2))
	require.NoError(t, a.AddTransition(2, SymC, 0))
	require.NoError(t, a.AddTransition(0, SymB, 2))

	return a
}

// collect drains a reachability sequence.
func collect(a *core.Automaton, from core.State) []core.State {
	var out []core.State
	for s := range a.ReachableStates(from) {
		out = append(out, s)
	}

	return out
}
