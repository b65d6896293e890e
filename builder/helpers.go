// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/rgodd/core"
)

// addSequentialStates registers states 1..n-1; state 0 is registered by core.New.
// Complexity: O(n).
func addSequentialStates(a *core.Automaton, n int) error {
	for i := 1; i < n; i++ {
		if err := a.AddState(core.State(i)); err != nil {
			return fmt.Errorf("addSequentialStates: AddState(%d): %w", i, err)
		}
	}

	return nil
}

// freeSymbols returns the symbols of obs not yet used from s, in obs order.
// Complexity: O(|obs|).
func freeSymbols(a *core.Automaton, s core.State, obs []core.Symbol) []core.Symbol {
	out := make([]core.Symbol, 0, len(obs))
	for _, sym := range obs {
		if !a.HasTransition(s, sym) {
			out = append(out, sym)
		}
	}

	return out
}

// removeAt deletes s[i] by swapping in the last element.
func removeAt(s []core.State, i int) []core.State {
	s[i] = s[len(s)-1]
	return s[:len(s)-1]
}

// finish validates a and maps an invariant violation to ErrConstructFailed.
func finish(method string, a *core.Automaton) (*core.Automaton, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return a, nil
}
