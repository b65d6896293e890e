package fault

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rgodd/core"
)

// DefaultFraction is the default share of transitions relabelled as faults.
const DefaultFraction = 0.1

// DefaultClasses returns F1..Fk labelled 'A', 'B', ... . k is clamped to [0, 26].
func DefaultClasses(k int) []core.FaultClass {
	k = max(0, min(k, core.MaxObservable))
	out := make([]core.FaultClass, k)
	for i := range out {
		out[i] = core.FaultClass{Name: fmt.Sprintf("F%d", i+1), Symbol: core.Symbol('A' + i)}
	}

	return out
}

// CountFor returns max(classes, round(fraction·transitions)).
func CountFor(transitions, classes int, fraction float64) int {
	return max(classes, int(math.Round(fraction*float64(transitions))))
}

// Validate checks that every class is declared by a's alphabet and labels at
// least one transition.
//
// Errors:
//   - ErrClassUnlabelled: some class has no transition.
//   - core.ErrUnknownSymbol: a class is missing from the alphabet.
//
// Complexity: O(T + |classes|).
func Validate(a *core.Automaton, classes []core.FaultClass) error {
	if a == nil {
		return ErrAutomatonNil
	}
	al := a.Alphabet()
	per := a.Stats().PerClass
	for _, fc := range classes {
		got, ok := al.Class(fc.Name)
		if !ok || got.Symbol != fc.Symbol {
			return fmt.Errorf("Validate: class %s (%s): %w", fc.Name, fc.Symbol, core.ErrUnknownSymbol)
		}
		if per[fc.Name] == 0 {
			return fmt.Errorf("Validate: class %s: %w", fc.Name, ErrClassUnlabelled)
		}
	}

	return nil
}

// extend adds the classes missing from al. A class already present under
// the same name must carry the same symbol.
func extend(al core.Alphabet, classes []core.FaultClass) (core.Alphabet, error) {
	var add []core.FaultClass
	for _, fc := range classes {
		got, ok := al.Class(fc.Name)
		switch {
		case !ok:
			add = append(add, fc)
		case got.Symbol != fc.Symbol:
			return core.Alphabet{}, fmt.Errorf("class %s is %s, not %s: %w", fc.Name, got.Symbol, fc.Symbol, core.ErrBadAlphabet)
		}
	}
	if len(add) == 0 {
		return al, nil
	}

	return al.WithFaults(add...)
}
