// SPDX-License-Identifier: MIT
// Package: rgodd/fault
//
// compose.go: synchronous product of a faulty plant and a fault-free
// normal component.
//
// Rules for a product state (x1, x2) and symbol σ:
//   - σ observable in both alphabets: both must move.
//   - σ only in the faulty alphabet (every fault symbol): x1 moves.
//   - σ only in the normal alphabet: x2 moves.
//
// Product states are discovered breadth-first from (init1, init2) and
// numbered 0..N-1 in discovery order, so unreachable pairs never appear.

package fault

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rgodd/core"
)

// StatePair is the (faulty, normal) origin of a product state.
type StatePair struct {
	Faulty core.State
	Normal core.State
}

// Composition is the reachable product; Pairs[i] is the origin of state i.
type Composition struct {
	Automaton *core.Automaton
	Pairs     []StatePair
}

// Compose builds the reachable synchronous product of faulty and normal.
//
// Errors:
//   - ErrAutomatonNil: either argument is nil.
//   - ErrNormalHasFaults: normal has a transition on a fault symbol.
//   - core.ErrBadAlphabet: a normal symbol collides with a fault symbol.
//
// Complexity: O(P·|Σ|) with P the number of reachable product states.
func Compose(faulty, normal *core.Automaton) (*Composition, error) {
	if faulty == nil || normal == nil {
		return nil, ErrAutomatonNil
	}
	fa, na := faulty.Alphabet(), normal.Alphabet()
	for _, t := range normal.Transitions() {
		if na.IsFault(t.Symbol) {
			return nil, fmt.Errorf("Compose: (%d,%s,%d): %w", t.From, t.Symbol, t.To, ErrNormalHasFaults)
		}
	}
	al, err := core.NewAlphabet(union(fa.Observable(), na.Observable()), fa.Faults())
	if err != nil {
		return nil, fmt.Errorf("Compose: %w", err)
	}

	start := StatePair{faulty.Initial(), normal.Initial()}
	prod := core.New(0, al)
	index := map[StatePair]core.State{start: 0}
	pairs := []StatePair{start}
	for i := 0; i < len(pairs); i++ {
		p := pairs[i]
		for _, sym := range union(faulty.Enabled(p.Faulty), normal.Enabled(p.Normal)) {
			next, ok := move(faulty, normal, fa, na, p, sym)
			if !ok {
				continue
			}
			id, seen := index[next]
			if !seen {
				id = core.State(len(pairs))
				index[next] = id
				pairs = append(pairs, next)
			}
			if err = prod.AddTransition(core.State(i), sym, id); err != nil {
				return nil, fmt.Errorf("Compose: %w: %w", core.ErrInvariant, err)
			}
		}
	}

	return &Composition{Automaton: prod, Pairs: pairs}, nil
}

// move applies the product rule for sym at p.
func move(faulty, normal *core.Automaton, fa, na core.Alphabet, p StatePair, sym core.Symbol) (StatePair, bool) {
	inF, inN := fa.Contains(sym), na.Contains(sym)
	switch {
	case inF && inN:
		d1, ok1 := faulty.Step(p.Faulty, sym)
		d2, ok2 := normal.Step(p.Normal, sym)
		return StatePair{d1, d2}, ok1 && ok2
	case inF:
		d1, ok := faulty.Step(p.Faulty, sym)
		return StatePair{d1, p.Normal}, ok
	default:
		d2, ok := normal.Step(p.Normal, sym)
		return StatePair{p.Faulty, d2}, ok
	}
}

// union returns the sorted set union of a and b.
func union(a, b []core.Symbol) []core.Symbol {
	set := make(map[core.Symbol]struct{}, len(a)+len(b))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		set[s] = struct{}{}
	}
	out := make([]core.Symbol, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
