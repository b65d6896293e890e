// SPDX-License-Identifier: MIT
// Package: rgodd/verifier
//
// twin.go: reachable twin plant of a faulty automaton.
//
// Moves from a pair state (x1, L1, x2, L2):
//   - Sync:  observable σ enabled at x1 and x2; both move, labels kept.
//   - Left:  fault f enabled at x1; x1 moves, L1 gains class(f).
//   - Right: fault f enabled at x2; x2 moves, L2 gains class(f).
//
// Pair states are numbered in breadth-first discovery order from
// (init, ∅, init, ∅); edges are stored in the order they are found, so the
// construction is deterministic for a given automaton.

package verifier

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/rgodd/core"
)

// Labels is a set of fault-class indices; bit i stands for Faults()[i].
type Labels uint64

// maxClasses is the number of classes a Labels value can hold.
const maxClasses = 64

// Has reports whether class i is in the set.
func (l Labels) Has(i int) bool { return l&(1<<uint(i)) != 0 }

// With returns the set with class i added.
func (l Labels) With(i int) Labels { return l | 1<<uint(i) }

// Move is the kind of a twin-plant edge.
type Move uint8

const (
	// Sync moves both runs on a shared observable symbol.
	Sync Move = iota
	// Left moves the first run on a fault symbol.
	Left
	// Right moves the second run on a fault symbol.
	Right
)

// String returns the move name.
func (m Move) String() string {
	switch m {
	case Sync:
		return "sync"
	case Left:
		return "left"
	case Right:
		return "right"
	}

	return fmt.Sprintf("Move(%d)", uint8(m))
}

// PairState is one state of the twin plant.
type PairState struct {
	X1 core.State
	L1 Labels
	X2 core.State
	L2 Labels
}

// String renders the pair as (x1,{..},x2,{..}) with class indices.
func (p PairState) String() string {
	return fmt.Sprintf("(%d,%s,%d,%s)", p.X1, labelString(p.L1), p.X2, labelString(p.L2))
}

func labelString(l Labels) string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for i := 0; i < maxClasses; i++ {
		if !l.Has(i) {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", i)
		first = false
	}
	b.WriteByte('}')

	return b.String()
}

// PairEdge is a twin-plant edge between pair-state indices.
type PairEdge struct {
	From   int
	To     int
	Kind   Move
	Symbol core.Symbol
}

// TwinPlant is the reachable twin plant. States[i] is pair state i and
// Edges refer to those indices.
type TwinPlant struct {
	States  []PairState
	Edges   []PairEdge
	Classes []core.FaultClass

	out [][]int // out[i]: indices into Edges leaving state i
}

// Out returns the indices of the edges leaving pair state i.
func (tp *TwinPlant) Out(i int) []int { return tp.out[i] }

// Build constructs the twin plant of a.
//
// Errors:
//   - ErrAutomatonNil: a is nil.
//   - core.ErrInvariant: a fails Validate.
//   - ErrTooManyClasses: more than 64 fault classes.
//   - ErrTwinPlantTooLarge: more pair states than WithMaxPairStates allows.
//
// Complexity: O(P·|Σ|) with P reachable pair states.
func Build(a *core.Automaton, opts ...Option) (*TwinPlant, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	o := newOptions(opts)
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	al := a.Alphabet()
	classes := al.Faults()
	if len(classes) > maxClasses {
		return nil, fmt.Errorf("Build: %d classes: %w", len(classes), ErrTooManyClasses)
	}

	start := PairState{X1: a.Initial(), X2: a.Initial()}
	tp := &TwinPlant{Classes: classes, States: []PairState{start}, out: [][]int{nil}}
	index := map[PairState]int{start: 0}

	add := func(from int, next PairState, kind Move, sym core.Symbol) error {
		id, seen := index[next]
		if !seen {
			if o.maxPairStates > 0 && len(tp.States) >= o.maxPairStates {
				return fmt.Errorf("Build: more than %d pair states: %w", o.maxPairStates, ErrTwinPlantTooLarge)
			}
			id = len(tp.States)
			index[next] = id
			tp.States = append(tp.States, next)
			tp.out = append(tp.out, nil)
		}
		tp.out[from] = append(tp.out[from], len(tp.Edges))
		tp.Edges = append(tp.Edges, PairEdge{From: from, To: id, Kind: kind, Symbol: sym})

		return nil
	}

	for i := 0; i < len(tp.States); i++ {
		p := tp.States[i]
		for _, sym := range a.Enabled(p.X1) {
			d1, _ := a.Step(p.X1, sym)
			if ci, isFault := al.ClassOf(sym); isFault {
				if err := add(i, PairState{X1: d1, L1: p.L1.With(ci), X2: p.X2, L2: p.L2}, Left, sym); err != nil {
					return nil, err
				}
				continue
			}
			d2, ok := a.Step(p.X2, sym)
			if !ok {
				continue
			}
			if err := add(i, PairState{X1: d1, L1: p.L1, X2: d2, L2: p.L2}, Sync, sym); err != nil {
				return nil, err
			}
		}
		for _, sym := range a.Enabled(p.X2) {
			ci, isFault := al.ClassOf(sym)
			if !isFault {
				continue
			}
			d2, _ := a.Step(p.X2, sym)
			if err := add(i, PairState{X1: p.X1, L1: p.L1, X2: d2, L2: p.L2.With(ci)}, Right, sym); err != nil {
				return nil, err
			}
		}
	}

	return tp, nil
}
