// SPDX-License-Identifier: MIT
// Package: rgodd/fault
//
// inject.go: fault injection by relabelling observable transitions.
//
// Selection:
//   - Candidates: observable transitions, except self-loops on the initial state.
//   - Candidates are shuffled once; slot i takes the first remaining candidate
//     whose source does not already carry the slot's fault symbol.
//   - Slots 0..k-1 are assigned classes 0..k-1; later slots draw a class uniformly.
//
// Determinism: identical input, classes, count and RNG state ⇒ identical result.

package fault

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/rgodd/bfs"
	"github.com/katalvlaran/rgodd/core"
	"github.com/katalvlaran/rgodd/dfs"
)

// Relabel records one transition turned into a fault transition.
type Relabel struct {
	From       core.State
	Observable core.Symbol
	Fault      core.Symbol
	To         core.State
	Class      string
	// Access is a shortest word from the initial state to From.
	Access []core.Symbol
}

// Injection is the outcome of Inject. The input automaton is never modified.
type Injection struct {
	Automaton  *core.Automaton
	Relabelled []Relabel
	Classes    []core.FaultClass
}

// Option configures Inject.
type Option func(*options)

type options struct {
	allowSilentCycles bool
}

// WithAllowSilentCycles keeps placements that close a cycle of fault transitions.
func WithAllowSilentCycles() Option {
	return func(o *options) { o.allowSilentCycles = true }
}

// Inject relabels count transitions of a clone of a to fault symbols of
// classes. count below len(classes) is raised to len(classes) so that every
// class labels at least one transition.
//
// Errors:
//   - ErrAutomatonNil, ErrNoFaultClasses, ErrNeedRandSource: bad arguments.
//   - ErrNotEnoughTransitions: too few eligible candidates.
//   - ErrSilentCycle: the placement closes a fault-only cycle.
//   - core.ErrBadAlphabet: a class conflicts with the alphabet.
//
// Complexity: O(T·log T + count·T).
func Inject(a *core.Automaton, classes []core.FaultClass, count int, rng *rand.Rand, opts ...Option) (*Injection, error) {
	switch {
	case a == nil:
		return nil, ErrAutomatonNil
	case len(classes) == 0:
		return nil, ErrNoFaultClasses
	case rng == nil:
		return nil, ErrNeedRandSource
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	count = max(count, len(classes))

	al, err := extend(a.Alphabet(), classes)
	if err != nil {
		return nil, fmt.Errorf("Inject: %w", err)
	}
	c := a.Clone()
	if err = c.SetAlphabet(al); err != nil {
		return nil, fmt.Errorf("Inject: %w", err)
	}

	start := c.Initial()
	var cands []core.Transition
	for _, t := range c.Transitions() {
		if !al.IsObservable(t.Symbol) || (t.From == start && t.To == start) {
			continue
		}
		cands = append(cands, t)
	}
	if len(cands) < count {
		return nil, fmt.Errorf("Inject: %d eligible, %d requested: %w", len(cands), count, ErrNotEnoughTransitions)
	}
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })

	reach, err := bfs.BFS(a, a.Initial())
	if err != nil {
		return nil, fmt.Errorf("Inject: %w", err)
	}

	inj := &Injection{Automaton: c, Classes: append([]core.FaultClass(nil), classes...)}
	for slot := 0; slot < count; slot++ {
		fc := classes[slot%len(classes)]
		if slot >= len(classes) {
			fc = classes[rng.Intn(len(classes))]
		}
		i := pick(c, cands, fc.Symbol)
		if i < 0 {
			return nil, fmt.Errorf("Inject: no candidate left for %s: %w", fc.Name, ErrNotEnoughTransitions)
		}
		t := cands[i]
		cands = append(cands[:i], cands[i+1:]...)
		if err = c.Relabel(t.From, t.Symbol, fc.Symbol); err != nil {
			return nil, fmt.Errorf("Inject: %w: %w", core.ErrInvariant, err)
		}
		word, _ := reach.WordTo(t.From)
		inj.Relabelled = append(inj.Relabelled, Relabel{
			From: t.From, Observable: t.Symbol, Fault: fc.Symbol, To: t.To, Class: fc.Name, Access: word,
		})
	}

	if !o.allowSilentCycles {
		has, cycles, err := dfs.DetectCycles(c, dfs.WithSymbolFilter(al.IsFault))
		if err != nil {
			return nil, fmt.Errorf("Inject: %w", err)
		}
		if has {
			return nil, fmt.Errorf("Inject: %v: %w", cycles[0], ErrSilentCycle)
		}
	}

	return inj, nil
}

// pick returns the index of the first candidate whose source has no
// transition on sym yet, or -1.
func pick(c *core.Automaton, cands []core.Transition, sym core.Symbol) int {
	for i, t := range cands {
		if !c.HasTransition(t.From, sym) {
			return i
		}
	}

	return -1
}
