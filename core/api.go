// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade: Stats and String.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

import (
	"fmt"
	"strings"
)

// Stats is a read-only snapshot of catalog sizes.
type Stats struct {
	// States is the number of registered states.
	States int
	// Transitions is the total number of transitions.
	Transitions int
	// FaultTransitions counts transitions labelled by a fault symbol.
	FaultTransitions int
	// PerClass counts fault transitions per class name.
	PerClass map[string]int
	// SelfLoops counts transitions with From == To.
	SelfLoops int
	// MaxOutDegree is the largest out-degree of any state.
	MaxOutDegree int
}

// Stats produces a deterministic snapshot of the automaton's sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock once.
//   - Stage 2: Walk every node and classify each transition by its symbol.
//
// Complexity:
//   - Time O(N+T), Space O(|classes|).
func (a *Automaton) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	st := Stats{States: a.reg.Len(), PerClass: make(map[string]int)}
	for _, fc := range a.alphabet.faults {
		st.PerClass[fc.Name] = 0
	}
	for id, n := range a.reg.nodes {
		if d := len(n.out); d > st.MaxOutDegree {
			st.MaxOutDegree = d
		}
		for sym, to := range n.out {
			st.Transitions++
			if to == id {
				st.SelfLoops++
			}
			if ci, ok := a.alphabet.ClassOf(sym); ok {
				st.FaultTransitions++
				st.PerClass[a.alphabet.faults[ci].Name]++
			}
		}
	}

	return st
}

// String renders a compact multi-line description, one transition per line.
// Complexity: O(T·log T).
func (a *Automaton) String() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "DFA[states=%d initial=%d]\n", a.reg.Len(), a.initial)
	for _, t := range a.transitionsLocked() {
		fmt.Fprintf(&sb, "  %d -%s-> %d\n", t.From, t.Symbol, t.To)
	}

	return sb.String()
}
