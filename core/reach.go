// File: reach.go
// Role: Lazy reachability and invariant checking.
//
// Determinism:
//   - ReachableStates yields in BFS order; successors are expanded in
//     ascending symbol order.

package core

import (
	"fmt"
	"iter"
)

// ReachableStates returns a lazy breadth-first sequence of the states
// reachable from `from`, starting with `from` itself. The sequence is finite
// and can be ranged over any number of times; each range restarts the
// traversal. An unregistered start yields nothing.
//
// The read lock is held only while a single state's successors are copied,
// never while yielding, so callers may query the automaton inside the loop.
//
// Complexity: O(N+T) time and O(N) space when fully consumed.
func (a *Automaton) ReachableStates(from State) iter.Seq[State] {
	return func(yield func(State) bool) {
		if !a.HasState(from) {
			return
		}
		seen := map[State]struct{}{from: {}}
		queue := []State{from}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if !yield(cur) {
				return
			}
			for _, nxt := range a.successors(cur) {
				if _, ok := seen[nxt]; ok {
					continue
				}
				seen[nxt] = struct{}{}
				queue = append(queue, nxt)
			}
		}
	}
}

// successors snapshots the destinations of s in ascending symbol order.
func (a *Automaton) successors(s State) []State {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n, ok := a.reg.Lookup(s)
	if !ok {
		return nil
	}
	syms := n.symbols()
	out := make([]State, len(syms))
	for i, sym := range syms {
		out[i] = n.out[sym]
	}

	return out
}

// Unreachable returns the registered states not reachable from the initial
// state, sorted ascending.
// Complexity: O(N+T).
func (a *Automaton) Unreachable() []State {
	seen := make(map[State]struct{})
	for s := range a.ReachableStates(a.Initial()) {
		seen[s] = struct{}{}
	}
	var out []State
	for _, s := range a.States() {
		if _, ok := seen[s]; !ok {
			out = append(out, s)
		}
	}

	return out
}

// Validate checks the structural invariants: every transition symbol is in
// the alphabet and every state is reachable from the initial state.
// Violations wrap both ErrInvariant and the specific sentinel.
// Complexity: O(N+T).
func (a *Automaton) Validate() error {
	al := a.Alphabet()
	for _, t := range a.Transitions() {
		if !al.Contains(t.Symbol) {
			return fmt.Errorf("Validate: transition (%d,%q,%d): %w: %w",
				t.From, t.Symbol, t.To, ErrInvariant, ErrUnknownSymbol)
		}
	}
	if orphans := a.Unreachable(); len(orphans) > 0 {
		return fmt.Errorf("Validate: %d state(s) unreachable from %d, first %d: %w: %w",
			len(orphans), a.Initial(), orphans[0], ErrInvariant, ErrUnreachableState)
	}

	return nil
}
