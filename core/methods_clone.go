// File: methods_clone.go
// Role: Cloning automata.
// Concurrency:
//   - Read lock for snapshotting; the source is never mutated.

package core

// Clone returns a deep copy: initial state, alphabet and a fresh registry.
// The clone shares nothing mutable with the source.
// Complexity: O(N+T).
func (a *Automaton) Clone() *Automaton {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return &Automaton{
		initial:  a.initial,
		alphabet: a.alphabet,
		reg:      a.reg.clone(),
	}
}

// CloneEmpty returns a copy with the same states and alphabet but no transitions.
// Complexity: O(N).
func (a *Automaton) CloneEmpty() *Automaton {
	a.mu.RLock()
	defer a.mu.RUnlock()
	c := &Automaton{initial: a.initial, alphabet: a.alphabet, reg: NewRegistry()}
	for id := range a.reg.nodes {
		c.reg.register(id)
	}

	return c
}
