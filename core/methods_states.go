// File: methods_states.go
// Role: State lifecycle & queries.
//
// Determinism:
//   - States() returns identifiers sorted ascending.
//
// Concurrency:
//   - Registry protected by mu.

package core

import "fmt"

// AddState registers s if missing (idempotent).
//
// Errors:
//   - ErrBadState: s < 0.
//
// Complexity: O(1) amortized.
func (a *Automaton) AddState(s State) error {
	if s < 0 {
		return fmt.Errorf("AddState(%d): %w", s, ErrBadState)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reg.register(s)

	return nil
}

// HasState reports whether s is registered.
// Complexity: O(1).
func (a *Automaton) HasState(s State) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.reg.Lookup(s)

	return ok
}

// Initial returns the initial state.
func (a *Automaton) Initial() State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.initial
}

// States returns every registered state, sorted ascending.
// Complexity: O(N·log N).
func (a *Automaton) States() []State {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.reg.IDs()
}

// StateCount is the number of registered states.
// Complexity: O(1).
func (a *Automaton) StateCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.reg.Len()
}

// Alphabet returns the automaton's alphabet.
func (a *Automaton) Alphabet() Alphabet {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.alphabet
}

// SetAlphabet replaces the alphabet. Every symbol already used by a
// transition must belong to al, otherwise ErrUnknownSymbol is returned and
// nothing changes.
// Complexity: O(N+T).
func (a *Automaton) SetAlphabet(al Alphabet) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, id := range a.reg.IDs() {
		n, _ := a.reg.Lookup(id)
		for sym := range n.out {
			if !al.Contains(sym) {
				return fmt.Errorf("SetAlphabet: state %d uses %q: %w", id, sym, ErrUnknownSymbol)
			}
		}
	}
	a.alphabet = al

	return nil
}
