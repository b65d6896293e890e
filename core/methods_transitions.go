// File: methods_transitions.go
// Role: Transition lifecycle & navigation: AddTransition/RemoveTransition/
//       Relabel/Navigate/Step/Enabled/Transitions.
//
// Determinism:
//   - Transitions() is sorted by (From, Symbol); Enabled() by Symbol.
//
// Concurrency:
//   - Mutations under mu write lock, queries under read lock.

package core

import "fmt"

// AddTransition inserts or overwrites the transition for (s, sym). Both
// endpoints are registered if missing; no other side effect.
//
// Errors:
//   - ErrBadState: s or next is negative.
//   - ErrUnknownSymbol: sym is not in the alphabet.
//
// Complexity: O(1) amortized.
func (a *Automaton) AddTransition(s State, sym Symbol, next State) error {
	if s < 0 || next < 0 {
		return fmt.Errorf("AddTransition(%d,%q,%d): %w", s, sym, next, ErrBadState)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.alphabet.Contains(sym) {
		return fmt.Errorf("AddTransition(%d,%q,%d): %w", s, sym, next, ErrUnknownSymbol)
	}
	a.reg.register(next)
	a.reg.register(s).out[sym] = next

	return nil
}

// RemoveTransition deletes the transition for (s, sym). States stay registered.
//
// Errors:
//   - ErrStateNotFound, ErrSymbolNotFound.
//
// Complexity: O(1).
func (a *Automaton) RemoveTransition(s State, sym Symbol) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	n, ok := a.reg.Lookup(s)
	if !ok {
		return fmt.Errorf("RemoveTransition(%d,%q): %w", s, sym, ErrStateNotFound)
	}
	if _, ok = n.out[sym]; !ok {
		return fmt.Errorf("RemoveTransition(%d,%q): %w", s, sym, ErrSymbolNotFound)
	}
	delete(n.out, sym)

	return nil
}

// Relabel moves the transition (s, from, d) to (s, to, d) atomically.
//
// Errors:
//   - ErrStateNotFound, ErrSymbolNotFound: no transition (s, from).
//   - ErrUnknownSymbol: to is not in the alphabet.
//   - ErrTransitionExists: (s, to) is already defined.
//
// Complexity: O(1).
func (a *Automaton) Relabel(s State, from, to Symbol) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	n, ok := a.reg.Lookup(s)
	if !ok {
		return fmt.Errorf("Relabel(%d,%q→%q): %w", s, from, to, ErrStateNotFound)
	}
	d, ok := n.out[from]
	if !ok {
		return fmt.Errorf("Relabel(%d,%q→%q): %w", s, from, to, ErrSymbolNotFound)
	}
	if !a.alphabet.Contains(to) {
		return fmt.Errorf("Relabel(%d,%q→%q): %w", s, from, to, ErrUnknownSymbol)
	}
	if _, taken := n.out[to]; taken && from != to {
		return fmt.Errorf("Relabel(%d,%q→%q): %w", s, from, to, ErrTransitionExists)
	}
	delete(n.out, from)
	n.out[to] = d

	return nil
}

// Navigate returns the destination reachable from s on sym.
//
// Errors:
//   - ErrStateNotFound: s is not registered.
//   - ErrSymbolNotFound: no transition; an expected outcome while probing.
//
// Complexity: O(1).
func (a *Automaton) Navigate(s State, sym Symbol) (State, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n, ok := a.reg.Lookup(s)
	if !ok {
		return 0, fmt.Errorf("Navigate(%d,%q): %w", s, sym, ErrStateNotFound)
	}
	to, ok := n.out[sym]
	if !ok {
		return 0, fmt.Errorf("Navigate(%d,%q): %w", s, sym, ErrSymbolNotFound)
	}

	return to, nil
}

// Step is the comma-ok form of Navigate.
// Complexity: O(1).
func (a *Automaton) Step(s State, sym Symbol) (State, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n, ok := a.reg.Lookup(s)
	if !ok {
		return 0, false
	}

	return n.Next(sym)
}

// HasTransition reports whether (s, sym) is defined.
func (a *Automaton) HasTransition(s State, sym Symbol) bool {
	_, ok := a.Step(s, sym)
	return ok
}

// Enabled returns the symbols with a transition from s, sorted ascending.
// An unregistered state has no enabled symbols.
// Complexity: O(d·log d).
func (a *Automaton) Enabled(s State) []Symbol {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n, ok := a.reg.Lookup(s)
	if !ok {
		return nil
	}

	return n.symbols()
}

// Transitions returns every transition sorted by (From, Symbol).
// Complexity: O(T·log T).
func (a *Automaton) Transitions() []Transition {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.transitionsLocked()
}

// TransitionCount is the number of transitions.
// Complexity: O(N).
func (a *Automaton) TransitionCount() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	total := 0
	for _, n := range a.reg.nodes {
		total += len(n.out)
	}

	return total
}

// transitionsLocked relies on IDs() and symbols() being sorted.
func (a *Automaton) transitionsLocked() []Transition {
	var out []Transition
	for _, id := range a.reg.IDs() {
		n, _ := a.reg.Lookup(id)
		for _, sym := range n.symbols() {
			out = append(out, Transition{From: id, Symbol: sym, To: n.out[sym]})
		}
	}

	return out
}
