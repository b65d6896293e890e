// Package core defines the central Automaton, State, Symbol and Transition
// types, the sentinel errors, and the New constructor.
//
// This file declares the data model; alphabet handling lives in alphabet.go
// and the node table in registry.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core automaton operations.
var (
	// ErrSymbolNotFound indicates that no transition is defined for (state, symbol).
	// It is an expected outcome when probing enabled symbols.
	ErrSymbolNotFound = errors.New("core: symbol not found")

	// ErrStateNotFound indicates an operation referenced an unregistered state.
	ErrStateNotFound = errors.New("core: state not found")

	// ErrBadState indicates a negative state identifier.
	ErrBadState = errors.New("core: state id is negative")

	// ErrUnknownSymbol indicates a symbol outside the automaton's alphabet.
	ErrUnknownSymbol = errors.New("core: symbol not in alphabet")

	// ErrTransitionExists indicates that Relabel would overwrite an existing transition.
	ErrTransitionExists = errors.New("core: transition already exists")

	// ErrBadAlphabet indicates duplicate symbols, a zero symbol, or a bad class name.
	ErrBadAlphabet = errors.New("core: invalid alphabet")

	// ErrInvariant is the umbrella for structural defects. Errors that wrap it
	// must abort the current construction instead of being retried.
	ErrInvariant = errors.New("core: automaton invariant violated")

	// ErrNondeterministic indicates two destinations for one (state, symbol) key.
	// The transition table cannot hold such a pair; it is raised when decoding
	// external records.
	ErrNondeterministic = errors.New("core: nondeterministic transition")

	// ErrUnreachableState indicates a state not reachable from the initial state.
	ErrUnreachableState = errors.New("core: unreachable state")
)

// State identifies a node of an automaton. Identifiers are non-negative and
// unique within one automaton.
type State int

// Symbol is a single event label.
type Symbol rune

// String renders the symbol as its character.
func (s Symbol) String() string { return string(rune(s)) }

// Transition is the triple (From, Symbol, To).
type Transition struct {
	From   State
	Symbol Symbol
	To     State
}

// Automaton is a deterministic finite automaton with a partial transition
// function. The zero value is not usable; construct with New.
//
// mu guards initial, alphabet and the registry contents.
type Automaton struct {
	mu sync.RWMutex

	initial  State
	alphabet Alphabet
	reg      *Registry
}

// New creates an automaton over alphabet whose initial state is registered
// immediately. A negative initial state is clamped to 0.
// Complexity: O(1).
func New(initial State, alphabet Alphabet) *Automaton {
	if initial < 0 {
		initial = 0
	}
	a := &Automaton{
		initial:  initial,
		alphabet: alphabet,
		reg:      NewRegistry(),
	}
	a.reg.register(initial)

	return a
}
