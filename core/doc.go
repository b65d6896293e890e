// Package core provides the deterministic finite automaton used across rgodd:
// integer states, single-rune symbols, an alphabet split into observable
// symbols and fault classes, and a thread-safe transition table.
//
// The Automaton A = (X, Σ, δ, x0) supports:
//
//   - Deterministic transitions keyed by (state, symbol); AddTransition
//     inserts or overwrites, so two destinations for one key cannot exist.
//   - A per-automaton state Registry (State → *Node). There is no
//     process-wide registry: every automaton owns its nodes, so automata
//     built by concurrent construction calls never share state identifiers.
//   - Explicit navigation results: Step returns (State, bool) for probing,
//     Navigate returns ErrSymbolNotFound when no transition exists.
//   - Lazy breadth-first reachability via ReachableStates (iter.Seq).
//   - Invariant checking via Validate (alphabet membership and reachability
//     from the initial state), wrapping ErrInvariant on violation.
//
// Alphabet:
//
//	ObservableRange(k)                  // a, b, c, ... (k ≤ 26)
//	NewAlphabet(obs, faults)            // disjoint, unique symbols
//	a.IsObservable(sym) / a.IsFault(sym) / a.ClassOf(sym)
//
// Core Methods:
//
//	New(initial, alphabet) *Automaton          // O(1)
//	AddState(s) error                          // O(1)
//	AddTransition(s, sym, next) error          // O(1)
//	RemoveTransition(s, sym) error             // O(1)
//	Relabel(s, from, to Symbol) error          // O(1)
//	Navigate(s, sym) (State, error)            // O(1)
//	Step(s, sym) (State, bool)                 // O(1)
//	Enabled(s) []Symbol                        // O(d·log d)
//	States() []State                           // O(N·log N)
//	Transitions() []Transition                 // O(T·log T)
//	ReachableStates(from) iter.Seq[State]      // O(N+T) when fully consumed
//	Validate() error                           // O(N+T)
//	Clone() *Automaton                         // O(N+T)
//	Stats() Stats                              // O(N+T)
//
// Errors:
//
//	ErrSymbolNotFound   - no transition for (state, symbol); recoverable.
//	ErrStateNotFound    - state is not registered.
//	ErrBadState         - negative state identifier.
//	ErrUnknownSymbol    - symbol is not part of the alphabet.
//	ErrTransitionExists - relabel target key already occupied.
//	ErrBadAlphabet      - duplicate or empty symbols / class names.
//	ErrInvariant        - umbrella for ErrNondeterministic and ErrUnreachableState.
//
// Concurrency:
//
//	All methods are safe for concurrent use; a single sync.RWMutex guards
//	the registry and alphabet. Algorithms in sibling packages snapshot data
//	through these methods and never hold the lock across callbacks.
package core
