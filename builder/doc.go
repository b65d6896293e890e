// Package builder produces core.Automaton values: random connected DFAs for
// fault-diagnosis experiments and small deterministic fixtures.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, density, alphabet and the self-loop policy.
//   - Constructors:
//     – RandomDFA(min, max):      random spanning tree plus extra transitions.
//     – Cycle(n, sym), Path(n, sym), Complete(n): deterministic shapes.
//     – FromTransitions(initial, ts): explicit transition lists.
//   - Validation helpers: validateBounds, validateMin, validateDensity.
//   - Shared constants: DefaultDensity, DefaultObservable, MinStates and the
//     Method* tokens used as error context.
//
// Guarantees:
//
//   - Every constructed automaton passes core.Validate: every state is
//     reachable from state 0 and only alphabet symbols are used.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Parameter errors (ErrInvalidBounds, ErrAlphabetExhausted,
//     ErrNeedRandSource) are returned before any generation work.
//   - Same seed and options ⇒ identical automaton.
//
// Example:
//
//	a, err := builder.BuildAutomaton(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithObservable(3)},
//		builder.RandomDFA(5, 10),
//	)
package builder
