// Package fault turns a fault-free automaton into a plant with labelled
// fault classes.
//
//   - Inject relabels randomly chosen observable transitions (s, σ, d) to
//     (s, f, d) where f is the symbol of a fault class. Every class labels at
//     least one transition; self-loops on the initial state are never chosen.
//     Placements closing a cycle of fault transitions are rejected with
//     ErrSilentCycle unless WithAllowSilentCycles is given.
//   - Compose builds the reachable synchronous product of a faulty plant and
//     a fault-free normal component: shared observable symbols move both,
//     fault symbols move only the faulty coordinate.
//   - Validate checks that every declared class still labels a transition,
//     which composition may break when fault transitions become unreachable.
//   - DefaultClasses and CountFor supply the default class names and count.
package fault
