// Package verifier decides diagnosability of a plant with fault classes
// using the twin-plant construction.
//
// A twin-plant state (x1, L1, x2, L2) pairs two runs of the plant that
// produced the same observation, together with the fault classes each run
// has taken. Observable symbols move both runs; a fault symbol moves one run
// and records its class.
//
// The plant is diagnosable with respect to a class F iff no cycle of the
// twin plant stays inside {F ∈ L1, F ∉ L2} while the faulty run keeps
// moving. Verify reports such a cycle as a Witness.
//
// Complexity: the twin plant has at most (|X|·2^k)² states for k classes.
// WithMaxPairStates bounds the construction.
package verifier
