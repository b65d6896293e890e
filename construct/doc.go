// Package construct drives the generation pipeline: random structure,
// fault injection, optional composition with a fault-free normal component,
// optional diagnosability check, and optional persistence of the resulting
// DFAConfig.
//
// Construct takes a Request whose Variant selects the options; the eight
// named operations (RandomDFA, DiagnosableDFAExtraNormalSaved, ...) are thin
// wrappers over it.
//
// Retries are two nested bounded loops. A rejected fault placement (not
// diagnosable, silent cycle, fault class lost in composition) retries the
// injection on the same structure; when the injection budget is spent, or
// the structure cannot host the faults, a new structure is generated. When
// both budgets are spent Construct returns ErrConstructionExhausted.
//
// Each call owns its random source, automata and retry counters, so one
// Constructor may serve concurrent calls.
package construct
