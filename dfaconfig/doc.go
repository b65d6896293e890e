// Package dfaconfig holds DFAConfig, the serialisable record of a generated
// automaton: its alphabet, transition list, seed and construction variant.
//
// A record produced by FromAutomaton rebuilds the same automaton with Build.
// Records carry yaml, json and validate tags; Validate checks both the
// struct tags and the cross-field rules (symbols declared, one destination
// per (state, symbol), initial state in range).
package dfaconfig
