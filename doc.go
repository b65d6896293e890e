// Package rgodd generates random deterministic automata with labelled fault
// classes and checks them for diagnosability.
//
// 🚀 What is rgodd?
//
//	A small toolkit that brings together:
//		• Core primitives: states, symbols, fault classes, a partial DFA
//		• Builders: random connected DFAs of bounded size and density
//		• Fault injection: relabel reachable transitions into fault classes
//		• Twin-plant verifier: per-class diagnosability with a witness cycle
//		• Orchestrator: retrying construction in eight variants
//		• Persistence: DFAConfig records in YAML or JSON, optionally snappy-compressed
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      Automaton, Alphabet, FaultClass and reachability
//	builder/   functional-options constructors (RandomDFA, FromTransitions, …)
//	bfs/, dfs/ traversals, access words and cycle detection
//	fault/     fault injection, composition with a normal component
//	verifier/  twin plant and diagnosability verdicts
//	construct/ generate, inject, verify, save
//	dfaconfig/ the persisted description of a constructed automaton
//	store/     file and in-memory stores with pluggable codecs
//	settings/, logging/, metrics/ ambient configuration, zap and Prometheus
//
// Quick ASCII example:
//
//	    ┌──a──┐
//	    ▼     │
//	    0──A──▶1
//	    └──a──▶┘
//
// is not diagnosable: after the silent fault A the plant reads a^ω, which the
// fault-free run 0 -a-> 1 -a-> 0 also produces.
//
//	go install github.com/katalvlaran/rgodd/cmd/rgodd@latest
package rgodd
