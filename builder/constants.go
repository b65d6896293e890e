// Package builder defines shared constants used by automaton builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomDFA is the canonical name for the RandomDFA constructor.
	MethodRandomDFA = "RandomDFA"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodFromTransitions is the canonical name for the FromTransitions constructor.
	MethodFromTransitions = "FromTransitions"
)

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultDensity is the default target average out-degree of RandomDFA.
const DefaultDensity = 1.5

// DefaultObservable is the default number of observable symbols ('a'..'d').
const DefaultObservable = 4

// MinStates is the smallest automaton any constructor produces.
const MinStates = 1
