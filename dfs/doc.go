// Package dfs implements depth-first cycle detection on a core.Automaton.
//
// What:
//
//   - DetectCycles: three-color DFS (White, Gray, Black) from every unvisited
//     state, recording one closed cycle per back edge, deduplicated by the
//     signature of its minimal rotation.
//   - HasCycle: the boolean form.
//   - WithSymbolFilter restricts the search to a sub-alphabet. The fault
//     model uses it with Alphabet.IsFault to reject placements that create a
//     cycle made only of unobservable transitions.
//
// Complexity:
//
//   - DetectCycles: Time O(N+T + C·L), Memory O(N+L_max)
//
// Errors:
//
//   - ErrAutomatonNil   automaton pointer is nil
//   - context.Canceled  search canceled via WithContext
package dfs
