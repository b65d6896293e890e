// Package bfs provides breadth-first search over a core.Automaton,
// returning shortest distances, parent links, access words, and visit order.
//
// What
//
//   - Explore states in non-decreasing distance (transition count) from a start state.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: state → distance from start
//   - Parent: state → predecessor in the BFS tree
//   - Via: state → symbol of the tree transition into it
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (may abort).
//   - Transitions can be skipped via WithFilterSymbol; ObservableOnly is the
//     common case of ignoring fault transitions.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Enabled symbols are expanded in ascending order, so the visit sequence and
//	the access words returned by WordTo are fully reproducible.
//
// Complexity (N = |States|, T = |Transitions|)
//
//   - Time:   O(N + T·log d)
//   - Memory: O(N)
//
// Usage
//
//	res, err := bfs.BFS(a, a.Initial(), bfs.ObservableOnly(a.Alphabet()))
//	if err != nil {
//		// ErrAutomatonNil, ErrStartStateNotFound, ErrOptionViolation,
//		// ctx.Err(), or a wrapped OnVisit error
//	}
//	word, _ := res.WordTo(target)
//
// Errors
//
//   - ErrAutomatonNil        if the automaton pointer is nil.
//   - ErrStartStateNotFound  if the start state is not registered.
//   - ErrOptionViolation     for an invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath              from PathTo/WordTo for unreached states.
package bfs
