// Package dfs implements cycle detection for core.Automaton.
// DetectCycles runs a depth-first search with three-color marking from every
// unvisited state and records one simple cycle per back edge. Each cycle is
// rotated to its lexicographically minimal form via Booth's algorithm in O(L)
// time, and the final list is sorted for deterministic output.
//
// Transitions are directed, so a cycle and its reversal are distinct and only
// forward rotations are compared.
//
// Complexity:
//
//   - Time:   O(N + T + C·L)   (C=#recorded cycles, L=avg cycle length)
//   - Memory: O(N + L_max)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rgodd/core"
)

// DetectCycles inspects a for cycles, optionally restricted by
// WithSymbolFilter. Returns (true, cycles, nil) if any cycle exists and
// (false, nil, nil) otherwise. Every returned cycle is closed: its first and
// last elements are equal; a self-loop on s is reported as [s, s].
//
// The existence answer is exact. The list holds one cycle per back edge and
// is not an enumeration of every simple cycle.
func DetectCycles(a *core.Automaton, opts ...Option) (bool, [][]core.State, error) {
	if a == nil {
		return false, nil, ErrAutomatonNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	states := a.States()
	s := &cycleSearch{
		aut:   a,
		opts:  o,
		color: make(map[core.State]int, len(states)),
		path:  make([]core.State, 0, len(states)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range states {
		if s.color[v] == White {
			if err := s.visit(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}

	if len(s.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(s.cycles, func(i, j int) bool {
		return JoinSig(s.cycles[i]) < JoinSig(s.cycles[j])
	})

	return true, s.cycles, nil
}

// HasCycle reports whether the (filtered) automaton contains any cycle.
func HasCycle(a *core.Automaton, opts ...Option) (bool, error) {
	has, _, err := DetectCycles(a, opts...)
	return has, err
}

// cycleSearch is the mutable state of one DetectCycles run.
type cycleSearch struct {
	aut    *core.Automaton
	opts   Options
	color  map[core.State]int
	path   []core.State
	seen   map[string]struct{}
	cycles [][]core.State
}

// visit performs recursive DFS from id and records a cycle for every
// Gray→Gray back edge it encounters.
func (s *cycleSearch) visit(id core.State) error {
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	s.color[id] = Gray
	s.path = append(s.path, id)

	for _, sym := range s.aut.Enabled(id) {
		if s.opts.FilterSymbol != nil && !s.opts.FilterSymbol(sym) {
			continue
		}
		nxt, ok := s.aut.Step(id, sym)
		if !ok {
			continue
		}
		switch s.color[nxt] {
		case White:
			if err := s.visit(nxt); err != nil {
				return err
			}
		case Gray:
			s.record(nxt)
		}
	}

	s.path = s.path[:len(s.path)-1]
	s.color[id] = Black

	return nil
}

// record extracts the cycle path[idx(start):] + start, canonicalizes it and
// appends it when its signature is new.
func (s *cycleSearch) record(start core.State) {
	idx := IndexOf(s.path, start)
	base := append([]core.State(nil), s.path[idx:]...)

	rot := MinimalRotation(base)
	closed := append(rot, rot[0])
	sig := JoinSig(closed)
	if _, dup := s.seen[sig]; dup {
		return
	}
	s.seen[sig] = struct{}{}
	s.cycles = append(s.cycles, closed)
}
