// SPDX-License-Identifier: MIT
// Package: rgodd/verifier
//
// verify.go: indeterminate-cycle search over the twin plant.
//
// For each class F (in alphabet order):
//  1. Keep pair states with F ∈ L1 and F ∉ L2.
//  2. Split the induced subgraph into strongly connected components.
//  3. The first edge (in construction order) inside one component whose kind
//     is Sync or Left closes an indeterminate cycle; the witness is that edge
//     followed by a shortest path back inside the component.
//
// Self-loops never enter the gonum graph (simple.DirectedGraph rejects them);
// a self-loop is always internal to its own component.

package verifier

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/rgodd/core"
)

// Witness is an indeterminate cycle for one fault class.
// Cycle is closed (first == last) and Symbols[i] labels Cycle[i]→Cycle[i+1].
type Witness struct {
	Class   string
	Cycle   []PairState
	Symbols []core.Symbol
}

// Result is the verdict of Verify.
type Result struct {
	Diagnosable bool
	PairStates  int
	PairEdges   int
	// Ambiguous lists every class with an indeterminate cycle.
	Ambiguous []string
	// Witness is set for the first ambiguous class.
	Witness *Witness
}

// Verify decides whether every fault class of a is diagnosable.
//
// Errors: see Build. An automaton without fault classes is diagnosable.
//
// Complexity: O(k·(P+E)) on top of Build for k classes.
func Verify(a *core.Automaton, opts ...Option) (*Result, error) {
	tp, err := Build(a, opts...)
	if err != nil {
		return nil, fmt.Errorf("Verify: %w", err)
	}
	res := &Result{PairStates: len(tp.States), PairEdges: len(tp.Edges), Ambiguous: []string{}}
	for ci, fc := range tp.Classes {
		w := tp.indeterminate(ci)
		if w == nil {
			continue
		}
		res.Ambiguous = append(res.Ambiguous, fc.Name)
		if res.Witness == nil {
			w.Class = fc.Name
			res.Witness = w
		}
	}
	res.Diagnosable = len(res.Ambiguous) == 0

	return res, nil
}

// indeterminate returns a witness cycle for class ci, or nil.
func (tp *TwinPlant) indeterminate(ci int) *Witness {
	in := make([]bool, len(tp.States))
	g := simple.NewDirectedGraph()
	for i, p := range tp.States {
		if p.L1.Has(ci) && !p.L2.Has(ci) {
			in[i] = true
			g.AddNode(simple.Node(i))
		}
	}
	if g.Nodes().Len() == 0 {
		return nil
	}
	for _, e := range tp.Edges {
		if e.From != e.To && in[e.From] && in[e.To] {
			g.SetEdge(g.NewEdge(simple.Node(e.From), simple.Node(e.To)))
		}
	}

	comp := make(map[int]int, g.Nodes().Len())
	for c, scc := range topo.TarjanSCC(g) {
		for _, n := range scc {
			comp[int(n.ID())] = c
		}
	}

	for ei, e := range tp.Edges {
		if e.Kind == Right || !in[e.From] || !in[e.To] || comp[e.From] != comp[e.To] {
			continue
		}

		return tp.cycleThrough(ei, comp)
	}

	return nil
}

// cycleThrough closes edge ei with a shortest path from its target back to
// its source that stays inside the source's component.
func (tp *TwinPlant) cycleThrough(ei int, comp map[int]int) *Witness {
	e := tp.Edges[ei]
	w := &Witness{
		Cycle:   []PairState{tp.States[e.From], tp.States[e.To]},
		Symbols: []core.Symbol{e.Symbol},
	}
	if e.From == e.To {
		return w
	}

	c := comp[e.From]
	via := map[int]int{e.To: -1} // pair state -> edge that reached it
	queue := []int{e.To}
	for len(queue) > 0 && !hasKey(via, e.From) {
		u := queue[0]
		queue = queue[1:]
		for _, oi := range tp.out[u] {
			v := tp.Edges[oi].To
			if hasKey(via, v) {
				continue
			}
			if cv, ok := comp[v]; !ok || cv != c {
				continue
			}
			via[v] = oi
			queue = append(queue, v)
		}
	}

	var back []int
	for v := e.From; v != e.To; v = tp.Edges[via[v]].From {
		back = append(back, via[v])
	}
	for i := len(back) - 1; i >= 0; i-- {
		be := tp.Edges[back[i]]
		w.Cycle = append(w.Cycle, tp.States[be.To])
		w.Symbols = append(w.Symbols, be.Symbol)
	}

	return w
}

func hasKey(m map[int]int, k int) bool {
	_, ok := m[k]
	return ok
}
