// File: registry.go
// Role: State registry owned by exactly one Automaton.
//
// The registry maps each State to its Node (the out-transition table). It has
// no lock of its own; the owning Automaton's mutex guards it.

package core

import "sort"

// Node is one registered state and its outgoing transitions.
type Node struct {
	ID  State
	out map[Symbol]State
}

// Next returns the destination on sym, if any.
func (n *Node) Next(sym Symbol) (State, bool) {
	to, ok := n.out[sym]
	return to, ok
}

// Degree is the number of outgoing transitions.
func (n *Node) Degree() int { return len(n.out) }

// symbols returns the enabled symbols sorted ascending.
func (n *Node) symbols() []Symbol {
	out := make([]Symbol, 0, len(n.out))
	for s := range n.out {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Registry is the node table of one automaton.
type Registry struct {
	nodes map[State]*Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[State]*Node)}
}

// Lookup returns the node for s.
func (r *Registry) Lookup(s State) (*Node, bool) {
	n, ok := r.nodes[s]
	return n, ok
}

// Len is the number of registered states.
func (r *Registry) Len() int { return len(r.nodes) }

// Reset drops every node.
func (r *Registry) Reset() {
	r.nodes = make(map[State]*Node)
}

// IDs returns the registered states sorted ascending.
func (r *Registry) IDs() []State {
	ids := make([]State, 0, len(r.nodes))
	for id := range r.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// register returns the node for s, creating it when missing (idempotent).
func (r *Registry) register(s State) *Node {
	if n, ok := r.nodes[s]; ok {
		return n
	}
	n := &Node{ID: s, out: make(map[Symbol]State)}
	r.nodes[s] = n

	return n
}

// clone deep-copies the registry.
func (r *Registry) clone() *Registry {
	c := &Registry{nodes: make(map[State]*Node, len(r.nodes))}
	for id, n := range r.nodes {
		cn := &Node{ID: id, out: make(map[Symbol]State, len(n.out))}
		for s, to := range n.out {
			cn.out[s] = to
		}
		c.nodes[id] = cn
	}

	return c
}
