// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Automaton.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/rgodd/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartStateNotFound is returned when the start state is not registered.
	ErrStartStateNotFound = errors.New("bfs: start state not found")

	// ErrAutomatonNil is returned if a nil automaton pointer is passed.
	ErrAutomatonNil = errors.New("bfs: automaton is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo and WordTo for states that were not reached.
	ErrNoPath = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	// Receives the state and its depth from the start.
	OnEnqueue func(s core.State, depth int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(s core.State, depth int)

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s core.State, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterSymbol can skip transitions by returning false.
	// Called for each transition (curr, sym, ·).
	FilterSymbol func(curr core.State, sym core.Symbol) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all transitions followed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:          context.Background(),
		OnEnqueue:    func(core.State, int) {},
		OnDequeue:    func(core.State, int) {},
		OnVisit:      func(core.State, int) error { return nil },
		MaxDepth:     0,
		FilterSymbol: func(core.State, core.Symbol) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(s core.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(s core.State, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(s core.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterSymbol skips transitions for which fn returns false.
func WithFilterSymbol(fn func(curr core.State, sym core.Symbol) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterSymbol = fn
		}
	}
}

// ObservableOnly follows observable transitions and skips fault transitions.
func ObservableOnly(al core.Alphabet) Option {
	return WithFilterSymbol(func(_ core.State, sym core.Symbol) bool { return al.IsObservable(sym) })
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: distance (in transitions) from the start.
//   - Parent: predecessor in the BFS tree; the start has no entry.
//   - Via: symbol of the tree transition Parent[s] → s.
type BFSResult struct {
	Order  []core.State
	Depth  map[core.State]int
	Parent map[core.State]core.State
	Via    map[core.State]core.Symbol
}

// Reached reports whether s was discovered.
func (r *BFSResult) Reached(s core.State) bool {
	_, ok := r.Depth[s]
	return ok
}

// PathTo reconstructs the state path from the start to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest core.State) ([]core.State, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("PathTo(%d): %w", dest, ErrNoPath)
	}
	// build reversed path
	path := []core.State{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// WordTo returns the shortest access word from the start to dest, i.e. the
// labels along PathTo(dest). The start state's word is empty.
func (r *BFSResult) WordTo(dest core.State) ([]core.Symbol, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("WordTo(%d): %w", dest, ErrNoPath)
	}
	word := make([]core.Symbol, r.Depth[dest])
	for cur, i := dest, r.Depth[dest]-1; i >= 0; i-- {
		word[i] = r.Via[cur]
		cur = r.Parent[cur]
	}

	return word, nil
}
