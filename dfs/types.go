// Package dfs defines types and options for depth-first cycle search
// over a core.Automaton.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/rgodd/core"
)

// Visitation states of a state during DFS.
const (
	White = iota // White: the state has not been visited yet.
	Gray         // Gray: the state is on the recursion stack.
	Black        // Black: the state and all its descendants have been fully explored.
)

var (
	// ErrAutomatonNil is returned when a nil *core.Automaton is passed.
	ErrAutomatonNil = errors.New("dfs: automaton is nil")

	// ErrCycleDetected is a convenience sentinel for callers that treat any
	// cycle in the filtered sub-automaton as a failure.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DetectCycles.
type Option func(*Options)

// Options holds configurable parameters for cycle search.
type Options struct {
	// Ctx allows cancellation; checked once per discovered state.
	Ctx context.Context

	// FilterSymbol, if non-nil, restricts the search to transitions whose
	// symbol satisfies it.
	FilterSymbol func(sym core.Symbol) bool
}

// DefaultOptions returns Options with a background context and no filter.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context for cancellation. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSymbolFilter restricts the search to transitions labelled by symbols
// for which fn returns true.
func WithSymbolFilter(fn func(sym core.Symbol) bool) Option {
	return func(o *Options) {
		o.FilterSymbol = fn
	}
}
