// Package bfs provides breadth-first search over a core.Automaton,
// returning shortest distances, parent links, access words, and visit order.
//
// BFS explores states in increasing distance from a start state,
// with optional hooks, depth limiting, and symbol filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rgodd/core"
)

// queueItem pairs a state with its BFS depth.
type queueItem struct {
	id    core.State
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	aut     *core.Automaton
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.State]bool
	res     *BFSResult
}

// BFS runs breadth-first search on a starting from start,
// applying any number of functional Options.
// Returns ErrAutomatonNil or ErrStartStateNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(a *core.Automaton, start core.State, opts ...Option) (*BFSResult, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !a.HasState(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartStateNotFound)
	}

	n := a.StateCount()
	w := &walker{
		aut:     a,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.State]bool, n),
		res: &BFSResult{
			Order:  make([]core.State, 0, n),
			Depth:  make(map[core.State]int, n),
			Parent: make(map[core.State]core.State, n),
			Via:    make(map[core.State]core.Symbol, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker) enqueue(id core.State, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueSuccessors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the state in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueSuccessors follows enabled symbols in ascending order, applies
// filtering and MaxDepth, and enqueues each unseen destination.
func (w *walker) enqueueSuccessors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, sym := range w.aut.Enabled(item.id) {
		if !w.opts.FilterSymbol(item.id, sym) {
			continue
		}
		nxt, ok := w.aut.Step(item.id, sym)
		if !ok || w.visited[nxt] {
			continue
		}
		w.res.Parent[nxt] = item.id
		w.res.Via[nxt] = sym
		w.enqueue(nxt, nextDepth)
	}
}
