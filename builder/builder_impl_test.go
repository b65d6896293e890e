// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations in the builder package.
package builder_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rgodd/builder"
	"github.com/katalvlaran/rgodd/core"
)

func build(t *testing.T, con builder.Constructor, opts ...builder.BuilderOption) *core.Automaton {
	t.Helper()
	a, err := builder.BuildAutomaton(opts, con)
	require.NoError(t, err)

	return a
}

// TestFixtures covers the deterministic constructors.
func TestFixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		states int
		trans  int
	}{
		{"Cycle(5)", builder.Cycle(5, 'a'), 5, 5},
		{"Cycle(1)", builder.Cycle(1, 'a'), 1, 1},
		{"Path(4)", builder.Path(4, 'b'), 4, 3},
		{"Path(1)", builder.Path(1, 'b'), 1, 0},
		{"Complete(3)", builder.Complete(3), 3, 3 * builder.DefaultObservable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := build(t, tc.ctor)
			assert.Equal(t, tc.states, a.StateCount())
			assert.Equal(t, tc.trans, a.TransitionCount())
			assert.NoError(t, a.Validate())
		})
	}

	c := build(t, builder.Cycle(3, 'a'))
	to, ok := c.Step(2, 'a')
	require.True(t, ok)
	assert.Equal(t, core.State(0), to)
}

// TestFixtures_Errors covers parameter and symbol failures.
func TestFixtures_Errors(t *testing.T) {
	_, err := builder.BuildAutomaton(nil, builder.Cycle(0, 'a'))
	assert.ErrorIs(t, err, builder.ErrTooFewStates)

	_, err = builder.BuildAutomaton(nil, builder.Path(3, 'z'))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrUnknownSymbol)

	_, err = builder.BuildAutomaton(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

// TestFromTransitions reproduces a list and rejects conflicts and orphans.
func TestFromTransitions(t *testing.T) {
	ts := []core.Transition{{From: 0, Symbol: 'a', To: 1}, {From: 1, Symbol: 'b', To: 0}}
	a := build(t, builder.FromTransitions(0, ts))
	assert.Equal(t, ts, a.Transitions())

	dup := append(ts, core.Transition{From: 0, Symbol: 'a', To: 0})
	_, err := builder.BuildAutomaton(nil, builder.FromTransitions(0, dup))
	assert.ErrorIs(t, err, core.ErrNondeterministic)

	orphan := append(ts, core.Transition{From: 5, Symbol: 'a', To: 0})
	_, err = builder.BuildAutomaton(nil, builder.FromTransitions(0, orphan))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, core.ErrUnreachableState)
}

// TestRandomDFA_Validation checks that bad parameters fail before any work.
func TestRandomDFA_Validation(t *testing.T) {
	seed := builder.WithSeed(1)
	_, err := builder.BuildAutomaton([]builder.BuilderOption{seed}, builder.RandomDFA(0, 3))
	assert.ErrorIs(t, err, builder.ErrInvalidBounds)

	_, err = builder.BuildAutomaton([]builder.BuilderOption{seed}, builder.RandomDFA(4, 3))
	assert.ErrorIs(t, err, builder.ErrInvalidBounds)

	_, err = builder.BuildAutomaton(
		[]builder.BuilderOption{seed, builder.WithObservable(2), builder.WithDensity(2.5)},
		builder.RandomDFA(3, 3),
	)
	assert.ErrorIs(t, err, builder.ErrAlphabetExhausted)

	_, err = builder.BuildAutomaton(nil, builder.RandomDFA(3, 3))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// TestRandomDFA_FiveStates is the fixed-size scenario: exactly five reachable
// states and a deterministic map.
func TestRandomDFA_FiveStates(t *testing.T) {
	a := build(t, builder.RandomDFA(5, 5), builder.WithSeed(42))
	assert.Equal(t, 5, a.StateCount())
	assert.Empty(t, a.Unreachable())

	var reach int
	for range a.ReachableStates(a.Initial()) {
		reach++
	}
	assert.Equal(t, 5, reach)
	// round(1.5·5) = 8 transitions.
	assert.Equal(t, 8, a.TransitionCount())
}

// TestRandomDFA_SingleState covers the n=1 boundary with and without self-loops.
func TestRandomDFA_SingleState(t *testing.T) {
	noLoops := build(t, builder.RandomDFA(1, 1), builder.WithSeed(3), builder.WithSelfLoops(false))
	assert.Equal(t, 1, noLoops.StateCount())
	assert.Zero(t, noLoops.TransitionCount())

	loops := build(t, builder.RandomDFA(1, 1), builder.WithSeed(3))
	assert.Equal(t, 1, loops.StateCount())
	st := loops.Stats()
	assert.Equal(t, st.Transitions, st.SelfLoops)
	assert.Equal(t, 2, st.Transitions) // round(1.5·1)
}

// TestRandomDFA_NoSelfLoops never emits s -σ-> s when disabled.
func TestRandomDFA_NoSelfLoops(t *testing.T) {
	a := build(t, builder.RandomDFA(6, 12), builder.WithSeed(9), builder.WithSelfLoops(false), builder.WithDensity(3))
	assert.Zero(t, a.Stats().SelfLoops)
}

// TestRandomDFA_Seeded returns identical automata for identical seeds.
func TestRandomDFA_Seeded(t *testing.T) {
	a := build(t, builder.RandomDFA(3, 30), builder.WithSeed(11))
	b := build(t, builder.RandomDFA(3, 30), builder.WithSeed(11))
	assert.Equal(t, a.Transitions(), b.Transitions())
	assert.Equal(t, a.States(), b.States())
}

// TestRandomDFA_Properties checks reachability, determinism and the
// transition-count target over random seeds and bounds.
func TestRandomDFA_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("generated automata are connected and deterministic", prop.ForAll(
		func(seed int64, lo, span, k int) bool {
			a, err := builder.BuildAutomaton(
				[]builder.BuilderOption{builder.WithSeed(seed), builder.WithObservable(k)},
				builder.RandomDFA(lo, lo+span),
			)
			if err != nil {
				return false
			}
			n := a.StateCount()
			if n < lo || n > lo+span || len(a.Unreachable()) != 0 {
				return false
			}
			seen := make(map[[2]int]bool)
			for _, tr := range a.Transitions() {
				key := [2]int{int(tr.From), int(tr.Symbol)}
				if seen[key] || !a.Alphabet().IsObservable(tr.Symbol) {
					return false
				}
				seen[key] = true
			}
			return a.TransitionCount() >= n-1 && a.TransitionCount() <= n*k
		},
		gen.Int64(),
		gen.IntRange(1, 25),
		gen.IntRange(0, 15),
		gen.IntRange(2, 6),
	))

	properties.TestingRun(t)
}
