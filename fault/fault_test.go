package fault_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rgodd/builder"
	"github.com/katalvlaran/rgodd/core"
	"github.com/katalvlaran/rgodd/fault"
)

func tr(from core.State, sym core.Symbol, to core.State) core.Transition {
	return core.Transition{From: from, Symbol: sym, To: to}
}

func fixture(t *testing.T, al core.Alphabet, initial core.State, ts ...core.Transition) *core.Automaton {
	t.Helper()
	a, err := builder.BuildAutomaton(
		[]builder.BuilderOption{builder.WithAlphabet(al)},
		builder.FromTransitions(initial, ts),
	)
	require.NoError(t, err)

	return a
}

var obsAB = core.MustAlphabet(core.ObservableRange(2), nil)

// fiveSix is a 5-state automaton with 6 transitions: a ring on 'a' plus 0 -b-> 2.
func fiveSix(t *testing.T) *core.Automaton {
	return fixture(t, obsAB, 0,
		tr(0, 'a', 1), tr(1, 'a', 2), tr(2, 'a', 3), tr(3, 'a', 4), tr(4, 'a', 0), tr(0, 'b', 2))
}

// TestInject_ExactCount relabels exactly the requested transitions and
// leaves every other transition unchanged.
func TestInject_ExactCount(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		a := fiveSix(t)
		before := a.Transitions()
		inj, err := fault.Inject(a, fault.DefaultClasses(1), 2, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		assert.Equal(t, before, a.Transitions(), "input must not change")
		require.Len(t, inj.Relabelled, 2)

		relabelled := make(map[[2]core.State]bool)
		for _, r := range inj.Relabelled {
			relabelled[[2]core.State{r.From, r.To}] = true
			assert.Equal(t, core.Symbol('A'), r.Fault)
			assert.Equal(t, "F1", r.Class)
		}
		var faults int
		for _, t2 := range inj.Automaton.Transitions() {
			if t2.Symbol == 'A' {
				faults++
				continue
			}
			assert.False(t, relabelled[[2]core.State{t2.From, t2.To}])
		}
		assert.Equal(t, 2, faults)
		assert.Equal(t, 6, inj.Automaton.TransitionCount())
		assert.NoError(t, inj.Automaton.Validate())
	}
}

// TestInject_AccessWords replays each access word to the relabelled source.
func TestInject_AccessWords(t *testing.T) {
	a := fiveSix(t)
	inj, err := fault.Inject(a, fault.DefaultClasses(1), 3, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	for _, r := range inj.Relabelled {
		cur := a.Initial()
		for _, sym := range r.Access {
			next, ok := a.Step(cur, sym)
			require.True(t, ok)
			cur = next
		}
		assert.Equal(t, r.From, cur)
	}
}

// TestInject_MultiClass gives every class at least one transition.
func TestInject_MultiClass(t *testing.T) {
	classes := fault.DefaultClasses(3)
	inj, err := fault.Inject(fiveSix(t), classes, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.NoError(t, fault.Validate(inj.Automaton, classes))
	per := inj.Automaton.Stats().PerClass
	assert.Equal(t, map[string]int{"F1": 1, "F2": 1, "F3": 1}, per)
}

// TestInject_Errors covers argument and capacity failures.
func TestInject_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := fiveSix(t)

	_, err := fault.Inject(nil, fault.DefaultClasses(1), 1, rng)
	assert.ErrorIs(t, err, fault.ErrAutomatonNil)
	_, err = fault.Inject(a, nil, 1, rng)
	assert.ErrorIs(t, err, fault.ErrNoFaultClasses)
	_, err = fault.Inject(a, fault.DefaultClasses(1), 1, nil)
	assert.ErrorIs(t, err, fault.ErrNeedRandSource)
	_, err = fault.Inject(a, fault.DefaultClasses(1), 7, rng)
	assert.ErrorIs(t, err, fault.ErrNotEnoughTransitions)

	// The only transition is a self-loop on the initial state.
	loop := fixture(t, obsAB, 0, tr(0, 'a', 0))
	_, err = fault.Inject(loop, fault.DefaultClasses(1), 1, rng)
	assert.ErrorIs(t, err, fault.ErrNotEnoughTransitions)

	// A class name reused with another symbol.
	inj, err := fault.Inject(a, fault.DefaultClasses(1), 1, rng)
	require.NoError(t, err)
	_, err = fault.Inject(inj.Automaton, []core.FaultClass{{Name: "F1", Symbol: 'B'}}, 1, rng)
	assert.ErrorIs(t, err, core.ErrBadAlphabet)
}

// TestInject_SilentCycle rejects a fault-only cycle unless allowed.
func TestInject_SilentCycle(t *testing.T) {
	ring := fixture(t, obsAB, 0, tr(0, 'a', 1), tr(1, 'a', 0))
	_, err := fault.Inject(ring, fault.DefaultClasses(1), 2, rand.New(rand.NewSource(2)))
	assert.ErrorIs(t, err, fault.ErrSilentCycle)

	inj, err := fault.Inject(ring, fault.DefaultClasses(1), 2, rand.New(rand.NewSource(2)), fault.WithAllowSilentCycles())
	require.NoError(t, err)
	assert.Equal(t, 2, inj.Automaton.Stats().FaultTransitions)
}

// TestCountFor covers the floor at the class count.
func TestCountFor(t *testing.T) {
	assert.Equal(t, 1, fault.CountFor(3, 1, fault.DefaultFraction))
	assert.Equal(t, 2, fault.CountFor(3, 2, fault.DefaultFraction))
	assert.Equal(t, 4, fault.CountFor(40, 2, fault.DefaultFraction))
	assert.Len(t, fault.DefaultClasses(-1), 0)
	assert.Equal(t, core.FaultClass{Name: "F2", Symbol: 'B'}, fault.DefaultClasses(2)[1])
}

// TestCompose_Product checks the product rules on a small plant.
func TestCompose_Product(t *testing.T) {
	withF := core.MustAlphabet(core.ObservableRange(2), fault.DefaultClasses(1))
	faulty := fixture(t, withF, 0, tr(0, 'a', 1), tr(1, 'A', 2), tr(2, 'b', 0))
	normal := fixture(t, obsAB, 0, tr(0, 'a', 0), tr(0, 'b', 1), tr(1, 'b', 0))

	c, err := fault.Compose(faulty, normal)
	require.NoError(t, err)
	assert.Equal(t, []fault.StatePair{{0, 0}, {1, 0}, {2, 0}, {0, 1}}, c.Pairs)
	assert.Equal(t, []core.Transition{tr(0, 'a', 1), tr(1, 'A', 2), tr(2, 'b', 3)}, c.Automaton.Transitions())
	assert.NoError(t, c.Automaton.Validate())
	assert.NoError(t, fault.Validate(c.Automaton, fault.DefaultClasses(1)))
}

// TestCompose_LostClass detects a class whose transitions became unreachable.
func TestCompose_LostClass(t *testing.T) {
	withF := core.MustAlphabet(core.ObservableRange(2), fault.DefaultClasses(1))
	faulty := fixture(t, withF, 0, tr(0, 'a', 0), tr(0, 'b', 1), tr(1, 'A', 0))
	normal := fixture(t, obsAB, 0, tr(0, 'a', 0))

	c, err := fault.Compose(faulty, normal)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Automaton.StateCount())
	assert.ErrorIs(t, fault.Validate(c.Automaton, fault.DefaultClasses(1)), fault.ErrClassUnlabelled)
}

// TestCompose_Errors covers nil inputs and a faulty normal component.
func TestCompose_Errors(t *testing.T) {
	withF := core.MustAlphabet(core.ObservableRange(2), fault.DefaultClasses(1))
	bad := fixture(t, withF, 0, tr(0, 'A', 1))
	_, err := fault.Compose(bad, nil)
	assert.ErrorIs(t, err, fault.ErrAutomatonNil)
	_, err = fault.Compose(bad, bad)
	assert.ErrorIs(t, err, fault.ErrNormalHasFaults)

	assert.ErrorIs(t, fault.Validate(bad, fault.DefaultClasses(2)), core.ErrUnknownSymbol)
}

// TestInject_Properties checks class coverage and structure preservation
// over random automata.
func TestInject_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("injection keeps structure and covers every class", prop.ForAll(
		func(seed int64, n, k int) bool {
			a, err := builder.BuildAutomaton(
				[]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomDFA(n, n),
			)
			if err != nil {
				return false
			}
			classes := fault.DefaultClasses(k)
			count := fault.CountFor(a.TransitionCount(), k, fault.DefaultFraction)
			inj, err := fault.Inject(a, classes, count, rand.New(rand.NewSource(seed)))
			if errors.Is(err, fault.ErrSilentCycle) || errors.Is(err, fault.ErrNotEnoughTransitions) {
				return true
			}
			if err != nil {
				return false
			}
			st := inj.Automaton.Stats()
			return fault.Validate(inj.Automaton, classes) == nil &&
				st.FaultTransitions == count &&
				st.Transitions == a.TransitionCount() &&
				inj.Automaton.Validate() == nil
		},
		gen.Int64(),
		gen.IntRange(2, 30),
		gen.IntRange(1, 3),
	))

	properties.TestingRun(t)
}
