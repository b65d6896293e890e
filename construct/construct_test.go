package construct_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rgodd/builder"
	"github.com/katalvlaran/rgodd/construct"
	"github.com/katalvlaran/rgodd/core"
	"github.com/katalvlaran/rgodd/dfaconfig"
	"github.com/katalvlaran/rgodd/fault"
	"github.com/katalvlaran/rgodd/metrics"
	"github.com/katalvlaran/rgodd/store"
	"github.com/katalvlaran/rgodd/verifier"
)

func seed(v int64) *int64 { return &v }

func tr(from core.State, sym core.Symbol, to core.State) core.Transition {
	return core.Transition{From: from, Symbol: sym, To: to}
}

// fixed always returns the same two-symbol plant.
func fixed(ts ...core.Transition) construct.StructureFunc {
	al := core.MustAlphabet(core.ObservableRange(2), nil)
	return func(*rand.Rand, int, int) (*core.Automaton, error) {
		return builder.BuildAutomaton(
			[]builder.BuilderOption{builder.WithAlphabet(al)},
			builder.FromTransitions(0, ts),
		)
	}
}

// converging: only a fault on 0 -b-> 1 is ambiguous.
var converging = []core.Transition{tr(0, 'a', 1), tr(0, 'b', 1), tr(1, 'a', 0)}

// ambiguous: every single-fault placement is ambiguous.
var ambiguous = []core.Transition{tr(0, 'a', 1), tr(0, 'b', 1), tr(1, 'a', 0), tr(1, 'b', 0)}

func TestConstruct_FiveStates(t *testing.T) {
	c := construct.New()
	res, err := c.Construct(context.Background(), construct.Request{MinStates: 5, MaxStates: 5, Seed: seed(1)})
	require.NoError(t, err)

	a := res.Automaton
	assert.Equal(t, 5, a.StateCount())
	assert.Empty(t, a.Unreachable())
	assert.NoError(t, a.Validate())
	assert.Equal(t, core.State(0), res.Initial)
	assert.NoError(t, fault.Validate(a, fault.DefaultClasses(1)))
	assert.NotEmpty(t, res.Faults)
	assert.Nil(t, res.Verdict)

	cfg := res.Config
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, 5, cfg.StateCount)
	assert.Nil(t, cfg.Diagnosable)
	assert.NoError(t, cfg.Validate())
	rebuilt, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, a.Transitions(), rebuilt.Transitions())
}

func TestConstruct_Deterministic(t *testing.T) {
	req := construct.Request{MinStates: 3, MaxStates: 9, Seed: seed(42), Options: construct.Variant{MultiFaulty: true}}
	r1, err := construct.New().Construct(context.Background(), req)
	require.NoError(t, err)
	r2, err := construct.New().Construct(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, r1.Config.Equal(r2.Config))

	// Without a request seed the constructor's seed source decides.
	req.Seed = nil
	r3, err := construct.New(construct.WithSeed(7)).Construct(context.Background(), req)
	require.NoError(t, err)
	r4, err := construct.New(construct.WithSeed(7)).Construct(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, r3.Config.Equal(r4.Config))
}

func TestConstruct_MultiFaultyCoversClasses(t *testing.T) {
	c := construct.New(construct.WithFaultClasses(3))
	for s := int64(0); s < 10; s++ {
		res, err := c.Construct(context.Background(), construct.Request{
			MinStates: 4, MaxStates: 8, Seed: seed(s), Options: construct.Variant{MultiFaulty: true},
		})
		require.NoError(t, err)
		assert.NoError(t, fault.Validate(res.Automaton, fault.DefaultClasses(3)))
		assert.Len(t, res.Config.FaultClasses, 3)
	}
}

func TestConstruct_BoundsRejectedUpFront(t *testing.T) {
	calls := 0
	c := construct.New(construct.WithStructure(func(*rand.Rand, int, int) (*core.Automaton, error) {
		calls++
		return nil, errors.New("unreachable")
	}))
	ctx := context.Background()

	_, err := c.Construct(ctx, construct.Request{MinStates: 6, MaxStates: 5})
	assert.ErrorIs(t, err, builder.ErrInvalidBounds)
	_, err = c.Construct(ctx, construct.Request{MinStates: 0, MaxStates: 5})
	assert.ErrorIs(t, err, builder.ErrInvalidBounds)

	dense := construct.New(construct.WithDensity(3), construct.WithObservable(2))
	_, err = dense.Construct(ctx, construct.Request{MinStates: 2, MaxStates: 5})
	assert.ErrorIs(t, err, builder.ErrAlphabetExhausted)

	assert.Zero(t, calls)
	assert.Nil(t, c.DFAConfig())
}

func TestConstruct_RetriesConverge(t *testing.T) {
	c := construct.New(construct.WithStructure(fixed(converging...)))
	for s := int64(0); s < 20; s++ {
		res, err := c.DiagnosableDFA(context.Background(), 2, 2, false)
		require.NoError(t, err)
		require.NotNil(t, res.Verdict)
		assert.True(t, res.Verdict.Diagnosable)
		require.Len(t, res.Faults, 1)
		f := res.Faults[0]
		assert.False(t, f.From == 0 && f.Observable == 'b', "ambiguous placement accepted")
		require.NotNil(t, res.Config.Diagnosable)
		assert.True(t, *res.Config.Diagnosable)
	}
}

func TestConstruct_Exhausted(t *testing.T) {
	rec := metrics.NewRecorder()
	c := construct.New(
		construct.WithStructure(fixed(ambiguous...)),
		construct.WithRetries(0, 0),
		construct.WithMetrics(rec),
	)
	_, err := c.DiagnosableDFA(context.Background(), 2, 2, false)
	assert.ErrorIs(t, err, construct.ErrConstructionExhausted)
	assert.ErrorIs(t, err, construct.ErrNotDiagnosable)
	assert.Equal(t, 1.0, counter(t, rec.ConstructionsTotal, "diagnosable", metrics.OutcomeExhausted))
	assert.Equal(t, 1.0, counter(t, rec.AttemptsTotal, metrics.StageInject))

	// A larger budget cannot help when every placement is ambiguous.
	c = construct.New(construct.WithStructure(fixed(ambiguous...)), construct.WithRetries(3, 2))
	_, err = c.DiagnosableDFA(context.Background(), 2, 2, false)
	assert.ErrorIs(t, err, construct.ErrConstructionExhausted)
	assert.Nil(t, c.DFAConfig())

	// The same structure is fine when diagnosability is not required.
	res, err := c.RandomDFA(context.Background(), 2, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Attempts.Inject)
}

func TestConstruct_NoFaultRoom(t *testing.T) {
	// A single state with only self-loops offers no eligible transition.
	loop := fixed(tr(0, 'a', 0), tr(0, 'b', 0))
	c := construct.New(construct.WithStructure(loop), construct.WithRetries(5, 2))
	_, err := c.RandomDFA(context.Background(), 1, 1, false)
	assert.ErrorIs(t, err, construct.ErrConstructionExhausted)
	assert.ErrorIs(t, err, fault.ErrNotEnoughTransitions)
}

func TestConstruct_InvariantAborts(t *testing.T) {
	calls := 0
	broken := func(*rand.Rand, int, int) (*core.Automaton, error) {
		calls++
		a := core.New(0, core.MustAlphabet(core.ObservableRange(2), nil))
		if err := a.AddTransition(0, 'a', 1); err != nil {
			return nil, err
		}
		if err := a.AddTransition(1, 'b', 0); err != nil {
			return nil, err
		}
		return a, a.AddState(7)
	}
	c := construct.New(construct.WithStructure(broken))
	_, err := c.RandomDFA(context.Background(), 2, 2, false)
	assert.ErrorIs(t, err, core.ErrInvariant)
	assert.NotErrorIs(t, err, construct.ErrConstructionExhausted)
	assert.Equal(t, 1, calls)
}

func TestConstruct_ExtraNormal(t *testing.T) {
	// Complete two-symbol components keep every faulty path in the product.
	c := construct.New(construct.WithObservable(2), construct.WithDensity(2), construct.WithSeed(3))
	for i := 0; i < 5; i++ {
		res, err := c.RandomDFAExtraNormal(context.Background(), 3, 6, true)
		require.NoError(t, err)
		a := res.Automaton
		assert.NoError(t, a.Validate())
		assert.NoError(t, fault.Validate(a, fault.DefaultClasses(construct.DefaultFaultClasses)))
		assert.True(t, res.Config.Variant.ExtraNormalComponent)
		assert.Equal(t, []string{"a", "b"}, res.Config.Observable)
	}
}

func TestConstruct_Variants(t *testing.T) {
	type op func(*construct.Constructor, context.Context, int, int, bool) (*construct.Result, error)
	tests := []struct {
		name string
		op   op
		want construct.Variant
	}{
		{"RandomDFA", (*construct.Constructor).RandomDFA, construct.Variant{}},
		{"RandomDFASaved", (*construct.Constructor).RandomDFASaved, construct.Variant{Save: true}},
		{"RandomDFAExtraNormal", (*construct.Constructor).RandomDFAExtraNormal,
			construct.Variant{ExtraNormalComponent: true}},
		{"RandomDFAExtraNormalSaved", (*construct.Constructor).RandomDFAExtraNormalSaved,
			construct.Variant{ExtraNormalComponent: true, Save: true}},
		{"DiagnosableDFA", (*construct.Constructor).DiagnosableDFA,
			construct.Variant{RequireDiagnosability: true}},
		{"DiagnosableDFASaved", (*construct.Constructor).DiagnosableDFASaved,
			construct.Variant{RequireDiagnosability: true, Save: true}},
		{"DiagnosableDFAExtraNormal", (*construct.Constructor).DiagnosableDFAExtraNormal,
			construct.Variant{RequireDiagnosability: true, ExtraNormalComponent: true}},
		{"DiagnosableDFAExtraNormalSaved", (*construct.Constructor).DiagnosableDFAExtraNormalSaved,
			construct.Variant{RequireDiagnosability: true, ExtraNormalComponent: true, Save: true}},
	}
	for _, tc := range tests {
		for _, multi := range []bool{false, true} {
			t.Run(tc.name, func(t *testing.T) {
				mem := store.NewMemoryStore(nil)
				c := construct.New(construct.WithStore(mem), construct.WithSeed(11), construct.WithRetries(32, 64))
				res, err := tc.op(c, context.Background(), 3, 6, multi)
				require.NoError(t, err)

				want := tc.want
				want.MultiFaulty = multi
				assert.Equal(t, want, res.Config.Variant)
				assert.NoError(t, res.Automaton.Validate())
				assert.True(t, res.Config.Equal(c.DFAConfig()))

				if want.RequireDiagnosability {
					require.NotNil(t, res.Verdict)
					assert.True(t, res.Verdict.Diagnosable)
				} else {
					assert.Nil(t, res.Verdict)
				}
				if want.Save {
					require.NoError(t, res.SaveErr)
					assert.Equal(t, res.Config.ID, res.SavedTo)
					loaded, err := mem.Load(context.Background(), res.SavedTo)
					require.NoError(t, err)
					assert.True(t, res.Config.Equal(loaded))
				} else {
					assert.Zero(t, mem.Len())
					assert.Empty(t, res.SavedTo)
				}
			})
		}
	}
}

// failingStore rejects every save.
type failingStore struct{}

func (failingStore) Save(context.Context, *dfaconfig.DFAConfig) (string, error) {
	return "", errors.New("disk full")
}

func (failingStore) Load(context.Context, string) (*dfaconfig.DFAConfig, error) {
	return nil, store.ErrNotFound
}

func TestConstruct_SaveFailureIsNonFatal(t *testing.T) {
	obs, logs := observer.New(zapcore.WarnLevel)
	c := construct.New(construct.WithStore(failingStore{}), construct.WithLogger(zap.New(obs)))

	res, err := c.RandomDFASaved(context.Background(), 3, 5, false)
	require.NoError(t, err)
	require.NotNil(t, res.Automaton)
	assert.ErrorIs(t, res.SaveErr, construct.ErrPersistence)
	assert.Empty(t, res.SavedTo)
	assert.Equal(t, 1, logs.FilterMessage("config not saved").Len())
	assert.NotNil(t, c.DFAConfig(), "config is recorded even when the save fails")

	res, err = construct.New().RandomDFASaved(context.Background(), 3, 5, false)
	require.NoError(t, err)
	assert.ErrorIs(t, res.SaveErr, construct.ErrNoStore)
}

func TestConstruct_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := construct.New().RandomDFA(ctx, 3, 5, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFAConfig_ReturnsCopy(t *testing.T) {
	c := construct.New()
	res, err := c.RandomDFA(context.Background(), 3, 5, false)
	require.NoError(t, err)

	got := c.DFAConfig()
	require.True(t, res.Config.Equal(got))
	got.Transitions[0].To = 99
	assert.True(t, res.Config.Equal(c.DFAConfig()))
}

func TestConstruct_Concurrent(t *testing.T) {
	c := construct.New(construct.WithStore(store.NewMemoryStore(nil)))
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := c.Construct(context.Background(), construct.Request{
				MinStates: 3, MaxStates: 10, Seed: seed(int64(i)),
				Options: construct.Variant{MultiFaulty: i%2 == 0, Save: true},
			})
			if err == nil {
				err = errors.Join(res.SaveErr, res.Automaton.Validate())
			}
			errs[i] = err
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		assert.NoError(t, err, "call %d", i)
	}
	assert.NotNil(t, c.DFAConfig())
}

func TestConstruct_Metrics(t *testing.T) {
	rec := metrics.NewRecorder()
	c := construct.New(construct.WithMetrics(rec))
	_, err := c.DiagnosableDFA(context.Background(), 3, 5, false)
	require.NoError(t, err)

	assert.Equal(t, 1.0, counter(t, rec.ConstructionsTotal, "diagnosable", metrics.OutcomeOK))
	assert.GreaterOrEqual(t, counter(t, rec.AttemptsTotal, metrics.StageVerify), 1.0)
	assert.GreaterOrEqual(t, counter(t, rec.AttemptsTotal, metrics.StageGenerate), 1.0)
}

// TestDiagnosable_Properties re-runs the verifier on every returned
// automaton and on its rebuilt record.
func TestDiagnosable_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)
	c := construct.New()

	properties.Property("verifier confirms diagnosable constructions", prop.ForAll(
		func(s int64, n int, multi bool) bool {
			res, err := c.Construct(context.Background(), construct.Request{
				MinStates: n, MaxStates: n + 3, Seed: seed(s),
				Options: construct.Variant{MultiFaulty: multi, RequireDiagnosability: true},
			})
			if errors.Is(err, construct.ErrConstructionExhausted) {
				return true
			}
			if err != nil {
				return false
			}
			again, err := verifier.Verify(res.Automaton)
			if err != nil || !again.Diagnosable {
				return false
			}
			rebuilt, err := res.Config.Build()
			if err != nil {
				return false
			}
			fromRecord, err := verifier.Verify(rebuilt)

			return err == nil && fromRecord.Diagnosable && res.Automaton.StateCount() >= n
		},
		gen.Int64(),
		gen.IntRange(2, 7),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func counter(t *testing.T, vec *prometheus.CounterVec, labels ...string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, vec.WithLabelValues(labels...).Write(&m))

	return m.Counter.GetValue()
}
