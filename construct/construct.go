// SPDX-License-Identifier: MIT
// Package: rgodd/construct
//
// construct.go: Constructor and the Construct pipeline.
//
// Attempt structure:
//
//	for g in 0..generateRetries:              // outer: new structure
//	    base := structure(rng, min, max)
//	    for i in 0..injectRetries:            // inner: new fault placement
//	        plant := inject(base)
//	        plant  = compose(plant, normal)  // ExtraNormalComponent
//	        validate classes and invariants
//	        verify(plant)                     // RequireDiagnosability
//
// Rejections (ErrNotDiagnosable, fault.ErrSilentCycle, fault.ErrClassUnlabelled,
// verifier.ErrTwinPlantTooLarge) move to the next inner attempt;
// fault.ErrNotEnoughTransitions moves to the next outer attempt. Anything
// else, core.ErrInvariant in particular, aborts the call.

package construct

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/rgodd/builder"
	"github.com/katalvlaran/rgodd/core"
	"github.com/katalvlaran/rgodd/dfaconfig"
	"github.com/katalvlaran/rgodd/fault"
	"github.com/katalvlaran/rgodd/metrics"
	"github.com/katalvlaran/rgodd/store"
	"github.com/katalvlaran/rgodd/verifier"
)

// Variant selects the construction options.
type Variant = dfaconfig.Variant

// Request is one construction call. A nil Seed draws one from the
// Constructor's seed source.
type Request struct {
	MinStates int
	MaxStates int
	Options   Variant
	Seed      *int64
}

// Attempts counts the loop iterations a call used.
type Attempts struct {
	Generate int
	Inject   int
}

// Result is a constructed automaton and its record.
type Result struct {
	Initial   core.State
	Automaton *core.Automaton
	Config    *dfaconfig.DFAConfig
	// Faults lists the relabelled transitions of the faulty plant (before
	// composition).
	Faults []fault.Relabel
	// Verdict is set when diagnosability was required.
	Verdict  *verifier.Result
	Attempts Attempts
	SavedTo  string
	SaveErr  error
}

// Constructor runs construction calls. It is safe for concurrent use.
type Constructor struct {
	log     *zap.Logger
	metrics *metrics.Recorder
	store   store.Store

	density           float64
	observable        int
	selfLoops         bool
	faultClasses      int
	fraction          float64
	injectRetries     int
	generateRetries   int
	normalMin         int
	normalMax         int
	maxPairStates     int
	allowSilentCycles bool
	structure         StructureFunc

	mu    sync.Mutex
	seeds *rand.Rand
	last  *dfaconfig.DFAConfig
}

// New returns a Constructor with the package defaults, then applies opts.
func New(opts ...Option) *Constructor {
	c := &Constructor{
		log:             zap.NewNop(),
		density:         builder.DefaultDensity,
		observable:      builder.DefaultObservable,
		selfLoops:       true,
		faultClasses:    DefaultFaultClasses,
		fraction:        fault.DefaultFraction,
		injectRetries:   DefaultInjectRetries,
		generateRetries: DefaultGenerateRetries,
		seeds:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	c.structure = c.randomStructure
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// DFAConfig returns a copy of the record of the most recent successful
// construction, or nil.
func (c *Constructor) DFAConfig() *dfaconfig.DFAConfig {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last.Clone()
}

// Construct builds one automaton for req.
//
// Errors:
//   - builder.ErrInvalidBounds, builder.ErrAlphabetExhausted: rejected before any work.
//   - ErrConstructionExhausted: retry budget spent; wraps the last rejection.
//   - core.ErrInvariant: an upstream component produced a malformed automaton.
//   - ctx.Err(): cancelled between attempts.
//
// A failed save is not an error; see Result.SaveErr.
func (c *Constructor) Construct(ctx context.Context, req Request) (*Result, error) {
	name := variantName(req.Options)
	res, err := c.construct(ctx, req, name)
	switch {
	case err == nil:
		c.metrics.Construction(name, metrics.OutcomeOK)
	case errors.Is(err, ErrConstructionExhausted):
		c.metrics.Construction(name, metrics.OutcomeExhausted)
	default:
		c.metrics.Construction(name, metrics.OutcomeError)
	}

	return res, err
}

func (c *Constructor) construct(ctx context.Context, req Request, name string) (*Result, error) {
	if err := builder.CheckParams(req.MinStates, req.MaxStates, c.density, c.observable); err != nil {
		return nil, fmt.Errorf("Construct: %w", err)
	}
	seed := c.seedFor(req)
	r := &run{
		c:     c,
		req:   req,
		rng:   rand.New(rand.NewSource(seed)),
		log:   c.log.With(zap.String("variant", name), zap.Int64("seed", seed)),
		multi: req.Options.MultiFaulty,
	}
	r.classes = fault.DefaultClasses(1)
	if r.multi {
		r.classes = fault.DefaultClasses(c.faultClasses)
	}

	res, err := r.search(ctx)
	if err != nil {
		return nil, err
	}

	cfg := dfaconfig.FromAutomaton(res.Automaton)
	id, err := uuid.NewRandomFromReader(r.rng)
	if err != nil {
		return nil, fmt.Errorf("Construct: config id: %w", err)
	}
	cfg.ID = id.String()
	cfg.Seed = seed
	cfg.Variant = req.Options
	if res.Verdict != nil {
		cfg.SetDiagnosable(res.Verdict.Diagnosable)
	}
	res.Config = cfg
	res.Initial = res.Automaton.Initial()
	c.metrics.Automaton(res.Automaton.StateCount())

	if req.Options.Save {
		res.SavedTo, res.SaveErr = c.save(ctx, cfg)
		if res.SaveErr != nil {
			r.log.Warn("config not saved", zap.String("id", cfg.ID), zap.Error(res.SaveErr))
		}
	}

	c.mu.Lock()
	c.last = cfg.Clone()
	c.mu.Unlock()

	r.log.Info("automaton constructed",
		zap.Int("states", res.Automaton.StateCount()),
		zap.Int("transitions", res.Automaton.TransitionCount()),
		zap.Int("generate_attempts", res.Attempts.Generate),
		zap.Int("inject_attempts", res.Attempts.Inject),
		zap.String("id", cfg.ID))

	return res, nil
}

func (c *Constructor) save(ctx context.Context, cfg *dfaconfig.DFAConfig) (string, error) {
	c.metrics.Attempt(metrics.StageSave)
	if c.store == nil {
		return "", fmt.Errorf("Construct: %w: %w", ErrPersistence, ErrNoStore)
	}
	ref, err := c.store.Save(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("Construct: %w: %w", ErrPersistence, err)
	}

	return ref, nil
}

func (c *Constructor) seedFor(req Request) int64 {
	if req.Seed != nil {
		return *req.Seed
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.seeds.Int63()
}

func (c *Constructor) randomStructure(rng *rand.Rand, minStates, maxStates int) (*core.Automaton, error) {
	return builder.BuildAutomaton(
		[]builder.BuilderOption{
			builder.WithRand(rng),
			builder.WithDensity(c.density),
			builder.WithObservable(c.observable),
			builder.WithSelfLoops(c.selfLoops),
		},
		builder.RandomDFA(minStates, maxStates),
	)
}

// run is the state of one Construct call.
type run struct {
	c       *Constructor
	req     Request
	rng     *rand.Rand
	log     *zap.Logger
	multi   bool
	classes []core.FaultClass

	attempts Attempts
}

// search runs the two retry loops and returns the first accepted plant.
func (r *run) search(ctx context.Context) (*Result, error) {
	var last error
	for g := 0; g <= r.c.generateRetries; g++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Construct: %w", err)
		}
		r.attempts.Generate++
		r.c.metrics.Attempt(metrics.StageGenerate)
		base, err := r.c.structure(r.rng, r.req.MinStates, r.req.MaxStates)
		if err != nil {
			return nil, fmt.Errorf("Construct: structure: %w", err)
		}

		for i := 0; i <= r.c.injectRetries; i++ {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("Construct: %w", ctx.Err())
			}
			r.attempts.Inject++
			res, err := r.attempt(base)
			if err == nil {
				res.Attempts = r.attempts
				return res, nil
			}
			reason, regenerate, retry := classify(err)
			if !retry {
				return nil, fmt.Errorf("Construct: %w", err)
			}
			last = err
			r.c.metrics.Rejection(reason)
			r.log.Debug("attempt rejected",
				zap.Int("generate", g), zap.Int("inject", i), zap.String("reason", reason), zap.Error(err))
			if regenerate {
				break
			}
		}
	}

	r.log.Warn("retry budget exhausted",
		zap.Int("generate_attempts", r.attempts.Generate),
		zap.Int("inject_attempts", r.attempts.Inject),
		zap.Error(last))

	return nil, fmt.Errorf("Construct: %d generate, %d inject attempts: %w: %w",
		r.attempts.Generate, r.attempts.Inject, ErrConstructionExhausted, last)
}

// attempt injects faults into base and applies the variant's checks.
func (r *run) attempt(base *core.Automaton) (*Result, error) {
	r.c.metrics.Attempt(metrics.StageInject)
	var iopts []fault.Option
	if r.c.allowSilentCycles {
		iopts = append(iopts, fault.WithAllowSilentCycles())
	}
	count := fault.CountFor(base.TransitionCount(), len(r.classes), r.c.fraction)
	inj, err := fault.Inject(base, r.classes, count, r.rng, iopts...)
	if err != nil {
		return nil, err
	}
	plant := inj.Automaton

	if r.req.Options.ExtraNormalComponent {
		normal, err := r.normal()
		if err != nil {
			return nil, err
		}
		comp, err := fault.Compose(plant, normal)
		if err != nil {
			return nil, err
		}
		plant = comp.Automaton
	}
	if err = plant.Validate(); err != nil {
		return nil, err
	}
	if err = fault.Validate(plant, r.classes); err != nil {
		return nil, err
	}

	res := &Result{Automaton: plant, Faults: inj.Relabelled}
	if !r.req.Options.RequireDiagnosability {
		return res, nil
	}

	r.c.metrics.Attempt(metrics.StageVerify)
	verdict, err := verifier.Verify(plant, verifier.WithMaxPairStates(r.c.maxPairStates))
	if err != nil {
		return nil, err
	}
	r.c.metrics.TwinPlant(verdict.PairStates)
	if !verdict.Diagnosable {
		return nil, fmt.Errorf("class %s, cycle %v: %w", verdict.Witness.Class, verdict.Witness.Cycle, ErrNotDiagnosable)
	}
	res.Verdict = verdict

	return res, nil
}

// normal generates the fault-free component over the plant's observables.
func (r *run) normal() (*core.Automaton, error) {
	lo, hi := r.req.MinStates, r.req.MaxStates
	if r.c.normalMin > 0 {
		lo, hi = r.c.normalMin, r.c.normalMax
	}

	return r.c.randomStructure(r.rng, lo, hi)
}

// classify maps an attempt error to a rejection reason. regenerate asks for
// a new structure; retry=false aborts the call.
func classify(err error) (reason string, regenerate, retry bool) {
	switch {
	case errors.Is(err, core.ErrInvariant):
		return "", false, false
	case errors.Is(err, ErrNotDiagnosable):
		return "not_diagnosable", false, true
	case errors.Is(err, fault.ErrSilentCycle):
		return "silent_cycle", false, true
	case errors.Is(err, fault.ErrClassUnlabelled):
		return "class_lost", false, true
	case errors.Is(err, verifier.ErrTwinPlantTooLarge):
		return "twin_plant_too_large", false, true
	case errors.Is(err, fault.ErrNotEnoughTransitions):
		return "not_enough_transitions", true, true
	}

	return "", false, false
}

// variantName is the metrics label of v, e.g. "diagnosable+extra_normal+multi".
func variantName(v Variant) string {
	parts := []string{"plain"}
	if v.RequireDiagnosability {
		parts[0] = "diagnosable"
	}
	if v.ExtraNormalComponent {
		parts = append(parts, "extra_normal")
	}
	if v.MultiFaulty {
		parts = append(parts, "multi")
	}

	return strings.Join(parts, "+")
}
