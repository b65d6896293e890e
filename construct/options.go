package construct

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/rgodd/core"
	"github.com/katalvlaran/rgodd/metrics"
	"github.com/katalvlaran/rgodd/store"
)

// Defaults for the retry budget and the multi-class mode.
const (
	DefaultInjectRetries   = 8
	DefaultGenerateRetries = 16
	DefaultFaultClasses    = 2
)

// StructureFunc produces the fault-free plant of one generate attempt.
type StructureFunc func(rng *rand.Rand, minStates, maxStates int) (*core.Automaton, error)

// Option configures a Constructor. Options panic on meaningless values.
type Option func(*Constructor)

// WithLogger sets the logger; nil means no logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *Constructor) {
		if l == nil {
			l = zap.NewNop()
		}
		c.log = l
	}
}

// WithMetrics records attempts and outcomes into r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *Constructor) { c.metrics = r }
}

// WithStore sets where Save variants write their DFAConfig.
func WithStore(s store.Store) Option {
	return func(c *Constructor) { c.store = s }
}

// WithSeed seeds the source that supplies per-call seeds when a Request has none.
func WithSeed(seed int64) Option {
	return func(c *Constructor) { c.seeds = rand.New(rand.NewSource(seed)) }
}

// WithDensity sets the target average out-degree of generated structures.
// Panics unless d is finite and > 0.
func WithDensity(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		panic("construct: WithDensity(d) requires a finite d > 0")
	}

	return func(c *Constructor) { c.density = d }
}

// WithObservable sets the number of observable symbols. Panics unless 1 ≤ k ≤ 26.
func WithObservable(k int) Option {
	if k < 1 || k > core.MaxObservable {
		panic("construct: WithObservable(k) requires 1 ≤ k ≤ 26")
	}

	return func(c *Constructor) { c.observable = k }
}

// WithSelfLoops allows or forbids self-loops in generated structures.
func WithSelfLoops(allowed bool) Option {
	return func(c *Constructor) { c.selfLoops = allowed }
}

// WithFaultClasses sets the class count of multi-fault mode. Panics unless 2 ≤ k ≤ 26.
func WithFaultClasses(k int) Option {
	if k < 2 || k > core.MaxObservable {
		panic("construct: WithFaultClasses(k) requires 2 ≤ k ≤ 26")
	}

	return func(c *Constructor) { c.faultClasses = k }
}

// WithFaultFraction sets the share of transitions relabelled as faults.
// Panics unless 0 < f ≤ 1.
func WithFaultFraction(f float64) Option {
	if math.IsNaN(f) || f <= 0 || f > 1 {
		panic("construct: WithFaultFraction(f) requires 0 < f ≤ 1")
	}

	return func(c *Constructor) { c.fraction = f }
}

// WithRetries sets the inner (injection) and outer (generation) retry counts.
// Each loop runs 1+retries times. Panics on negative values.
func WithRetries(inject, generate int) Option {
	if inject < 0 || generate < 0 {
		panic("construct: WithRetries requires non-negative counts")
	}

	return func(c *Constructor) {
		c.injectRetries = inject
		c.generateRetries = generate
	}
}

// WithNormalBounds sets the size of the extra normal component; by default it
// uses the request bounds. Panics unless 1 ≤ min ≤ max.
func WithNormalBounds(minStates, maxStates int) Option {
	if minStates < 1 || minStates > maxStates {
		panic("construct: WithNormalBounds requires 1 ≤ min ≤ max")
	}

	return func(c *Constructor) {
		c.normalMin = minStates
		c.normalMax = maxStates
	}
}

// WithMaxPairStates bounds the verifier's twin plant; 0 means no bound.
// A placement whose twin plant exceeds the bound is rejected and retried.
func WithMaxPairStates(n int) Option {
	if n < 0 {
		panic("construct: WithMaxPairStates(n<0)")
	}

	return func(c *Constructor) { c.maxPairStates = n }
}

// WithAllowSilentCycles keeps fault placements that close a fault-only cycle.
func WithAllowSilentCycles() Option {
	return func(c *Constructor) { c.allowSilentCycles = true }
}

// WithStructure replaces the random structure generator. Panics on nil.
func WithStructure(fn StructureFunc) Option {
	if fn == nil {
		panic("construct: WithStructure(nil)")
	}

	return func(c *Constructor) { c.structure = fn }
}
