// Package metrics records construction outcomes as Prometheus metrics.
//
// A Recorder owns its registry, so several recorders can live in one
// process. All methods are no-ops on a nil *Recorder.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Outcome labels for ConstructionsTotal.
const (
	OutcomeOK        = "ok"
	OutcomeExhausted = "exhausted"
	OutcomeError     = "error"
)

// Stage labels for AttemptsTotal.
const (
	StageGenerate = "generate"
	StageInject   = "inject"
	StageVerify   = "verify"
	StageSave     = "save"
)

// Recorder holds the construction metrics.
type Recorder struct {
	ConstructionsTotal *prometheus.CounterVec
	AttemptsTotal      *prometheus.CounterVec
	RejectionsTotal    *prometheus.CounterVec
	TwinPlantStates    prometheus.Histogram
	AutomatonStates    prometheus.Histogram

	registry *prometheus.Registry
}

// NewRecorder returns a Recorder over a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		ConstructionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rgodd_constructions_total",
				Help: "Construction calls by variant and outcome",
			},
			[]string{"variant", "outcome"},
		),
		AttemptsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rgodd_attempts_total",
				Help: "Attempts made per construction stage",
			},
			[]string{"stage"},
		),
		RejectionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rgodd_rejections_total",
				Help: "Retryable rejections by reason",
			},
			[]string{"reason"},
		),
		TwinPlantStates: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rgodd_twin_plant_states",
				Help:    "Pair states built by the diagnosability verifier",
				Buckets: prometheus.ExponentialBuckets(4, 4, 8),
			},
		),
		AutomatonStates: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rgodd_automaton_states",
				Help:    "States of the returned automata",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
		registry: reg,
	}
}

// Registry returns the underlying Prometheus registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// Construction counts one finished construction call.
func (r *Recorder) Construction(variant, outcome string) {
	if r == nil {
		return
	}
	r.ConstructionsTotal.WithLabelValues(variant, outcome).Inc()
}

// Attempt counts one attempt at stage.
func (r *Recorder) Attempt(stage string) {
	if r == nil {
		return
	}
	r.AttemptsTotal.WithLabelValues(stage).Inc()
}

// Rejection counts one retryable rejection.
func (r *Recorder) Rejection(reason string) {
	if r == nil {
		return
	}
	r.RejectionsTotal.WithLabelValues(reason).Inc()
}

// TwinPlant observes the size of a twin plant.
func (r *Recorder) TwinPlant(states int) {
	if r == nil {
		return
	}
	r.TwinPlantStates.Observe(float64(states))
}

// Automaton observes the size of a returned automaton.
func (r *Recorder) Automaton(states int) {
	if r == nil {
		return
	}
	r.AutomatonStates.Observe(float64(states))
}

// WriteText writes every metric family in the Prometheus text format,
// suitable for the node-exporter textfile collector.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
