// SPDX-License-Identifier: MIT
// Package: rgodd/dfaconfig
//
// config.go: DFAConfig record, conversion from and to core.Automaton.
//
// Symbols are stored as one-character strings so the record stays readable
// in YAML and JSON. Transitions are kept sorted by (From, Symbol) and every
// slice is non-nil, so equal automata give byte-identical encodings.

package dfaconfig

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/rgodd/builder"
	"github.com/katalvlaran/rgodd/core"
)

var validate = validator.New()

// Variant records which construction options produced an automaton.
type Variant struct {
	MultiFaulty           bool `yaml:"multi_faulty" json:"multi_faulty"`
	ExtraNormalComponent  bool `yaml:"extra_normal_component" json:"extra_normal_component"`
	RequireDiagnosability bool `yaml:"require_diagnosability" json:"require_diagnosability"`
	Save                  bool `yaml:"save" json:"save"`
}

// FaultClassRecord is one fault class.
type FaultClassRecord struct {
	Name   string `yaml:"name" json:"name" validate:"required,max=64"`
	Symbol string `yaml:"symbol" json:"symbol" validate:"len=1"`
}

// TransitionRecord is one transition.
type TransitionRecord struct {
	From   int    `yaml:"from" json:"from" validate:"min=0"`
	Symbol string `yaml:"symbol" json:"symbol" validate:"len=1"`
	To     int    `yaml:"to" json:"to" validate:"min=0"`
}

// DFAConfig is the persisted form of a generated automaton.
// Diagnosable is nil when no verdict was computed.
type DFAConfig struct {
	ID           string             `yaml:"id" json:"id" validate:"omitempty,uuid"`
	Seed         int64              `yaml:"seed" json:"seed"`
	Variant      Variant            `yaml:"variant" json:"variant"`
	Observable   []string           `yaml:"observable" json:"observable" validate:"min=1,max=26,dive,len=1"`
	FaultClasses []FaultClassRecord `yaml:"fault_classes" json:"fault_classes" validate:"dive"`
	StateCount   int                `yaml:"state_count" json:"state_count" validate:"min=1"`
	Initial      int                `yaml:"initial" json:"initial" validate:"min=0"`
	Transitions  []TransitionRecord `yaml:"transitions" json:"transitions" validate:"dive"`
	Diagnosable  *bool              `yaml:"diagnosable,omitempty" json:"diagnosable,omitempty"`
}

// FromAutomaton records a. ID, Seed, Variant and Diagnosable are left for
// the caller to fill.
// Complexity: O(T·log T).
func FromAutomaton(a *core.Automaton) *DFAConfig {
	al := a.Alphabet()
	c := &DFAConfig{
		Observable:   []string{},
		FaultClasses: []FaultClassRecord{},
		Transitions:  []TransitionRecord{},
		StateCount:   a.StateCount(),
		Initial:      int(a.Initial()),
	}
	for _, s := range al.Observable() {
		c.Observable = append(c.Observable, s.String())
	}
	for _, fc := range al.Faults() {
		c.FaultClasses = append(c.FaultClasses, FaultClassRecord{Name: fc.Name, Symbol: fc.Symbol.String()})
	}
	for _, t := range a.Transitions() {
		c.Transitions = append(c.Transitions, TransitionRecord{From: int(t.From), Symbol: t.Symbol.String(), To: int(t.To)})
	}
	c.sortTransitions()

	return c
}

// Validate checks the struct tags and the cross-field rules.
//
// Errors: ErrInvalidConfig, joined with core.ErrNondeterministic for a
// repeated (from, symbol) key.
func (c *DFAConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("Validate: nil config: %w", ErrInvalidConfig)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("Validate: %w: %w", ErrInvalidConfig, formatValidationError(err))
	}
	if c.Initial >= c.StateCount {
		return fmt.Errorf("Validate: initial %d outside %d states: %w", c.Initial, c.StateCount, ErrInvalidConfig)
	}

	declared := make(map[string]bool, len(c.Observable)+len(c.FaultClasses))
	for _, s := range c.Observable {
		declared[s] = true
	}
	for _, fc := range c.FaultClasses {
		declared[fc.Symbol] = true
	}
	type key struct {
		from int
		sym  string
	}
	seen := make(map[key]int, len(c.Transitions))
	for _, t := range c.Transitions {
		if !declared[t.Symbol] {
			return fmt.Errorf("Validate: (%d,%s,%d): %w: %w", t.From, t.Symbol, t.To, ErrInvalidConfig, core.ErrUnknownSymbol)
		}
		if to, dup := seen[key{t.From, t.Symbol}]; dup && to != t.To {
			return fmt.Errorf("Validate: (%d,%s) → %d and %d: %w: %w", t.From, t.Symbol, to, t.To, ErrInvalidConfig, core.ErrNondeterministic)
		}
		seen[key{t.From, t.Symbol}] = t.To
	}

	return nil
}

// Build reconstructs the automaton described by c.
//
// Errors:
//   - ErrInvalidConfig: see Validate; also a state count that does not match
//     the rebuilt automaton.
//   - core.ErrBadAlphabet: duplicate or clashing symbols.
//   - builder.ErrConstructFailed wrapping core.ErrUnreachableState.
func (c *DFAConfig) Build() (*core.Automaton, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	obs := make([]core.Symbol, len(c.Observable))
	for i, s := range c.Observable {
		obs[i] = symbolOf(s)
	}
	classes := make([]core.FaultClass, len(c.FaultClasses))
	for i, fc := range c.FaultClasses {
		classes[i] = core.FaultClass{Name: fc.Name, Symbol: symbolOf(fc.Symbol)}
	}
	al, err := core.NewAlphabet(obs, classes)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrInvalidConfig, err)
	}
	ts := make([]core.Transition, len(c.Transitions))
	for i, t := range c.Transitions {
		ts[i] = core.Transition{From: core.State(t.From), Symbol: symbolOf(t.Symbol), To: core.State(t.To)}
	}

	a, err := builder.BuildAutomaton(
		[]builder.BuilderOption{builder.WithAlphabet(al)},
		builder.FromTransitions(core.State(c.Initial), ts),
	)
	if err != nil {
		return nil, fmt.Errorf("Build: %w: %w", ErrInvalidConfig, err)
	}
	if a.StateCount() != c.StateCount {
		return nil, fmt.Errorf("Build: %d states recorded, %d rebuilt: %w", c.StateCount, a.StateCount(), ErrInvalidConfig)
	}

	return a, nil
}

// Clone returns a deep copy of c.
func (c *DFAConfig) Clone() *DFAConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.Observable = append([]string{}, c.Observable...)
	out.FaultClasses = append([]FaultClassRecord{}, c.FaultClasses...)
	out.Transitions = append([]TransitionRecord{}, c.Transitions...)
	if c.Diagnosable != nil {
		d := *c.Diagnosable
		out.Diagnosable = &d
	}

	return &out
}

// Equal reports field-for-field equality. A nil slice equals an empty one.
func (c *DFAConfig) Equal(o *DFAConfig) bool {
	if c == nil || o == nil {
		return c == o
	}

	return c.ID == o.ID &&
		c.Seed == o.Seed &&
		c.Variant == o.Variant &&
		c.StateCount == o.StateCount &&
		c.Initial == o.Initial &&
		slices.Equal(c.Observable, o.Observable) &&
		slices.Equal(c.FaultClasses, o.FaultClasses) &&
		slices.Equal(c.Transitions, o.Transitions) &&
		equalVerdict(c.Diagnosable, o.Diagnosable)
}

// SetDiagnosable records a verdict.
func (c *DFAConfig) SetDiagnosable(v bool) { c.Diagnosable = &v }

func (c *DFAConfig) sortTransitions() {
	slices.SortFunc(c.Transitions, func(x, y TransitionRecord) int {
		if x.From != y.From {
			return x.From - y.From
		}
		return int(symbolOf(x.Symbol)) - int(symbolOf(y.Symbol))
	})
}

func equalVerdict(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

func symbolOf(s string) core.Symbol {
	r, _ := utf8.DecodeRuneInString(s)
	return core.Symbol(r)
}

// formatValidationError reduces validator output to its first field error.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	switch e.Tag() {
	case "min":
		return fmt.Errorf("%s: must be at least %s", e.Namespace(), e.Param())
	case "max":
		return fmt.Errorf("%s: must not exceed %s", e.Namespace(), e.Param())
	case "len":
		return fmt.Errorf("%s: must have length %s", e.Namespace(), e.Param())
	default:
		return fmt.Errorf("%s: validation failed (%s)", e.Namespace(), e.Tag())
	}
}
