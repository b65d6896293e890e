// File: alphabet.go
// Role: Observable symbols and fault classes.
//
// Determinism:
//   - Observable() is sorted ascending; Faults() keeps declaration order,
//     which also fixes the bit index of each class (see ClassOf).

package core

import (
	"fmt"
	"sort"
)

// MaxObservable is the number of symbols produced by ObservableRange ('a'..'z').
const MaxObservable = 26

// FaultClass names a category of fault events and the symbol that labels
// its transitions.
type FaultClass struct {
	Name   string
	Symbol Symbol
}

// Alphabet is an immutable set of observable symbols and fault classes.
// Values are safe to copy; the index map is never mutated after construction.
type Alphabet struct {
	observable []Symbol
	faults     []FaultClass
	// index[sym] >= 0 is the position in observable; -(i+1) is fault class i.
	index map[Symbol]int
}

// NewAlphabet validates and builds an alphabet. Symbols must be non-zero and
// unique across both partitions; class names must be non-empty and unique.
// Complexity: O(|obs|·log|obs| + |faults|).
func NewAlphabet(observable []Symbol, faults []FaultClass) (Alphabet, error) {
	obs := append([]Symbol(nil), observable...)
	sort.Slice(obs, func(i, j int) bool { return obs[i] < obs[j] })

	idx := make(map[Symbol]int, len(obs)+len(faults))
	for i, s := range obs {
		if s == 0 {
			return Alphabet{}, fmt.Errorf("NewAlphabet: zero observable symbol: %w", ErrBadAlphabet)
		}
		if _, dup := idx[s]; dup {
			return Alphabet{}, fmt.Errorf("NewAlphabet: duplicate symbol %q: %w", s, ErrBadAlphabet)
		}
		idx[s] = i
	}

	names := make(map[string]struct{}, len(faults))
	fs := append([]FaultClass(nil), faults...)
	for i, fc := range fs {
		if fc.Name == "" {
			return Alphabet{}, fmt.Errorf("NewAlphabet: fault class %d has no name: %w", i, ErrBadAlphabet)
		}
		if _, dup := names[fc.Name]; dup {
			return Alphabet{}, fmt.Errorf("NewAlphabet: duplicate class %q: %w", fc.Name, ErrBadAlphabet)
		}
		if fc.Symbol == 0 {
			return Alphabet{}, fmt.Errorf("NewAlphabet: class %q has zero symbol: %w", fc.Name, ErrBadAlphabet)
		}
		if _, dup := idx[fc.Symbol]; dup {
			return Alphabet{}, fmt.Errorf("NewAlphabet: duplicate symbol %q: %w", fc.Symbol, ErrBadAlphabet)
		}
		names[fc.Name] = struct{}{}
		idx[fc.Symbol] = -(i + 1)
	}

	return Alphabet{observable: obs, faults: fs, index: idx}, nil
}

// MustAlphabet is NewAlphabet that panics on error; intended for fixtures.
func MustAlphabet(observable []Symbol, faults []FaultClass) Alphabet {
	a, err := NewAlphabet(observable, faults)
	if err != nil {
		panic(err)
	}

	return a
}

// ObservableRange returns the first k lowercase letters. k is clamped to [0, MaxObservable].
func ObservableRange(k int) []Symbol {
	if k < 0 {
		k = 0
	}
	if k > MaxObservable {
		k = MaxObservable
	}
	out := make([]Symbol, k)
	for i := range out {
		out[i] = Symbol('a' + i)
	}

	return out
}

// WithFaults returns a copy of the alphabet extended by classes.
func (al Alphabet) WithFaults(classes ...FaultClass) (Alphabet, error) {
	fs := make([]FaultClass, 0, len(al.faults)+len(classes))
	fs = append(fs, al.faults...)
	fs = append(fs, classes...)

	return NewAlphabet(al.observable, fs)
}

// Observable returns the observable symbols in ascending order.
func (al Alphabet) Observable() []Symbol {
	return append([]Symbol(nil), al.observable...)
}

// Faults returns the fault classes in declaration order.
func (al Alphabet) Faults() []FaultClass {
	return append([]FaultClass(nil), al.faults...)
}

// Len is the total number of symbols.
func (al Alphabet) Len() int { return len(al.observable) + len(al.faults) }

// Contains reports whether sym belongs to either partition.
func (al Alphabet) Contains(sym Symbol) bool {
	_, ok := al.index[sym]
	return ok
}

// IsObservable reports whether sym is an observable symbol.
func (al Alphabet) IsObservable(sym Symbol) bool {
	i, ok := al.index[sym]
	return ok && i >= 0
}

// IsFault reports whether sym labels a fault class.
func (al Alphabet) IsFault(sym Symbol) bool {
	i, ok := al.index[sym]
	return ok && i < 0
}

// ClassOf returns the index of the fault class labelled by sym.
func (al Alphabet) ClassOf(sym Symbol) (int, bool) {
	i, ok := al.index[sym]
	if !ok || i >= 0 {
		return 0, false
	}

	return -i - 1, true
}

// Class returns the fault class with the given name.
func (al Alphabet) Class(name string) (FaultClass, bool) {
	for _, fc := range al.faults {
		if fc.Name == name {
			return fc, true
		}
	}

	return FaultClass{}, false
}
