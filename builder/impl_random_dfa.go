// SPDX-License-Identifier: MIT
// Package: rgodd/builder
//
// impl_random_dfa.go - implementation of RandomDFA(minStates, maxStates).
//
// Model:
//   - n uniform in [minStates, maxStates]; states 0..n-1, initial 0.
//   - Spanning tree: states 1..n-1 in shuffled order, each attached to a
//     uniformly chosen earlier state that still has a free symbol, on a
//     uniformly chosen free symbol. Every state is therefore reachable from 0.
//   - Extra transitions until the total reaches max(n-1, round(density·n)),
//     capped by capacity (n·|Σobs|, or 0 when n=1 without self-loops). Each
//     extra transition picks a random state with a free symbol, a random free
//     symbol and a random target.
//
// Contract:
//   - ErrInvalidBounds, ErrAlphabetExhausted, ErrNeedRandSource are returned
//     before any work.
//   - Determinism: (n, s) never gets two destinations (only free symbols are used).
//
// Complexity:
//   - Time: O(T·|Σobs|) with T the final transition count.
//   - Space: O(n).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rgodd/core"
)

// RandomDFA returns a Constructor that samples a connected random DFA over
// the observable symbols of the configured alphabet.
func RandomDFA(minStates, maxStates int) Constructor {
	return func(cfg builderConfig) (*core.Automaton, error) {
		if err := validateBounds(MethodRandomDFA, minStates, maxStates); err != nil {
			return nil, err
		}
		obs := cfg.alphabet.Observable()
		if err := validateDensity(MethodRandomDFA, cfg.density, len(obs)); err != nil {
			return nil, err
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomDFA, ErrNeedRandSource)
		}
		rng := cfg.rng

		n := minStates + rng.Intn(maxStates-minStates+1)
		a := core.New(0, cfg.alphabet)
		if err := addSequentialStates(a, n); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomDFA, err)
		}

		// open holds attached states with at least one free symbol.
		open := []core.State{0}
		count := 0
		addFrom := func(i int, to func(from core.State) core.State) error {
			from := open[i]
			free := freeSymbols(a, from, obs)
			sym := free[rng.Intn(len(free))]
			if err := a.AddTransition(from, sym, to(from)); err != nil {
				return fmt.Errorf("%s: %w: %w", MethodRandomDFA, ErrConstructFailed, err)
			}
			count++
			if len(free) == 1 {
				open = removeAt(open, i)
			}

			return nil
		}

		// 1) Spanning tree.
		for _, v := range rng.Perm(n - 1) {
			child := core.State(v + 1)
			if err := addFrom(rng.Intn(len(open)), func(core.State) core.State { return child }); err != nil {
				return nil, err
			}
			open = append(open, child)
		}

		// 2) Extra transitions.
		capacity := n * len(obs)
		if n == 1 && !cfg.selfLoops {
			capacity = 0
		}
		target := max(n-1, int(math.Round(cfg.density*float64(n))))
		target = min(target, capacity)
		pickTarget := func(from core.State) core.State {
			if cfg.selfLoops {
				return core.State(rng.Intn(n))
			}
			to := core.State(rng.Intn(n - 1))
			if to >= from {
				to++
			}
			return to
		}
		for count < target && len(open) > 0 {
			if err := addFrom(rng.Intn(len(open)), pickTarget); err != nil {
				return nil, err
			}
		}

		return finish(MethodRandomDFA, a)
	}
}
