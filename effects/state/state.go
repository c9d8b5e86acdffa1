// Package state provides the pure state-threading effect.
//
// A State[S, T] describes a computation that reads an S and yields a T and a
// new S. Building one with Pure, Map or Bind runs nothing; the composed
// function only runs when Run is called with an initial state. Panics raised
// by the wrapped functions propagate to the caller of Run.
package state

import (
	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/conslist"
)

// State wraps a function from a state to a result and the next state.
// The zero value is not usable; build States with New, Pure, Get, Put,
// Modify, Gets, Map or Bind.
type State[S, T any] struct {
	run func(S) (T, S)
}

// New wraps fn. fn must not be nil.
func New[S, T any](fn func(S) (T, S)) State[S, T] {
	if fn == nil {
		panic("state: nil function")
	}
	return State[S, T]{run: fn}
}

// Pure yields t and leaves the state unchanged.
func Pure[S, T any](t T) State[S, T] {
	return New(func(s S) (T, S) {
		return t, s
	})
}

// Get yields the current state.
func Get[S any]() State[S, S] {
	return New(func(s S) (S, S) {
		return s, s
	})
}

// Gets yields f of the current state.
func Gets[S, T any](f func(S) T) State[S, T] {
	return New(func(s S) (T, S) {
		return f(s), s
	})
}

// Put replaces the state with s.
func Put[S any](s S) State[S, effects.Unit] {
	return New(func(S) (effects.Unit, S) {
		return effects.Unit{}, s
	})
}

// Modify replaces the state with f of it.
func Modify[S any](f func(S) S) State[S, effects.Unit] {
	return New(func(s S) (effects.Unit, S) {
		return effects.Unit{}, f(s)
	})
}

// Run runs m from the initial state s.
func (m State[S, T]) Run(s S) (T, S) {
	if m.run == nil {
		panic("state: run of zero State")
	}
	return m.run(s)
}

// Eval runs m and keeps only the result.
func (m State[S, T]) Eval(s S) T {
	t, _ := m.Run(s)
	return t
}

// Exec runs m and keeps only the final state.
func (m State[S, T]) Exec(s S) S {
	_, s = m.Run(s)
	return s
}

// Bind runs m, then the State f builds from its result, threading the state
// through both.
func Bind[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return New(func(s S) (B, S) {
		a, s1 := m.Run(s)
		return f(a).Run(s1)
	})
}

// Map applies f to the result of m.
func Map[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return New(func(s S) (B, S) {
		a, s1 := m.Run(s)
		return f(a), s1
	})
}

// Then runs m for its state change, then n.
func Then[S, A, B any](m State[S, A], n State[S, B]) State[S, B] {
	return Bind(m, func(A) State[S, B] {
		return n
	})
}

// Descriptor is the State instance of the sequence walk.
func Descriptor[S, A any]() effects.Descriptor[A, State[S, A], State[S, conslist.List[A]], State[S, []A]] {
	return effects.Descriptor[A, State[S, A], State[S, conslist.List[A]], State[S, []A]]{
		Pure:   Pure[S, conslist.List[A]],
		Bind:   Bind[S, conslist.List[A], conslist.List[A]],
		Map:    Map[S, A, conslist.List[A]],
		Finish: Map[S, conslist.List[A], []A],
	}
}

// Sequence runs ms in order, threading the state, and yields their results.
func Sequence[S, A any](ms []State[S, A]) State[S, []A] {
	return effects.Sequence(Descriptor[S, A](), ms)
}

// Traverse applies f to every x and sequences the results.
func Traverse[S, X, A any](xs []X, f func(X) State[S, A]) State[S, []A] {
	return effects.Traverse(Descriptor[S, A](), xs, f)
}
