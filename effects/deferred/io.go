// Package deferred provides Io, a suspended description of a side-effecting
// action.
//
// Building an Io never runs anything: Apply wraps a thunk, and Map, Bind and
// Then only build new thunks around existing ones. Run is the one place where
// thunks execute. Every Run executes the whole composed tree again from
// scratch; results are never cached.
//
// Io captures nothing. An error returned by a thunk stops the run and is
// returned by Run unchanged, and a panic unwinds through Run. Compose with
// the try package to capture failures as values.
package deferred

import (
	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/conslist"
)

// Io is a deferred action yielding T. The zero value yields the zero T.
type Io[T any] struct {
	thunk func() (T, error)
}

// Apply wraps thunk without calling it.
func Apply[T any](thunk func() (T, error)) Io[T] {
	if thunk == nil {
		panic("deferred: nil thunk")
	}
	return Io[T]{thunk: thunk}
}

// Lift wraps an infallible thunk without calling it.
func Lift[T any](thunk func() T) Io[T] {
	if thunk == nil {
		panic("deferred: nil thunk")
	}
	return Apply(func() (T, error) {
		return thunk(), nil
	})
}

// Pure yields t without side effects.
func Pure[T any](t T) Io[T] {
	return Io[T]{thunk: func() (T, error) {
		return t, nil
	}}
}

// Fail yields err when run.
func Fail[T any](err error) Io[T] {
	return Io[T]{thunk: func() (T, error) {
		var zero T
		return zero, err
	}}
}

// Run executes the action. It is synchronous and re-executes every wrapped
// thunk on each call.
func (io Io[T]) Run() (T, error) {
	if io.thunk == nil {
		var zero T
		return zero, nil
	}
	return io.thunk()
}

// Run executes io. Same as io.Run().
func Run[T any](io Io[T]) (T, error) {
	return io.Run()
}

// Bind runs m, then the action f builds from its result.
func Bind[A, B any](m Io[A], f func(A) Io[B]) Io[B] {
	return Io[B]{thunk: func() (B, error) {
		a, err := m.Run()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).Run()
	}}
}

// Map applies f to the result of m.
func Map[A, B any](m Io[A], f func(A) B) Io[B] {
	return Io[B]{thunk: func() (B, error) {
		a, err := m.Run()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}}
}

// Then runs m for its effect, then n.
func Then[A, B any](m Io[A], n Io[B]) Io[B] {
	return Bind(m, func(A) Io[B] {
		return n
	})
}

// Void discards the result of m.
func Void[A any](m Io[A]) Io[effects.Unit] {
	return Map(m, func(A) effects.Unit {
		return effects.Unit{}
	})
}

// Descriptor is the Io instance of the sequence walk.
func Descriptor[A any]() effects.Descriptor[A, Io[A], Io[conslist.List[A]], Io[[]A]] {
	return effects.Descriptor[A, Io[A], Io[conslist.List[A]], Io[[]A]]{
		Pure:   Pure[conslist.List[A]],
		Bind:   Bind[conslist.List[A], conslist.List[A]],
		Map:    Map[A, conslist.List[A]],
		Finish: Map[conslist.List[A], []A],
	}
}

// Sequence builds one action that runs ios in order and yields their results.
// The first error stops the run.
func Sequence[A any](ios []Io[A]) Io[[]A] {
	return effects.Sequence(Descriptor[A](), ios)
}

// Traverse applies f to every x and sequences the resulting actions.
// f is called while building, not while running.
func Traverse[X, A any](xs []X, f func(X) Io[A]) Io[[]A] {
	return effects.Traverse(Descriptor[A](), xs, f)
}
