// Package maybe provides the optional-value effect.
//
// A Maybe is either present with a value or absent. Absence is the only
// failure signal and it short-circuits Bind; nothing is ever panicked or
// captured here.
package maybe

import (
	"fmt"

	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/conslist"
)

// Maybe holds an optional value. The zero value is absent.
type Maybe[T any] struct {
	value   T
	present bool
}

// Just returns a present Maybe holding v.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, present: true}
}

// Nothing returns an absent Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Pure lifts v into Maybe. Same as Just.
func Pure[T any](v T) Maybe[T] {
	return Just(v)
}

// FromPtr is present with *p when p is non-nil.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// IsPresent reports whether m holds a value.
func (m Maybe[T]) IsPresent() bool {
	return m.present
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.present
}

// GetOrElse returns the value, or def when absent.
func (m Maybe[T]) GetOrElse(def T) T {
	if m.present {
		return m.value
	}
	return def
}

func (m Maybe[T]) String() string {
	if m.present {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Bind passes the value to f, or stays absent without calling f.
func Bind[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.present {
		return Nothing[B]()
	}
	return f(m.value)
}

// Map applies f to a present value.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	return Bind(m, func(a A) Maybe[B] {
		return Pure(f(a))
	})
}

// Match calls onJust or onNothing.
func Match[A, T any](m Maybe[A], onJust func(A) T, onNothing func() T) T {
	if m.present {
		return onJust(m.value)
	}
	return onNothing()
}

// OrElse returns m when present, otherwise alt.
func OrElse[T any](m Maybe[T], alt Maybe[T]) Maybe[T] {
	if m.present {
		return m
	}
	return alt
}

// First is the first element of xs, if any.
func First[T any](xs []T) Maybe[T] {
	return FirstWhere(xs, func(T) bool { return true })
}

// FirstWhere is the first element of xs satisfying pred, if any.
func FirstWhere[T any](xs []T, pred func(T) bool) Maybe[T] {
	for _, x := range xs {
		if pred(x) {
			return Just(x)
		}
	}
	return Nothing[T]()
}

// Descriptor is the Maybe instance of the sequence walk.
func Descriptor[A any]() effects.Descriptor[A, Maybe[A], Maybe[conslist.List[A]], Maybe[[]A]] {
	return effects.Descriptor[A, Maybe[A], Maybe[conslist.List[A]], Maybe[[]A]]{
		Pure:   Pure[conslist.List[A]],
		Bind:   Bind[conslist.List[A], conslist.List[A]],
		Map:    Map[A, conslist.List[A]],
		Finish: Map[conslist.List[A], []A],
	}
}

// Sequence is present with every value, in order, when all of ms are present.
func Sequence[A any](ms []Maybe[A]) Maybe[[]A] {
	return effects.Sequence(Descriptor[A](), ms)
}

// Traverse applies f to every x and sequences the results.
func Traverse[X, A any](xs []X, f func(X) Maybe[A]) Maybe[[]A] {
	return effects.Traverse(Descriptor[A](), xs, f)
}
