// Package sequence treats ordered collections as an effect: Pure is a
// single-element sequence and Bind maps every element to a sequence and
// concatenates the results in order.
//
// Slices are the finite form. The Seq variants work on iter.Seq and stay
// lazy, so they also accept unbounded producers.
package sequence

import (
	"iter"

	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/conslist"
	"github.com/on-the-ground/composable_go/effects/monoid"
)

// Pure returns a one-element slice.
func Pure[T any](t T) []T {
	return []T{t}
}

// Lift is Pure under the name the collection helpers use.
func Lift[T any](t T) []T {
	return Pure(t)
}

// Map applies f to every element, keeping order.
func Map[A, B any](xs []A, f func(A) B) []B {
	out := make([]B, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Bind concatenates f(x) for every x, in order.
func Bind[A, B any](xs []A, f func(A) []B) []B {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x)...)
	}
	return out
}

// Filter keeps the elements satisfying pred.
func Filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// Indexed is an element paired with its position.
type Indexed[T any] struct {
	Value T
	Index int
}

// ZipWithIndex pairs each element with its index.
func ZipWithIndex[T any](xs []T) []Indexed[T] {
	out := make([]Indexed[T], len(xs))
	for i, x := range xs {
		out[i] = Indexed[T]{Value: x, Index: i}
	}
	return out
}

// MkString concatenates chars with the string monoid.
func MkString(chars []rune) string {
	return monoid.Concat(monoid.String(), Map(chars, func(r rune) string {
		return string(r)
	}))
}

// MapSeq lazily applies f to every element.
func MapSeq[A, B any](xs iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for x := range xs {
			if !yield(f(x)) {
				return
			}
		}
	}
}

// BindSeq lazily concatenates f(x) for every x.
func BindSeq[A, B any](xs iter.Seq[A], f func(A) iter.Seq[B]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for x := range xs {
			for y := range f(x) {
				if !yield(y) {
					return
				}
			}
		}
	}
}

// Take yields at most n elements of xs.
func Take[T any](xs iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for x := range xs {
			if !yield(x) {
				return
			}
			if i++; i >= n {
				return
			}
		}
	}
}

// Descriptor is the list instance of the sequence walk.
func Descriptor[A any]() effects.Descriptor[A, []A, []conslist.List[A], [][]A] {
	return effects.Descriptor[A, []A, []conslist.List[A], [][]A]{
		Pure:   Pure[conslist.List[A]],
		Bind:   Bind[conslist.List[A], conslist.List[A]],
		Map:    Map[A, conslist.List[A]],
		Finish: Map[conslist.List[A], []A],
	}
}

// Sequence is the cartesian product of xss: every way of picking one element
// from each slice, in order. Any empty slice makes the product empty.
func Sequence[A any](xss [][]A) [][]A {
	return effects.Sequence(Descriptor[A](), xss)
}

// Traverse applies f to every x and takes the product of the results.
func Traverse[X, A any](xs []X, f func(X) []A) [][]A {
	return effects.Traverse(Descriptor[A](), xs, f)
}
