// Package try provides the exception-capturing effect.
//
// A Try is built by evaluating a computation eagerly. A returned error or a
// panic raised while computing is captured as a Failure and never reaches the
// caller. Bind and Map capture panics raised by their continuation the same
// way, so a chain of Try operations is exception-transparent end to end.
package try

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/conslist"
	"github.com/on-the-ground/composable_go/effects/maybe"
	"go.uber.org/multierr"
)

var (
	// ErrPanicked wraps every panic captured by a Try.
	ErrPanicked = errors.New("panic captured")
	// ErrNilError stands in for a Failure built from a nil error.
	ErrNilError = errors.New("failure with nil error")
	// ErrNoValue is the failure FromMaybe uses for an absent value.
	ErrNoValue = errors.New("no value")
)

// Try is either a Success holding a value or a Failure holding an error.
// It is immutable once built.
type Try[T any] struct {
	value T
	err   error
}

// Success returns a successful Try holding v.
func Success[T any](v T) Try[T] {
	return Try[T]{value: v}
}

// Failure returns a failed Try holding err. A nil err is replaced by
// ErrNilError so a Failure never looks like a Success.
func Failure[T any](err error) Try[T] {
	if err == nil {
		err = ErrNilError
	}
	return Try[T]{err: err}
}

// Pure lifts v into Try. Same as Success.
func Pure[T any](v T) Try[T] {
	return Success(v)
}

// Attempt runs fn now and captures its error or panic.
func Attempt[T any](fn func() (T, error)) (t Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			t = Failure[T](panicError(r))
		}
	}()
	v, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// AttemptValue runs fn now and captures its panic.
func AttemptValue[T any](fn func() T) Try[T] {
	return Attempt(func() (T, error) {
		return fn(), nil
	})
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanicked, err)
	}
	return fmt.Errorf("%w: %v", ErrPanicked, r)
}

// IsSuccess reports whether t holds a value.
func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

// IsFailure reports whether t holds an error.
func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Get returns the value and the captured error, Go style.
func (t Try[T]) Get() (T, error) {
	return t.value, t.err
}

// Err returns the captured error, nil on success.
func (t Try[T]) Err() error {
	return t.err
}

// GetOrElse returns the value, or def on failure.
func (t Try[T]) GetOrElse(def T) T {
	if t.err != nil {
		return def
	}
	return t.value
}

func (t Try[T]) String() string {
	if t.err != nil {
		return fmt.Sprintf("Failure(%v)", t.err)
	}
	return fmt.Sprintf("Success(%v)", t.value)
}

// Bind passes the value to f. A Failure is returned as is and f is never
// called; a panic in f becomes a Failure.
func Bind[A, B any](t Try[A], f func(A) Try[B]) (res Try[B]) {
	if t.err != nil {
		return Failure[B](t.err)
	}
	defer func() {
		if r := recover(); r != nil {
			res = Failure[B](panicError(r))
		}
	}()
	return f(t.value)
}

// Map applies f to a successful value, capturing a panic in f.
func Map[A, B any](t Try[A], f func(A) B) Try[B] {
	return Bind(t, func(a A) Try[B] {
		return Pure(f(a))
	})
}

// Match calls onSuccess or onFailure.
func Match[A, T any](t Try[A], onSuccess func(A) T, onFailure func(error) T) T {
	if t.err != nil {
		return onFailure(t.err)
	}
	return onSuccess(t.value)
}

// Recover turns a Failure into a Success with f's result. A panic in f is
// captured.
func Recover[T any](t Try[T], f func(error) T) Try[T] {
	if t.err == nil {
		return t
	}
	return AttemptValue(func() T { return f(t.err) })
}

// ToMaybe drops the error.
func ToMaybe[T any](t Try[T]) maybe.Maybe[T] {
	if t.err != nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(t.value)
}

// FromMaybe fails with ErrNoValue when m is absent.
func FromMaybe[T any](m maybe.Maybe[T]) Try[T] {
	if v, ok := m.Get(); ok {
		return Success(v)
	}
	return Failure[T](ErrNoValue)
}

// Descriptor is the Try instance of the sequence walk.
func Descriptor[A any]() effects.Descriptor[A, Try[A], Try[conslist.List[A]], Try[[]A]] {
	return effects.Descriptor[A, Try[A], Try[conslist.List[A]], Try[[]A]]{
		Pure:   Pure[conslist.List[A]],
		Bind:   Bind[conslist.List[A], conslist.List[A]],
		Map:    Map[A, conslist.List[A]],
		Finish: Map[conslist.List[A], []A],
	}
}

// Sequence succeeds with every value, in order, or fails with the first
// failure.
func Sequence[A any](ts []Try[A]) Try[[]A] {
	return effects.Sequence(Descriptor[A](), ts)
}

// Traverse applies f to every x and sequences the results.
func Traverse[X, A any](xs []X, f func(X) Try[A]) Try[[]A] {
	return effects.Traverse(Descriptor[A](), xs, f)
}

// SequenceAll is Sequence without the short circuit: every failure is
// reported, combined with multierr in input order.
func SequenceAll[A any](ts []Try[A]) Try[[]A] {
	var errs error
	out := make([]A, 0, len(ts))
	for _, t := range ts {
		if t.err != nil {
			errs = multierr.Append(errs, t.err)
			continue
		}
		out = append(out, t.value)
	}
	if errs != nil {
		return Failure[[]A](errs)
	}
	return Success(out)
}
