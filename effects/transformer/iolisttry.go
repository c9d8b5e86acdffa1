// Package transformer stacks the deferred, sequence and try effects into one:
// an action that, when run, yields an ordered list of captured results.
//
// Two failure layers stay apart. An error returned by any Io in the stack is
// scaffolding: it stops the run and is returned by Run. A failure inside the
// list is an element, carried along and never escalated.
package transformer

import (
	"errors"

	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/deferred"
	"github.com/on-the-ground/composable_go/effects/try"
)

// ErrEmpty is the failure Head yields for an empty result list.
var ErrEmpty = errors.New("empty result list")

// IoListTry wraps deferred.Io[[]try.Try[T]].
type IoListTry[T any] struct {
	out deferred.Io[[]try.Try[T]]
}

// Producer yields one batch of captured results. A returned error is
// scaffolding and aborts the run.
type Producer[T any] func() ([]try.Try[T], error)

// In wraps io.
func In[T any](io deferred.Io[[]try.Try[T]]) IoListTry[T] {
	return IoListTry[T]{out: io}
}

// Out unwraps m.
func (m IoListTry[T]) Out() deferred.Io[[]try.Try[T]] {
	return m.out
}

// Pure yields a single Success(v).
func Pure[T any](v T) IoListTry[T] {
	return In(deferred.Pure([]try.Try[T]{try.Success(v)}))
}

// Lift yields the result of io as a single success. An error from io stays
// scaffolding.
func Lift[T any](io deferred.Io[T]) IoListTry[T] {
	return In(deferred.Map(io, func(v T) []try.Try[T] {
		return []try.Try[T]{try.Success(v)}
	}))
}

// LiftTry yields t as the only element.
func LiftTry[T any](t try.Try[T]) IoListTry[T] {
	return In(deferred.Pure([]try.Try[T]{t}))
}

// FromProducer defers p until the run.
func FromProducer[T any](p Producer[T]) IoListTry[T] {
	if p == nil {
		panic("transformer: nil producer")
	}
	return In(deferred.Apply(func() ([]try.Try[T], error) {
		return p()
	}))
}

// Map applies f to every success. A panic in f becomes that element's
// failure.
func Map[A, B any](m IoListTry[A], f func(A) B) IoListTry[B] {
	return In(deferred.Map(m.out, func(ts []try.Try[A]) []try.Try[B] {
		out := make([]try.Try[B], len(ts))
		for i, t := range ts {
			out[i] = try.Map(t, f)
		}
		return out
	}))
}

// Bind runs m, then walks its elements in order. A failure is carried as one
// failed element; for a success, f builds the next action, which runs right
// away and contributes all of its elements. A panic in f unwinds through Run.
func Bind[A, B any](m IoListTry[A], f func(A) IoListTry[B]) IoListTry[B] {
	return In(deferred.Bind(m.out, func(ts []try.Try[A]) deferred.Io[[]try.Try[B]] {
		step := func(t try.Try[A]) deferred.Io[[]try.Try[B]] {
			v, err := t.Get()
			if err != nil {
				return deferred.Pure([]try.Try[B]{try.Failure[B](err)})
			}
			return deferred.Apply(func() ([]try.Try[B], error) {
				return f(v).out.Run()
			})
		}
		return deferred.Map(deferred.Traverse(ts, step), flatten[B])
	}))
}

// Then runs n once for every success of m and keeps n's elements.
func Then[A, B any](m IoListTry[A], n IoListTry[B]) IoListTry[B] {
	return Bind(m, func(A) IoListTry[B] {
		return n
	})
}

// Run executes m.
func Run[T any](m IoListTry[T]) ([]try.Try[T], error) {
	return m.out.Run()
}

// Collect yields every value, or the first failure.
func Collect[T any](m IoListTry[T]) deferred.Io[try.Try[[]T]] {
	return deferred.Map(m.out, try.Sequence[T])
}

// CollectAll yields every value, or every failure combined.
func CollectAll[T any](m IoListTry[T]) deferred.Io[try.Try[[]T]] {
	return deferred.Map(m.out, try.SequenceAll[T])
}

// Head yields the first element, or ErrEmpty.
func Head[T any](m IoListTry[T]) deferred.Io[try.Try[T]] {
	return deferred.Map(m.out, func(ts []try.Try[T]) try.Try[T] {
		if len(ts) == 0 {
			return try.Failure[T](ErrEmpty)
		}
		return ts[0]
	})
}

// Void discards every successful value.
func Void[T any](m IoListTry[T]) IoListTry[effects.Unit] {
	return Map(m, func(T) effects.Unit {
		return effects.Unit{}
	})
}

func flatten[T any](tss [][]try.Try[T]) []try.Try[T] {
	n := 0
	for _, ts := range tss {
		n += len(ts)
	}
	out := make([]try.Try[T], 0, n)
	for _, ts := range tss {
		out = append(out, ts...)
	}
	return out
}
