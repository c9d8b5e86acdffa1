package deferred

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Timed is a result together with the span during which it was computed.
type Timed[T any] struct {
	Value T
	Span  timespan.TimeSpan
}

// Duration is the length of the span.
func (t Timed[T]) Duration() time.Duration {
	return t.Span.Duration()
}

// WithTiming measures each run of m. The clock is read when the action runs,
// never when it is built.
func WithTiming[T any](m Io[T]) Io[Timed[T]] {
	return WithClock(m, time.Now)
}

// WithClock is WithTiming with an explicit clock.
func WithClock[T any](m Io[T], now func() time.Time) Io[Timed[T]] {
	return Io[Timed[T]]{thunk: func() (Timed[T], error) {
		start := now()
		v, err := m.Run()
		if err != nil {
			return Timed[T]{}, err
		}
		return Timed[T]{Value: v, Span: timespan.BetweenTimes(start, now())}, nil
	}}
}
