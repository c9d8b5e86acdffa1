package effects

import "github.com/on-the-ground/composable_go/effects/conslist"

// Descriptor reifies the map/bind/pure capability set of one effect F so the
// sequence walk can be written once. Go has no higher-kinded types, so the
// three instantiations the walk touches are named explicitly:
//
//	FA = F[A]                  the element effects
//	FL = F[conslist.List[A]]   the accumulator
//	FS = F[[]A]                the result
//
// Each effect package builds its descriptor from its own Pure, Bind and Map.
// Nothing here checks the monad laws; the effect packages test them.
type Descriptor[A, FA, FL, FS any] struct {
	// Pure lifts the empty accumulator.
	Pure func(conslist.List[A]) FL
	// Bind chains the accumulator into the next step.
	Bind func(FL, func(conslist.List[A]) FL) FL
	// Map prepends one resolved element onto the accumulator.
	Map func(FA, func(A) conslist.List[A]) FL
	// Finish maps the accumulator to its forward-ordered slice.
	Finish func(FL, func(conslist.List[A]) []A) FS
}

// Sequence turns effects into a single effect yielding their results in input
// order. The effects are combined strictly left to right in one pass, so
// side-effecting elements run in input order once the result is run.
// An empty input yields Pure of an empty slice.
func Sequence[A, FA, FL, FS any](d Descriptor[A, FA, FL, FS], effs []FA) FS {
	acc := d.Pure(conslist.Nil[A]())
	for _, e := range effs {
		acc = d.Bind(acc, func(ts conslist.List[A]) FL {
			return d.Map(e, func(t A) conslist.List[A] {
				return conslist.Cons(t, ts)
			})
		})
	}
	return d.Finish(acc, conslist.ToReversedSlice[A])
}

// Traverse maps every x to an effect with f and sequences the results.
func Traverse[X, A, FA, FL, FS any](d Descriptor[A, FA, FL, FS], xs []X, f func(X) FA) FS {
	effs := make([]FA, len(xs))
	for i, x := range xs {
		effs[i] = f(x)
	}
	return Sequence(d, effs)
}
