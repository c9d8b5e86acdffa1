// Package effects provides composable, law-abiding effects for Go.
//
// An effect is a parametric computation type F[A] that offers three
// operations, exposed as package-level generic functions in each effect
// package:
//
//	Pure(a A) F[A]
//	Map(m F[A], f func(A) B) F[B]
//	Bind(m F[A], f func(A) F[B]) F[B]
//
// and satisfies the functor and monad laws:
//
//	Map(Pure(x), f)        == Pure(f(x))
//	Bind(Pure(x), f)       == f(x)
//	Bind(m, Pure)          == m
//	Bind(Bind(m, f), g)    == Bind(m, func(x) { return Bind(f(x), g) })
//
// where == means "same observable result after running".
//
// # Effects
//
//   - maybe: optional values, absence short-circuits
//   - try: eager computations whose returned errors and panics become data
//   - state: pure state threading, nothing runs before Run
//   - deferred: Io, a suspended side-effecting action, run explicitly
//   - sequence: slices and iter.Seq as the list effect (bind is flat-map)
//
// # Sequence and Traverse
//
// Go has no higher-kinded types, so the capability set is passed as a value,
// a [Descriptor]. [Sequence] and [Traverse] are written once against it and
// every effect package instantiates them through its own descriptor:
//
//	maybe.Sequence([]maybe.Maybe[int]{maybe.Just(1), maybe.Just(2)}) // Just([1 2])
//
// # Transformer
//
// The transformer package stacks Io over a slice of Try into one monad,
// IoListTry, whose Bind threads all three layers at once.
//
// # Host side-channels
//
// Side effects reach the outside world through handlers registered in a
// context.Context (see console and log). Performing them yields a deferred.Io
// that does nothing until run.
//
// Example:
//
//	ctx, end := console.WithEffectHandler(ctx, effects.NewEffectScopeConfig(1, 1), os.Stdout, os.Stderr)
//	defer end()
//
//	pgm := deferred.Then(console.PutStrLn(ctx, "hello"), console.PutStrLn(ctx, "world"))
//	_, err := pgm.Run()
package effects
