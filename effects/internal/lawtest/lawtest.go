// Package lawtest checks the functor and monad laws of an effect over seeded
// random inputs.
package lawtest

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

const propertyN = 500

// Monad is the int-valued slice of an effect F the laws are checked on.
// Observe must run or force F and return something comparable with
// assert.Equal; two values are equal when they observe equal.
type Monad[F any] struct {
	Pure    func(int) F
	Map     func(F, func(int) int) F
	Bind    func(F, func(int) F) F
	Observe func(F) any
}

// Check runs every law propertyN times. gen builds arbitrary effect values,
// including non-pure ones (absent, failed, state-reading, side-effecting).
func Check[F any](t *testing.T, m Monad[F], gen func(int) F) {
	t.Helper()
	t.Run("functor identity", func(t *testing.T) { FunctorIdentity(t, m, gen) })
	t.Run("functor pure", func(t *testing.T) { FunctorPure(t, m) })
	t.Run("left identity", func(t *testing.T) { LeftIdentity(t, m, gen) })
	t.Run("right identity", func(t *testing.T) { RightIdentity(t, m, gen) })
	t.Run("associativity", func(t *testing.T) { Associativity(t, m, gen) })
}

func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

// FunctorPure: Map(Pure(x), f) ≡ Pure(f(x))
func FunctorPure[F any](t *testing.T, m Monad[F]) {
	rng := newRand()
	f := func(x int) int { return x*2 + 1 }
	for range propertyN {
		x := randInt(rng)
		if !assert.Equal(t, m.Observe(m.Pure(f(x))), m.Observe(m.Map(m.Pure(x), f)), "x=%d", x) {
			return
		}
	}
}

// FunctorIdentity: Map(m, id) ≡ m
func FunctorIdentity[F any](t *testing.T, m Monad[F], gen func(int) F) {
	rng := newRand()
	for range propertyN {
		x := randInt(rng)
		if !assert.Equal(t, m.Observe(gen(x)), m.Observe(m.Map(gen(x), func(a int) int { return a })), "x=%d", x) {
			return
		}
	}
}

// LeftIdentity: Bind(Pure(x), f) ≡ f(x)
func LeftIdentity[F any](t *testing.T, m Monad[F], gen func(int) F) {
	rng := newRand()
	f := func(a int) F { return gen(a * 3) }
	for range propertyN {
		x := randInt(rng)
		if !assert.Equal(t, m.Observe(f(x)), m.Observe(m.Bind(m.Pure(x), f)), "x=%d", x) {
			return
		}
	}
}

// RightIdentity: Bind(m, Pure) ≡ m
func RightIdentity[F any](t *testing.T, m Monad[F], gen func(int) F) {
	rng := newRand()
	for range propertyN {
		x := randInt(rng)
		if !assert.Equal(t, m.Observe(gen(x)), m.Observe(m.Bind(gen(x), m.Pure)), "x=%d", x) {
			return
		}
	}
}

// Associativity: Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))
func Associativity[F any](t *testing.T, m Monad[F], gen func(int) F) {
	rng := newRand()
	f := func(a int) F { return gen(a + 3) }
	g := func(a int) F { return gen(a * 2) }
	for range propertyN {
		x := randInt(rng)
		left := m.Bind(m.Bind(gen(x), f), g)
		right := m.Bind(gen(x), func(a int) F { return m.Bind(f(a), g) })
		if !assert.Equal(t, m.Observe(left), m.Observe(right), "x=%d", x) {
			return
		}
	}
}
