package monoid_test

import (
	"testing"

	"github.com/on-the-ground/composable_go/effects/monoid"
	"github.com/stretchr/testify/assert"
)

func TestMonoid_String(t *testing.T) {
	m := monoid.String()
	assert.Equal(t, "", monoid.Concat(m, nil))
	assert.Equal(t, "abc", monoid.Concat(m, []string{"a", "b", "c"}))

	// identity and associativity
	assert.Equal(t, "x", m.Append(m.Empty, "x"))
	assert.Equal(t, "x", m.Append("x", m.Empty))
	assert.Equal(t, m.Append(m.Append("a", "b"), "c"), m.Append("a", m.Append("b", "c")))
}

func TestMonoid_Sum(t *testing.T) {
	assert.Equal(t, 10, monoid.Concat(monoid.Sum[int](), []int{1, 2, 3, 4}))
	assert.Equal(t, 0.0, monoid.Concat(monoid.Sum[float64](), nil))
}
