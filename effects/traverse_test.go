package effects_test

import (
	"testing"

	"github.com/on-the-ground/composable_go/effects"
	"github.com/on-the-ground/composable_go/effects/conslist"
	"github.com/stretchr/testify/assert"
)

// trace is a writer-like effect used to observe how Sequence drives the
// descriptor: it records every step it is bound through.
type trace[A any] struct {
	value A
	log   []string
}

func tracePure[A any](a A) trace[A] { return trace[A]{value: a} }

func traceBind[A, B any](m trace[A], f func(A) trace[B]) trace[B] {
	next := f(m.value)
	return trace[B]{value: next.value, log: append(append([]string{}, m.log...), next.log...)}
}

func traceMap[A, B any](m trace[A], f func(A) B) trace[B] {
	return trace[B]{value: f(m.value), log: m.log}
}

func traceDescriptor[A any]() effects.Descriptor[A, trace[A], trace[conslist.List[A]], trace[[]A]] {
	return effects.Descriptor[A, trace[A], trace[conslist.List[A]], trace[[]A]]{
		Pure:   tracePure[conslist.List[A]],
		Bind:   traceBind[conslist.List[A], conslist.List[A]],
		Map:    traceMap[A, conslist.List[A]],
		Finish: traceMap[conslist.List[A], []A],
	}
}

func TestSequence_PreservesOrderAndRunsLeftToRight(t *testing.T) {
	effs := []trace[int]{
		{value: 10, log: []string{"a"}},
		{value: 20, log: []string{"b"}},
		{value: 30, log: []string{"c"}},
	}

	res := effects.Sequence(traceDescriptor[int](), effs)

	assert.Equal(t, []int{10, 20, 30}, res.value)
	assert.Equal(t, []string{"a", "b", "c"}, res.log)
}

func TestSequence_EmptyIsPureEmpty(t *testing.T) {
	res := effects.Sequence(traceDescriptor[int](), nil)
	assert.NotNil(t, res.value)
	assert.Empty(t, res.value)
	assert.Empty(t, res.log)
}

func TestTraverse_IsSequenceOfMap(t *testing.T) {
	f := func(s string) trace[int] { return trace[int]{value: len(s), log: []string{s}} }
	xs := []string{"go", "effects", ""}

	viaTraverse := effects.Traverse(traceDescriptor[int](), xs, f)
	viaSequence := effects.Sequence(traceDescriptor[int](), []trace[int]{f(xs[0]), f(xs[1]), f(xs[2])})

	assert.Equal(t, viaSequence, viaTraverse)
	assert.Equal(t, []int{2, 7, 0}, viaTraverse.value)
}
