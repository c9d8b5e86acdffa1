// Package conslist provides an immutable singly-linked list.
//
// Lists are built by prepending with Cons and are never mutated afterwards,
// so a tail can be shared by any number of lists.
package conslist

import "iter"

// List is an immutable cons list. The zero value is the empty list.
type List[T any] struct {
	node *node[T]
}

type node[T any] struct {
	head T
	tail *node[T]
	len  int
}

// Nil returns the empty list.
func Nil[T any]() List[T] {
	return List[T]{}
}

// Cons prepends t to ts.
func Cons[T any](t T, ts List[T]) List[T] {
	n := 1
	if ts.node != nil {
		n += ts.node.len
	}
	return List[T]{node: &node[T]{head: t, tail: ts.node, len: n}}
}

// Of builds a list holding xs in the given order.
func Of[T any](xs ...T) List[T] {
	l := Nil[T]()
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.node == nil
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	if l.node == nil {
		return 0
	}
	return l.node.len
}

// Head returns the first element, or false on the empty list.
func (l List[T]) Head() (T, bool) {
	if l.node == nil {
		var zero T
		return zero, false
	}
	return l.node.head, true
}

// Tail returns the list without its first element.
// The tail of the empty list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.node == nil {
		return l
	}
	return List[T]{node: l.node.tail}
}

// All yields the elements from head to last.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.node; n != nil; n = n.tail {
			if !yield(n.head) {
				return
			}
		}
	}
}

// ToSlice copies the elements in list order.
func (l List[T]) ToSlice() []T {
	out := make([]T, 0, l.Len())
	for t := range l.All() {
		out = append(out, t)
	}
	return out
}

// ToReversedSlice copies the elements last-to-head. A list accumulated by
// prepending comes back in insertion order.
func ToReversedSlice[T any](l List[T]) []T {
	out := make([]T, l.Len())
	i := len(out) - 1
	for t := range l.All() {
		out[i] = t
		i--
	}
	return out
}

// Reverse returns a new list with the elements in reverse order.
func (l List[T]) Reverse() List[T] {
	r := Nil[T]()
	for t := range l.All() {
		r = Cons(t, r)
	}
	return r
}
