// Package monoid provides associative binary operations with an identity.
package monoid

// Monoid is an identity element and an associative Append over T.
type Monoid[T any] struct {
	Empty  T
	Append func(T, T) T
}

// String is concatenation over strings with "" as identity.
func String() Monoid[string] {
	return Monoid[string]{
		Empty:  "",
		Append: func(a, b string) string { return a + b },
	}
}

// Sum is addition with 0 as identity.
func Sum[T ~int | ~int64 | ~float64]() Monoid[T] {
	return Monoid[T]{
		Empty:  0,
		Append: func(a, b T) T { return a + b },
	}
}

// Concat folds xs from the left, starting at Empty.
func Concat[T any](m Monoid[T], xs []T) T {
	acc := m.Empty
	for _, x := range xs {
		acc = m.Append(acc, x)
	}
	return acc
}
