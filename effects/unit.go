package effects

// Unit is the result of an action run only for its side effect.
type Unit struct{}
