package tuple

// Tuple is implemented by all the tuple types in this package.
type Tuple interface {
	// Len returns the number of values held in the tuple.
	// It does not depend on the tuple's value.
	Len() int
}

// Size returns the number of values held by tuple type T.
//
// For example:
//
//	Size[T2[int, string]]() == 2
func Size[T Tuple]() int {
	var t T
	return t.Len()
}

// Cloner is implemented by values that know how to make
// an independent copy of themselves. When a tuple is cloned,
// each value implementing Cloner[V] for its own type V is copied
// by calling Clone rather than by assignment.
type Cloner[V any] interface {
	Clone() V
}

func clone[V any](x V) V {
	if c, ok := any(x).(Cloner[V]); ok {
		return c.Clone()
	}
	return x
}
