// Package tuple provides a collection of generic struct types
// that hold a specific number of values, T0 to T9.
//
// Each value is held in its own exported field named after its
// position: A0, A1 and so on. The fields can be used directly,
// or through the generated accessor methods, which exist only
// for positions the tuple actually holds, so an out-of-range
// access fails to compile:
//
//	GetN   returns a copy of the value at position N
//	RefN   returns a pointer to the value at position N
//	TakeN  returns the value at position N and resets it to zero
//
// A tuple is created with one of the MkTN functions or a composite
// literal. Plain assignment copies a tuple in the usual Go way;
// Clone and CopyFrom do the same but copy values that implement
// Cloner by calling their Clone method; Move and MoveFrom transfer
// the values and leave the source holding zero values.
//
// See the tuple/tuplefunc package for a way to call multiple-argument
// functions with the values of a tuple, and the tuple/lotuple package
// for conversions to and from github.com/samber/lo tuples.
package tuple

//go:generate go run ../cmd/tuplegen --max 9 -o tuple_gen.go tuple
