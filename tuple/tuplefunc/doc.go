// Package tuplefunc provides functions that call multiple-argument
// functions with the values held in a tuple, and that convert
// multiple-argument functions to their single-argument equivalents.
// This makes it trivial to pass arbitrary functions to generic operations
// that are designed to operate on single-argument functions.
//
// ApplyN calls a function returning a single value with the values
// of a tuple.TN as arguments, in position order, and returns its
// result; CallN does the same for a function without results.
// To move the values out of a tuple rather than copy them, pass
// the result of its Move method:
//
//	r := tuplefunc.Apply2(f, t.Move())
//
// The names of the conversion functions match the following
// regular expression:
//
//	ToC?A?R?E?_[0-9]+_[0-9]+
//
// Each optional letter represents one aspect of the function that's being converted to.
//
//	C - context.Context argument
//	A - argument parameter
//	R - return parameter
//	E - error return
//
// The first number is the number of argument parameters (not including context.Context for a C function);
// the second number is the number of return parameters (not including error for an E function).
//
// So, for example:
//
//	ToCARE_3_1
//
// converts from (for some types A0, A1, A2 and R)
//
//	func(context.Context, A0, A1, A2) (R, error)
//
// to:
//
//	func(context.Context, tuple.T3[A0, A1, A2]) (R, error)
package tuplefunc

//go:generate go run ../../cmd/tuplegen --max 9 -o tuplefunc_gen.go tuplefunc
