// Package lotuple converts between the tuple types of
// package tuple and the equivalent types of github.com/samber/lo,
// and provides zip and unzip operations producing tuple values.
//
// lo provides tuples of 2 to 9 values, so that's the range
// covered here.
package lotuple

//go:generate go run ../../cmd/tuplegen --max 9 -o lotuple_gen.go lotuple
