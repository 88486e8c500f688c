// Package typelist implements the generate-time type computations
// used by tuplegen: index sequences and lookups in an ordered
// list of type parameter names.
//
// Nothing in this package is used by generated code at run time.
// A lookup failure aborts generation, which is how an out-of-range
// position or an unknown type becomes a build failure.
package typelist

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrListExhausted = errors.New("type list exhausted")
	ErrTypeNotFound  = errors.New("type not found in list")
)

// Seq returns the index sequence 0, 1, ..., n-1.
// Seq(0) returns an empty sequence.
func Seq(n int) []int {
	if n < 0 {
		panic("typelist.Seq called with negative length")
	}
	if n == 0 {
		return []int{}
	}
	return append(Seq(n-1), n-1)
}

// List holds an ordered list of type names.
type List []string

// Params returns the list prefix0, prefix1, ..., prefix<n-1>.
func Params(prefix string, n int) List {
	seq := Seq(n)
	l := make(List, len(seq))
	for _, i := range seq {
		l[i] = prefix + strconv.Itoa(i)
	}
	return l
}

// At returns the name at the given position.
func (l List) At(pos int) (string, error) {
	if pos < 0 {
		return "", errors.Errorf("negative position %d", pos)
	}
	if len(l) == 0 {
		return "", errors.Wrapf(ErrListExhausted, "position %d", pos)
	}
	if pos == 0 {
		return l[0], nil
	}
	name, err := l[1:].At(pos - 1)
	if err != nil {
		return "", errors.Wrapf(ErrListExhausted, "position %d", pos)
	}
	return name, nil
}

// Index returns the position of the first occurrence of name.
func (l List) Index(name string) (int, error) {
	if len(l) == 0 {
		return 0, errors.Wrapf(ErrTypeNotFound, "%q", name)
	}
	if l[0] == name {
		return 0, nil
	}
	i, err := l[1:].Index(name)
	if err != nil {
		return 0, err
	}
	return 1 + i, nil
}

// Leaf identifies one storage cell by both its position and
// its type name.
type Leaf struct {
	Pos  int
	Type string
}

// Leaf returns the leaf at the given position. The names in l are
// the generator's type parameter identifiers, which also name the
// fields of the generated struct, so Leaf fails if the name at pos
// appears more than once. This says nothing about the element types:
// a tuple holding several values of the same type gets a distinct
// type parameter for each position.
func (l List) Leaf(pos int) (Leaf, error) {
	name, err := l.At(pos)
	if err != nil {
		return Leaf{}, err
	}
	i, err := l.Index(name)
	if err != nil {
		return Leaf{}, err
	}
	if i != pos {
		return Leaf{}, errors.Errorf("type %q at position %d duplicates position %d", name, pos, i)
	}
	return Leaf{Pos: pos, Type: name}, nil
}

// Leaves returns the leaves of every position in order.
func (l List) Leaves() ([]Leaf, error) {
	seq := Seq(len(l))
	leaves := make([]Leaf, 0, len(seq))
	for _, i := range seq {
		leaf, err := l.Leaf(i)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, leaf)
	}
	return leaves, nil
}
