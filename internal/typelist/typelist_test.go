package typelist

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

var seqTests = []struct {
	n    int
	want []int
}{{
	n:    0,
	want: []int{},
}, {
	n:    1,
	want: []int{0},
}, {
	n:    4,
	want: []int{0, 1, 2, 3},
}}

func TestSeq(t *testing.T) {
	c := qt.New(t)
	for _, test := range seqTests {
		c.Assert(Seq(test.n), qt.DeepEquals, test.want)
	}
}

func TestSeqNegative(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { Seq(-1) }, qt.PanicMatches, `typelist.Seq called with negative length`)
}

func TestParams(t *testing.T) {
	c := qt.New(t)
	c.Assert(Params("A", 3), qt.DeepEquals, List{"A0", "A1", "A2"})
	c.Assert(Params("A", 0), qt.HasLen, 0)
}

func TestAt(t *testing.T) {
	c := qt.New(t)
	l := List{"int", "string", "bool"}
	for i, want := range l {
		got, err := l.At(i)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, want)
	}
}

func TestAtOutOfRange(t *testing.T) {
	c := qt.New(t)
	l := List{"int", "string"}
	_, err := l.At(2)
	c.Assert(err, qt.ErrorIs, ErrListExhausted)
	c.Assert(err, qt.ErrorMatches, `position 2: .*type list exhausted`)

	_, err = List{}.At(0)
	c.Assert(err, qt.ErrorIs, ErrListExhausted)

	_, err = l.At(-1)
	c.Assert(err, qt.ErrorMatches, `negative position -1`)
}

func TestIndex(t *testing.T) {
	c := qt.New(t)
	l := List{"int", "string", "int"}
	i, err := l.Index("string")
	c.Assert(err, qt.IsNil)
	c.Assert(i, qt.Equals, 1)

	// The first occurrence wins.
	i, err = l.Index("int")
	c.Assert(err, qt.IsNil)
	c.Assert(i, qt.Equals, 0)

	_, err = l.Index("float64")
	c.Assert(err, qt.ErrorIs, ErrTypeNotFound)
}

func TestLeaves(t *testing.T) {
	c := qt.New(t)
	leaves, err := Params("A", 3).Leaves()
	c.Assert(err, qt.IsNil)
	c.Assert(leaves, qt.DeepEquals, []Leaf{
		{Pos: 0, Type: "A0"},
		{Pos: 1, Type: "A1"},
		{Pos: 2, Type: "A2"},
	})
}

func TestLeafDuplicate(t *testing.T) {
	c := qt.New(t)
	_, err := List{"A", "B", "A"}.Leaf(2)
	c.Assert(err, qt.ErrorMatches, `type "A" at position 2 duplicates position 0`)

	_, err = List{"A", "B", "A"}.Leaves()
	c.Assert(err, qt.Not(qt.IsNil))
}
