package lotuple_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/samber/lo"

	"github.com/rogpeppe/generictuple/tuple"
	"github.com/rogpeppe/generictuple/tuple/lotuple"
)

func TestToLo(t *testing.T) {
	c := qt.New(t)
	c.Assert(lotuple.ToLo2(tuple.MkT2(1, "a")), qt.Equals, lo.T2(1, "a"))
	c.Assert(lotuple.ToLo3(tuple.MkT3(1, "a", true)), qt.Equals, lo.T3(1, "a", true))
	c.Assert(
		lotuple.ToLo9(tuple.MkT9(1, 2, 3, 4, 5, 6, 7, 8, 9)),
		qt.Equals,
		lo.T9(1, 2, 3, 4, 5, 6, 7, 8, 9),
	)
}

func TestFromLo(t *testing.T) {
	c := qt.New(t)
	c.Assert(lotuple.FromLo2(lo.T2("x", 2.5)), qt.Equals, tuple.MkT2("x", 2.5))
	c.Assert(lotuple.FromLo4(lo.T4(1, 2, 3, 4)), qt.Equals, tuple.MkT4(1, 2, 3, 4))
}

func TestRoundTrip(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT5("a", 1, true, 'r', uint8(7))
	c.Assert(lotuple.FromLo5(lotuple.ToLo5(tup)), qt.Equals, tup)
}

func TestZip(t *testing.T) {
	c := qt.New(t)
	got := lotuple.Zip2([]int{1, 2, 3}, []string{"a", "b"})
	c.Assert(got, qt.DeepEquals, []tuple.T2[int, string]{
		tuple.MkT2(1, "a"),
		tuple.MkT2(2, "b"),
		tuple.MkT2(3, ""),
	})
}

func TestZipEmpty(t *testing.T) {
	c := qt.New(t)
	got := lotuple.Zip3([]int(nil), []int(nil), []int(nil))
	c.Assert(got, qt.HasLen, 0)
}

func TestUnzip(t *testing.T) {
	c := qt.New(t)
	ints, strs, bools := lotuple.Unzip3([]tuple.T3[int, string, bool]{
		tuple.MkT3(1, "a", true),
		tuple.MkT3(2, "b", false),
	})
	c.Assert(ints, qt.DeepEquals, []int{1, 2})
	c.Assert(strs, qt.DeepEquals, []string{"a", "b"})
	c.Assert(bools, qt.DeepEquals, []bool{true, false})
}
