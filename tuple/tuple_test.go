package tuple_test

import (
	"cmp"
	"fmt"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/generictuple/tuple"
)

func TestLen(t *testing.T) {
	c := qt.New(t)
	tuples := []tuple.Tuple{
		tuple.MkT0(),
		tuple.MkT1(0),
		tuple.MkT2(0, ""),
		tuple.MkT3(0, "", false),
		tuple.MkT4(0, "", false, 0.0),
		tuple.MkT5(0, "", false, 0.0, 'x'),
		tuple.MkT6(0, "", false, 0.0, 'x', byte(0)),
		tuple.MkT7(0, "", false, 0.0, 'x', byte(0), []int(nil)),
		tuple.MkT8(0, "", false, 0.0, 'x', byte(0), []int(nil), map[string]int(nil)),
		tuple.MkT9(0, "", false, 0.0, 'x', byte(0), []int(nil), map[string]int(nil), struct{}{}),
	}
	for i, tup := range tuples {
		c.Assert(tup.Len(), qt.Equals, i)
	}
}

func TestSize(t *testing.T) {
	c := qt.New(t)
	c.Assert(tuple.Size[tuple.T0](), qt.Equals, 0)
	c.Assert(tuple.Size[tuple.T1[int]](), qt.Equals, 1)
	c.Assert(tuple.Size[tuple.T2[int, string]](), qt.Equals, 2)
	c.Assert(tuple.Size[tuple.T9[int, int, int, int, int, int, int, int, int]](), qt.Equals, 9)
}

func TestMkAndGet(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT2(1, "hi")
	c.Assert(tup.Get0(), qt.Equals, 1)
	c.Assert(tup.Get1(), qt.Equals, "hi")
	c.Assert(tup.Len(), qt.Equals, 2)
	c.Assert(tup, qt.Equals, tuple.T2[int, string]{A0: 1, A1: "hi"})
}

func TestGetEveryPosition(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT9(0, 1, 2, 3, 4, 5, 6, 7, 8)
	got := []int{
		tup.Get0(), tup.Get1(), tup.Get2(), tup.Get3(), tup.Get4(),
		tup.Get5(), tup.Get6(), tup.Get7(), tup.Get8(),
	}
	c.Assert(got, qt.DeepEquals, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
}

func TestSameTypeAtDifferentPositions(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT3("a", "b", "c")
	*tup.Ref1() = "x"
	c.Assert(tup, qt.Equals, tuple.MkT3("a", "x", "c"))
}

func TestRef(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT2(1, []string{"a"})
	*tup.Ref0() += 10
	p := tup.Ref1()
	*p = append(*p, "b")
	c.Assert(tup.Get0(), qt.Equals, 11)
	c.Assert(tup.Get1(), qt.DeepEquals, []string{"a", "b"})
}

func TestGetReturnsCopy(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT1(1)
	x := tup.Get0()
	x++
	c.Assert(x, qt.Equals, 2)
	c.Assert(tup.Get0(), qt.Equals, 1)
}

func TestTake(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT2("hello", []int{1, 2, 3})
	s := tup.Take1()
	c.Assert(s, qt.DeepEquals, []int{1, 2, 3})
	c.Assert(tup.Get1(), qt.DeepEquals, []int(nil))
	c.Assert(tup.Get0(), qt.Equals, "hello")
}

func TestT(t *testing.T) {
	c := qt.New(t)
	a, b, d := tuple.MkT3(1, "two", 3.0).T()
	c.Assert(a, qt.Equals, 1)
	c.Assert(b, qt.Equals, "two")
	c.Assert(d, qt.Equals, 3.0)
}

func TestAssignmentCopies(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT2(1, "a")
	u := tup
	*u.Ref0() = 2
	c.Assert(tup.Get0(), qt.Equals, 1)
	c.Assert(u.Get0(), qt.Equals, 2)
}

// ints implements tuple.Cloner so that a cloned tuple does not share
// its backing array.
type ints []int

func (s ints) Clone() ints {
	if s == nil {
		return nil
	}
	return append(ints(nil), s...)
}

func TestCloneEqual(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT3(1, "hi", ints{1, 2, 3})
	u := tup.Clone()
	c.Assert(u.Get0(), qt.Equals, tup.Get0())
	c.Assert(u.Get1(), qt.Equals, tup.Get1())
	c.Assert(u.Get2(), qt.DeepEquals, tup.Get2())
}

func TestCloneIndependent(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT2(1, ints{1, 2, 3})
	u := tup.Clone()
	*u.Ref0() = 100
	u.Get1()[0] = 100
	c.Assert(tup.Get0(), qt.Equals, 1)
	c.Assert(tup.Get1(), qt.DeepEquals, ints{1, 2, 3})
	c.Assert(u.Get1(), qt.DeepEquals, ints{100, 2, 3})
}

func TestCloneWithoutClonerSharesStorage(t *testing.T) {
	c := qt.New(t)
	// A slice has no Clone method, so Clone assigns it.
	tup := tuple.MkT1([]int{1, 2, 3})
	u := tup.Clone()
	u.Get0()[0] = 100
	c.Assert(tup.Get0(), qt.DeepEquals, []int{100, 2, 3})
}

func TestCloneNested(t *testing.T) {
	c := qt.New(t)
	inner := tuple.MkT2("x", ints{1})
	outer := tuple.MkT2(inner, 5)
	u := outer.Clone()
	(*u.Ref0().Ref1())[0] = 2
	c.Assert(outer.Get0().Get1(), qt.DeepEquals, ints{1})
	c.Assert(u.Get0().Get1(), qt.DeepEquals, ints{2})
}

// recorder is a value that records when it is cloned.
type recorder struct {
	name string
	log  *[]string
}

func (r recorder) Clone() recorder {
	*r.log = append(*r.log, r.name)
	return r
}

func TestCopyFromOrder(t *testing.T) {
	c := qt.New(t)
	var log []string
	src := tuple.MkT3(
		recorder{"a", &log},
		recorder{"b", &log},
		recorder{"c", &log},
	)
	var dst tuple.T3[recorder, recorder, recorder]
	dst.CopyFrom(src)
	c.Assert(log, qt.DeepEquals, []string{"a", "b", "c"})
	c.Assert(dst.Get1().name, qt.Equals, "b")
	c.Assert(src.Get1().name, qt.Equals, "b")
}

func TestCopyFromIndependent(t *testing.T) {
	c := qt.New(t)
	src := tuple.MkT2(ints{1}, "a")
	dst := tuple.MkT2(ints{9, 9}, "z")
	dst.CopyFrom(src)
	dst.Get0()[0] = 5
	c.Assert(src.Get0(), qt.DeepEquals, ints{1})
	c.Assert(dst, qt.DeepEquals, tuple.MkT2(ints{5}, "a"))
}

func TestMove(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT1([]int{1, 2, 3})
	u := tup.Move()
	c.Assert(u.Get0(), qt.HasLen, 3)
	c.Assert(tup.Get0(), qt.DeepEquals, []int(nil))
	c.Assert(tup.Len(), qt.Equals, 1)

	// The moved-from tuple can be reused.
	tup = tuple.MkT1([]int{4})
	c.Assert(tup.Get0(), qt.DeepEquals, []int{4})
}

func TestMoveAllValues(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT3(1, "hi", []int{1})
	before := tup.Clone()
	u := tup.Move()
	c.Assert(u, qt.DeepEquals, before)
	c.Assert(tup, qt.DeepEquals, tuple.T3[int, string, []int]{})
}

func TestMoveFrom(t *testing.T) {
	c := qt.New(t)
	src := tuple.MkT2("x", []int{1, 2})
	dst := tuple.MkT2("y", []int{3})
	dst.MoveFrom(&src)
	c.Assert(dst, qt.DeepEquals, tuple.MkT2("x", []int{1, 2}))
	c.Assert(src, qt.DeepEquals, tuple.T2[string, []int]{})

	src.CopyFrom(tuple.MkT2("again", []int{7}))
	c.Assert(src.Get0(), qt.Equals, "again")
}

func TestMoveFromSelf(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT2(1, "a")
	tup.MoveFrom(&tup)
	c.Assert(tup, qt.Equals, tuple.MkT2(1, "a"))
}

func TestZeroArity(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT0()
	u := tup.Clone()
	v := tup.Move()
	u.CopyFrom(v)
	u.MoveFrom(&v)
	tup.T()
	c.Assert(u, qt.Equals, tuple.T0{})
	c.Assert(u.Len(), qt.Equals, 0)
}

func TestSingleValueTupleOfTuple(t *testing.T) {
	c := qt.New(t)
	var log []string
	tup := tuple.MkT1(recorder{"r", &log})

	// Making a tuple from a tuple nests it and does not copy
	// through Clone.
	nested := tuple.MkT1(tup)
	c.Assert(nested.Get0(), qt.Equals, tup)
	c.Assert(log, qt.HasLen, 0)

	// Clone copies the tuple itself.
	cp := tup.Clone()
	c.Assert(cp, qt.Equals, tup)
	c.Assert(log, qt.DeepEquals, []string{"r"})
}

var compareTests = []struct {
	x, y tuple.T2[int, string]
	want int
}{{
	x:    tuple.MkT2(1, "a"),
	y:    tuple.MkT2(1, "a"),
	want: 0,
}, {
	x:    tuple.MkT2(1, "b"),
	y:    tuple.MkT2(2, "a"),
	want: -1,
}, {
	x:    tuple.MkT2(2, "a"),
	y:    tuple.MkT2(1, "b"),
	want: 1,
}, {
	x:    tuple.MkT2(1, "a"),
	y:    tuple.MkT2(1, "b"),
	want: -1,
}, {
	x:    tuple.MkT2(1, "b"),
	y:    tuple.MkT2(1, "a"),
	want: 1,
}}

func TestCompare(t *testing.T) {
	for _, test := range compareTests {
		t.Run(fmt.Sprintf("%v-%v", test.x, test.y), func(t *testing.T) {
			c := qt.New(t)
			c.Assert(tuple.Compare2(test.x, test.y), qt.Equals, test.want)
			c.Assert(tuple.Compare2(test.y, test.x), qt.Equals, -test.want)
		})
	}
}

func TestCompareFunc(t *testing.T) {
	c := qt.New(t)
	x := tuple.MkT3("A", []int{1}, 1)
	y := tuple.MkT3("a", []int{1, 2}, 0)
	lenCmp := func(a, b []int) int {
		return cmp.Compare(len(a), len(b))
	}
	c.Assert(tuple.CompareFunc3(x, y, strings.Compare, lenCmp, cmp.Compare[int]), qt.Equals, -1)

	foldCmp := func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
	c.Assert(tuple.CompareFunc3(x, y, foldCmp, lenCmp, cmp.Compare[int]), qt.Equals, -1)

	y = tuple.MkT3("a", []int{5}, 0)
	c.Assert(tuple.CompareFunc3(x, y, foldCmp, lenCmp, cmp.Compare[int]), qt.Equals, 1)
}

func ExampleMkT2() {
	t := tuple.MkT2(1, "hi")
	fmt.Println(t.Get0(), t.Get1(), t.Len())
	// Output:
	// 1 hi 2
}

func ExampleT1_Move() {
	t := tuple.MkT1([]int{1, 2, 3})
	u := t.Move()
	fmt.Println(len(u.Get0()), t.Get0() == nil)
	// Output:
	// 3 true
}
