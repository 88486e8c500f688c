package tuplefunc_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/samber/lo"

	"github.com/rogpeppe/generictuple/tuple"
	"github.com/rogpeppe/generictuple/tuple/tuplefunc"
)

func TestApply(t *testing.T) {
	c := qt.New(t)
	sum := tuplefunc.Apply2(func(a, b int) int {
		return a + b
	}, tuple.MkT2(2, 3))
	c.Assert(sum, qt.Equals, 5)
}

func TestApplyCallsOnceInOrder(t *testing.T) {
	c := qt.New(t)
	var calls [][]any
	f := func(a int, b string, d float64) string {
		calls = append(calls, []any{a, b, d})
		return fmt.Sprint(a, b, d)
	}
	r := tuplefunc.Apply3(f, tuple.MkT3(1, "x", 2.5))
	c.Assert(r, qt.Equals, "1x2.5")
	c.Assert(calls, qt.DeepEquals, [][]any{{1, "x", 2.5}})
}

func TestApplyZero(t *testing.T) {
	c := qt.New(t)
	r := tuplefunc.Apply0(func() string {
		return "nothing"
	}, tuple.MkT0())
	c.Assert(r, qt.Equals, "nothing")
}

func TestApplyMove(t *testing.T) {
	c := qt.New(t)
	tup := tuple.MkT2("a", []int{1, 2, 3})
	n := tuplefunc.Apply2(func(s string, xs []int) int {
		return len(s) + len(xs)
	}, tup.Move())
	c.Assert(n, qt.Equals, 4)
	c.Assert(tup, qt.DeepEquals, tuple.T2[string, []int]{})
}

func TestApplyReturnsTuple(t *testing.T) {
	c := qt.New(t)
	swap := func(a int, b string) tuple.T2[string, int] {
		return tuple.MkT2(b, a)
	}
	r := tuplefunc.Apply2(swap, tuple.MkT2(1, "one"))
	c.Assert(r, qt.Equals, tuple.MkT2("one", 1))
}

func TestCall(t *testing.T) {
	c := qt.New(t)
	var got []int
	tuplefunc.Call4(func(a, b, d, e int) {
		got = append(got, a, b, d, e)
	}, tuple.MkT4(4, 3, 2, 1))
	c.Assert(got, qt.DeepEquals, []int{4, 3, 2, 1})

	called := 0
	tuplefunc.Call0(func() {
		called++
	}, tuple.MkT0())
	c.Assert(called, qt.Equals, 1)
}

func TestToA(t *testing.T) {
	c := qt.New(t)
	var got string
	f := tuplefunc.ToA_2_0(func(s string, n int) {
		got = s + strconv.Itoa(n)
	})
	f(tuple.MkT2("x", 9))
	c.Assert(got, qt.Equals, "x9")
}

func TestToAR(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToAR_1_1(strconv.Itoa)
	c.Assert(f(tuple.MkT1(12)), qt.Equals, "12")

	// The converted function can be used where a single
	// argument function is needed.
	pairs := []tuple.T2[string, string]{
		tuple.MkT2("a", "b"),
		tuple.MkT2("c", "d"),
	}
	concat := tuplefunc.ToAR_2_1(func(x, y string) string {
		return x + y
	})
	c.Assert(lo.Map(pairs, func(p tuple.T2[string, string], _ int) string {
		return concat(p)
	}), qt.DeepEquals, []string{"ab", "cd"})
}

func TestToAE(t *testing.T) {
	c := qt.New(t)
	errBad := errors.New("bad")
	f := tuplefunc.ToAE_1_0(func(ok bool) error {
		if !ok {
			return errBad
		}
		return nil
	})
	c.Assert(f(tuple.MkT1(true)), qt.IsNil)
	c.Assert(f(tuple.MkT1(false)), qt.ErrorIs, errBad)
}

func TestToARE(t *testing.T) {
	c := qt.New(t)
	parse := tuplefunc.ToARE_3_1(strconv.ParseInt)
	n, err := parse(tuple.MkT3("ff", 16, 64))
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, int64(255))

	_, err = parse(tuple.MkT3("zz", 10, 64))
	c.Assert(err, qt.ErrorMatches, `strconv.ParseInt: parsing "zz": invalid syntax`)
}

type ctxKey struct{}

func TestToCARE(t *testing.T) {
	c := qt.New(t)
	f := tuplefunc.ToCARE_2_1(func(ctx context.Context, a, b int) (string, error) {
		return fmt.Sprint(ctx.Value(ctxKey{}), a*b), nil
	})
	ctx := context.WithValue(context.Background(), ctxKey{}, "product")
	r, err := f(ctx, tuple.MkT2(6, 7))
	c.Assert(err, qt.IsNil)
	c.Assert(r, qt.Equals, "product42")

	g := tuplefunc.ToCARE_0_1(func(ctx context.Context) (int, error) {
		return 0, ctx.Err()
	})
	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = g(cctx, tuple.MkT0())
	c.Assert(err, qt.ErrorIs, context.Canceled)
}

func ExampleApply2() {
	r := tuplefunc.Apply2(func(a, b int) int {
		return a + b
	}, tuple.MkT2(2, 3))
	fmt.Println(r)
	// Output:
	// 5
}
