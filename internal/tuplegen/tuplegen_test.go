package tuplegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

// funcNames parses src and returns the names of all the top level
// functions and methods it declares. Methods are named Type.Method.
func funcNames(c *qt.C, src []byte) map[string]bool {
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	c.Assert(err, qt.IsNil)
	names := make(map[string]bool)
	for _, decl := range f.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		name := fd.Name.Name
		if fd.Recv != nil {
			name = recvName(fd.Recv.List[0].Type) + "." + name
		}
		names[name] = true
	}
	return names
}

func recvName(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.IndexExpr:
		return recvName(e.X)
	case *ast.IndexListExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	}
	panic("unexpected receiver type")
}

func TestGenerateTuple(t *testing.T) {
	c := qt.New(t)
	src, err := Generate(Params{
		Kind:     KindTuple,
		MaxArity: 3,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(string(src), qt.Matches, `(?s)// Code generated by tuplegen; DO NOT EDIT\.\n\npackage tuple\n.*`)
	names := funcNames(c, src)
	for _, name := range []string{
		"MkT0", "T0.Len", "T0.Clone", "T0.Move", "T0.CopyFrom", "T0.MoveFrom", "T0.T",
		"MkT3", "T3.Get0", "T3.Ref1", "T3.Take2", "T3.MoveFrom",
		"Compare1", "Compare3", "CompareFunc3",
	} {
		c.Check(names[name], qt.IsTrue, qt.Commentf("%s", name))
	}
	// No accessor beyond the last position.
	c.Assert(names["T3.Get3"], qt.IsFalse)
	c.Assert(names["T0.Get0"], qt.IsFalse)
	c.Assert(names["Compare0"], qt.IsFalse)
	c.Assert(names["MkT4"], qt.IsFalse)

	s := string(src)
	c.Assert(strings.Contains(s, "func MkT3[A0, A1, A2 any](a0 A0, a1 A1, a2 A2) T3[A0, A1, A2] {"), qt.IsTrue)
	c.Assert(strings.Contains(s, "type T0 struct{}"), qt.IsTrue)
	c.Assert(strings.Contains(s, "func Compare2[A0, A1 cmp.Ordered](x, y T2[A0, A1]) int {"), qt.IsTrue)
}

func TestGenerateTupleFunc(t *testing.T) {
	c := qt.New(t)
	src, err := Generate(Params{
		Kind:      KindTupleFunc,
		MaxArity:  2,
		TuplePath: "example.com/tuple",
	})
	c.Assert(err, qt.IsNil)
	s := string(src)
	c.Assert(strings.Contains(s, `"example.com/tuple"`), qt.IsTrue)
	c.Assert(strings.Contains(s, "func Apply0[R any](f func() R, t tuple.T0) R {"), qt.IsTrue)
	c.Assert(strings.Contains(s, "func Call0(f func(), t tuple.T0) {"), qt.IsTrue)
	c.Assert(strings.Contains(s, "func(context.Context, A0, A1) (R, error)"), qt.IsTrue)
	names := funcNames(c, src)
	for _, prefix := range []string{"Apply", "Call", "ToA_", "ToAR_", "ToAE_", "ToARE_", "ToCARE_"} {
		n := 0
		for name := range names {
			if strings.HasPrefix(name, prefix) {
				n++
			}
		}
		c.Check(n, qt.Equals, 3, qt.Commentf("%s", prefix))
	}
}

func TestGenerateLo(t *testing.T) {
	c := qt.New(t)
	src, err := Generate(Params{
		Kind:     KindLo,
		Package:  "lotuple",
		MaxArity: MaxLoArity,
	})
	c.Assert(err, qt.IsNil)
	names := funcNames(c, src)
	c.Assert(names["ToLo1"], qt.IsFalse)
	c.Assert(names["ToLo2"], qt.IsTrue)
	c.Assert(names["FromLo9"], qt.IsTrue)
	c.Assert(names["Zip9"], qt.IsTrue)
	c.Assert(names["Unzip9"], qt.IsTrue)
	c.Assert(strings.Contains(string(src), "\t\tI: t.A8,\n"), qt.IsTrue)
}

func TestGeneratePackageName(t *testing.T) {
	c := qt.New(t)
	src, err := Generate(Params{
		Kind:     KindTuple,
		Package:  "tup",
		MaxArity: 1,
	})
	c.Assert(err, qt.IsNil)
	c.Assert(string(src), qt.Matches, `(?s).*\npackage tup\n.*`)
}

var generateErrorTests = []struct {
	about       string
	params      Params
	expectError string
}{{
	about:       "unknown kind",
	params:      Params{Kind: "foo", MaxArity: 3},
	expectError: `"foo": unknown kind`,
}, {
	about:       "zero arity",
	params:      Params{Kind: KindTuple, MaxArity: 0},
	expectError: `max arity 0 too small for tuple: unsupported arity`,
}, {
	about:       "lo needs pairs",
	params:      Params{Kind: KindLo, MaxArity: 1},
	expectError: `max arity 1 too small for lotuple: unsupported arity`,
}, {
	about:       "lo stops at nine",
	params:      Params{Kind: KindLo, MaxArity: 10},
	expectError: `lo provides tuples up to 9 values, not 10: unsupported arity`,
}, {
	about:       "tuplefunc beyond the default tuple package",
	params:      Params{Kind: KindTupleFunc, MaxArity: 12},
	expectError: `github.com/rogpeppe/generictuple/tuple provides tuples up to 9 values, not 12: unsupported arity`,
}, {
	about:       "tuplefunc beyond the default tuple package named explicitly",
	params:      Params{Kind: KindTupleFunc, MaxArity: 10, TuplePath: DefaultTuplePath},
	expectError: `github.com/rogpeppe/generictuple/tuple provides tuples up to 9 values, not 10: unsupported arity`,
}}

func TestGenerateError(t *testing.T) {
	for _, test := range generateErrorTests {
		t.Run(test.about, func(t *testing.T) {
			c := qt.New(t)
			_, err := Generate(test.params)
			c.Assert(err, qt.ErrorMatches, test.expectError)
		})
	}
}

func TestGenerateErrorIs(t *testing.T) {
	c := qt.New(t)
	_, err := Generate(Params{Kind: "foo", MaxArity: 1})
	c.Assert(err, qt.ErrorIs, ErrUnknownKind)
	_, err = Generate(Params{Kind: KindLo, MaxArity: 12})
	c.Assert(err, qt.ErrorIs, ErrArity)
}

func TestGenerateTupleFuncOtherTuplePath(t *testing.T) {
	c := qt.New(t)
	// Another tuple package may be generated with more types.
	src, err := Generate(Params{
		Kind:      KindTupleFunc,
		MaxArity:  12,
		TuplePath: "example.com/tuple",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(strings.Contains(string(src), "t tuple.T12[A0, A1, A2, A3, A4, A5, A6, A7, A8, A9, A10, A11]) R {"), qt.IsTrue)
}

func TestArity(t *testing.T) {
	c := qt.New(t)
	arities, err := makeArities(0, 2)
	c.Assert(err, qt.IsNil)
	c.Assert(arities, qt.HasLen, 3)

	a0, a2 := arities[0], arities[2]
	c.Assert(a0.TypeParams("any"), qt.Equals, "")
	c.Assert(a0.TypeParams("any", "R"), qt.Equals, "[R any]")
	c.Assert(a0.Type(), qt.Equals, "T0")
	c.Assert(a0.Literal("", "a%[2]d"), qt.Equals, "T0{}")
	c.Assert(a0.Results(), qt.Equals, "")

	c.Assert(a2.Name(), qt.Equals, "T2")
	c.Assert(a2.TypeParams("cmp.Ordered"), qt.Equals, "[A0, A1 cmp.Ordered]")
	c.Assert(a2.QType("tuple"), qt.Equals, "tuple.T2[A0, A1]")
	c.Assert(a2.LoType(), qt.Equals, "lo.Tuple2[A0, A1]")
	c.Assert(a2.Params(), qt.Equals, "a0 A0, a1 A1")
	c.Assert(a2.Select("t"), qt.Equals, "t.A0, t.A1")
	c.Assert(a2.Results(), qt.Equals, "(A0, A1)")
	c.Assert(a2.CmpParams(), qt.Equals, "cmp0 func(A0, A0) int, cmp1 func(A1, A1) int")
	c.Assert(a2.Init(), qt.HasLen, 1)
	c.Assert(a2.Last().Pos, qt.Equals, 1)
	c.Assert(a2.Literal("", "clone(t.%[1]s)"), qt.Equals, "T2[A0, A1]{\n\t\tA0: clone(t.A0),\n\t\tA1: clone(t.A1),\n\t}")
	c.Assert(a2.LoLiteral("t.%[1]s"), qt.Equals, "lo.Tuple2[A0, A1]{\n\t\tA: t.A0,\n\t\tB: t.A1,\n\t}")

	lo2, err := makeArities(2, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(lo2, qt.HasLen, 2)
	c.Assert(lo2[0].N, qt.Equals, 2)
}
