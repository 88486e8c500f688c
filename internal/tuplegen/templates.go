package tuplegen

const header = `// Code generated by tuplegen; DO NOT EDIT.

`

const tupleTemplate = header + `package {{.Package}}

import "cmp"
{{range $a := .Arities}}
// {{.Name}} holds {{.Describe}}.
type {{.Name}}{{.TypeParams "any"}} struct{{if .N}} {
{{- range .Leaves}}
	{{.Type}} {{.Type}}
{{- end}}
}{{else}}{}{{end}}

// Mk{{.Name}} returns a {{.Name}} holding the given values.
func Mk{{.Name}}{{.TypeParams "any"}}({{.Params}}) {{.Type}} {
	return {{.Literal "" "a%[2]d"}}
}

// T returns the values held in t.
func (t {{.Type}}) T() {{.Results}} {
{{- if .N}}
	return {{.Select "t"}}
{{- end}}
}

// Len returns the number of values held in a {{.Name}}.
func ({{.Type}}) Len() int {
	return {{.N}}
}

// Clone returns a copy of t. A value that implements Cloner
// is copied by calling its Clone method; any other value is
// assigned, so slices and maps without a Clone method still
// share their contents with t.
func (t {{.Type}}) Clone() {{.Type}} {
	return {{.Literal "" "clone(t.%[1]s)"}}
}

// Move returns the values held in t, leaving t holding
// zero values.
func (t *{{.Type}}) Move() {{.Type}} {
	return {{.Literal "" "t.Take%[2]d()"}}
}

// CopyFrom copies the values of src into t in position order,
// following the same rules as Clone.
func (t *{{.Type}}) CopyFrom(src {{.Type}}) {
{{- range .Leaves}}
	t.{{.Type}} = clone(src.{{.Type}})
{{- end}}
}

// MoveFrom moves the values of src into t in position order,
// leaving src holding zero values.
func (t *{{.Type}}) MoveFrom(src *{{.Type}}) {
{{- range .Leaves}}
	t.{{.Type}} = src.Take{{.Pos}}()
{{- end}}
}
{{- range .Leaves}}

// Get{{.Pos}} returns the value at position {{.Pos}}.
func (t {{$a.Type}}) Get{{.Pos}}() {{.Type}} {
	return t.{{.Type}}
}

// Ref{{.Pos}} returns a pointer to the value at position {{.Pos}}.
func (t *{{$a.Type}}) Ref{{.Pos}}() *{{.Type}} {
	return &t.{{.Type}}
}

// Take{{.Pos}} returns the value at position {{.Pos}}
// and resets it to its zero value.
func (t *{{$a.Type}}) Take{{.Pos}}() {{.Type}} {
	x := t.{{.Type}}
	var zero {{.Type}}
	t.{{.Type}} = zero
	return x
}
{{- end}}
{{- if .N}}

// Compare{{.N}} compares x and y lexicographically and
// returns -1, 0 or +1.
func Compare{{.N}}{{.TypeParams "cmp.Ordered"}}(x, y {{.Type}}) int {
{{- range .Init}}
	if c := cmp.Compare(x.{{.Type}}, y.{{.Type}}); c != 0 {
		return c
	}
{{- end}}
	return cmp.Compare(x.{{.Last.Type}}, y.{{.Last.Type}})
}

// CompareFunc{{.N}} is like Compare{{.N}} but compares the
// values at position i with cmp<i>.
func CompareFunc{{.N}}{{.TypeParams "any"}}(x, y {{.Type}}, {{.CmpParams}}) int {
{{- range .Init}}
	if c := cmp{{.Pos}}(x.{{.Type}}, y.{{.Type}}); c != 0 {
		return c
	}
{{- end}}
	return cmp{{.Last.Pos}}(x.{{.Last.Type}}, y.{{.Last.Type}})
}
{{- end}}
{{end}}`

const tupleFuncTemplate = header + `package {{.Package}}

import (
	"context"

	"{{.TuplePath}}"
)
{{range $a := .Arities}}
// Apply{{.N}} calls f with the values held in t as
// arguments and returns its result.
func Apply{{.N}}{{.TypeParams "any" "R"}}(f func({{.ArgTypes}}) R, t {{.QType "tuple"}}) R {
	return f({{.Select "t"}})
}

// Call{{.N}} calls f with the values held in t as arguments.
func Call{{.N}}{{.TypeParams "any"}}(f func({{.ArgTypes}}), t {{.QType "tuple"}}) {
	f({{.Select "t"}})
}

// ToA_{{.N}}_0 converts f to a function taking its arguments as a tuple.
func ToA_{{.N}}_0{{.TypeParams "any"}}(f func({{.ArgTypes}})) func({{.QType "tuple"}}) {
	return func(a {{.QType "tuple"}}) {
		f({{.Select "a"}})
	}
}

// ToAR_{{.N}}_1 converts f to a function taking its arguments as a tuple.
func ToAR_{{.N}}_1{{.TypeParams "any" "R"}}(f func({{.ArgTypes}}) R) func({{.QType "tuple"}}) R {
	return func(a {{.QType "tuple"}}) R {
		return f({{.Select "a"}})
	}
}

// ToAE_{{.N}}_0 converts f to a function taking its arguments as a tuple.
func ToAE_{{.N}}_0{{.TypeParams "any"}}(f func({{.ArgTypes}}) error) func({{.QType "tuple"}}) error {
	return func(a {{.QType "tuple"}}) error {
		return f({{.Select "a"}})
	}
}

// ToARE_{{.N}}_1 converts f to a function taking its arguments as a tuple.
func ToARE_{{.N}}_1{{.TypeParams "any" "R"}}(f func({{.ArgTypes}}) (R, error)) func({{.QType "tuple"}}) (R, error) {
	return func(a {{.QType "tuple"}}) (R, error) {
		return f({{.Select "a"}})
	}
}

// ToCARE_{{.N}}_1 converts f to a function taking its
// non-context arguments as a tuple.
func ToCARE_{{.N}}_1{{.TypeParams "any" "R"}}(f func(context.Context{{if .N}}, {{.ArgTypes}}{{end}}) (R, error)) func(context.Context, {{.QType "tuple"}}) (R, error) {
	return func(ctx context.Context, a {{.QType "tuple"}}) (R, error) {
		return f(ctx{{if .N}}, {{.Select "a"}}{{end}})
	}
}
{{end}}`

const loTemplate = header + `package {{.Package}}

import (
	"github.com/samber/lo"

	"{{.TuplePath}}"
)
{{range $a := .Arities}}
// ToLo{{.N}} converts t to the equivalent lo tuple.
func ToLo{{.N}}{{.TypeParams "any"}}(t {{.QType "tuple"}}) {{.LoType}} {
	return {{.LoLiteral "t.%[1]s"}}
}

// FromLo{{.N}} converts t to the equivalent tuple.
func FromLo{{.N}}{{.TypeParams "any"}}(t {{.LoType}}) {{.QType "tuple"}} {
	return {{.Literal "tuple" "t.%[3]s"}}
}

// Zip{{.N}} groups the elements of the given slices by index.
// When the slices have different lengths, missing values
// are zero.
func Zip{{.N}}{{.TypeParams "any"}}({{.SliceParams}}) []{{.QType "tuple"}} {
	return lo.Map(lo.Zip{{.N}}({{.Args}}), func(t {{.LoType}}, _ int) {{.QType "tuple"}} {
		return FromLo{{.N}}(t)
	})
}

// Unzip{{.N}} splits ts into one slice per position.
func Unzip{{.N}}{{.TypeParams "any"}}(ts []{{.QType "tuple"}}) ({{.SliceTypes}}) {
	return lo.Unzip{{.N}}(lo.Map(ts, func(t {{.QType "tuple"}}, _ int) {{.LoType}} {
		return ToLo{{.N}}(t)
	}))
}
{{end}}`
