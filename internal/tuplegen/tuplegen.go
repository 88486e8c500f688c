// Package tuplegen generates the fixed-arity sources of the tuple,
// tuple/tuplefunc and tuple/lotuple packages.
package tuplegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/rogpeppe/generictuple/internal/typelist"
)

// Kind names one of the generated packages.
type Kind string

const (
	KindTuple     Kind = "tuple"
	KindTupleFunc Kind = "tuplefunc"
	KindLo        Kind = "lotuple"
)

// DefaultTuplePath is the import path of the tuple package
// referred to by the tuplefunc and lotuple sources.
const DefaultTuplePath = "github.com/rogpeppe/generictuple/tuple"

// DefaultMaxArity holds the size of the largest tuple type
// in the package at DefaultTuplePath.
const DefaultMaxArity = 9

// MaxLoArity holds the size of the largest tuple type
// provided by github.com/samber/lo.
const MaxLoArity = 9

var (
	ErrUnknownKind = errors.New("unknown kind")
	ErrArity       = errors.New("unsupported arity")
)

// Kinds returns all the kinds that Generate accepts.
func Kinds() []Kind {
	return []Kind{KindTuple, KindTupleFunc, KindLo}
}

// Params holds the parameters for Generate.
type Params struct {
	Kind Kind

	// Package holds the name of the generated package.
	// If it's empty, the kind name is used.
	Package string

	// MaxArity holds the size of the largest tuple to generate code for.
	// The tuplefunc and lotuple sources refer to tuple types of every
	// size up to MaxArity, so the tuple package at TuplePath must have
	// been generated with at least the same value. When TuplePath is
	// the default, MaxArity may not exceed DefaultMaxArity.
	MaxArity int

	// TuplePath holds the import path of the tuple package.
	// If it's empty, DefaultTuplePath is used.
	TuplePath string
}

type templateData struct {
	Package   string
	TuplePath string
	Arities   []arity
}

// Generate returns the formatted Go source for the given kind.
func Generate(p Params) ([]byte, error) {
	tmpl, ok := templates[p.Kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "%q", p.Kind)
	}
	minArity := 0
	if p.Kind == KindLo {
		minArity = 2
		if p.MaxArity > MaxLoArity {
			return nil, errors.Wrapf(ErrArity, "lo provides tuples up to %d values, not %d", MaxLoArity, p.MaxArity)
		}
	}
	if p.Kind != KindTuple && (p.TuplePath == "" || p.TuplePath == DefaultTuplePath) && p.MaxArity > DefaultMaxArity {
		return nil, errors.Wrapf(ErrArity, "%s provides tuples up to %d values, not %d", DefaultTuplePath, DefaultMaxArity, p.MaxArity)
	}
	if p.MaxArity < max(minArity, 1) {
		return nil, errors.Wrapf(ErrArity, "max arity %d too small for %s", p.MaxArity, p.Kind)
	}
	arities, err := makeArities(minArity, p.MaxArity)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot compute arities")
	}
	data := templateData{
		Package:   p.Package,
		TuplePath: p.TuplePath,
		Arities:   arities,
	}
	if data.Package == "" {
		data.Package = string(p.Kind)
	}
	if data.TuplePath == "" {
		data.TuplePath = DefaultTuplePath
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "cannot execute %s template", p.Kind)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot format generated %s source", p.Kind)
	}
	return src, nil
}

func makeArities(minArity, maxArity int) ([]arity, error) {
	var arities []arity
	for _, n := range lo.Drop(typelist.Seq(maxArity+1), minArity) {
		leaves, err := typelist.Params("A", n).Leaves()
		if err != nil {
			return nil, err
		}
		arities = append(arities, arity{
			N:      n,
			Leaves: leaves,
		})
	}
	return arities, nil
}

// arity holds the information needed to generate the
// code for a single tuple size.
type arity struct {
	N      int
	Leaves []typelist.Leaf
}

func (a arity) names() []string {
	return lo.Map(a.Leaves, func(l typelist.Leaf, _ int) string {
		return l.Type
	})
}

// Name returns the name of the tuple type, for example T2.
func (a arity) Name() string {
	return "T" + strconv.Itoa(a.N)
}

// Describe returns a phrase describing the contents of the tuple.
func (a arity) Describe() string {
	switch a.N {
	case 0:
		return "no values"
	case 1:
		return "a single value"
	}
	return fmt.Sprintf("a tuple of %d values", a.N)
}

// TypeParams returns the type parameter list of the tuple with
// any extra parameters appended, all constrained by constraint.
func (a arity) TypeParams(constraint string, extra ...string) string {
	ps := append(a.names(), extra...)
	if len(ps) == 0 {
		return ""
	}
	return "[" + strings.Join(ps, ", ") + " " + constraint + "]"
}

// QType returns the instantiated tuple type, qualified
// by pkg if that's non-empty.
func (a arity) QType(pkg string) string {
	t := a.Name()
	if pkg != "" {
		t = pkg + "." + t
	}
	if a.N == 0 {
		return t
	}
	return t + "[" + a.ArgTypes() + "]"
}

// Type returns the unqualified instantiated tuple type.
func (a arity) Type() string {
	return a.QType("")
}

// LoType returns the equivalent lo tuple type.
func (a arity) LoType() string {
	return fmt.Sprintf("lo.Tuple%d[%s]", a.N, a.ArgTypes())
}

// ArgTypes returns the comma-separated element types.
func (a arity) ArgTypes() string {
	return strings.Join(a.names(), ", ")
}

// Results returns the result list of a function
// returning all the elements.
func (a arity) Results() string {
	switch a.N {
	case 0:
		return ""
	case 1:
		return a.ArgTypes()
	}
	return "(" + a.ArgTypes() + ")"
}

// Params returns a parameter list with one parameter per element.
func (a arity) Params() string {
	return a.join(func(l typelist.Leaf) string {
		return fmt.Sprintf("a%d %s", l.Pos, l.Type)
	})
}

// Args returns the argument names of Params.
func (a arity) Args() string {
	return a.join(func(l typelist.Leaf) string {
		return fmt.Sprintf("a%d", l.Pos)
	})
}

// SliceParams returns a parameter list with one slice
// parameter per element.
func (a arity) SliceParams() string {
	return a.join(func(l typelist.Leaf) string {
		return fmt.Sprintf("a%d []%s", l.Pos, l.Type)
	})
}

// SliceTypes returns one slice type per element.
func (a arity) SliceTypes() string {
	return a.join(func(l typelist.Leaf) string {
		return "[]" + l.Type
	})
}

// CmpParams returns one comparison function parameter per element.
func (a arity) CmpParams() string {
	return a.join(func(l typelist.Leaf) string {
		return fmt.Sprintf("cmp%d func(%s, %s) int", l.Pos, l.Type, l.Type)
	})
}

// Select returns all the fields of v in order.
func (a arity) Select(v string) string {
	return a.join(func(l typelist.Leaf) string {
		return v + "." + l.Type
	})
}

// Init returns all leaves but the last.
func (a arity) Init() []typelist.Leaf {
	return lo.DropRight(a.Leaves, 1)
}

// Last returns the last leaf.
func (a arity) Last() typelist.Leaf {
	return a.Leaves[len(a.Leaves)-1]
}

// Literal returns a composite literal of the tuple type qualified
// by pkg, with the value of each field produced by expanding
// valueFormat with the field name, the position and the lo
// field name as arguments. valueFormat must use explicit
// argument indexes.
func (a arity) Literal(pkg, valueFormat string) string {
	return literal(a.QType(pkg), a.names(), a.values(valueFormat))
}

// LoLiteral is like Literal but builds a lo tuple.
func (a arity) LoLiteral(valueFormat string) string {
	keys := lo.Map(a.Leaves, func(l typelist.Leaf, _ int) string {
		return loField(l.Pos)
	})
	return literal(a.LoType(), keys, a.values(valueFormat))
}

func (a arity) values(valueFormat string) []string {
	return lo.Map(a.Leaves, func(l typelist.Leaf, _ int) string {
		return fmt.Sprintf(valueFormat, l.Type, l.Pos, loField(l.Pos))
	})
}

func (a arity) join(f func(typelist.Leaf) string) string {
	return strings.Join(lo.Map(a.Leaves, func(l typelist.Leaf, _ int) string {
		return f(l)
	}), ", ")
}

func literal(typ string, keys, values []string) string {
	if len(keys) == 0 {
		return typ + "{}"
	}
	var b strings.Builder
	b.WriteString(typ)
	b.WriteString("{\n")
	for i, k := range keys {
		fmt.Fprintf(&b, "\t\t%s: %s,\n", k, values[i])
	}
	b.WriteString("\t}")
	return b.String()
}

// loField returns the lo tuple field name for position i: A, B, C, ...
func loField(i int) string {
	return string(rune('A' + i))
}

var templates = map[Kind]*template.Template{
	KindTuple:     template.Must(template.New("tuple").Parse(tupleTemplate)),
	KindTupleFunc: template.Must(template.New("tuplefunc").Parse(tupleFuncTemplate)),
	KindLo:        template.Must(template.New("lotuple").Parse(loTemplate)),
}
