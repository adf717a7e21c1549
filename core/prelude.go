package core

import (
	"github.com/brendanzab/lambdapi/literal"
	"github.com/brendanzab/lambdapi/syntax"
)

// Prelude returns a Context seeded with one claim per builtin literal kind
// (S32, U64, F64, String, ...), so that a literal like `0` or `"x"` has
// somewhere for its type to resolve to, plus a small set of arithmetic and
// comparison externs over S32 and U64. Every caller of Infer/Check should
// start from a Context descended from Prelude, or extended with its own
// equivalent claims, rather than NewContext directly - an empty Context
// can elaborate Bool and universes, since those have native Value
// constructors, but rejects every other literal with UnboundVariable, and
// has no arithmetic at all.
//
// Each literal-kind name is bound by ExtendClaim to a fresh neutral
// standing for an opaque base type; these claims carry no definition, so
// two literals of the same kind compare equal only because they share the
// same claim's NVar.Level, never by unfolding to anything more concrete.
func Prelude() *Context {
	ctx := NewContext()
	for _, k := range literalKinds {
		ctx = ctx.ExtendClaim(k.String(), VUniverse{Level: 0})
	}
	return installExterns(ctx)
}

var literalKinds = []literal.Kind{
	literal.U8, literal.U16, literal.U32, literal.U64,
	literal.S8, literal.S16, literal.S32, literal.S64,
	literal.F32, literal.F64,
	literal.Char, literal.String,
}

// An externSpec names one primitive Prelude installs: Domains are the
// names (resolved against the literal-kind claims already in scope) of
// its argument types in order, Result is its result type's name.
type externSpec struct {
	Name    string
	Domains []string
	Result  string
}

var externSpecs = []externSpec{
	{"add-s32", []string{"S32", "S32"}, "S32"},
	{"sub-s32", []string{"S32", "S32"}, "S32"},
	{"mul-s32", []string{"S32", "S32"}, "S32"},
	{"eq-s32", []string{"S32", "S32"}, "Bool"},
	{"lt-s32", []string{"S32", "S32"}, "Bool"},
	{"add-u64", []string{"U64", "U64"}, "U64"},
	{"sub-u64", []string{"U64", "U64"}, "U64"},
	{"mul-u64", []string{"U64", "U64"}, "U64"},
	{"eq-u64", []string{"U64", "U64"}, "Bool"},
	{"lt-u64", []string{"U64", "U64"}, "Bool"},
}

// installExterns extends ctx with one ExtendDef per externSpec. Each
// extern's type is found by running its arrow type through the ordinary
// checker - the same path a user-written annotation takes - rather than
// hand-building VPi values, so an extern's type is indexed exactly as
// consistently as anything else a Context ever holds.
func installExterns(ctx *Context) *Context {
	c := NewChecker(Config{})
	for _, spec := range externSpecs {
		names := append(append([]string{}, spec.Domains...), spec.Result)
		tyVal, _, _, err := c.inferUniverse(ctx, arrowType(names...))
		if err != nil {
			panic("core: malformed builtin extern type for " + spec.Name + ": " + err.Error())
		}
		ctx = ctx.ExtendDef(spec.Name, Extern{Name: spec.Name, Arity: len(spec.Domains)}, tyVal)
	}
	return ctx
}

// arrowType builds the raw non-dependent function type
// `names[0] -> names[1] -> ... -> names[n-1]`, resolving "Bool" to the
// native BoolType term (Bool is not a Prelude claim, unlike the literal
// kinds) and every other name to a variable reference against the context
// installExterns checks the result against.
func arrowType(names ...string) syntax.Term {
	result := typeNameTerm(names[len(names)-1])
	for i := len(names) - 2; i >= 0; i-- {
		result = syntax.Pi{Name: "_", Domain: typeNameTerm(names[i]), Body: result}
	}
	return result
}

func typeNameTerm(name string) syntax.Term {
	if name == "Bool" {
		return syntax.BoolType{}
	}
	return syntax.Var{Name: name}
}
