package core_test

import (
	"math/big"

	"github.com/brendanzab/lambdapi/literal"
	"github.com/brendanzab/lambdapi/syntax"
)

// The tiny constructors below build raw syntax.Term/syntax.Pattern trees
// directly, since this module's parser is out of scope: every test case
// is a hand-built AST rather than source text to parse.

func v(name string) syntax.Term { return syntax.Var{Name: name} }

func uni(level uint32) syntax.Term { return syntax.Universe{Level: level} }

func piT(name string, domain, body syntax.Term) syntax.Term {
	return syntax.Pi{Name: name, Domain: domain, Body: body}
}

func lamT(name string, domain, body syntax.Term) syntax.Term {
	return syntax.Lam{Name: name, Domain: domain, Body: body}
}

func lamInfer(name string, body syntax.Term) syntax.Term {
	return syntax.Lam{Name: name, Body: body}
}

func appT(f, a syntax.Term) syntax.Term { return syntax.App{Func: f, Arg: a} }

func annT(term, typ syntax.Term) syntax.Term { return syntax.Ann{Term: term, Type: typ} }

func boolT() syntax.Term { return syntax.BoolType{} }
func trueT() syntax.Term { return syntax.True{} }
func falseT() syntax.Term { return syntax.False{} }

func ifT(cond, then, els syntax.Term) syntax.Term {
	return syntax.If{Cond: cond, Then: then, Else: els}
}

func intLit(n int64) syntax.Term {
	neg := n < 0
	mag := new(big.Int).SetInt64(n)
	if neg {
		mag.Neg(mag)
	}
	return syntax.Lit{Form: syntax.IntForm, Neg: neg, Mag: mag}
}

func floatLit(f float64) syntax.Term {
	return syntax.Lit{Form: syntax.FloatForm, Float: f}
}

func charLit(r rune) syntax.Term {
	return syntax.Lit{Form: syntax.CharForm, Val: literal.NewChar(r)}
}

func stringLit(s string) syntax.Term {
	return syntax.Lit{Form: syntax.StringForm, Val: literal.NewString(s)}
}

func recordTypeT(fields ...syntax.RecordTypeField) syntax.Term {
	return syntax.RecordType{Fields: fields}
}

func fieldT(name string, typ syntax.Term) syntax.RecordTypeField {
	return syntax.RecordTypeField{Name: name, Type: typ}
}

func recordT(fields ...syntax.RecordField) syntax.Term {
	return syntax.Record{Fields: fields}
}

func fval(name string, term syntax.Term) syntax.RecordField {
	return syntax.RecordField{Name: name, Term: term}
}

func emptyRecordTypeT() syntax.Term { return syntax.EmptyRecordType{} }
func emptyRecordT() syntax.Term     { return syntax.EmptyRecord{} }

func projT(term syntax.Term, field string) syntax.Term {
	return syntax.Proj{Term: term, Field: field}
}

func caseT(scrutinee syntax.Term, arms ...syntax.CaseArm) syntax.Term {
	return syntax.Case{Scrutinee: scrutinee, Arms: arms}
}

func arm(pattern syntax.Pattern, body syntax.Term) syntax.CaseArm {
	return syntax.CaseArm{Pattern: pattern, Body: body}
}

func varPat(name string) syntax.Pattern   { return syntax.VarPattern{Name: name} }
func boolPat(b bool) syntax.Pattern       { return syntax.BoolPattern{Value: b} }
func emptyRecPat() syntax.Pattern         { return syntax.EmptyRecordPattern{} }
func recPat(fs ...syntax.RecordPatternField) syntax.Pattern {
	return syntax.RecordPattern{Fields: fs}
}
func fpat(name string, p syntax.Pattern) syntax.RecordPatternField {
	return syntax.RecordPatternField{Name: name, Pattern: p}
}
