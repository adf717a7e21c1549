package core_test

import (
	"strings"
	"testing"

	"github.com/brendanzab/lambdapi/core"
	"github.com/brendanzab/lambdapi/syntax"
)

func newChecker() *core.Checker {
	return core.NewChecker(core.Config{})
}

// typeValueOf elaborates a raw term that denotes a type (a Pi, RecordType,
// Var naming a Prelude claim, ...) and evaluates it to the Value it
// denotes, the way inferUniverse does internally. Tests use this to build
// an "expected type" Value to pass to Check without reaching into the
// checker's unexported helpers.
func typeValueOf(t *testing.T, c *core.Checker, ctx *core.Context, term syntax.Term) core.Value {
	t.Helper()
	_, elab, err := c.Infer(ctx, term)
	if err != nil {
		t.Fatalf("infer type %v: %v", term, err)
	}
	return core.Eval(ctx.Env(), elab)
}

func TestInferUniverse(t *testing.T) {
	c := newChecker()
	ty, _, err := c.Infer(core.NewContext(), uni(0))
	if err != nil {
		t.Fatalf("Infer(Type_0): %v", err)
	}
	u, ok := ty.(core.VUniverse)
	if !ok || u.Level != 1 {
		t.Fatalf("Infer(Type_0) = %#v, want Type_1", ty)
	}
}

func TestInferIdentityFunction(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	// (fun x : S32 => x) : (x : S32) -> S32
	term := annT(
		lamT("x", v("S32"), v("x")),
		piT("x", v("S32"), v("S32")),
	)
	ty, elab, err := c.Infer(ctx, term)
	if err != nil {
		t.Fatalf("Infer(identity): %v", err)
	}
	if _, ok := ty.(core.VPi); !ok {
		t.Fatalf("Infer(identity) type = %#v, want VPi", ty)
	}
	lam, ok := elab.(core.Ann).Term.(core.Lam)
	if !ok {
		t.Fatalf("elaborated term = %#v, want Ann{Term: Lam}", elab)
	}
	if _, ok := lam.Body.(core.Var); !ok {
		t.Fatalf("lambda body = %#v, want Var", lam.Body)
	}
}

func TestCheckConstFunctionDiscardsArgument(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	expectedVal := typeValueOf(t, c, ctx, piT("x", v("S32"), piT("y", v("S32"), v("S32"))))
	_, err := c.Check(ctx, lamT("x", v("S32"), lamT("y", v("S32"), v("x"))), expectedVal)
	if err != nil {
		t.Fatalf("Check(const): %v", err)
	}
}

func TestInferRecordTypeUniverseLevel(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	// Record { A : Type_0, x : A } : Type_1
	term := recordTypeT(
		fieldT("A", uni(0)),
		fieldT("x", v("A")),
	)
	ty, _, err := c.Infer(ctx, term)
	if err != nil {
		t.Fatalf("Infer(dependent record type): %v", err)
	}
	u, ok := ty.(core.VUniverse)
	if !ok || u.Level != 1 {
		t.Fatalf("Infer(dependent record type) = %#v, want Type_1", ty)
	}
}

func TestCheckRecordFieldDependency(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	recTy := typeValueOf(t, c, ctx, recordTypeT(fieldT("A", uni(0)), fieldT("x", v("A"))))
	// record { A = S32, x = 5 }: the second field's expected type is
	// whatever value the first field was instantiated to.
	term := recordT(fval("A", v("S32")), fval("x", intLit(5)))
	if _, err := c.Check(ctx, term, recTy); err != nil {
		t.Fatalf("Check(dependent record): %v", err)
	}
}

func TestCheckRecordFieldDependencyMismatch(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	recTy := typeValueOf(t, c, ctx, recordTypeT(fieldT("A", uni(0)), fieldT("x", v("A"))))
	// x is a String, but A was instantiated to S32.
	term := recordT(fval("A", v("S32")), fval("x", stringLit("nope")))
	_, err := c.Check(ctx, term, recTy)
	if err == nil {
		t.Fatal("Check(mismatched dependent record) succeeded, want an error")
	}
	ce := err.(*core.CheckError)
	if ce.Kind() != core.TypeMismatch {
		t.Fatalf("error kind = %v, want TypeMismatch", ce.Kind())
	}
}

func TestInferLiteralDefaultKinds(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	intTy, _, err := c.Infer(ctx, intLit(5))
	if err != nil {
		t.Fatalf("Infer(5): %v", err)
	}
	s32Ty := typeValueOf(t, c, ctx, v("S32"))
	if !core.Conv(ctx.Len(), intTy, s32Ty) {
		t.Fatalf("Infer(5) = %#v, want S32 (%#v)", intTy, s32Ty)
	}

	floatTy, _, err := c.Infer(ctx, floatLit(1.5))
	if err != nil {
		t.Fatalf("Infer(1.5): %v", err)
	}
	f64Ty := typeValueOf(t, c, ctx, v("F64"))
	if !core.Conv(ctx.Len(), floatTy, f64Ty) {
		t.Fatalf("Infer(1.5) = %#v, want F64 (%#v)", floatTy, f64Ty)
	}
}

func TestCheckLiteralMismatch(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	s32Ty := typeValueOf(t, c, ctx, v("S32"))
	_, err := c.Check(ctx, floatLit(4.0), s32Ty)
	if err == nil {
		t.Fatal("Check(4.0, S32) succeeded, want an error")
	}
	if ce := err.(*core.CheckError); ce.Kind() != core.TypeMismatch {
		t.Fatalf("error kind = %v, want TypeMismatch", ce.Kind())
	}
}

func TestInferUnboundVariable(t *testing.T) {
	c := newChecker()
	_, _, err := c.Infer(core.NewContext(), v("nope"))
	if err == nil {
		t.Fatal("Infer(unbound var) succeeded, want an error")
	}
	ce := err.(*core.CheckError)
	if ce.Kind() != core.UnboundVariable {
		t.Fatalf("error kind = %v, want UnboundVariable", ce.Kind())
	}
	if !strings.Contains(ce.Error(), "nope") {
		t.Fatalf("error message %q does not mention the variable name", ce.Error())
	}
}

func TestInferLambdaWithoutAnnotationIsAmbiguous(t *testing.T) {
	c := newChecker()
	_, _, err := c.Infer(core.Prelude(), lamInfer("x", v("x")))
	if err == nil {
		t.Fatal("Infer(unannotated lambda) succeeded, want an error")
	}
	if ce := err.(*core.CheckError); ce.Kind() != core.AmbiguousTerm {
		t.Fatalf("error kind = %v, want AmbiguousTerm", ce.Kind())
	}
}

func TestInferNonEmptyRecordLiteralIsAmbiguous(t *testing.T) {
	c := newChecker()
	_, _, err := c.Infer(core.Prelude(), recordT(fval("x", intLit(1))))
	if err == nil {
		t.Fatal("Infer(unannotated record) succeeded, want an error")
	}
	if ce := err.(*core.CheckError); ce.Kind() != core.AmbiguousTerm {
		t.Fatalf("error kind = %v, want AmbiguousTerm", ce.Kind())
	}
}

func TestApplyingNonFunctionIsAnError(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	_, _, err := c.Infer(ctx, appT(intLit(1), intLit(2)))
	if err == nil {
		t.Fatal("Infer(1 2) succeeded, want an error")
	}
	if ce := err.(*core.CheckError); ce.Kind() != core.ExpectedFunctionType {
		t.Fatalf("error kind = %v, want ExpectedFunctionType", ce.Kind())
	}
}

func TestCheckIfBranchesMustAgree(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	s32Ty := typeValueOf(t, c, ctx, v("S32"))
	if _, err := c.Check(ctx, ifT(trueT(), intLit(1), intLit(2)), s32Ty); err != nil {
		t.Fatalf("Check(if true then 1 else 2, S32): %v", err)
	}
	_, err := c.Check(ctx, ifT(trueT(), intLit(1), stringLit("x")), s32Ty)
	if err == nil {
		t.Fatal("Check(if ... else a String, S32) succeeded, want an error")
	}
}

func TestCheckCaseOverBoolRecordPattern(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	// Record { tag : Bool, payload : S32 }
	scrutTy := typeValueOf(t, c, ctx, recordTypeT(fieldT("tag", boolT()), fieldT("payload", v("S32"))))
	scrutTerm := recordT(fval("tag", trueT()), fval("payload", intLit(7)))
	term := caseT(
		annT(scrutTerm, Quoted(scrutTy)),
		arm(recPat(fpat("tag", boolPat(true)), fpat("payload", varPat("n"))), v("n")),
		arm(recPat(fpat("tag", boolPat(false)), fpat("payload", varPat("n"))), intLit(0)),
	)
	s32Ty := typeValueOf(t, c, ctx, v("S32"))
	if _, err := c.Check(ctx, term, s32Ty); err != nil {
		t.Fatalf("Check(case over record pattern): %v", err)
	}
}

func TestCheckRecordPatternFieldOrderMismatch(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	scrutTy := typeValueOf(t, c, ctx, recordTypeT(fieldT("tag", boolT()), fieldT("payload", v("S32"))))
	term := caseT(
		annT(recordT(fval("tag", trueT()), fval("payload", intLit(7))), Quoted(scrutTy)),
		arm(recPat(fpat("payload", varPat("n")), fpat("tag", boolPat(true))), intLit(0)),
	)
	s32Ty := typeValueOf(t, c, ctx, v("S32"))
	_, err := c.Check(ctx, term, s32Ty)
	if err == nil {
		t.Fatal("Check(case with misordered record pattern) succeeded, want an error")
	}
	if ce := err.(*core.CheckError); ce.Kind() != core.PatternMismatch {
		t.Fatalf("error kind = %v, want PatternMismatch", ce.Kind())
	}
}

// TestCheckDependentRecordPatternBindsRealFieldValue covers a record
// pattern whose later field's type genuinely depends on the one bound by
// an earlier, named field: Record{T : Type_0, val : T}. The arm body
// annotates its `val` binder against its `T` binder (`x : t`), which only
// type-checks if checking `x` looks up the same neutral `t` was bound to -
// not an unrelated placeholder standing in for an unnamed field.
func TestCheckDependentRecordPatternBindsRealFieldValue(t *testing.T) {
	c := newChecker()
	ctx := core.Prelude()
	scrutTy := typeValueOf(t, c, ctx, recordTypeT(fieldT("T", uni(0)), fieldT("val", v("T"))))
	scrutTerm := recordT(fval("T", v("S32")), fval("val", intLit(5)))
	term := caseT(
		annT(scrutTerm, Quoted(scrutTy)),
		arm(recPat(fpat("T", varPat("t")), fpat("val", varPat("x"))), annT(v("x"), v("t"))),
	)
	// T's pattern binder is the first claim checkPattern adds on top of
	// ctx, so it lands at exactly ctx.Len() - the same level the case's
	// expected type must name for Conv to recognize them as equal.
	expected := core.NVar{Level: ctx.Len(), Name: "t"}
	if _, err := c.Check(ctx, term, expected); err != nil {
		t.Fatalf("Check(case over dependent record pattern): %v", err)
	}
}

// Quoted re-quotes an already-evaluated type Value back into a raw
// syntax.Term that Infer/Check can consume as an annotation, covering the
// small subset of Value shapes these tests produce.
func Quoted(val core.Value) syntax.Term {
	switch val := val.(type) {
	case core.VUniverse:
		return uni(uint32(val.Level))
	case core.VBool:
		return boolT()
	case core.VRecordType:
		fresh := core.NVar{Level: 1 << 29, Name: val.Name}
		return syntax.RecordType{Fields: append(
			[]syntax.RecordTypeField{{Name: val.Name, Type: Quoted(val.Type)}},
			quotedRest(val.Rest.Open(fresh))...,
		)}
	case core.VEmptyRecordType:
		return emptyRecordTypeT()
	case core.NVar:
		return v(val.Name)
	default:
		panic("core_test.Quoted: unhandled value shape")
	}
}

func quotedRest(val core.Value) []syntax.RecordTypeField {
	if _, ok := val.(core.VEmptyRecordType); ok {
		return nil
	}
	rt := val.(core.VRecordType)
	fresh := core.NVar{Level: 1 << 29, Name: rt.Name}
	return append([]syntax.RecordTypeField{{Name: rt.Name, Type: Quoted(rt.Type)}}, quotedRest(rt.Rest.Open(fresh))...)
}
