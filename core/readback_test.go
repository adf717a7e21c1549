package core_test

import (
	"testing"

	"github.com/brendanzab/lambdapi/core"
)

func TestQuoteUniverseAndBool(t *testing.T) {
	if got := core.Quote(0, core.VUniverse{Level: 3}); !core.TermEqual(got, core.Universe{Level: 3}) {
		t.Fatalf("Quote(Type_3) = %#v, want Universe{3}", got)
	}
	if got := core.Quote(0, core.VBool{}); !core.TermEqual(got, core.BoolType{}) {
		t.Fatalf("Quote(Bool) = %#v, want BoolType{}", got)
	}
}

func TestQuoteNeutralVarUsesRelativeIndex(t *testing.T) {
	// A variable at de Bruijn level 2, read back at depth 3, was bound by
	// the innermost binder, so it is index 0.
	got := core.Quote(3, core.NVar{Level: 2})
	if !core.TermEqual(got, core.Var{Index: 0}) {
		t.Fatalf("Quote(depth=3, NVar{Level:2}) = %#v, want Var{0}", got)
	}
	// The outermost bound variable (level 0) at the same depth is the
	// highest index.
	got = core.Quote(3, core.NVar{Level: 0})
	if !core.TermEqual(got, core.Var{Index: 2}) {
		t.Fatalf("Quote(depth=3, NVar{Level:0}) = %#v, want Var{2}", got)
	}
}

func TestQuoteLamIsBetaShort(t *testing.T) {
	// fun x : Bool => x, as a value, quotes back to the same shape without
	// unfolding anything: the body is opened exactly once.
	idVal := core.VLam{
		Domain: core.VBool{},
		Body:   &core.Closure{Body: core.Var{Index: 0}},
	}
	got := core.Quote(0, idVal)
	want := core.Lam{Domain: core.BoolType{}, Body: core.Var{Index: 0}}
	if !core.TermEqual(got, want) {
		t.Fatalf("Quote(id value) = %#v, want %#v", got, want)
	}
}

func TestQuoteRecordTypeIsEtaLong(t *testing.T) {
	// Record { a : Bool, b : Var(a) } quoted back field by field.
	val := core.VRecordType{
		Name: "a",
		Type: core.VBool{},
		Rest: &core.Closure{Body: core.RecordType{Name: "b", Type: core.Var{Index: 0}, Rest: core.EmptyRecordType{}}},
	}
	got := core.Quote(0, val)
	want := core.RecordType{
		Name: "a",
		Type: core.BoolType{},
		Rest: core.RecordType{Name: "b", Type: core.Var{Index: 0}, Rest: core.EmptyRecordType{}},
	}
	if !core.TermEqual(got, want) {
		t.Fatalf("Quote(record type) = %#v, want %#v", got, want)
	}
}

func TestQuoteNeutralCaseReopensEachArmWithFreshVariables(t *testing.T) {
	scrut := core.NVar{Level: 0}
	n := core.NCase{
		Scrutinee: scrut,
		Arms: []core.NeutralArm{{
			Pattern: core.VarPattern{Name: "x"},
			Body:    &core.Closure{Body: core.Var{Index: 0}},
		}},
	}
	got := core.Quote(1, n)
	c, ok := got.(core.Case)
	if !ok || len(c.Arms) != 1 {
		t.Fatalf("Quote(neutral case) = %#v, want a single-arm Case", got)
	}
	if !core.TermEqual(c.Arms[0].Body, core.Var{Index: 0}) {
		t.Fatalf("Quote(neutral case).Arms[0].Body = %#v, want Var{0} (its own pattern variable)", c.Arms[0].Body)
	}
}

func TestQuoteEvalRoundTripsThroughApplication(t *testing.T) {
	// Quote(Eval(env, (fun x => x) applied-at-eval-time-to-a-free-var))
	// should reproduce the free variable itself.
	env := core.Env{core.NVar{Level: 0, Name: "y"}}
	id := core.Lam{Domain: core.BoolType{}, Body: core.Var{Index: 0}}
	applied := core.App{Func: id, Arg: core.Var{Index: 0}}
	val := core.Eval(env, applied)
	got := core.Quote(1, val)
	if !core.TermEqual(got, core.Var{Index: 0}) {
		t.Fatalf("Quote(Eval((fun x => x) y)) = %#v, want Var{0} (y itself)", got)
	}
}
