package core

import "github.com/brendanzab/lambdapi/literal"

// Conv decides definitional equality between two values at the given
// depth (number of binders currently in scope), by direct structural
// comparison that opens closures against a shared fresh neutral variable
// at each binder, rather than comparing Quote(depth, a) and Quote(depth, b)
// for alpha-equivalence. Both strategies must agree; ConvByQuote below is
// kept around (and exercised by tests) to check that.
func Conv(depth int, a, b Value) bool {
	switch a := a.(type) {
	case VUniverse:
		b, ok := b.(VUniverse)
		return ok && a.Level == b.Level
	case VBool:
		_, ok := b.(VBool)
		return ok
	case VTrue:
		_, ok := b.(VTrue)
		return ok
	case VFalse:
		_, ok := b.(VFalse)
		return ok
	case VLit:
		b, ok := b.(VLit)
		return ok && convLit(a.Val, b.Val)
	case VPi:
		b, ok := b.(VPi)
		if !ok || !Conv(depth, a.Domain, b.Domain) {
			return false
		}
		fresh := NVar{Level: depth}
		return Conv(depth+1, a.Body.Open(fresh), b.Body.Open(fresh))
	case VLam:
		b, ok := b.(VLam)
		if !ok || !Conv(depth, a.Domain, b.Domain) {
			return false
		}
		fresh := NVar{Level: depth}
		return Conv(depth+1, a.Body.Open(fresh), b.Body.Open(fresh))
	case VRecordType:
		b, ok := b.(VRecordType)
		if !ok || a.Name != b.Name || !Conv(depth, a.Type, b.Type) {
			return false
		}
		fresh := NVar{Level: depth}
		return Conv(depth+1, a.Rest.Open(fresh), b.Rest.Open(fresh))
	case VRecord:
		b, ok := b.(VRecord)
		if !ok || a.Name != b.Name || !Conv(depth, a.Val, b.Val) {
			return false
		}
		return Conv(depth, a.Rest.Open(a.Val), b.Rest.Open(a.Val))
	case VEmptyRecordType:
		_, ok := b.(VEmptyRecordType)
		return ok
	case VEmptyRecord:
		_, ok := b.(VEmptyRecord)
		return ok
	case VExtern:
		b, ok := b.(VExtern)
		return ok && convExternArgs(depth, a.Name, a.Args, b.Name, b.Args)
	case Neutral:
		b, ok := b.(Neutral)
		return ok && convNeutral(depth, a, b)
	default:
		return false
	}
}

func convLit(a, b literal.Value) bool { return a.Equal(b) }

func convExternArgs(depth int, aName string, aArgs []Value, bName string, bArgs []Value) bool {
	if aName != bName || len(aArgs) != len(bArgs) {
		return false
	}
	for i := range aArgs {
		if !Conv(depth, aArgs[i], bArgs[i]) {
			return false
		}
	}
	return true
}

func convNeutral(depth int, a, b Neutral) bool {
	switch a := a.(type) {
	case NVar:
		b, ok := b.(NVar)
		return ok && a.Level == b.Level
	case NApp:
		b, ok := b.(NApp)
		return ok && convNeutral(depth, a.Func, b.Func) && Conv(depth, a.Arg, b.Arg)
	case NProj:
		b, ok := b.(NProj)
		return ok && a.Field == b.Field && convNeutral(depth, a.Record, b.Record)
	case NExtern:
		b, ok := b.(NExtern)
		return ok && convExternArgs(depth, a.Name, a.Args, b.Name, b.Args)
	case NIf:
		b, ok := b.(NIf)
		if !ok || !convNeutral(depth, a.Cond, b.Cond) {
			return false
		}
		return Conv(depth, a.Then.Open(), b.Then.Open()) && Conv(depth, a.Else.Open(), b.Else.Open())
	case NCase:
		b, ok := b.(NCase)
		if !ok || !convNeutral(depth, a.Scrutinee, b.Scrutinee) || len(a.Arms) != len(b.Arms) {
			return false
		}
		for i := range a.Arms {
			av, bv := a.Arms[i], b.Arms[i]
			vars := PatternVars(av.Pattern)
			if !patternEqual(av.Pattern, bv.Pattern) || len(vars) != len(PatternVars(bv.Pattern)) {
				return false
			}
			fresh := make([]Value, len(vars))
			for j := range fresh {
				fresh[j] = NVar{Level: depth + j}
			}
			if !Conv(depth+len(vars), av.Body.Open(fresh...), bv.Body.Open(fresh...)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ConvByQuote decides definitional equality the textbook way:
// primarily: two values are definitionally equal iff their readbacks are
// alpha-equivalent. It is used by tests to confirm Conv's short-circuit
// structural comparison agrees with readback equality.
func ConvByQuote(depth int, a, b Value) bool {
	return TermEqual(Quote(depth, a), Quote(depth, b))
}

// TermEqual is syntactic (alpha-)equivalence of two core terms that use de
// Bruijn indices throughout, so it is exact structural equality.
func TermEqual(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a.Index == b.Index
	case Ann:
		b, ok := b.(Ann)
		return ok && TermEqual(a.Term, b.Term) && TermEqual(a.Type, b.Type)
	case Universe:
		b, ok := b.(Universe)
		return ok && a.Level == b.Level
	case Lit:
		b, ok := b.(Lit)
		return ok && a.Val.Equal(b.Val)
	case BoolType:
		_, ok := b.(BoolType)
		return ok
	case True:
		_, ok := b.(True)
		return ok
	case False:
		_, ok := b.(False)
		return ok
	case Pi:
		b, ok := b.(Pi)
		return ok && TermEqual(a.Domain, b.Domain) && TermEqual(a.Body, b.Body)
	case Lam:
		b, ok := b.(Lam)
		return ok && TermEqual(a.Domain, b.Domain) && TermEqual(a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && TermEqual(a.Func, b.Func) && TermEqual(a.Arg, b.Arg)
	case If:
		b, ok := b.(If)
		return ok && TermEqual(a.Cond, b.Cond) && TermEqual(a.Then, b.Then) && TermEqual(a.Else, b.Else)
	case Case:
		b, ok := b.(Case)
		if !ok || len(a.Arms) != len(b.Arms) {
			return false
		}
		for i := range a.Arms {
			if !patternEqual(a.Arms[i].Pattern, b.Arms[i].Pattern) || !TermEqual(a.Arms[i].Body, b.Arms[i].Body) {
				return false
			}
		}
		return TermEqual(a.Scrutinee, b.Scrutinee)
	case RecordType:
		b, ok := b.(RecordType)
		return ok && a.Name == b.Name && TermEqual(a.Type, b.Type) && TermEqual(a.Rest, b.Rest)
	case Record:
		b, ok := b.(Record)
		return ok && a.Name == b.Name && TermEqual(a.Term, b.Term) && TermEqual(a.Rest, b.Rest)
	case EmptyRecordType:
		_, ok := b.(EmptyRecordType)
		return ok
	case EmptyRecord:
		_, ok := b.(EmptyRecord)
		return ok
	case Proj:
		b, ok := b.(Proj)
		return ok && a.Field == b.Field && TermEqual(a.Term, b.Term)
	case Extern:
		b, ok := b.(Extern)
		return ok && a.Name == b.Name && a.Arity == b.Arity
	default:
		return false
	}
}

func patternEqual(a, b Pattern) bool {
	switch a := a.(type) {
	case VarPattern:
		_, ok := b.(VarPattern)
		return ok
	case BoolPattern:
		b, ok := b.(BoolPattern)
		return ok && a.Value == b.Value
	case EmptyRecordPattern:
		_, ok := b.(EmptyRecordPattern)
		return ok
	case RecordPattern:
		b, ok := b.(RecordPattern)
		if !ok || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !patternEqual(a.Fields[i].Pattern, b.Fields[i].Pattern) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
