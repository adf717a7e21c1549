package core

// Quote reads a value back into a core term, given the number of binders
// currently in scope (the "depth"): free (neutral) variables are turned
// into de Bruijn indices relative to depth, and closures are opened
// against a fresh neutral variable at depth, then quoted at depth+1.
//
// Quote is η-long on records - a RecordType/Record WHNF has every field
// forced and quoted, rather than left as a closure - and β-short on
// lambdas/Pi types - a closure is opened exactly once, not repeatedly
// eta-expanded.
func Quote(depth int, v Value) Term {
	switch v := v.(type) {
	case VUniverse:
		return Universe{Level: v.Level}
	case VBool:
		return BoolType{}
	case VTrue:
		return True{}
	case VFalse:
		return False{}
	case VLit:
		return Lit{Val: v.Val}
	case VPi:
		bodyVal := v.Body.Open(NVar{Level: depth})
		return Pi{
			Name:   v.Name,
			Domain: Quote(depth, v.Domain),
			Body:   Quote(depth+1, bodyVal),
		}
	case VLam:
		bodyVal := v.Body.Open(NVar{Level: depth})
		return Lam{
			Name:   v.Name,
			Domain: Quote(depth, v.Domain),
			Body:   Quote(depth+1, bodyVal),
		}
	case VRecordType:
		restVal := v.Rest.Open(NVar{Level: depth})
		return RecordType{
			Name: v.Name,
			Type: Quote(depth, v.Type),
			Rest: Quote(depth+1, restVal),
		}
	case VRecord:
		return Record{
			Name: v.Name,
			Term: Quote(depth, v.Val),
			Rest: Quote(depth+1, v.Rest.Open(v.Val)),
		}
	case VEmptyRecordType:
		return EmptyRecordType{}
	case VEmptyRecord:
		return EmptyRecord{}
	case VExtern:
		return quoteExternArgs(depth, Extern{Name: v.Name, Arity: v.Arity}, v.Args)
	case Neutral:
		return quoteNeutral(depth, v)
	default:
		panic("core.Quote: unhandled value")
	}
}

// quoteExternArgs reconstructs a (partially or fully applied) extern as
// ordinary Apps over an Extern head, so readback never needs a dedicated
// term-level application form for builtins.
func quoteExternArgs(depth int, head Term, args []Value) Term {
	t := head
	for _, a := range args {
		t = App{Func: t, Arg: Quote(depth, a)}
	}
	return t
}

func quoteNeutral(depth int, n Neutral) Term {
	switch n := n.(type) {
	case NVar:
		return Var{Index: depth - n.Level - 1}
	case NApp:
		return App{Func: quoteNeutral(depth, n.Func), Arg: Quote(depth, n.Arg)}
	case NProj:
		return Proj{Term: quoteNeutral(depth, n.Record), Field: n.Field}
	case NIf:
		return If{
			Cond: quoteNeutral(depth, n.Cond),
			Then: Quote(depth, n.Then.Open()),
			Else: Quote(depth, n.Else.Open()),
		}
	case NExtern:
		return quoteExternArgs(depth, Extern{Name: n.Name, Arity: len(n.Args)}, n.Args)
	case NCase:
		arms := make([]CaseArm, len(n.Arms))
		for i, arm := range n.Arms {
			vars := PatternVars(arm.Pattern)
			fresh := make([]Value, len(vars))
			for j := range fresh {
				fresh[j] = NVar{Level: depth + j, Name: vars[j]}
			}
			bodyVal := arm.Body.Open(fresh...)
			arms[i] = CaseArm{
				Pattern: arm.Pattern,
				Body:    Quote(depth+len(vars), bodyVal),
				NumVars: len(vars),
			}
		}
		return Case{Scrutinee: quoteNeutral(depth, n.Scrutinee), Arms: arms}
	default:
		panic("core.quoteNeutral: unhandled neutral")
	}
}
