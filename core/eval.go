package core

// Eval normalizes a core term to a value under env. Evaluation that is
// stuck on a free variable yields a Neutral value rather than failing.
// Eval panics on an ill-typed term (applying a non-function, projecting
// a non-record, branching on a non-Bool) and on a case whose arms do not
// match the scrutinee.
func Eval(env Env, t Term) Value {
	switch t := t.(type) {
	case Var:
		return env.Lookup(t.Index)
	case Ann:
		return Eval(env, t.Term)
	case Universe:
		return VUniverse{Level: t.Level}
	case Lit:
		return VLit{Val: t.Val}
	case BoolType:
		return VBool{}
	case True:
		return VTrue{}
	case False:
		return VFalse{}
	case Pi:
		return VPi{
			Name:   t.Name,
			Domain: Eval(env, t.Domain),
			Body:   &Closure{Env: env, Body: t.Body},
		}
	case Lam:
		return VLam{
			Name:   t.Name,
			Domain: Eval(env, t.Domain),
			Body:   &Closure{Env: env, Body: t.Body},
		}
	case App:
		return Apply(Eval(env, t.Func), Eval(env, t.Arg))
	case If:
		return evalIf(env, Eval(env, t.Cond), t.Then, t.Else)
	case Case:
		return evalCase(env, Eval(env, t.Scrutinee), t.Arms)
	case RecordType:
		return VRecordType{
			Name: t.Name,
			Type: Eval(env, t.Type),
			Rest: &Closure{Env: env, Body: t.Rest},
		}
	case Record:
		return VRecord{
			Name: t.Name,
			Val:  Eval(env, t.Term),
			Rest: &Closure{Env: env, Body: t.Rest},
		}
	case EmptyRecordType:
		return VEmptyRecordType{}
	case EmptyRecord:
		return VEmptyRecord{}
	case Proj:
		return Project(Eval(env, t.Term), t.Field)
	case Extern:
		return VExtern{Name: t.Name, Arity: t.Arity}
	default:
		panic("core.Eval: unhandled term")
	}
}

// Apply applies a function value f to argument value a.
func Apply(f Value, a Value) Value {
	switch f := f.(type) {
	case VLam:
		return f.Body.Open(a)
	case VExtern:
		return applyExtern(f, a)
	case Neutral:
		return NApp{Func: f, Arg: a}
	default:
		panic("core.Apply: not a function value")
	}
}

// Project looks up label on a record value, walking its telescope.
func Project(v Value, label string) Value {
	switch v := v.(type) {
	case VRecord:
		if v.Name == label {
			return v.Val
		}
		return Project(v.Rest.Open(v.Val), label)
	case Neutral:
		return NProj{Record: v, Field: label}
	default:
		panic("core.Project: not a record value")
	}
}

func evalIf(env Env, cond Value, then, els Term) Value {
	switch cond := cond.(type) {
	case VTrue:
		return Eval(env, then)
	case VFalse:
		return Eval(env, els)
	case Neutral:
		return NIf{
			Cond: cond,
			Then: &Closure{Env: env, Body: then},
			Else: &Closure{Env: env, Body: els},
		}
	default:
		panic("core.evalIf: not a Bool value")
	}
}

func evalCase(env Env, scrutinee Value, arms []CaseArm) Value {
	if n, ok := scrutinee.(Neutral); ok {
		neutralArms := make([]NeutralArm, len(arms))
		for i, arm := range arms {
			neutralArms[i] = NeutralArm{
				Pattern: arm.Pattern,
				Body:    &Closure{Env: env, Body: arm.Body},
			}
		}
		return NCase{Scrutinee: n, Arms: neutralArms}
	}
	for _, arm := range arms {
		if vals, ok := MatchPattern(arm.Pattern, scrutinee); ok {
			return Eval(env.ExtendAll(vals), arm.Body)
		}
	}
	// A type-checked program is expected to cover the scrutinee's shape;
	// pattern exhaustiveness is not enforced, so an uncovered case is a
	// bug in the source program, not a recoverable runtime condition.
	panic("core.evalCase: no arm matched scrutinee")
}
