package core

import (
	"github.com/brendanzab/lambdapi/literal"
	"github.com/brendanzab/lambdapi/syntax"
)

// A Checker holds the configuration and trace state shared across a series
// of infer/check judgements. It carries no context itself: every judgement
// takes its Context explicitly, and any extension a judgement needs for a
// sub-term is local to that call - the caller's own Context is untouched.
type Checker struct {
	cfg Config
	tr  *tracer
}

// NewChecker returns a Checker with cfg's zero-valued defaults filled in.
func NewChecker(cfg Config) *Checker {
	setConfigDefaults(&cfg)
	return &Checker{cfg: cfg, tr: newTracer(cfg)}
}

// Infer synthesizes r's type and elaborates it to a core Term (the `infer`
// judgement).
func (c *Checker) Infer(ctx *Context, r syntax.Term) (Value, Term, error) {
	exit := c.tr.enter("infer", r.Location(), r)
	v, t, err := c.infer(ctx, r)
	exit(t, err)
	return v, t, err
}

// Check checks r against the expected type value V (the `check` judgement).
func (c *Checker) Check(ctx *Context, r syntax.Term, expected Value) (Term, error) {
	exit := c.tr.enter("check", r.Location(), r)
	t, err := c.check(ctx, r, expected)
	exit(t, err)
	return t, err
}

func (c *Checker) infer(ctx *Context, r syntax.Term) (Value, Term, error) {
	switch r := r.(type) {
	case syntax.Var:
		ty, index, ok := ctx.LookupClaim(r.Name)
		if !ok {
			return nil, nil, newError(UnboundVariable, r.Location(), "unbound variable %q", r.Name)
		}
		return ty, Var{Index: index}, nil

	case syntax.Universe:
		return VUniverse{Level: Level(r.Level).Succ()}, Universe{Level: Level(r.Level)}, nil

	case syntax.Hole:
		return nil, nil, newError(AmbiguousTerm, r.Location(), "cannot infer the type of a hole")

	case syntax.Lit:
		return c.inferLit(ctx, r)

	case syntax.BoolType:
		return VUniverse{Level: 0}, BoolType{}, nil

	case syntax.True:
		return VBool{}, True{}, nil

	case syntax.False:
		return VBool{}, False{}, nil

	case syntax.Ann:
		// The type of `r : R` is R's value V itself, not V's own type.
		annVal, annTerm, _, err := c.inferUniverse(ctx, r.Type)
		if err != nil {
			return nil, nil, err
		}
		t, err := c.Check(ctx, r.Term, annVal)
		if err != nil {
			return nil, nil, err
		}
		return annVal, Ann{Term: t, Type: annTerm}, nil

	case syntax.Pi:
		domVal, domTerm, domLevel, err := c.inferUniverse(ctx, r.Domain)
		if err != nil {
			return nil, nil, err
		}
		bodyCtx := ctx.ExtendClaim(r.Name, domVal)
		_, bodyTerm, bodyLevel, err := c.inferUniverse(bodyCtx, r.Body)
		if err != nil {
			return nil, nil, err
		}
		return VUniverse{Level: MaxLevel(domLevel, bodyLevel)},
			Pi{Name: r.Name, Domain: domTerm, Body: bodyTerm}, nil

	case syntax.Lam:
		if r.Domain == nil {
			return nil, nil, newError(AmbiguousTerm, r.Location(),
				"lambda parameter %q needs a type annotation to be inferred", r.Name)
		}
		domVal, domTerm, _, err := c.inferUniverse(ctx, r.Domain)
		if err != nil {
			return nil, nil, err
		}
		bodyCtx := ctx.ExtendClaim(r.Name, domVal)
		bodyVal, bodyTerm, err := c.Infer(bodyCtx, r.Body)
		if err != nil {
			return nil, nil, err
		}
		bodyCoreTerm := Quote(bodyCtx.Len(), bodyVal)
		return VPi{Name: r.Name, Domain: domVal, Body: &Closure{Env: ctx.Env(), Body: bodyCoreTerm}},
			Lam{Name: r.Name, Domain: domTerm, Body: bodyTerm}, nil

	case syntax.App:
		funcVal, funcTerm, err := c.Infer(ctx, r.Func)
		if err != nil {
			return nil, nil, err
		}
		pi, ok := force(funcVal).(VPi)
		if !ok {
			return nil, nil, newError(ExpectedFunctionType, r.Func.Location(),
				"applying a non-function value")
		}
		argTerm, err := c.Check(ctx, r.Arg, pi.Domain)
		if err != nil {
			return nil, nil, err
		}
		argVal := Eval(ctx.Env(), argTerm)
		return pi.Body.Open(argVal), App{Func: funcTerm, Arg: argTerm}, nil

	case syntax.If:
		condTerm, err := c.Check(ctx, r.Cond, VBool{})
		if err != nil {
			return nil, nil, err
		}
		thenVal, thenTerm, err := c.Infer(ctx, r.Then)
		if err != nil {
			return nil, nil, err
		}
		elseTerm, err := c.Check(ctx, r.Else, thenVal)
		if err != nil {
			return nil, nil, err
		}
		return thenVal, If{Cond: condTerm, Then: thenTerm, Else: elseTerm}, nil

	case syntax.RecordType:
		return c.inferRecordType(ctx, r)

	case syntax.EmptyRecordType:
		return VUniverse{Level: 0}, EmptyRecordType{}, nil

	case syntax.EmptyRecord:
		return VEmptyRecordType{}, EmptyRecord{}, nil

	case syntax.Record:
		if len(r.Fields) == 0 {
			return VEmptyRecordType{}, EmptyRecord{}, nil
		}
		return nil, nil, newError(AmbiguousTerm, r.Location(),
			"cannot infer the type of a non-empty record literal; annotate it")

	case syntax.Proj:
		return c.inferProj(ctx, r)

	case syntax.Case:
		return nil, nil, newError(AmbiguousTerm, r.Location(),
			"cannot infer the type of a case expression; annotate it")

	default:
		return nil, nil, newError(AmbiguousTerm, r.Location(), "cannot infer the type of this term")
	}
}

// inferUniverse infers r's type, requires it be a universe, and evaluates
// r to a value.
func (c *Checker) inferUniverse(ctx *Context, r syntax.Term) (Value, Term, Level, error) {
	ty, t, err := c.Infer(ctx, r)
	if err != nil {
		return nil, nil, 0, err
	}
	u, ok := force(ty).(VUniverse)
	if !ok {
		return nil, nil, 0, newError(UniverseMismatch, r.Location(),
			"expected a type, found a value of a non-universe type")
	}
	return Eval(ctx.Env(), t), t, u.Level, nil
}

func universeLevel(v Value) Level {
	if u, ok := force(v).(VUniverse); ok {
		return u.Level
	}
	return 0
}

// force reduces a value that might still be a definitionally-transparent
// neutral no further: every Value constructor in this core is already a
// WHNF by construction, so force is the identity. It exists as a single
// named hook so a future extension that adds delta-reduction of stuck
// neutral globals has one place to change.
func force(v Value) Value { return v }

func (c *Checker) inferLit(ctx *Context, r syntax.Lit) (Value, Term, error) {
	switch r.Form {
	case syntax.IntForm:
		kind := c.cfg.DefaultIntKind
		val, err := literal.AssignInt(kind, r.Neg, r.Mag)
		if err != nil {
			return nil, nil, newError(InvalidLiteral, r.Location(), "%s", err)
		}
		ty, err := c.literalKindType(ctx, r.Location(), kind)
		if err != nil {
			return nil, nil, err
		}
		return ty, Lit{Val: val}, nil

	case syntax.FloatForm:
		kind := c.cfg.DefaultFloatKind
		f := r.Float
		if kind == literal.F32 {
			f = float64(float32(f))
		}
		ty, err := c.literalKindType(ctx, r.Location(), kind)
		if err != nil {
			return nil, nil, err
		}
		return ty, Lit{Val: literal.NewFloat(kind, f)}, nil

	case syntax.CharForm, syntax.StringForm:
		ty, err := c.literalKindType(ctx, r.Location(), r.Val.Kind())
		if err != nil {
			return nil, nil, err
		}
		return ty, Lit{Val: r.Val}, nil

	default:
		return nil, nil, newError(InvalidLiteral, r.Location(), "unrecognized literal form")
	}
}

// literalKindType looks up the type value bound to a builtin literal
// kind's name (e.g. "S32"), which a Prelude populates as an ordinary claim
// (Bool is the only built-in primitive type; every other literal type is
// a claim a Prelude installs before checking begins).
func (c *Checker) literalKindType(ctx *Context, loc syntax.Loc, kind literal.Kind) (Value, error) {
	_, index, ok := ctx.LookupClaim(kind.String())
	if !ok {
		return nil, newError(UnboundVariable, loc,
			"literal type %q is not in scope; load core.Prelude or declare it", kind.String())
	}
	return ctx.Env().Lookup(index), nil
}

func (c *Checker) inferRecordType(ctx *Context, r syntax.RecordType) (Value, Term, error) {
	if len(r.Fields) == 0 {
		return VUniverse{Level: 0}, EmptyRecordType{}, nil
	}
	head := r.Fields[0]
	fieldVal, fieldTerm, fieldLevel, err := c.inferUniverse(ctx, head.Type)
	if err != nil {
		return nil, nil, err
	}
	restCtx := ctx.ExtendClaim(head.Name, fieldVal)
	restVal, restTerm, err := c.inferRecordType(restCtx, syntax.RecordType{Fields: r.Fields[1:]})
	if err != nil {
		return nil, nil, err
	}
	restLevel := universeLevel(restVal)
	return VUniverse{Level: MaxLevel(fieldLevel, restLevel)},
		RecordType{Name: head.Name, Type: fieldTerm, Rest: restTerm}, nil
}

func (c *Checker) inferProj(ctx *Context, r syntax.Proj) (Value, Term, error) {
	recVal, recTerm, err := c.Infer(ctx, r.Term)
	if err != nil {
		return nil, nil, err
	}
	recTy, ok := force(recVal).(VRecordType)
	if !ok {
		if _, ok := force(recVal).(VEmptyRecordType); ok {
			return nil, nil, newError(UnknownField, r.Location(), "field %q not found in {}", r.Field)
		}
		return nil, nil, newError(ExpectedRecordType, r.Term.Location(),
			"projecting field %q off a non-record value", r.Field)
	}
	fieldVal := Eval(ctx.Env(), recTerm)
	resultTy, found := projType(recTy, r.Field, fieldVal)
	if !found {
		return nil, nil, newError(UnknownField, r.Location(), "unknown field %q", r.Field)
	}
	return resultTy, Proj{Term: recTerm, Field: r.Field}, nil
}

// projType walks a record type telescope looking for label, opening each
// tail closure against the projection of that earlier field off recVal (the
// evaluated record, not the telescope's bound name), so that later fields'
// dependent types see the real fields of this specific record.
func projType(ty VRecordType, label string, recVal Value) (Value, bool) {
	if ty.Name == label {
		return ty.Type, true
	}
	restVal := ty.Rest.Open(Project(recVal, ty.Name))
	switch rest := force(restVal).(type) {
	case VRecordType:
		return projType(rest, label, recVal)
	default:
		return nil, false
	}
}

func (c *Checker) check(ctx *Context, r syntax.Term, expected Value) (Term, error) {
	switch r := r.(type) {
	case syntax.Lam:
		pi, ok := force(expected).(VPi)
		if ok {
			domVal := pi.Domain
			if r.Domain != nil {
				annVal, _, _, err := c.inferUniverse(ctx, r.Domain)
				if err != nil {
					return nil, err
				}
				if !Conv(ctx.Len(), annVal, domVal) {
					err := newError(TypeMismatch, r.Domain.Location(),
						"lambda parameter annotation does not match expected domain")
					err.noteValue("expected domain", domVal)
					err.noteValue("annotated domain", annVal)
					return nil, err
				}
			}
			bodyCtx := ctx.ExtendClaim(r.Name, domVal)
			fresh := bodyCtx.Env().Lookup(0)
			bodyExpected := pi.Body.Open(fresh)
			bodyTerm, err := c.Check(bodyCtx, r.Body, bodyExpected)
			if err != nil {
				return nil, err
			}
			return Lam{Name: r.Name, Domain: Quote(ctx.Len(), domVal), Body: bodyTerm}, nil
		}

	case syntax.If:
		condTerm, err := c.Check(ctx, r.Cond, VBool{})
		if err != nil {
			return nil, err
		}
		thenTerm, err := c.Check(ctx, r.Then, expected)
		if err != nil {
			return nil, err
		}
		elseTerm, err := c.Check(ctx, r.Else, expected)
		if err != nil {
			return nil, err
		}
		return If{Cond: condTerm, Then: thenTerm, Else: elseTerm}, nil

	case syntax.Case:
		return c.checkCase(ctx, r, expected)

	case syntax.Lit:
		// A numeric literal checked against a Prelude literal type of its own form takes that Kind.
		for _, kind := range literalKinds {
			isFloat := kind == literal.F32 || kind == literal.F64
			isInt := !isFloat && kind != literal.Char && kind != literal.String
			if !(r.Form == syntax.IntForm && isInt) && !(r.Form == syntax.FloatForm && isFloat) {
				continue
			}
			kindTy, err := c.literalKindType(ctx, r.Location(), kind)
			if err != nil || !Conv(ctx.Len(), kindTy, expected) {
				continue
			}
			sized := *c
			sized.cfg.DefaultIntKind, sized.cfg.DefaultFloatKind = kind, kind
			_, t, err := sized.inferLit(ctx, r)
			return t, err
		}

	case syntax.Record:
		recTy, ok := force(expected).(VRecordType)
		if ok {
			return c.checkRecord(ctx, r.Location(), r.Fields, recTy)
		}
		if _, ok := force(expected).(VEmptyRecordType); ok && len(r.Fields) == 0 {
			return EmptyRecord{}, nil
		}

	case syntax.EmptyRecord:
		if _, ok := force(expected).(VEmptyRecordType); ok {
			return EmptyRecord{}, nil
		}

	case syntax.Hole:
		return nil, newError(AmbiguousTerm, r.Location(), "cannot elaborate a hole")
	}

	// C-CONV fallback: infer and require definitional equality.
	inferredVal, t, err := c.Infer(ctx, r)
	if err != nil {
		return nil, err
	}
	if !Conv(ctx.Len(), expected, inferredVal) {
		err := newError(TypeMismatch, r.Location(), "type mismatch")
		err.noteTerm("expected", Quote(ctx.Len(), expected))
		err.noteTerm("found", Quote(ctx.Len(), inferredVal))
		return nil, err
	}
	return t, nil
}

func (c *Checker) checkRecord(ctx *Context, loc syntax.Loc, fields []syntax.RecordField, ty VRecordType) (Term, error) {
	if len(fields) == 0 {
		return nil, newError(FieldOrderMismatch, loc, "missing field %q", ty.Name)
	}
	head := fields[0]
	if head.Name != ty.Name {
		return nil, newError(FieldOrderMismatch, head.Loc,
			"expected field %q here, found %q", ty.Name, head.Name)
	}
	fieldTerm, err := c.Check(ctx, head.Term, ty.Type)
	if err != nil {
		return nil, err
	}
	fieldVal := Eval(ctx.Env(), fieldTerm)
	restTyVal := ty.Rest.Open(fieldVal)
	restTy, ok := force(restTyVal).(VRecordType)
	var restTerm Term
	if ok {
		restCtx := ctx.ExtendDef(head.Name, fieldTerm, ty.Type)
		restTerm, err = c.checkRecord(restCtx, head.Loc, fields[1:], restTy)
	} else if _, ok := force(restTyVal).(VEmptyRecordType); ok {
		if len(fields) > 1 {
			return nil, newError(UnknownField, fields[1].Loc,
				"unexpected field %q; record type has no further fields", fields[1].Name)
		}
		restTerm = EmptyRecord{}
	} else {
		return nil, newError(ExpectedRecordType, head.Loc, "malformed record type telescope")
	}
	if err != nil {
		return nil, err
	}
	return Record{Name: head.Name, Term: fieldTerm, Rest: restTerm}, nil
}

func (c *Checker) checkCase(ctx *Context, r syntax.Case, expected Value) (Term, error) {
	scrutVal, scrutTerm, err := c.Infer(ctx, r.Scrutinee)
	if err != nil {
		return nil, err
	}
	arms := make([]CaseArm, len(r.Arms))
	for i, arm := range r.Arms {
		pat, patCtx, err := c.checkPattern(ctx, arm.Pattern, scrutVal)
		if err != nil {
			return nil, err
		}
		bodyTerm, err := c.Check(patCtx, arm.Body, expected)
		if err != nil {
			return nil, err
		}
		arms[i] = CaseArm{Pattern: pat, Body: bodyTerm, NumVars: len(PatternVars(pat))}
	}
	return Case{Scrutinee: scrutTerm, Arms: arms}, nil
}

// checkPattern checks a raw pattern against the scrutinee's type value,
// returning the elaborated core.Pattern and a context extended with a
// fresh claim per pattern variable, in PatternVars order, with each
// variable's type derived from the scrutinee's type.
func (c *Checker) checkPattern(ctx *Context, p syntax.Pattern, scrutTy Value) (Pattern, *Context, error) {
	switch p := p.(type) {
	case syntax.VarPattern:
		return VarPattern{Name: p.Name}, ctx.ExtendClaim(p.Name, scrutTy), nil

	case syntax.BoolPattern:
		if _, ok := force(scrutTy).(VBool); !ok {
			return nil, nil, newError(PatternMismatch, p.Location(),
				"boolean pattern against a non-Bool scrutinee type")
		}
		return BoolPattern{Value: p.Value}, ctx, nil

	case syntax.EmptyRecordPattern:
		if _, ok := force(scrutTy).(VEmptyRecordType); !ok {
			return nil, nil, newError(PatternMismatch, p.Location(),
				"empty-record pattern against a non-empty-record scrutinee type")
		}
		return EmptyRecordPattern{}, ctx, nil

	case syntax.RecordPattern:
		return c.checkRecordPattern(ctx, p.Fields, scrutTy)

	default:
		return nil, nil, newError(PatternMismatch, p.Location(), "unrecognized pattern form")
	}
}

func (c *Checker) checkRecordPattern(ctx *Context, fields []syntax.RecordPatternField, scrutTy Value) (Pattern, *Context, error) {
	return c.checkRecordPatternDepth(ctx, fields, scrutTy, 0)
}

// checkRecordPatternDepth walks a record pattern's fields against the
// scrutinee's record type telescope. depth only numbers recursive calls
// within this one pattern (for minting a placeholder neutral below); it is
// unrelated to a context's binder depth.
//
// A later field's expected type may depend on the telescope's earlier
// field value, since later telescope fields scope over earlier ones. When
// the head field's pattern binds a name, that name's own claim (extended
// onto afterHead by checkPattern) is already bound in afterHead's Env to
// the very neutral that stands for the matched value, so the rest of the
// telescope is opened against that real binder and later fields see it
// under the name the program actually uses.
//
// A destructuring pattern need not bind a name for the head value at all
// (e.g. a BoolPattern or a nested RecordPattern consumes it without naming
// it); only then does this checker stand in a fresh neutral for "the head
// field's value" purely to compute the next field's expected type, at a
// level chosen far outside any real context depth so it can never alias a
// genuine bound variable. That placeholder is never quoted into an
// elaborated Pattern or Term; it only drives type-directed checking of the
// remaining fields.
func (c *Checker) checkRecordPatternDepth(ctx *Context, fields []syntax.RecordPatternField, scrutTy Value, depth int) (Pattern, *Context, error) {
	if len(fields) == 0 {
		if _, ok := force(scrutTy).(VEmptyRecordType); !ok {
			return nil, nil, newError(PatternMismatch, syntax.Loc{}, "record pattern shorter than its scrutinee type")
		}
		return EmptyRecordPattern{}, ctx, nil
	}
	recTy, ok := force(scrutTy).(VRecordType)
	if !ok {
		return nil, nil, newError(PatternMismatch, fields[0].Loc, "record pattern against a non-record scrutinee type")
	}
	head := fields[0]
	if head.Name != recTy.Name {
		return nil, nil, newError(PatternMismatch, head.Loc,
			"expected field %q here, found %q", recTy.Name, head.Name)
	}
	headPat, afterHead, err := c.checkPattern(ctx, head.Pattern, recTy.Type)
	if err != nil {
		return nil, nil, err
	}
	headVal := headFieldValue(head.Pattern, afterHead, depth)
	restTyVal := recTy.Rest.Open(headVal)
	restPat, finalCtx, err := c.checkRecordPatternDepth(afterHead, fields[1:], restTyVal, depth+1)
	if err != nil {
		return nil, nil, err
	}
	return RecordPattern{Fields: append([]RecordPatternField{{Name: head.Name, Pattern: headPat}},
		fieldsOf(restPat)...)}, finalCtx, nil
}

// headFieldValue is the value the rest of a record pattern's telescope
// should see for the head field just checked. A VarPattern already bound
// a real claim onto afterHead (at index 0 of its Env), so later fields'
// expected types are opened against that same neutral the program's own
// binder refers to; any other pattern form names no value, so a
// placeholder stands in instead.
func headFieldValue(pat syntax.Pattern, afterHead *Context, depth int) Value {
	if _, ok := pat.(syntax.VarPattern); ok {
		return afterHead.Env().Lookup(0)
	}
	return NVar{Level: recordPatternPlaceholderLevel(depth)}
}

// recordPatternPlaceholderLevel mints a level guaranteed disjoint from any
// real context depth a single checking pass could reach.
func recordPatternPlaceholderLevel(depth int) int {
	return 1<<30 + depth
}

func fieldsOf(p Pattern) []RecordPatternField {
	if rp, ok := p.(RecordPattern); ok {
		return rp.Fields
	}
	return nil
}
