package core

import "github.com/brendanzab/lambdapi/literal"

// A Value is the result of evaluation: either a weak-head normal form or a
// Neutral (itself a Value: neutrals are values, not a separate category).
// A WHNF's outermost constructor is exposed, but sub-terms may remain
// unevaluated under a Closure.
type Value interface {
	isValue()
}

// VUniverse is `Type_i` as a value.
type VUniverse struct {
	Level Level
}

func (VUniverse) isValue() {}

// VBool is `Bool` as a value.
type VBool struct{}

func (VBool) isValue() {}

// VTrue and VFalse are the two Bool values.
type VTrue struct{}
type VFalse struct{}

func (VTrue) isValue()  {}
func (VFalse) isValue() {}

// VLit is a literal constant value.
type VLit struct {
	Val literal.Value
}

func (VLit) isValue() {}

// VPi is a dependent function type value: a domain value plus a closure
// over the codomain.
type VPi struct {
	Name   string
	Domain Value
	Body   *Closure
}

func (VPi) isValue() {}

// VLam is a lambda value: a domain value plus a closure over the body.
type VLam struct {
	Name   string
	Domain Value
	Body   *Closure
}

func (VLam) isValue() {}

// VRecordType is a record type telescope WHNF: a head label and value-type
// plus a closure over the rest of the telescope, opened against the head
// field's value during elimination or equality.
type VRecordType struct {
	Name string
	Type Value
	Rest *Closure
}

func (VRecordType) isValue() {}

// VRecord is a record term telescope WHNF, head value plus closure tail.
type VRecord struct {
	Name string
	Val  Value
	Rest *Closure
}

func (VRecord) isValue() {}

// VEmptyRecordType is the unit type value.
type VEmptyRecordType struct{}

func (VEmptyRecordType) isValue() {}

// VEmptyRecord is the unit value.
type VEmptyRecord struct{}

func (VEmptyRecord) isValue() {}

// A Neutral is a computation stuck on a free variable, together with the
// eliminations applied to it. Every Neutral is also a Value.
type Neutral interface {
	Value
	isNeutral()
}

// NVar is a free variable, identified by the de Bruijn level of the
// context entry that introduced it (stable across further context
// extension, unlike an index).
type NVar struct {
	Level int
	// Name is carried only for pretty-printing; Conv and Quote never
	// consult it.
	Name string
}

func (NVar) isValue()   {}
func (NVar) isNeutral() {}

// NApp is a neutral applied to an argument value.
type NApp struct {
	Func Neutral
	Arg  Value
}

func (NApp) isValue()   {}
func (NApp) isNeutral() {}

// NIf is a neutral if-expression: Cond is stuck, so Then and Else remain
// as closures over the un-evaluated branch terms.
type NIf struct {
	Cond       Neutral
	Then, Else *Closure
}

func (NIf) isValue()   {}
func (NIf) isNeutral() {}

// NCase is a neutral case-expression: Scrutinee is stuck, so every arm's
// body remains as a closure taking that arm's pattern variables.
type NCase struct {
	Scrutinee Neutral
	Arms      []NeutralArm
}

func (NCase) isValue()   {}
func (NCase) isNeutral() {}

// A NeutralArm pairs a case arm's pattern with a closure over its body,
// opened with one value per PatternVars(Pattern) when the scrutinee is
// eventually resolved (which, for a Neutral, never happens within this
// evaluation - it is retained only so readback can reproduce the arm).
type NeutralArm struct {
	Pattern Pattern
	Body    *Closure
}

// NProj is a neutral record projected on a label.
type NProj struct {
	Record Neutral
	Field  string
}

func (NProj) isValue()   {}
func (NProj) isNeutral() {}
