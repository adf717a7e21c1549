package syntax

import (
	"math/big"

	"github.com/brendanzab/lambdapi/literal"
)

// A Node is any piece of raw syntax with a source location.
type Node interface {
	Location() Loc
}

// A Term is a raw term as produced by the parser: it may contain holes and
// lambdas with an omitted domain annotation (desugared already from any
// surface multi-binder/currying form by the time it reaches this core).
type Term interface {
	Node
	isTerm()
}

type loc struct{ Loc Loc }

func (n loc) Location() Loc { return n.Loc }

// Var is a variable reference by name.
type Var struct {
	loc
	Name string
}

func (Var) isTerm() {}

// Universe is `Type_i`, the universe at the given level.
type Universe struct {
	loc
	Level uint32
}

func (Universe) isTerm() {}

// Hole is the placeholder `?`. The core checker never elaborates it: it is
// only a syntax-level affordance, and is always an error during inference
// and best-effort during check (both report "ambiguous term"
// unless it appears somewhere the expected type alone suffices - which this
// core does not attempt, since implicit argument inference is out of scope).
type Hole struct {
	loc
}

func (Hole) isTerm() {}

// LitForm identifies which lexical category of literal.Kind a Lit was
// parsed from; a concrete literal.Kind (e.g. choosing S32 among the signed
// integer kinds) is only assigned once an expected type is known.
type LitForm int

const (
	// IntForm literals are text like `0b1001_0101` or `-14`, assigned a
	// concrete integer Kind (default S32) during checking.
	IntForm LitForm = iota
	// FloatForm literals have a fractional point and/or exponent, assigned
	// a concrete F32/F64 Kind (default F64) during checking.
	FloatForm
	// CharForm and StringForm literals are already fully lexed: their
	// Kind (Char, String) is never ambiguous.
	CharForm
	StringForm
)

// Lit is a raw literal constant. Exactly the fields matching Form are
// meaningful.
type Lit struct {
	loc
	Form LitForm

	// IntForm
	Neg bool
	Mag *big.Int

	// FloatForm
	Float float64

	// CharForm, StringForm
	Val literal.Value
}

func (Lit) isTerm() {}

// BoolType is the type `Bool`.
type BoolType struct{ loc }

func (BoolType) isTerm() {}

// True and False are the two Bool constructors.
type True struct{ loc }
type False struct{ loc }

func (True) isTerm()  {}
func (False) isTerm() {}

// Ann is a type-annotated term `e : T`.
type Ann struct {
	loc
	Term Term
	Type Term
}

func (Ann) isTerm() {}

// Pi is a dependent function type `(x : A) -> B`.
type Pi struct {
	loc
	Name   string
	Domain Term
	Body   Term
}

func (Pi) isTerm() {}

// Lam is a single-binder lambda `fun x[:A] => e`. Domain is nil when the
// annotation was omitted (legal only where `check` supplies the domain).
type Lam struct {
	loc
	Name   string
	Domain Term // may be nil
	Body   Term
}

func (Lam) isTerm() {}

// App is a function application `f a`.
type App struct {
	loc
	Func Term
	Arg  Term
}

func (App) isTerm() {}

// If is an if-then-else conditional.
type If struct {
	loc
	Cond, Then, Else Term
}

func (If) isTerm() {}

// A CaseArm is one `pattern -> term` arm of a Case.
type CaseArm struct {
	Pattern Pattern
	Body    Term
}

// Case is a case expression scrutinizing Scrutinee against Arms in order.
type Case struct {
	loc
	Scrutinee Term
	Arms      []CaseArm
}

func (Case) isTerm() {}

// A RecordTypeField is one labelled field of a RecordType telescope; later
// fields' Type terms may refer to Name.
type RecordTypeField struct {
	Loc  Loc
	Name string
	Type Term
}

// RecordType is a record type telescope `Record { l : A, ... }`.
type RecordType struct {
	loc
	Fields []RecordTypeField
}

func (RecordType) isTerm() {}

// A RecordField is one labelled field of a Record term.
type RecordField struct {
	Loc  Loc
	Name string
	Term Term
}

// Record is a record term `record { l = t, ... }`.
type Record struct {
	loc
	Fields []RecordField
}

func (Record) isTerm() {}

// EmptyRecordType is `Record {}`, the unit type.
type EmptyRecordType struct{ loc }

func (EmptyRecordType) isTerm() {}

// EmptyRecord is `record {}`, the sole element of EmptyRecordType.
type EmptyRecord struct{ loc }

func (EmptyRecord) isTerm() {}

// Proj is a field projection `e.l`.
type Proj struct {
	loc
	Term  Term
	Field string
}

func (Proj) isTerm() {}
