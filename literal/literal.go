// Package literal defines the tagged literal constants of the language:
// fixed-width integers, IEEE-754 floats, Unicode scalar characters, and
// UTF-8 strings, plus the lexical rules for parsing them from source text.
//
// Parsing (this package) is independent of the parser/lexer named as an
// external collaborator elsewhere: the text forms of number, character, and
// string literals are part of the data model, so their lexical rules live
// here rather than in a frontend outside this module's scope.
package literal

import "fmt"

// A Kind identifies which of the twelve literal forms a Value holds.
type Kind int

const (
	U8 Kind = iota
	U16
	U32
	U64
	S8
	S16
	S32
	S64
	F32
	F64
	Char
	String
)

func (k Kind) String() string {
	switch k {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case S8:
		return "S8"
	case S16:
		return "S16"
	case S32:
		return "S32"
	case S64:
		return "S64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case Char:
		return "Char"
	case String:
		return "String"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// A Value is one concrete literal constant.
// Exactly one of the accessor methods below is meaningful for a given Kind;
// which one is determined by Kind itself.
type Value struct {
	kind Kind
	u    uint64
	s    int64
	f    float64
	r    rune
	str  string
}

// Kind returns the tag identifying which field of v is populated.
func (v Value) Kind() Kind { return v.kind }

// Uint returns the unsigned integer payload of a U8/U16/U32/U64 value.
func (v Value) Uint() uint64 { return v.u }

// Int returns the signed integer payload of an S8/S16/S32/S64 value.
func (v Value) Int() int64 { return v.s }

// Float returns the floating point payload of an F32/F64 value.
func (v Value) Float() float64 { return v.f }

// Rune returns the Unicode scalar payload of a Char value.
func (v Value) Rune() rune { return v.r }

// Str returns the UTF-8 payload of a String value.
func (v Value) Str() string { return v.str }

func NewUint(k Kind, u uint64) Value { return Value{kind: k, u: u} }
func NewInt(k Kind, s int64) Value   { return Value{kind: k, s: s} }
func NewFloat(k Kind, f float64) Value {
	return Value{kind: k, f: f}
}
func NewChar(r rune) Value     { return Value{kind: Char, r: r} }
func NewString(s string) Value { return Value{kind: String, str: s} }

// Equal reports whether v and other are the same kind and payload.
// Equal is used by definitional equality over literal values. Float
// payloads are compared with Go's ==, so a NaN is not Equal to itself.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case U8, U16, U32, U64:
		return v.u == other.u
	case S8, S16, S32, S64:
		return v.s == other.s
	case F32, F64:
		return v.f == other.f
	case Char:
		return v.r == other.r
	case String:
		return v.str == other.str
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case U8, U16, U32, U64:
		return fmt.Sprintf("%d", v.u)
	case S8, S16, S32, S64:
		return fmt.Sprintf("%d", v.s)
	case F32, F64:
		return fmt.Sprintf("%g", v.f)
	case Char:
		return fmt.Sprintf("%q", v.r)
	case String:
		return fmt.Sprintf("%q", v.str)
	default:
		return "<invalid literal>"
	}
}
