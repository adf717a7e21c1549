package core

import "github.com/brendanzab/lambdapi/literal"

// Extern is a reference to a primitive computed by Go code rather than
// reduced structurally, keyed by Name. A Prelude installs one ExtendDef
// binding per extern, so an extern is otherwise an ordinary definition:
// Var resolution, type checking, and application all go through the same
// paths as any other defined name.
type Extern struct {
	Name  string
	Arity int
}

func (Extern) isTerm() {}

// VExtern is a partially (or, transiently, fully) applied extern value.
// Apply accumulates arguments in Args until len(Args) == Arity, at which
// point applyExtern either reduces it via externTable or, if some argument
// is not a concrete literal, leaves it stuck as an NExtern.
type VExtern struct {
	Name  string
	Arity int
	Args  []Value
}

func (VExtern) isValue() {}

// NExtern is a saturated extern application externTable could not reduce
// because at least one argument is neutral. It is a Neutral like any
// other stuck computation: Quote reconstructs the application as ordinary
// Apps over an Extern head, and Conv compares two NExterns structurally.
type NExtern struct {
	Name string
	Args []Value
}

func (NExtern) isValue()   {}
func (NExtern) isNeutral() {}

// applyExtern extends f with one more argument, reducing it through
// externTable once Arity arguments have accumulated.
func applyExtern(f VExtern, a Value) Value {
	args := make([]Value, len(f.Args)+1)
	copy(args, f.Args)
	args[len(f.Args)] = a
	if len(args) < f.Arity {
		return VExtern{Name: f.Name, Arity: f.Arity, Args: args}
	}
	if fn, ok := externTable[f.Name]; ok {
		if v, ok := fn(args); ok {
			return v
		}
	}
	return NExtern{Name: f.Name, Args: args}
}

func litArg(v Value, k literal.Kind) (literal.Value, bool) {
	l, ok := v.(VLit)
	if !ok || l.Val.Kind() != k {
		return literal.Value{}, false
	}
	return l.Val, true
}

func boolResult(b bool) Value {
	if b {
		return VTrue{}
	}
	return VFalse{}
}

// externTable holds one reduction rule per extern name a Prelude installs.
// Every rule requires all of its arguments to already be concrete VLits of
// the expected Kind; otherwise it returns ok=false and the application is
// left as an NExtern rather than invented a bogus result.
var externTable = map[string]func(args []Value) (Value, bool){
	"add-s32": s32BinOp(func(a, b int64) int64 { return a + b }),
	"sub-s32": s32BinOp(func(a, b int64) int64 { return a - b }),
	"mul-s32": s32BinOp(func(a, b int64) int64 { return a * b }),
	"eq-s32":  s32Cmp(func(a, b int64) bool { return a == b }),
	"lt-s32":  s32Cmp(func(a, b int64) bool { return a < b }),
	"add-u64": u64BinOp(func(a, b uint64) uint64 { return a + b }),
	"sub-u64": u64BinOp(func(a, b uint64) uint64 { return a - b }),
	"mul-u64": u64BinOp(func(a, b uint64) uint64 { return a * b }),
	"eq-u64":  u64Cmp(func(a, b uint64) bool { return a == b }),
	"lt-u64":  u64Cmp(func(a, b uint64) bool { return a < b }),
}

func s32BinOp(op func(a, b int64) int64) func([]Value) (Value, bool) {
	return func(args []Value) (Value, bool) {
		a, ok := litArg(args[0], literal.S32)
		if !ok {
			return nil, false
		}
		b, ok := litArg(args[1], literal.S32)
		if !ok {
			return nil, false
		}
		return VLit{Val: literal.NewInt(literal.S32, op(a.Int(), b.Int()))}, true
	}
}

func s32Cmp(op func(a, b int64) bool) func([]Value) (Value, bool) {
	return func(args []Value) (Value, bool) {
		a, ok := litArg(args[0], literal.S32)
		if !ok {
			return nil, false
		}
		b, ok := litArg(args[1], literal.S32)
		if !ok {
			return nil, false
		}
		return boolResult(op(a.Int(), b.Int())), true
	}
}

func u64BinOp(op func(a, b uint64) uint64) func([]Value) (Value, bool) {
	return func(args []Value) (Value, bool) {
		a, ok := litArg(args[0], literal.U64)
		if !ok {
			return nil, false
		}
		b, ok := litArg(args[1], literal.U64)
		if !ok {
			return nil, false
		}
		return VLit{Val: literal.NewUint(literal.U64, op(a.Uint(), b.Uint()))}, true
	}
}

func u64Cmp(op func(a, b uint64) bool) func([]Value) (Value, bool) {
	return func(args []Value) (Value, bool) {
		a, ok := litArg(args[0], literal.U64)
		if !ok {
			return nil, false
		}
		b, ok := litArg(args[1], literal.U64)
		if !ok {
			return nil, false
		}
		return boolResult(op(a.Uint(), b.Uint())), true
	}
}
