package core

import "github.com/brendanzab/lambdapi/literal"

// Config holds the defaults and diagnostics knobs a Checker is built with.
type Config struct {
	// DefaultIntKind is the literal.Kind an unsized integer literal (raw
	// syntax.Lit with Form IntForm) is assigned when checked with no
	// expected type to guide it (e.g. inferred rather than checked).
	DefaultIntKind literal.Kind
	// DefaultFloatKind is the analogous default for FloatForm literals.
	DefaultFloatKind literal.Kind
	// Trace, if set, makes the Checker log every infer/check judgement it
	// enters and leaves through log/slog.
	Trace bool
}

// setConfigDefaults fills the zero value of each Default*Kind field with
// this language's default integer/float sizing. literal.U8 (the Kind zero
// value) is not a plausible default float kind, so its presence in
// DefaultFloatKind is an unambiguous "unset" sentinel; the same holds for
// DefaultIntKind since this language's default integer kind is S32, not U8.
func setConfigDefaults(cfg *Config) {
	if cfg.DefaultIntKind == 0 {
		cfg.DefaultIntKind = literal.S32
	}
	if cfg.DefaultFloatKind == 0 {
		cfg.DefaultFloatKind = literal.F64
	}
}
