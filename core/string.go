package core

import "github.com/eaburns/pretty"

// noteTerm appends a note to t rendering term as its Go struct shape, so a
// reader of the error sees exactly which constructors an elaborated term is
// built from, not a surface-syntax reprint.
func (t *CheckError) noteTerm(label string, term Term) {
	note(t, "%s: %s", label, pretty.String(term))
}

// noteValue is noteTerm's counterpart for an already-evaluated Value,
// used when an error wants to show the reader a readback-free value (for
// example a VUniverse level that doesn't need quoting to be legible).
func (t *CheckError) noteValue(label string, v Value) {
	note(t, "%s: %s", label, pretty.String(v))
}
