package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brendanzab/lambdapi/syntax"
)

// An ErrorKind identifies which of the ten situations in which the checker
// reports failure produced a given CheckError.
type ErrorKind int

const (
	UnboundVariable ErrorKind = iota
	TypeMismatch
	ExpectedFunctionType
	ExpectedRecordType
	UnknownField
	FieldOrderMismatch
	UniverseMismatch
	AmbiguousTerm
	PatternMismatch
	InvalidLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case UnboundVariable:
		return "unbound variable"
	case TypeMismatch:
		return "type mismatch"
	case ExpectedFunctionType:
		return "expected function type"
	case ExpectedRecordType:
		return "expected record type"
	case UnknownField:
		return "unknown field"
	case FieldOrderMismatch:
		return "field order mismatch"
	case UniverseMismatch:
		return "universe mismatch"
	case AmbiguousTerm:
		return "ambiguous term"
	case PatternMismatch:
		return "pattern mismatch"
	case InvalidLiteral:
		return "invalid literal"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// A CheckError is everything infer/check ever returns on failure: a kind,
// a location passed through unchanged from the raw term, a message, free-
// form notes (e.g. readback-ed expected/inferred types), and nested causes
// for errors discovered while elaborating a sub-term. The core never logs
// or recovers from one of these; they are always handed back to the caller
// rather than recovered from internally.
type CheckError struct {
	kind  ErrorKind
	loc   syntax.Loc
	msg   string
	notes []string
	cause []*CheckError
}

// Kind identifies which error situation produced err.
func (err *CheckError) Kind() ErrorKind { return err.kind }

// Loc is the raw term location err was reported against.
func (err *CheckError) Loc() syntax.Loc { return err.loc }

func newError(kind ErrorKind, loc syntax.Loc, format string, vs ...interface{}) *CheckError {
	return &CheckError{kind: kind, loc: loc, msg: fmt.Sprintf(format, vs...)}
}

// note appends a display-oriented detail line to err, such as a readback-ed
// expected or inferred type.
func note(err *CheckError, format string, vs ...interface{}) {
	err.notes = append(err.notes, fmt.Sprintf(format, vs...))
}

func (err *CheckError) Error() string {
	var s strings.Builder
	buildError(&s, "", err)
	return s.String()
}

func buildError(s *strings.Builder, indent string, err *CheckError) {
	s.WriteString(indent)
	s.WriteString(err.loc.String())
	s.WriteString(": ")
	s.WriteString(err.msg)
	indent2 := indent + "\t"
	for _, n := range err.notes {
		s.WriteRune('\n')
		s.WriteString(indent2)
		s.WriteString(n)
	}
	for _, c := range err.cause {
		s.WriteRune('\n')
		buildError(s, indent2, c)
	}
}

// convertErrors turns a batch of accumulated CheckErrors, most-recent-last,
// into a deterministically sorted and deduplicated []error for a caller
// that wants all of them (rather than the first one hit).
func convertErrors(errs []*CheckError) []error {
	sorted := sortErrors(errs)
	out := make([]error, len(sorted))
	for i, e := range sorted {
		out[i] = e
	}
	return out
}

// CollectErrors sorts a batch of CheckErrors by location (path, then line,
// then column) and removes adjacent duplicates, for a caller - such as the
// cmd driver checking a whole file's worth of top-level declarations - that
// wants every error rather than just the first one hit. Every Infer/Check
// call still returns its own single error the moment it fails; batching
// multiple calls' errors together is the caller's responsibility, and
// CollectErrors is the exported entry point for doing so deterministically.
func CollectErrors(errs []*CheckError) []error {
	return convertErrors(errs)
}

// sortErrors orders errs by source position (path, then line, then
// column), breaking ties between two errors reported at the very same
// position by their kind and message so that a batch of errors sharing a
// Loc{} (e.g. several top-level declarations that all failed before any
// location tracking reached them) still sorts deterministically rather
// than depending on sort.Slice's stability over caller-supplied order.
func sortErrors(errs []*CheckError) []*CheckError {
	if len(errs) == 0 {
		return errs
	}
	sorted := make([]*CheckError, len(errs))
	copy(sorted, errs)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.loc.Path != b.loc.Path {
			return a.loc.Path < b.loc.Path
		}
		if a.loc.Line[0] != b.loc.Line[0] {
			return a.loc.Line[0] < b.loc.Line[0]
		}
		if a.loc.Col[0] != b.loc.Col[0] {
			return a.loc.Col[0] < b.loc.Col[0]
		}
		if a.kind != b.kind {
			return a.kind < b.kind
		}
		return a.msg < b.msg
	})
	dedup := sorted[:1]
	for _, e := range sorted[1:] {
		d := dedup[len(dedup)-1]
		if e.loc != d.loc || e.kind != d.kind || e.msg != d.msg {
			dedup = append(dedup, e)
		}
	}
	for _, e := range dedup {
		e.cause = sortErrors(e.cause)
	}
	return dedup
}
