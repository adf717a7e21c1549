// Package cmd wires a caller-supplied Frontend (parser/lexer) to the
// core checker and evaluator, and renders the `value : type` lines
// described as the REPL surface in the specification's external
// interfaces section. Nothing in this package performs lexing or
// parsing: that remains an external collaborator, named only as an
// interface.
package cmd

import "github.com/brendanzab/lambdapi/syntax"

// Frontend is the named interface for the external parser/lexer
// collaborator. lambdapi never implements it: a real deployment links in
// a concrete Frontend that turns program source text into a syntax.Term
// carrying syntax.Loc positions for diagnostics.
type Frontend interface {
	Parse(source string) (syntax.Term, error)
}

var registered Frontend

// Register installs the Frontend a concrete parser package supplies from
// its own init(), the way database/sql drivers and image.RegisterFormat
// register themselves without the registering package importing them
// directly.
func Register(f Frontend) { registered = f }

// Registered returns the Frontend most recently installed by Register, or
// nil if no frontend package has been linked into this binary.
func Registered() Frontend { return registered }
