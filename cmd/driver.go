package cmd

import (
	"fmt"

	"github.com/eaburns/pretty"

	"github.com/brendanzab/lambdapi/core"
)

// A Driver wires a Frontend to a Checker over a Context descended from
// core.Prelude, and formats a `value : type` line per top-level term,
// mirroring the informational REPL surface of the specification.
type Driver struct {
	Frontend Frontend
	Checker  *core.Checker
	Ctx      *core.Context
}

// NewDriver returns a Driver over core.Prelude. cfg is passed straight
// through to core.NewChecker, so a caller's -trace flag reaches core's
// tracer unchanged.
func NewDriver(frontend Frontend, cfg core.Config) *Driver {
	return &Driver{
		Frontend: frontend,
		Checker:  core.NewChecker(cfg),
		Ctx:      core.Prelude(),
	}
}

// Eval parses, infers, normalizes, and formats one top-level raw term
// from source, returning the `value : type` line a REPL would print.
//
// Eval does not extend d.Ctx: each call is independent, matching the
// literal single-expression REPL surface of spec §6 rather than a
// sequence of accumulating top-level definitions (see Define for that).
func (d *Driver) Eval(source string) (string, error) {
	raw, err := d.Frontend.Parse(source)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	ty, term, err := d.Checker.Infer(d.Ctx, raw)
	if err != nil {
		return "", err
	}
	val := core.Eval(d.Ctx.Env(), term)
	return formatValueType(d.Ctx.Len(), val, ty), nil
}

// A Decl is one named top-level definition a frontend can hand to
// Define, e.g. `let double = fun x : S32 => add-s32 x x`. Define infers
// each Source, so a lambda in it needs its parameter annotated.
type Decl struct {
	Name   string
	Source string
}

// Define checks each Decl's Source in turn against d.Ctx, extending Ctx
// with a claim+definition pair for every one that succeeds, and
// collecting every failure rather than stopping at the first. Parse
// failures come first, in input order; check failures follow, sorted and
// deduplicated by core.CollectErrors. It returns the `value : type` line
// for each successfully elaborated declaration, in order.
func (d *Driver) Define(decls []Decl) ([]string, []error) {
	var lines []string
	var parseErrs []error
	var checkErrs []*core.CheckError
	for _, decl := range decls {
		raw, err := d.Frontend.Parse(decl.Source)
		if err != nil {
			parseErrs = append(parseErrs, fmt.Errorf("%s: parse: %w", decl.Name, err))
			continue
		}
		ty, term, err := d.Checker.Infer(d.Ctx, raw)
		if err != nil {
			if ce, ok := err.(*core.CheckError); ok {
				checkErrs = append(checkErrs, ce)
			} else {
				parseErrs = append(parseErrs, err)
			}
			continue
		}
		d.Ctx = d.Ctx.ExtendDef(decl.Name, term, ty)
		val := d.Ctx.Env().Lookup(0)
		lines = append(lines, decl.Name+" = "+formatValueType(d.Ctx.Len(), val, ty))
	}
	errs := append(parseErrs, core.CollectErrors(checkErrs)...)
	return lines, errs
}

func formatValueType(depth int, val, ty core.Value) string {
	valTerm := core.Quote(depth, val)
	tyTerm := core.Quote(depth, ty)
	return pretty.String(valTerm) + " : " + pretty.String(tyTerm)
}
