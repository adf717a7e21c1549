// Command lambdapi is a minimal driver over the core checker/evaluator: it
// reads one raw term per line from stdin, infers and normalizes it, and
// prints a `value : type` line, mirroring the REPL surface sketched in the
// specification (informational there, implemented here as the thinnest
// possible caller of cmd.Driver).
//
// This binary links no parser: the lexer/parser is an external
// collaborator the core specification deliberately does not implement.
// A real deployment imports a package that calls cmd.Register(frontend)
// from its own init() before main runs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/eaburns/pretty"

	"github.com/brendanzab/lambdapi/cmd"
	"github.com/brendanzab/lambdapi/core"
)

var trace = flag.Bool("trace", false, "log every infer/check judgement through log/slog")

func main() {
	pretty.Indent = "    "
	flag.Usage = usage
	flag.Parse()

	frontend := cmd.Registered()
	if frontend == nil {
		fmt.Fprintln(os.Stderr, "lambdapi: no Frontend is linked into this binary; "+
			"the lexer/parser is an external collaborator this module does not implement "+
			"(see cmd.Frontend) - import a package that calls cmd.Register in its init()")
		os.Exit(1)
	}

	if *trace {
		// The tracer logs at Debug level, which slog's default handler drops.
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	driver := cmd.NewDriver(frontend, core.Config{Trace: *trace})
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		out, err := driver.Eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(out)
	}
	if err := scanner.Err(); err != nil {
		slog.Error("reading stdin", "err", err)
		os.Exit(1)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage of %s: a minimal REPL driver over core.Infer/core.Check.\n", os.Args[0])
	flag.PrintDefaults()
}
