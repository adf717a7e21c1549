package core

import (
	"log/slog"

	"github.com/brendanzab/lambdapi/syntax"
)

// tracer gates per-judgement logging behind Config.Trace, backed by
// log/slog's structured handler. The core package never logs
// unconditionally: with Trace unset, every method here is a no-op.
type tracer struct {
	on     bool
	logger *slog.Logger
	depth  int
}

func newTracer(cfg Config) *tracer {
	if !cfg.Trace {
		return &tracer{}
	}
	return &tracer{on: true, logger: slog.Default()}
}

// enter logs entry into a judgement and returns a function to call on
// exit, logging the result (or the error, if non-nil).
func (t *tracer) enter(judgement string, loc syntax.Loc, r interface{}) func(result interface{}, err error) {
	if !t.on {
		return func(interface{}, error) {}
	}
	t.logger.Debug("enter", "judgement", judgement, "loc", loc.String(), "depth", t.depth, "term", r)
	t.depth++
	return func(result interface{}, err error) {
		t.depth--
		if err != nil {
			t.logger.Debug("exit", "judgement", judgement, "loc", loc.String(), "depth", t.depth, "err", err)
			return
		}
		t.logger.Debug("exit", "judgement", judgement, "loc", loc.String(), "depth", t.depth, "result", result)
	}
}
