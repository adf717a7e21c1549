package core

// An Env is the evaluator's value stack: one Value per context entry in
// scope, used to resolve de Bruijn indices during Eval. Index 0 refers to
// the most recently bound entry.
//
// Env is treated as immutable: Extend always returns a new Env, never
// mutates the receiver, so that a Closure capturing an Env is unaffected
// by anything the caller does with it afterwards.
type Env []Value

// Extend returns a new Env with v bound as index 0 and every existing
// index shifted up by one.
func (e Env) Extend(v Value) Env {
	next := make(Env, len(e)+1)
	next[0] = v
	copy(next[1:], e)
	return next
}

// ExtendAll extends e with each of vs in order, as if the checker had
// called ExtendClaim once per value of vs[i] in turn: vs[0] ends up
// furthest from index 0 among the new entries (it was bound first, so by
// the time the body is evaluated, later bindings sit closer to it), and
// vs[len(vs)-1] ends up at index 0. This matches the order PatternVars and
// MatchPattern agree on for a pattern's variables.
func (e Env) ExtendAll(vs []Value) Env {
	for _, v := range vs {
		e = e.Extend(v)
	}
	return e
}

// Lookup resolves a de Bruijn index against e.
func (e Env) Lookup(index int) Value {
	return e[index]
}

// Len is the number of bound values currently in scope; it equals the
// de Bruijn level a freshly-introduced variable should be assigned.
func (e Env) Len() int { return len(e) }
