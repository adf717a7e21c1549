package core

// A Closure pairs a captured Env with a core Term body. It is invoked by
// extending the environment with additional values and evaluating the
// body. The same shape serves every binder in this language:
// a Pi/Lam body (opened with one argument value), a record telescope
// tail (opened with the head field's value), an if-branch (opened with no
// values, since if introduces no bindings), and a case arm's body (opened
// with one value per pattern variable).
type Closure struct {
	Env  Env
	Body Term
}

// Open evaluates the closure's body under its captured environment
// extended by vs.
func (c *Closure) Open(vs ...Value) Value {
	return Eval(c.Env.ExtendAll(vs), c.Body)
}
