package core

// An entryKind distinguishes a context entry that only claims a type from
// one that also carries a definition.
type entryKind int

const (
	claimEntry entryKind = iota
	defEntry
)

// An Entry is one claim `x : V` or definition `x = t` in a Context.
type Entry struct {
	Name string
	Type Value
	Def  Term // nil for a claimEntry
	kind entryKind
}

// IsDef reports whether e carries a definition.
func (e Entry) IsDef() bool { return e.kind == defEntry }

// A Context is an ordered stack of typing claims and definitions, with a
// parallel Env used for evaluation. Claims bind a fresh neutral variable
// at their position in the environment; definitions bind their evaluated
// definiens.
//
// Context is treated as immutable: every Extend* method returns a new
// Context, leaving the receiver untouched, so that a Context (and any
// Closure capturing its Env) is unaffected by a caller extending it
// further. A caller that extends a Context for one sub-judgement simply
// discards the extended value on return, which makes Infer/Check safely
// re-entrant across goroutines sharing a base Context.
type Context struct {
	entries []Entry
	env     Env
}

// NewContext returns the empty context.
func NewContext() *Context {
	return &Context{}
}

// Len is the number of entries in c, and the de Bruijn level a freshly
// introduced variable should be assigned.
func (c *Context) Len() int { return len(c.entries) }

// Env is c's parallel evaluation environment.
func (c *Context) Env() Env { return c.env }

// ExtendClaim returns a new Context with an additional claim `name : t`,
// bound in its Env to a fresh neutral variable at the new entry's level.
func (c *Context) ExtendClaim(name string, t Value) *Context {
	level := c.Len()
	entries := appendEntry(c.entries, Entry{Name: name, Type: t, kind: claimEntry})
	env := c.env.Extend(NVar{Level: level, Name: name})
	return &Context{entries: entries, env: env}
}

// ExtendDef returns a new Context with an additional definition
// `name = def`, of type t, bound in its Env to def's value.
func (c *Context) ExtendDef(name string, def Term, t Value) *Context {
	v := Eval(c.env, def)
	entries := appendEntry(c.entries, Entry{Name: name, Type: t, Def: def, kind: defEntry})
	env := c.env.Extend(v)
	return &Context{entries: entries, env: env}
}

func appendEntry(entries []Entry, e Entry) []Entry {
	next := make([]Entry, len(entries)+1)
	copy(next, entries)
	next[len(entries)] = e
	return next
}

// LookupClaim finds the most recent entry named name (shadowing earlier
// entries of the same name, implementing lexical shadowing),
// returning its type and the de Bruijn index a reference to it should use
// from the current scope.
func (c *Context) LookupClaim(name string) (t Value, index int, ok bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Name == name {
			return c.entries[i].Type, len(c.entries) - 1 - i, true
		}
	}
	return nil, 0, false
}

// LookupDef finds the most recent definition named name.
func (c *Context) LookupDef(name string) (def Term, ok bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Name == name {
			if c.entries[i].kind == defEntry {
				return c.entries[i].Def, true
			}
			return nil, false
		}
	}
	return nil, false
}

// Entry returns the entry at the given de Bruijn index from the current
// scope (0 = most recently added).
func (c *Context) Entry(index int) Entry {
	return c.entries[len(c.entries)-1-index]
}
