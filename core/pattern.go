package core

// A Pattern is the elaborated shape of a case arm's pattern. Patterns carry
// no types of their own; the checker derives each bound variable's type
// from the scrutinee's type as it checks the pattern.
type Pattern interface {
	isPattern()
}

// VarPattern always matches, binding the matched value to Name.
type VarPattern struct {
	Name string
}

func (VarPattern) isPattern() {}

// BoolPattern matches a Bool value equal to Value.
type BoolPattern struct {
	Value bool
}

func (BoolPattern) isPattern() {}

// A RecordPatternField is one labelled field of a RecordPattern.
type RecordPatternField struct {
	Name    string
	Pattern Pattern
}

// RecordPattern matches a record term WHNF whose head label equals its
// first field's Name, recursing on the field value and the telescope tail.
type RecordPattern struct {
	Fields []RecordPatternField
}

func (RecordPattern) isPattern() {}

// EmptyRecordPattern matches the empty record value.
type EmptyRecordPattern struct{}

func (EmptyRecordPattern) isPattern() {}

// PatternVars returns the names of the variables p binds, in the
// left-to-right order a preorder traversal of p encounters them. Both the
// checker (when deriving claims for pattern variables) and the evaluator
// (when extending the environment with matched values) walk patterns in
// this same order, so that variable N in one traversal refers to the same
// binding as variable N in the other.
func PatternVars(p Pattern) []string {
	var vars []string
	var walk func(Pattern)
	walk = func(p Pattern) {
		switch p := p.(type) {
		case VarPattern:
			vars = append(vars, p.Name)
		case BoolPattern, EmptyRecordPattern:
			// no bindings
		case RecordPattern:
			for _, f := range p.Fields {
				walk(f.Pattern)
			}
		}
	}
	walk(p)
	return vars
}

// MatchPattern reports whether v matches p, and if so returns the matched
// values in PatternVars(p) order.
func MatchPattern(p Pattern, v Value) (vals []Value, ok bool) {
	switch p := p.(type) {
	case VarPattern:
		return []Value{v}, true
	case BoolPattern:
		switch v.(type) {
		case VTrue:
			return nil, p.Value == true
		case VFalse:
			return nil, p.Value == false
		default:
			return nil, false
		}
	case EmptyRecordPattern:
		_, ok := v.(VEmptyRecord)
		return nil, ok
	case RecordPattern:
		return matchRecordPattern(p.Fields, v)
	default:
		return nil, false
	}
}

func matchRecordPattern(fields []RecordPatternField, v Value) ([]Value, bool) {
	if len(fields) == 0 {
		_, ok := v.(VEmptyRecord)
		return nil, ok
	}
	rec, ok := v.(VRecord)
	if !ok || rec.Name != fields[0].Name {
		return nil, false
	}
	head, ok := MatchPattern(fields[0].Pattern, rec.Val)
	if !ok {
		return nil, false
	}
	tailVal := rec.Rest.Open(rec.Val)
	tail, ok := matchRecordPattern(fields[1:], tailVal)
	if !ok {
		return nil, false
	}
	return append(head, tail...), true
}
