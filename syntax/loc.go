// Package syntax holds the raw surface term produced by the external
// parser/lexer (out of scope for this module, named only as a collaborator):
// a term that may still contain holes and omitted annotations, plus the
// patterns used by case expressions.
package syntax

import "fmt"

// A Loc describes a span of source text. It is opaque to the checker: the
// checker only threads Locs through from raw terms into CheckErrors, never
// interprets them.
type Loc struct {
	Path string
	Line [2]int
	Col  [2]int
}

// String renders l as "path:line,col" for a single point, or
// "path:line,col-line,col" for a span covering more than one position.
func (l Loc) String() string {
	if l.Line[0] == l.Line[1] && l.Col[0] == l.Col[1] {
		return fmt.Sprintf("%s:%d,%d", l.Path, l.Line[0], l.Col[0])
	}
	return fmt.Sprintf("%s:%d,%d-%d,%d", l.Path, l.Line[0], l.Col[0], l.Line[1], l.Col[1])
}
