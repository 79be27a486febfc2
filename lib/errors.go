package lib

import "fmt"

// LexError reports a character that cannot start any token. Position is the
// zero-based rune offset into the source.
type LexError struct {
	Character rune
	Position  int
	Location  Location
}

func (e *LexError) Error() string {
	return fmt.Sprintf(
		"Error at line %d:%d: unrecognized character '%s'",
		e.Location.Line,
		e.Location.Col,
		string(e.Character))
}

// ParseError reports the token found where something else was required.
type ParseError struct {
	Expected string
	Found    Token
}

func (e *ParseError) Error() string {
	if e.Found.Type == TokenTypeEOF {
		return fmt.Sprintf("Expected '%s' but got EOF", e.Expected)
	}
	return fmt.Sprintf("Expected '%s' but got <%s>", e.Expected, tokenString(e.Found))
}

// EvalError reports an AST node with no evaluation rule.
type EvalError struct {
	NodeKind string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("Cannot evaluate %s node", e.NodeKind)
}
