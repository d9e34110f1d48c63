package ttbl

import (
	"fmt"
	"strconv"
)

// LexError reports a character that cannot start any token.
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %s at position %d", strconv.QuoteRune(e.Char), e.Pos)
}

func (e *LexError) Position() int { return e.Pos }

// ParseError reports a structural problem: Found was read where Expected
// was required.
type ParseError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, got %s at position %d", e.Expected, e.Found, e.Pos)
}

func (e *ParseError) Position() int { return e.Pos }

func unexpected(expected string, found Token) *ParseError {
	return &ParseError{Pos: found.Pos, Expected: expected, Found: found.String()}
}

// UnknownVariableError is returned by Evaluate when the assignment has no
// value for a variable of the expression.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return "variable `" + e.Name + "` has no assigned value"
}

// TableSizeError is returned when an expression has more distinct
// variables than a table may enumerate.
type TableSizeError struct {
	Variables int
	Limit     int
}

func (e *TableSizeError) Error() string {
	return fmt.Sprintf("expression has %d variables, at most %d are supported", e.Variables, e.Limit)
}
