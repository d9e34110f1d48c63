package ttbl

import (
	"fmt"
	"strings"
)

type exprId = int

const (
	ExprVariable exprId = iota
	ExprLiteral
	ExprNot
	ExprAnd
	ExprOr
	ExprMarked
)

// Span is a half-open range of rune offsets into the parsed input.
type Span struct {
	Pos int
	End int
}

// Expr is a node of the expression tree. Id selects the variant:
//
//   - ExprVariable uses Name
//   - ExprLiteral uses Value
//   - ExprNot has one operand
//   - ExprAnd and ExprOr have two operands, left then right
//   - ExprMarked has one operand and a Mark, the column id of the braces
//
// For ExprMarked, Span includes both braces.
type Expr struct {
	Id       exprId
	Operands []Expr
	Name     string
	Value    bool
	Mark     int
	Span     Span
}

// Inner returns the single operand of a Not or Marked node built by Parse.
func (e Expr) Inner() Expr {
	return e.Operands[0]
}

func (e Expr) String() string {
	var identifier string

	switch e.Id {
	case ExprVariable:
		identifier = "Variable"
	case ExprLiteral:
		identifier = "Literal"
	case ExprNot:
		identifier = "Not"
	case ExprAnd:
		identifier = "And"
	case ExprOr:
		identifier = "Or"
	case ExprMarked:
		identifier = "Marked"

	default:
		identifier = "?"
	}

	var out = identifier

	switch e.Id {
	case ExprVariable:
		out += fmt.Sprintf("(%s)", e.Name)
	case ExprLiteral:
		out += fmt.Sprintf("(%v)", e.Value)
	case ExprMarked:
		out += fmt.Sprintf("#%d", e.Mark)
	}

	if len(e.Operands) > 0 {
		out += fmt.Sprintf(" %v", e.Operands)
	}

	return out
}

// Tree renders the node and its children one per line, indented by depth.
func (e Expr) Tree() string {
	var sb = new(strings.Builder)
	writeTree(sb, e, 0)
	return sb.String()
}

func writeTree(sb *strings.Builder, e Expr, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))

	switch e.Id {
	case ExprVariable:
		sb.WriteString("Variable " + e.Name)
	case ExprLiteral:
		fmt.Fprintf(sb, "Literal %v", e.Value)
	case ExprNot:
		sb.WriteString("Not")
	case ExprAnd:
		sb.WriteString("And")
	case ExprOr:
		sb.WriteString("Or")
	case ExprMarked:
		fmt.Fprintf(sb, "Marked #%d", e.Mark)
	}

	fmt.Fprintf(sb, " [%d:%d]\n", e.Span.Pos, e.Span.End)

	for _, operand := range e.Operands {
		writeTree(sb, operand, depth+1)
	}
}

// parseState is the remaining token stream plus the id the next opening
// brace will receive. It is passed and returned by value.
type parseState struct {
	tokens []Token
	marks  int
}

func (s parseState) peek() Token {
	return s.tokens[0]
}

func (s parseState) advance() parseState {
	if s.tokens[0].Id != tokenEnd {
		s.tokens = s.tokens[1:]
	}
	return s
}

func binary(id exprId, left Expr, right Expr) Expr {
	return Expr{
		Id:       id,
		Operands: []Expr{left, right},
		Span:     Span{Pos: left.Span.Pos, End: right.Span.End},
	}
}

func parseOr(state parseState) (Expr, parseState, error) {
	left, state, err := parseAnd(state)
	if err != nil {
		return Expr{}, state, err
	}

	for state.peek().Id == tokenOr {
		var right Expr
		right, state, err = parseAnd(state.advance())
		if err != nil {
			return Expr{}, state, err
		}

		left = binary(ExprOr, left, right)
	}

	return left, state, nil
}

func parseAnd(state parseState) (Expr, parseState, error) {
	left, state, err := parseNot(state)
	if err != nil {
		return Expr{}, state, err
	}

	for state.peek().Id == tokenAnd {
		var right Expr
		right, state, err = parseNot(state.advance())
		if err != nil {
			return Expr{}, state, err
		}

		left = binary(ExprAnd, left, right)
	}

	return left, state, nil
}

func parseNot(state parseState) (Expr, parseState, error) {
	var token = state.peek()
	if token.Id != tokenNot {
		return parseAtom(state)
	}

	operand, state, err := parseNot(state.advance())
	if err != nil {
		return Expr{}, state, err
	}

	return Expr{
		Id:       ExprNot,
		Operands: []Expr{operand},
		Span:     Span{Pos: token.Pos, End: operand.Span.End},
	}, state, nil
}

func parseAtom(state parseState) (Expr, parseState, error) {
	var token = state.peek()
	var span = Span{Pos: token.Pos, End: token.End}

	switch token.Id {
	case tokenIdentifier:
		return Expr{Id: ExprVariable, Name: token.Lexeme, Span: span}, state.advance(), nil
	case tokenTrue:
		return Expr{Id: ExprLiteral, Value: true, Span: span}, state.advance(), nil
	case tokenFalse:
		return Expr{Id: ExprLiteral, Value: false, Span: span}, state.advance(), nil
	case tokenParenOpen:
		return parseGroup(state)
	case tokenBraceOpen:
		return parseMarked(state)
	default:
		return Expr{}, state, unexpected("one of identifier, `TRUE`, `FALSE`, `not`, `(` or `{`", token)
	}
}

func parseGroup(state parseState) (Expr, parseState, error) {
	var open = state.peek()

	inner, state, err := parseOr(state.advance())
	if err != nil {
		return Expr{}, state, err
	}

	var closing = state.peek()
	if closing.Id != tokenParenClose {
		return Expr{}, state, unexpected(fmt.Sprintf("`)` closing `(` at position %d", open.Pos), closing)
	}

	return inner, state.advance(), nil
}

func parseMarked(state parseState) (Expr, parseState, error) {
	var open = state.peek()
	var mark = state.marks

	state = state.advance()
	state.marks++

	inner, state, err := parseOr(state)
	if err != nil {
		return Expr{}, state, err
	}

	var closing = state.peek()
	if closing.Id != tokenBraceClose {
		return Expr{}, state, unexpected(fmt.Sprintf("`}` closing `{` at position %d", open.Pos), closing)
	}

	return Expr{
		Id:       ExprMarked,
		Operands: []Expr{inner},
		Mark:     mark,
		Span:     Span{Pos: open.Pos, End: closing.End},
	}, state.advance(), nil
}

func parse(tokens []Token) (Expr, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Id != tokenEnd {
		return Expr{}, &ParseError{Expected: "token stream ending in end of input", Found: "unterminated stream"}
	}

	var state = parseState{tokens: tokens}

	if state.peek().Id == tokenEnd {
		return Expr{}, unexpected("expression", state.peek())
	}

	root, state, err := parseOr(state)
	if err != nil {
		return Expr{}, err
	}

	var token = state.peek()
	switch token.Id {
	case tokenEnd:
		return root, nil
	case tokenParenClose, tokenBraceClose:
		return Expr{}, unexpected("end of input, no open bracket matches "+token.String(), token)
	default:
		return Expr{}, unexpected("`and`, `or` or end of input", token)
	}
}
