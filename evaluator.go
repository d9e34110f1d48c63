package ttbl

import (
	"errors"
)

// Assignment maps every variable of an expression to a value.
type Assignment map[string]bool

// Evaluate computes the value of expr under assignment. Both operands of
// And and Or are always evaluated.
func Evaluate(expr Expr, assignment Assignment) (bool, error) {
	switch expr.Id {
	case ExprLiteral:
		return expr.Value, nil

	case ExprVariable:
		value, ok := assignment[expr.Name]
		if !ok {
			return false, &UnknownVariableError{Name: expr.Name}
		}
		return value, nil

	case ExprNot:
		if len(expr.Operands) != 1 {
			return false, errors.New("invalid expression node: " + expr.String())
		}

		value, err := Evaluate(expr.Inner(), assignment)
		if err != nil {
			return false, err
		}
		return !value, nil

	case ExprAnd, ExprOr:
		if len(expr.Operands) != 2 {
			return false, errors.New("invalid expression node: " + expr.String())
		}

		left, err := Evaluate(expr.Operands[0], assignment)
		if err != nil {
			return false, err
		}

		right, err := Evaluate(expr.Operands[1], assignment)
		if err != nil {
			return false, err
		}

		if expr.Id == ExprAnd {
			return left && right, nil
		}
		return left || right, nil

	case ExprMarked:
		if len(expr.Operands) != 1 {
			return false, errors.New("invalid expression node: " + expr.String())
		}
		return Evaluate(expr.Inner(), assignment)

	default:
		return false, errors.New("invalid expression node: " + expr.String())
	}
}
