package ttbl

func precedence(expr Expr) int {
	switch expr.Id {
	case ExprOr:
		return 1
	case ExprAnd:
		return 2
	case ExprNot:
		return 3
	default:
		return 4
	}
}

// Format renders expr as canonical source text. Parentheses appear only
// where the tree shape requires them, so parsing the result gives back the
// same tree.
func Format(expr Expr) string {
	switch expr.Id {
	case ExprVariable:
		return expr.Name
	case ExprLiteral:
		if expr.Value {
			return "TRUE"
		}
		return "FALSE"
	case ExprNot:
		return "not " + formatOperand(expr.Inner(), 3)
	case ExprAnd:
		return formatOperand(expr.Operands[0], 2) + " and " + formatOperand(expr.Operands[1], 3)
	case ExprOr:
		return formatOperand(expr.Operands[0], 1) + " or " + formatOperand(expr.Operands[1], 2)
	case ExprMarked:
		return "{" + Format(expr.Inner()) + "}"
	default:
		return "?"
	}
}

func formatOperand(expr Expr, required int) string {
	if precedence(expr) < required {
		return "(" + Format(expr) + ")"
	}
	return Format(expr)
}
