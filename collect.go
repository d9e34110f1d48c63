package ttbl

// walk visits expr and its descendants in pre-order, left operand first.
func walk(expr Expr, visit func(Expr)) {
	visit(expr)

	for _, operand := range expr.Operands {
		walk(operand, visit)
	}
}

// Variables returns the distinct variable names of expr in order of
// first appearance.
func Variables(expr Expr) []string {
	var names []string
	var seen = make(map[string]bool)

	walk(expr, func(node Expr) {
		if node.Id == ExprVariable && !seen[node.Name] {
			seen[node.Name] = true
			names = append(names, node.Name)
		}
	})

	return names
}

// MarkedColumns returns the brace-marked nodes of expr. An enclosing
// marker is visited before the ones nested in it, so the result is
// ordered by Mark.
func MarkedColumns(expr Expr) []Expr {
	var marked []Expr

	walk(expr, func(node Expr) {
		if node.Id == ExprMarked {
			marked = append(marked, node)
		}
	})

	return marked
}
