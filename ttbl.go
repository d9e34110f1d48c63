package ttbl

// Options selects the keyword policy of the tokenizer and bounds the
// size of generated tables. The zero value behaves like DefaultOptions:
// operators `and`, `or`, `not` in lowercase only and literals `TRUE`,
// `FALSE` in uppercase only.
type Options struct {
	// FoldOperators accepts word operators in any case.
	FoldOperators bool
	// FoldLiterals accepts TRUE and FALSE in any case.
	FoldLiterals bool
	// ShortLiterals also reads the words T and F as literals.
	ShortLiterals bool
	// MaxVariables bounds the number of distinct variables. Zero means
	// DefaultMaxVariables; values above MaxVariablesCeiling are lowered to it.
	MaxVariables int
}

// DefaultOptions returns the default keyword policy and variable limit.
func DefaultOptions() Options {
	return Options{MaxVariables: DefaultMaxVariables}
}

// Tokenize splits input into tokens, the last of which marks the end of
// input.
func (o Options) Tokenize(input string) ([]Token, error) {
	return tokenize(input, o)
}

// Parse builds the expression tree of input.
func (o Options) Parse(input string) (Expr, error) {
	tokens, err := tokenize(input, o)
	if err != nil {
		return Expr{}, err
	}

	return parse(tokens)
}

// Generate parses input and returns its truth table.
//
// The table has one row per assignment of the variables of input. Row i
// sets the k-th variable, in order of first appearance, to bit k of i.
// Each row lists the variable values, the value of every brace-marked
// subexpression by order of its opening brace, and the result.
func (o Options) Generate(input string) (Table, error) {
	expr, err := o.Parse(input)
	if err != nil {
		return Table{}, err
	}

	return buildTable(expr, []rune(input), o.MaxVariables)
}

// BuildTable returns the truth table of an already parsed expression.
// source is the text expr was parsed from and labels the marked columns;
// it may be empty, in which case canonical labels are used.
func (o Options) BuildTable(expr Expr, source string) (Table, error) {
	return buildTable(expr, []rune(source), o.MaxVariables)
}

// Parse builds the expression tree of input with the default options.
func Parse(input string) (Expr, error) {
	return DefaultOptions().Parse(input)
}

// Generate returns the truth table of input with the default options.
func Generate(input string) (Table, error) {
	return DefaultOptions().Generate(input)
}
