package ttbl

import (
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"
)

// ResultHeader names the final column of every table.
const ResultHeader = "result"

const (
	// DefaultMaxVariables is the variable limit used when none is set.
	DefaultMaxVariables = 20
	// MaxVariablesCeiling bounds every limit; a table of 2^24 rows is the
	// largest that is still built in memory.
	MaxVariablesCeiling = 24
)

func variableLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultMaxVariables
	case limit > MaxVariablesCeiling:
		return MaxVariablesCeiling
	default:
		return limit
	}
}

type HeaderStyle int

const (
	// HeaderSource labels marked columns with the text written between the braces.
	HeaderSource HeaderStyle = iota
	// HeaderCanonical labels marked columns with their formatted subexpression.
	HeaderCanonical
)

// Column is a brace-marked subexpression shown as its own table column.
type Column struct {
	Mark   int
	Source string
	Expr   Expr
}

// Canonical returns the formatted text of the marked subexpression.
func (c Column) Canonical() string {
	return Format(c.Expr.Inner())
}

func (c Column) header(style HeaderStyle) string {
	if style == HeaderCanonical || c.Source == "" {
		return c.Canonical()
	}
	return c.Source
}

// Row holds one value per variable, one per marked column and the result,
// in header order.
type Row []bool

// Result is the value of the whole expression.
func (r Row) Result() bool {
	return r[len(r)-1]
}

type Table struct {
	Variables []string
	Columns   []Column
	Rows      []Row
}

// Headers lists variable names, marked column labels and ResultHeader.
func (t Table) Headers(style HeaderStyle) []string {
	var headers = make([]string, 0, len(t.Variables)+len(t.Columns)+1)
	headers = append(headers, t.Variables...)

	for _, column := range t.Columns {
		headers = append(headers, column.header(style))
	}

	return append(headers, ResultHeader)
}

// Assignment returns the variable values of row i.
func (t Table) Assignment(i int) Assignment {
	return assignmentFor(t.Variables, uint64(i))
}

// Records returns every row as an ordered header to value map. Repeated
// headers, such as `{p} and p`, get a ` #n` suffix from the second one on.
func (t Table) Records(style HeaderStyle) []*orderedmap.OrderedMap {
	var keys = uniqueKeys(t.Headers(style))
	var records = make([]*orderedmap.OrderedMap, 0, len(t.Rows))

	for _, row := range t.Rows {
		var record = orderedmap.New()
		for i, value := range row {
			record.Set(keys[i], value)
		}
		records = append(records, record)
	}

	return records
}

func uniqueKeys(headers []string) []string {
	var keys = make([]string, len(headers))
	var counts = make(map[string]int)

	for i, header := range headers {
		counts[header]++
		if counts[header] > 1 {
			keys[i] = header + " #" + strconv.Itoa(counts[header])
		} else {
			keys[i] = header
		}
	}

	return keys
}

// assignmentFor sets variable k to bit k of index.
func assignmentFor(variables []string, index uint64) Assignment {
	var assignment = make(Assignment, len(variables))
	for k, name := range variables {
		assignment[name] = index&(1<<uint(k)) != 0
	}
	return assignment
}

func columnsFor(expr Expr, source []rune) []Column {
	var marked = MarkedColumns(expr)
	var columns = make([]Column, 0, len(marked))

	for _, node := range marked {
		var text string
		var from, to = node.Span.Pos + 1, node.Span.End - 1
		if from >= 1 && to <= len(source) && from <= to {
			text = strings.TrimSpace(string(source[from:to]))
		}

		columns = append(columns, Column{Mark: node.Mark, Source: text, Expr: node})
	}

	return columns
}

func buildTable(expr Expr, source []rune, limit int) (Table, error) {
	var table = Table{
		Variables: Variables(expr),
		Columns:   columnsFor(expr, source),
	}

	var n = len(table.Variables)
	if limit = variableLimit(limit); n > limit {
		return Table{}, &TableSizeError{Variables: n, Limit: limit}
	}

	var count = uint64(1) << uint(n)
	table.Rows = make([]Row, 0, count)

	for i := uint64(0); i < count; i++ {
		var assignment = assignmentFor(table.Variables, i)
		var row = make(Row, 0, n+len(table.Columns)+1)

		for _, name := range table.Variables {
			row = append(row, assignment[name])
		}

		for _, column := range table.Columns {
			value, err := Evaluate(column.Expr.Inner(), assignment)
			if err != nil {
				return Table{}, err
			}
			row = append(row, value)
		}

		result, err := Evaluate(expr, assignment)
		if err != nil {
			return Table{}, err
		}

		table.Rows = append(table.Rows, append(row, result))
	}

	return table, nil
}
