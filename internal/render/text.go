package render

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"ttbl"
)

var (
	ColorTrue    = lipgloss.Color("#10B981") // Emerald
	ColorFalse   = lipgloss.Color("#EF4444") // Red
	ColorHeader  = lipgloss.Color("#8B5CF6") // Violet
	ColorBorder  = lipgloss.Color("#6B7280") // Gray
	ColorDerived = lipgloss.Color("#06B6D4") // Cyan
)

var (
	cellStyle    = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
	headerStyle  = cellStyle.Bold(true)
	caretStyle   = lipgloss.NewStyle().Bold(true)
	messageStyle = lipgloss.NewStyle()
)

func border(name string) lipgloss.Border {
	switch name {
	case "normal":
		return lipgloss.NormalBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	case "markdown":
		return lipgloss.MarkdownBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// Borders lists the accepted border names.
var Borders = []string{"rounded", "normal", "ascii", "markdown", "thick", "double"}

func (s Settings) symbol(value bool) string {
	if value {
		return s.TrueSymbol
	}
	return s.FalseSymbol
}

// Text draws the table with one column per header. Variable columns are
// drawn in the header color, derived columns in a second color.
func Text(t ttbl.Table, s Settings) string {
	var rows = make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		var cells = make([]string, 0, len(row))
		for _, value := range row {
			cells = append(cells, s.symbol(value))
		}
		rows = append(rows, cells)
	}

	var variables = len(t.Variables)

	var tbl = table.New().
		Border(border(s.Border)).
		Headers(t.Headers(s.Headers)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if !s.Color {
					return headerStyle
				}
				if col < variables {
					return headerStyle.Foreground(ColorHeader)
				}
				return headerStyle.Foreground(ColorDerived)
			}

			if !s.Color || row < 0 || row >= len(t.Rows) || col >= len(t.Rows[row]) {
				return cellStyle
			}
			if t.Rows[row][col] {
				return cellStyle.Foreground(ColorTrue)
			}
			return cellStyle.Foreground(ColorFalse)
		})

	if s.Color {
		tbl = tbl.BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder))
	}

	return tbl.Render()
}

// Diagnostic describes err. When err carries an input position the input
// is repeated with a caret under that position.
func Diagnostic(input string, err error) string {
	var positional interface{ Position() int }
	if !errors.As(err, &positional) {
		return messageStyle.Render("error: " + err.Error())
	}

	var pos = positional.Position()
	var runes = []rune(input)
	if pos > len(runes) {
		pos = len(runes)
	}

	// tabs keep their width so the caret lines up
	var pad = strings.Map(func(r rune) rune {
		if r == '\t' {
			return '\t'
		}
		return ' '
	}, string(runes[:pos]))

	return strings.Join([]string{
		input,
		pad + caretStyle.Render("^"),
		messageStyle.Render("error: " + err.Error()),
	}, "\n")
}
