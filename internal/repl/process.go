package repl

import (
	"bytes"
	"strings"

	"github.com/rs/zerolog"

	"ttbl"
	"ttbl/internal/render"
)

// Evaluator turns one line of input into printable output.
type Evaluator struct {
	Options  ttbl.Options
	Settings render.Settings
	Logger   zerolog.Logger
}

// Process generates the truth table of line and renders it. Errors are
// rendered as diagnostics, so the result is always printable; ok reports
// whether a table was produced. Blank lines give no output.
func (e Evaluator) Process(line string) (output string, ok bool) {
	if strings.TrimSpace(line) == "" {
		return "", false
	}

	table, err := e.Options.Generate(line)
	if err != nil {
		e.Logger.Debug().Err(err).Str("input", line).Msg("expression rejected")
		return render.Diagnostic(line, err), false
	}

	e.Logger.Debug().
		Str("input", line).
		Int("variables", len(table.Variables)).
		Int("columns", len(table.Columns)).
		Int("rows", len(table.Rows)).
		Msg("truth table generated")

	var buf bytes.Buffer
	if err := render.Write(&buf, table, e.Settings); err != nil {
		e.Logger.Error().Err(err).Msg("render failed")
		return "error: " + err.Error(), false
	}

	return strings.TrimRight(buf.String(), "\n"), true
}
