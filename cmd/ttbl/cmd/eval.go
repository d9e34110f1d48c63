package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ttbl/internal/render"
)

var (
	evalFormat  string
	evalHeaders string
	evalNoColor bool
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION...",
	Short: "Print the truth table of an expression",
	Long: `Print the truth table of an expression and exit.

The arguments are joined with spaces, so quoting is only needed for
characters the shell treats specially:

  ttbl eval 'p & !q'
  ttbl eval --format json '{a or b} and c'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().StringVarP(&evalFormat, "format", "f", "", "output format: table, json or yaml (default from config)")
	evalCmd.Flags().StringVar(&evalHeaders, "headers", "", "marked column labels: source or canonical (default from config)")
	evalCmd.Flags().BoolVar(&evalNoColor, "no-color", false, "disable colors in table output")
}

func runEval(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	settings := cfg.Settings()

	if evalFormat != "" {
		format, err := render.ParseFormat(evalFormat)
		if err != nil {
			return err
		}
		settings.Format = format
	}
	if evalHeaders != "" {
		style, err := parseHeaders(evalHeaders)
		if err != nil {
			return err
		}
		settings.Headers = style
	}
	if evalNoColor {
		settings.Color = false
	}

	table, err := cfg.Options().Generate(input)
	if err != nil {
		logger.Debug().Err(err).Str("input", input).Msg("expression rejected")
		fmt.Fprintln(cmd.ErrOrStderr(), render.Diagnostic(input, err))
		return fmt.Errorf("invalid expression")
	}

	logger.Debug().Int("variables", len(table.Variables)).Int("rows", len(table.Rows)).Msg("truth table generated")

	return render.Write(cmd.OutOrStdout(), table, settings)
}
