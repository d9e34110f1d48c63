package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"ttbl"
	"ttbl/internal/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect EXPRESSION...",
	Short: "Show the tokens and the expression tree of an expression",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	opts := cfg.Options()
	out := cmd.OutOrStdout()

	tokens, err := opts.Tokenize(input)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), render.Diagnostic(input, err))
		return fmt.Errorf("invalid expression")
	}

	fmt.Fprintln(out, "tokens:")
	for _, token := range tokens {
		fmt.Fprintf(out, "  %3d  %-10s %s\n", token.Pos, token.Kind(), token.Lexeme)
	}

	expr, err := opts.Parse(input)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), render.Diagnostic(input, err))
		return fmt.Errorf("invalid expression")
	}

	fmt.Fprintln(out, "tree:")
	for _, line := range strings.Split(strings.TrimRight(expr.Tree(), "\n"), "\n") {
		fmt.Fprintln(out, "  "+line)
	}

	fmt.Fprintln(out, "canonical:")
	fmt.Fprintln(out, "  "+ttbl.Format(expr))

	fmt.Fprintln(out, "variables:")
	fmt.Fprintln(out, "  "+strings.Join(ttbl.Variables(expr), ", "))

	if marked := ttbl.MarkedColumns(expr); len(marked) > 0 {
		fmt.Fprintln(out, "columns:")
		for _, node := range marked {
			fmt.Fprintf(out, "  #%d  %s\n", node.Mark, ttbl.Format(node.Inner()))
		}
	}

	return nil
}
