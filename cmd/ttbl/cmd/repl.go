package cmd

import (
	"github.com/spf13/cobra"

	"ttbl/internal/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Long: `Start the interactive prompt.

Keys:
  Enter     print the truth table of the line
  Up/Down   walk through the lines entered in this session
  Ctrl+C    clear the line, or exit on an empty line
  Ctrl+D    exit`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return cmd.Help()
	}

	logger.Debug().Msg("starting interactive prompt")

	return repl.Run(repl.Evaluator{
		Options:  cfg.Options(),
		Settings: cfg.Settings(),
		Logger:   logger,
	})
}
