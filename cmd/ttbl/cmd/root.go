package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"ttbl/internal/config"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ttbl",
	Short: "Truth tables for boolean expressions",
	Long: `ttbl prints the truth table of a boolean expression.

Expressions combine variables and the literals TRUE and FALSE with
not/and/or (also written !, &, |) and parentheses. Wrapping a
subexpression in braces adds a column for it:

  (p or q) and not {p and q}

Without a subcommand ttbl starts an interactive prompt.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runRepl,
}

// Execute runs the command line and reports a failure on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $TTBL_CONFIG, ./ttbl.toml or ~/.config/ttbl/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, path, err := config.LoadDefault(cfgFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Level, verbose)
	if path != "" {
		logger.Debug().Str("path", path).Msg("config loaded")
	}
	for _, key := range cfg.Undecoded {
		logger.Warn().Str("key", key).Msg("unknown config key ignored")
	}

	return nil
}

func newLogger(w io.Writer, level string, verbose bool) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.WarnLevel
	}
	if level == "disabled" {
		parsed = zerolog.Disabled
	}
	if verbose {
		parsed = zerolog.DebugLevel
	}

	var out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	if f, ok := w.(*os.File); !ok || f != os.Stderr {
		out.NoColor = true
	}

	return zerolog.New(out).Level(parsed).With().Timestamp().Logger()
}
