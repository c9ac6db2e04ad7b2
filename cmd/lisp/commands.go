package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jcgregorio/slog"
	"github.com/spf13/cobra"

	"lisp/interpreter-go/pkg/driver"
	"lisp/interpreter-go/pkg/interpreter"
	"lisp/interpreter-go/pkg/parser"
	"lisp/interpreter-go/pkg/typechecker"
)

// cliEnv carries flag values and streams shared by every command.
type cliEnv struct {
	configPath string
	verbose    bool
	quiet      bool
	workDir    string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg *driver.Config
	log slog.Logger
}

// syncWriter adapts a plain writer to logger.SyncWriter.
type syncWriter struct {
	io.Writer
}

func (w syncWriter) Sync() error {
	if s, ok := w.Writer.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

func newRootCmd(env *cliEnv) *cobra.Command {
	root := &cobra.Command{
		Use:   "lisp",
		Short: "Evaluate parenthesized prefix expressions.",
		Long: `
Reads one line at a time, evaluates every top-level group on it and prints
one result per group. With no subcommand it starts an interactive session
that ends on the exit line (default "q") or end of input.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: env.setup,
		RunE:              env.runRepl,
	}
	root.PersistentFlags().StringVar(&env.configPath, "config", "", "Path to a lisp.yml config file")
	root.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "Log debug output to stderr")
	root.PersistentFlags().BoolVarP(&env.quiet, "quiet", "q", false, "Disable logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "repl",
			Short: "Start an interactive session.",
			Args:  cobra.NoArgs,
			RunE:  env.runRepl,
		},
		&cobra.Command{
			Use:   "eval <source>...",
			Short: "Evaluate each argument as one input line.",
			Args:  cobra.MinimumNArgs(1),
			RunE:  env.runEval,
		},
		&cobra.Command{
			Use:   "check <source>...",
			Short: "Report unknown names, arity and type errors without evaluating.",
			Args:  cobra.MinimumNArgs(1),
			RunE:  env.runCheck,
		},
		&cobra.Command{
			Use:   "tokens <source>",
			Short: "Print the tokens of a line as JSON lines.",
			Args:  cobra.ExactArgs(1),
			RunE:  env.runTokens,
		},
		&cobra.Command{
			Use:   "ast <source>",
			Short: "Print the parsed expressions of a line as JSON.",
			Args:  cobra.ExactArgs(1),
			RunE:  env.runAST,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the CLI version.",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(env.stdout, cliToolVersion)
			},
		},
	)
	return root
}

// setup builds the logger and resolves the config before any command runs.
func (e *cliEnv) setup(cmd *cobra.Command, args []string) error {
	switch {
	case e.quiet:
		e.log = driver.NopLogger()
	default:
		e.log = driver.NewLogger(syncWriter{e.stderr}, e.verbose)
	}
	cfg, err := e.loadConfig()
	if err != nil {
		return err
	}
	e.cfg = cfg
	return nil
}

func (e *cliEnv) loadConfig() (*driver.Config, error) {
	if e.configPath != "" {
		return driver.LoadConfig(e.configPath)
	}
	path, err := driver.FindConfig(e.workDir)
	switch {
	case err == nil:
		e.log.Debugf("using config %s", path)
		return driver.LoadConfig(path)
	case errors.Is(err, driver.ErrConfigNotFound):
		return driver.DefaultConfig(), nil
	default:
		e.log.Warningf("unable to look for %s (%v); using defaults", driver.ConfigFileName, err)
		return driver.DefaultConfig(), nil
	}
}

func (e *cliEnv) runRepl(cmd *cobra.Command, args []string) error {
	session := driver.NewSession(e.cfg, e.stdout, e.log)
	var src driver.LineSource
	if f, ok := e.stdin.(*os.File); ok && driver.IsTerminal(f) {
		ts, err := driver.NewTerminalSource(f, e.stdout, e.cfg.Prompt)
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		defer ts.Close()
		session.SetOutput(ts)
		src = ts
	} else {
		src = driver.NewScannerSource(e.stdin)
	}
	return session.Run(cmd.Context(), src)
}

func (e *cliEnv) runEval(cmd *cobra.Command, args []string) error {
	interp := interpreter.New()
	failed := false
	for _, source := range args {
		outcomes, err := interp.EvaluateSource(source, e.cfg.ParseOptions())
		if err != nil {
			fmt.Fprintln(e.stdout, interpreter.FormatError(err))
			failed = true
			continue
		}
		for _, outcome := range outcomes {
			fmt.Fprintln(e.stdout, outcome.String())
			if outcome.Err != nil {
				failed = true
			}
		}
	}
	if failed {
		return errExpressionsFailed
	}
	return nil
}

func (e *cliEnv) runCheck(cmd *cobra.Command, args []string) error {
	checker := typechecker.New(nil)
	failed := false
	for _, source := range args {
		forest, err := parser.ParseWithOptions(source, e.cfg.ParseOptions())
		if err != nil {
			fmt.Fprintln(e.stdout, interpreter.FormatError(err))
			failed = true
			continue
		}
		for _, diag := range checker.CheckForest(forest) {
			fmt.Fprintln(e.stdout, "Error: "+diag.Message)
			failed = true
		}
	}
	if failed {
		return errExpressionsFailed
	}
	e.log.Infof("checked %d line(s)", len(args))
	return nil
}

type tokenOut struct {
	Value string `json:"value"`
}

func (e *cliEnv) runTokens(cmd *cobra.Command, args []string) error {
	enc := json.NewEncoder(e.stdout)
	enc.SetEscapeHTML(false)
	for _, tok := range parser.Tokenize(args[0]) {
		if err := enc.Encode(tokenOut{Value: tok}); err != nil {
			return err
		}
	}
	return nil
}

func (e *cliEnv) runAST(cmd *cobra.Command, args []string) error {
	forest, err := parser.ParseWithOptions(args[0], e.cfg.ParseOptions())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(e.stdout)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(forest)
}
