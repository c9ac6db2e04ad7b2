package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"lisp/interpreter-go/pkg/interpreter"
)

const cliToolVersion = "lisp-cli 0.0.0-dev"

// errExpressionsFailed is returned after the failures were already printed.
var errExpressionsFailed = errors.New("one or more expressions failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	env := &cliEnv{
		workDir: ".",
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
	}
	root := newRootCmd(env)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		switch {
		case errors.Is(err, errExpressionsFailed):
		case errors.Is(err, context.Canceled):
			return 130
		default:
			fmt.Fprintln(stderr, interpreter.FormatError(err))
		}
		return 1
	}
	return 0
}
