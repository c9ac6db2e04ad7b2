package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	// Keep config discovery inside a directory the test owns.
	dir := t.TempDir()
	args = append([]string{"--config", writeTestConfig(t, dir, "exit: q\n")}, args...)
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeTestConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "lisp.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestReplReadsUntilExitLine(t *testing.T) {
	res := runCLI(t, "(+ 1 1)\n(< (- 5) (+ 1 1))\nq\n(+ 9 9)\n", "--quiet")
	require.Equal(t, 0, res.code)
	require.Equal(t, "(2)\n(true)\n", res.stdout)
	require.Empty(t, res.stderr)
}

func TestReplSubcommand(t *testing.T) {
	res := runCLI(t, "(- 1 1)\n", "repl", "--quiet")
	require.Equal(t, 0, res.code)
	require.Equal(t, "(0)\n", res.stdout)
}

func TestEvalCommand(t *testing.T) {
	res := runCLI(t, "", "--quiet", "eval", "(+ 1 1 (* 3 3) (- 2 1) (/ 4 2) (+ 2 2 2))", "(> 1 2) (> 2 1)")
	require.Equal(t, 0, res.code)
	require.Equal(t, "(20)\n(false)\n(true)\n", res.stdout)
}

func TestEvalCommandReportsFailures(t *testing.T) {
	res := runCLI(t, "", "--quiet", "eval", "(foo 1 2) (+ 1)", "(+ 1 1 (")
	require.Equal(t, 1, res.code)
	require.Equal(t, strings.Join([]string{
		"Error: unknown operation 'foo'",
		"(1)",
		"Error: unterminated group: group opened at token 4 is never closed",
	}, "\n")+"\n", res.stdout)
	require.Empty(t, res.stderr)
}

func TestTokensCommand(t *testing.T) {
	res := runCLI(t, "", "--quiet", "tokens", "(< a(b))")
	require.Equal(t, 0, res.code)
	require.Equal(t, strings.Join([]string{
		`{"value":"("}`,
		`{"value":"<"}`,
		`{"value":"a"}`,
		`{"value":"("}`,
		`{"value":"b"}`,
		`{"value":")"}`,
		`{"value":")"}`,
	}, "\n")+"\n", res.stdout)
}

func TestASTCommand(t *testing.T) {
	res := runCLI(t, "", "--quiet", "ast", "(- 5 true)")
	require.Equal(t, 0, res.code)
	require.JSONEq(t, `[
  {"type": "Call", "name": "-", "arguments": [
    {"type": "NumberLiteral", "value": 5},
    {"type": "BooleanLiteral", "value": true}
  ]}
]`, res.stdout)

	res = runCLI(t, "", "--quiet", "ast", "(+ 1")
	require.Equal(t, 1, res.code)
	require.Equal(t, "Error: unterminated group: group opened at token 0 is never closed\n", res.stderr)
}

func TestVersionCommand(t *testing.T) {
	res := runCLI(t, "", "--quiet", "version")
	require.Equal(t, 0, res.code)
	require.Equal(t, cliToolVersion+"\n", res.stdout)
}

func TestUnknownCommand(t *testing.T) {
	res := runCLI(t, "", "--quiet", "frobnicate")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "unknown command")
}

func TestConfigChangesExitAndDepth(t *testing.T) {
	dir := t.TempDir()
	path := writeTestConfig(t, dir, "exit: bye\nmax_depth: 1\n")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--quiet", "--config", path},
		strings.NewReader("q\n(+ (+ 1))\nbye\n(+ 1)\n"), &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "Error: nesting too deep: depth 2 exceeds limit 1 at token 2\n", stdout.String())
}

func TestBadConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := writeTestConfig(t, dir, "max_depth: -4\n")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"--quiet", "--config", path, "version"},
		strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "max_depth must not be negative (got -4)")
	require.Empty(t, stdout.String())
}

func TestConfigDiscoveredFromWorkDir(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "exit: stop\n")
	var stdout, stderr bytes.Buffer
	env := &cliEnv{workDir: dir, stdin: strings.NewReader("stop\n(+ 1)\n"), stdout: &stdout, stderr: &stderr}
	root := newRootCmd(env)
	root.SetArgs([]string{"--quiet"})
	require.NoError(t, root.ExecuteContext(context.Background()))
	require.Equal(t, "stop", env.cfg.Exit)
	require.Empty(t, stdout.String())
}

func TestVerboseLogsToStderr(t *testing.T) {
	res := runCLI(t, "(+ 1)\n", "--verbose")
	require.Equal(t, 0, res.code)
	require.Equal(t, "(1)\n", res.stdout)
	require.Contains(t, res.stderr, "session started")
}

func TestCheckCommand(t *testing.T) {
	res := runCLI(t, "", "--quiet", "check", "(+ 1 (< 2 3))", "(foo) (-)")
	require.Equal(t, 1, res.code)
	require.Equal(t, strings.Join([]string{
		"Error: '+' argument 2 must be number, got bool",
		"Error: unknown operation 'foo'",
		"Error: '-' expects at least 1 argument(s), got 0",
	}, "\n")+"\n", res.stdout)

	res = runCLI(t, "", "--quiet", "check", "(* 2 (+ 1 1))")
	require.Equal(t, 0, res.code)
	require.Empty(t, res.stdout)
}
