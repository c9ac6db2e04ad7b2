package driver

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcgregorio/slog"

	"lisp/interpreter-go/pkg/interpreter"
	"lisp/interpreter-go/pkg/parser"
)

// LineSource yields raw input lines. ReadLine returns io.EOF once input is
// exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

// ScannerSource reads newline-separated lines from any reader.
type ScannerSource struct {
	scanner *bufio.Scanner
}

// NewScannerSource wraps r in a line scanner.
func NewScannerSource(r io.Reader) *ScannerSource {
	return &ScannerSource{scanner: bufio.NewScanner(r)}
}

func (s *ScannerSource) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Session evaluates lines one at a time with a single interpreter and writes
// one output line per top-level expression.
type Session struct {
	interp *interpreter.Interpreter
	cfg    *Config
	out    io.Writer
	log    slog.Logger
}

// NewSession builds a session with a fresh built-in table. A nil cfg uses
// DefaultConfig and a nil log discards logging.
func NewSession(cfg *Config, out io.Writer, log slog.Logger) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = NopLogger()
	}
	return &Session{
		interp: interpreter.New(),
		cfg:    cfg,
		out:    out,
		log:    log,
	}
}

// SetOutput redirects result lines, e.g. to a terminal in raw mode.
func (s *Session) SetOutput(out io.Writer) {
	s.out = out
}

// EvalLine evaluates one line and returns the rendered output lines. A parse
// failure produces a single error line.
func (s *Session) EvalLine(line string) []string {
	if s.cfg.EchoAST {
		s.log.Debugf("tokens: %q", parser.Tokenize(line))
	}
	outcomes, err := s.interp.EvaluateSource(line, s.cfg.ParseOptions())
	if err != nil {
		s.log.Debugf("parse failed: %v", err)
		return []string{interpreter.FormatError(err)}
	}
	rendered := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		if s.cfg.EchoAST {
			if tree, err := json.Marshal(outcome.Expression); err == nil {
				s.log.Debugf("tree: %s", tree)
			}
		}
		rendered = append(rendered, outcome.String())
	}
	return rendered
}

// Run reads lines from src until the exit sentinel, end of input, or ctx is
// done. The sentinel must match the whole line.
func (s *Session) Run(ctx context.Context, src LineSource) error {
	s.log.Infof("session started; exit with %q", s.cfg.Exit)
	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := src.ReadLine()
		if errors.Is(err, io.EOF) {
			s.log.Infof("input closed after %d line(s)", lines)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == s.cfg.Exit {
			s.log.Infof("exit requested after %d line(s)", lines)
			return nil
		}
		lines++
		for _, out := range s.EvalLine(line) {
			if _, err := fmt.Fprintln(s.out, out); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}
}
