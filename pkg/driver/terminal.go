package driver

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when a terminal source is requested for a
// non-terminal file.
var ErrNotTerminal = errors.New("input is not a terminal")

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalSource reads lines through an x/term line editor. The terminal is in
// raw mode until Close, so output must go through Write to get CRLF endings.
type TerminalSource struct {
	fd    int
	state *term.State
	term  *term.Terminal
}

// NewTerminalSource puts in into raw mode and shows prompt before each line.
func NewTerminalSource(in *os.File, out io.Writer, prompt string) (*TerminalSource, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt)
	if width, height, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(width, height)
	}
	return &TerminalSource{fd: fd, state: state, term: t}, nil
}

func (s *TerminalSource) ReadLine() (string, error) {
	return s.term.ReadLine()
}

func (s *TerminalSource) Write(p []byte) (int, error) {
	return s.term.Write(p)
}

// Close restores the terminal state captured by NewTerminalSource.
func (s *TerminalSource) Close() error {
	if s.state == nil {
		return nil
	}
	err := term.Restore(s.fd, s.state)
	s.state = nil
	return err
}
