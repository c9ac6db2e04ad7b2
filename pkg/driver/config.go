package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"lisp/interpreter-go/pkg/parser"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "lisp.yml"

const (
	defaultPrompt   = "> "
	defaultExit     = "q"
	defaultMaxDepth = 512
)

// ErrConfigNotFound is returned by FindConfig when no config file exists.
var ErrConfigNotFound = errors.New("lisp.yml not found")

// Config holds the session settings read from lisp.yml.
type Config struct {
	Path     string
	Prompt   string
	Exit     string
	MaxDepth int
	EchoAST  bool
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Prompt:   defaultPrompt,
		Exit:     defaultExit,
		MaxDepth: defaultMaxDepth,
	}
}

// ParseOptions converts the config into parser options.
func (c *Config) ParseOptions() parser.Options {
	if c == nil {
		return parser.Options{MaxDepth: defaultMaxDepth}
	}
	return parser.Options{MaxDepth: c.MaxDepth}
}

// LoadConfig parses a config file from disk. Keys left out keep their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %s is empty", absPath)
		}
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfig walks from start up to the filesystem root looking for lisp.yml.
func FindConfig(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found from %s upwards: %w", ConfigFileName, origin, ErrConfigNotFound)
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	var errs ValidationError
	if strings.TrimSpace(c.Exit) == "" {
		errs.Issues = append(errs.Issues, "exit must be a non-empty string")
	}
	if strings.ContainsAny(c.Exit, "\r\n") {
		errs.Issues = append(errs.Issues, "exit must fit on one line")
	}
	if c.MaxDepth < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_depth must not be negative (got %d)", c.MaxDepth))
	}
	if strings.ContainsAny(c.Prompt, "\r\n") {
		errs.Issues = append(errs.Issues, "prompt must fit on one line")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

type configFile struct {
	Prompt   *string `yaml:"prompt"`
	Exit     *string `yaml:"exit"`
	MaxDepth *int    `yaml:"max_depth"`
	EchoAST  bool    `yaml:"echo_ast"`
}

func (cf configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	if cf.Prompt != nil {
		cfg.Prompt = *cf.Prompt
	}
	if cf.Exit != nil {
		cfg.Exit = *cf.Exit
	}
	if cf.MaxDepth != nil {
		cfg.MaxDepth = *cf.MaxDepth
	}
	cfg.EchoAST = cf.EchoAST
	return cfg
}
