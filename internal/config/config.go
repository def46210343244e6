// Package config holds everything a patgen invocation needs. Values come
// from Default, then an optional YAML file, then command line flags.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"sigs.k8s.io/yaml"

	"github.com/bulatmain/desrete-analysis-labs/internal/alphabet"
	"github.com/bulatmain/desrete-analysis-labs/internal/gen"
)

const (
	AlphabetUint = "uint"
	AlphabetDNA  = "dna"

	// ExecBuiltin selects the in-process reference matcher.
	ExecBuiltin = "builtin"
)

var (
	ErrUnknownAlphabet = errors.New("config: unknown alphabet")
	ErrBadRuns         = errors.New("config: runs and threads must be positive")
	ErrNoExec          = errors.New("config: matcher executable is not set")
)

// Duration reads "10s" style strings as well as plain nanoseconds.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		n, nerr := strconv.ParseInt(string(b), 10, 64)
		if nerr != nil {
			return fmt.Errorf("duration %s: %w", b, err)
		}
		*d = Duration(n)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

type Config struct {
	PatternSize     int     `json:"pattern_size"`
	OccurrenceCount int     `json:"occurrence_count"`
	OccurrenceRate  float64 `json:"occurrence_rate"`
	Lines           int     `json:"lines"`

	Alphabet  string  `json:"alphabet"`
	MaxLetter uint32  `json:"max_letter"`
	GC        float64 `json:"gc"`

	Exec       string   `json:"exec"`
	ExecArgs   []string `json:"exec_args,omitempty"`
	Timeout    Duration `json:"timeout,omitempty"`
	TestFile   string   `json:"test_file"`
	ResultFile string   `json:"result_file"`
	Report     string   `json:"report,omitempty"`

	Seed    int64 `json:"seed"`
	Runs    int   `json:"runs"`
	Threads int   `json:"threads"`
}

func Default() Config {
	return Config{
		PatternSize:     5,
		OccurrenceCount: 10,
		OccurrenceRate:  0.3,
		Lines:           5,
		Alphabet:        AlphabetUint,
		MaxLetter:       alphabet.DefaultMaxLetter,
		GC:              0.5,
		Exec:            "./build/exec",
		TestFile:        "test",
		ResultFile:      "result",
		Runs:            1,
		Threads:         runtime.NumCPU(),
	}
}

// Load applies the YAML file at path on top of Default. Unknown keys are
// errors so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.UnmarshalStrict(raw, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Gen is the generator part of the config.
func (c Config) Gen() gen.Config {
	return gen.Config{
		PatternSize:     c.PatternSize,
		OccurrenceCount: c.OccurrenceCount,
		OccurrenceRate:  c.OccurrenceRate,
	}
}

// Validate checks everything that can be checked before a single test is
// generated.
func (c Config) Validate() error {
	g := c.Gen()
	if err := g.Validate(); err != nil {
		return err
	}
	size, err := g.TextSize()
	if err != nil {
		return err
	}
	if size == 0 {
		return gen.ErrEmptyText
	}
	switch c.Alphabet {
	case AlphabetUint, AlphabetDNA:
	default:
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownAlphabet, c.Alphabet, AlphabetUint, AlphabetDNA)
	}
	if c.Runs < 1 || c.Threads < 1 {
		return fmt.Errorf("%w: runs=%d threads=%d", ErrBadRuns, c.Runs, c.Threads)
	}
	if c.Exec == "" {
		return ErrNoExec
	}
	return nil
}

// TestPath is where run i writes its test. A single run uses TestFile as is.
func (c Config) TestPath(run int) string { return c.numbered(c.TestFile, run) }

// ResultPath is where run i keeps the matcher output.
func (c Config) ResultPath(run int) string { return c.numbered(c.ResultFile, run) }

func (c Config) numbered(path string, run int) string {
	if c.Runs <= 1 {
		return path
	}
	ext := ""
	if strings.HasSuffix(path, ".gz") {
		path, ext = strings.TrimSuffix(path, ".gz"), ".gz"
	}
	return fmt.Sprintf("%s.%d%s", path, run, ext)
}
