// Package harness drives tests end to end: generate, write, run the
// matcher, grade.
package harness

import (
	"fmt"
	"math/rand"

	"github.com/bulatmain/desrete-analysis-labs/internal/alphabet"
	"github.com/bulatmain/desrete-analysis-labs/internal/config"
	"github.com/bulatmain/desrete-analysis-labs/internal/gen"
	"github.com/bulatmain/desrete-analysis-labs/internal/lines"
	"github.com/bulatmain/desrete-analysis-labs/internal/match"
	"github.com/bulatmain/desrete-analysis-labs/internal/testfile"
)

// Prepared is a test already written to disk, with everything needed to
// grade a matcher on it.
type Prepared struct {
	Run      int
	Seed     int64
	Config   gen.Config
	Path     string
	TextSize int
	Pattern  string
	// LinePositions is where every line of the test file starts.
	LinePositions []int
	// Placed are absolute start offsets, Want the same as (line, word).
	Placed []int
	Want   []lines.Location
	// Accidental lists occurrences the filler produced on its own; a
	// correct matcher reports them too.
	Accidental []int
}

// Prepare generates test `run` from seed and writes it to c.TestPath(run).
func Prepare(c config.Config, run int, seed int64) (*Prepared, error) {
	r := alphabet.NewRand(seed)
	var (
		p   *Prepared
		err error
	)
	switch c.Alphabet {
	case config.AlphabetDNA:
		p, err = prepare[byte](c, run, r, alphabet.NewDNA(c.GC, r))
	case config.AlphabetUint:
		p, err = prepare[uint32](c, run, r, alphabet.NewUint(c.MaxLetter, r))
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownAlphabet, c.Alphabet)
	}
	if err != nil {
		return nil, fmt.Errorf("run %d: %w", run, err)
	}
	p.Seed = seed
	return p, nil
}

func prepare[S comparable](c config.Config, run int, r *rand.Rand, a alphabet.Alphabet[S]) (*Prepared, error) {
	test, err := gen.Generate(c.Gen(), a, r)
	if err != nil {
		return nil, err
	}
	lp, err := lines.SplitPositions(r, len(test.Text), c.Lines)
	if err != nil {
		return nil, err
	}

	path := c.TestPath(run)
	if err := testfile.WriteFile(path, test.Pattern, test.Text, lp); err != nil {
		return nil, fmt.Errorf("write test: %w", err)
	}

	return &Prepared{
		Run:           run,
		Config:        test.Config,
		Path:          path,
		TextSize:      test.TextSize,
		Pattern:       fmt.Sprint(test.Pattern),
		LinePositions: lp,
		Placed:        test.Positions,
		Want:          lines.Remap(lp, test.Positions),
		Accidental:    match.Unplaced(match.FindAll(test.Pattern, test.Text), test.Positions),
	}, nil
}
