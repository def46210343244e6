package gen

import (
	"math/rand"

	"github.com/bulatmain/desrete-analysis-labs/internal/alphabet"
)

// Test is one generated input: a pattern, the text and where the pattern was
// placed.
type Test[S any] struct {
	Config    Config
	TextSize  int
	Pattern   []S
	Positions []int
	Text      []S
}

// Placed is how many occurrences actually made it into the text; it is lower
// than Config.OccurrenceCount when free space ran out.
func (t *Test[S]) Placed() int { return len(t.Positions) }

// Generate validates cfg and builds a test. The alphabet should draw from r so
// that one seed reproduces the whole test.
func Generate[S any](cfg Config, a alphabet.Alphabet[S], r *rand.Rand) (*Test[S], error) {
	size, err := cfg.TextSize()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, ErrEmptyText
	}

	pattern := alphabet.Fill(a, cfg.PatternSize)
	positions, err := Positions(r, size, cfg.PatternSize, cfg.OccurrenceCount)
	if err != nil {
		return nil, err
	}
	text, err := Assemble(a, pattern, positions, size)
	if err != nil {
		return nil, err
	}
	return &Test[S]{
		Config:    cfg,
		TextSize:  size,
		Pattern:   pattern,
		Positions: positions,
		Text:      text,
	}, nil
}
