package gen

import (
	"fmt"

	"github.com/bulatmain/desrete-analysis-labs/internal/alphabet"
)

// Assemble builds a text of textSize symbols with a copy of pattern at every
// position (ascending) and filler from a everywhere else.
func Assemble[S any](a alphabet.Alphabet[S], pattern []S, positions []int, textSize int) ([]S, error) {
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	text := make([]S, 0, textSize)
	if len(positions) == 0 {
		return alphabet.Append(text, a, textSize), nil
	}

	for _, p := range positions {
		if p < len(text) {
			return nil, fmt.Errorf("%w: position %d starts before offset %d", ErrOverlap, p, len(text))
		}
		text = alphabet.Append(text, a, p-len(text))
		text = append(text, pattern...)
	}
	if len(text) > textSize {
		return nil, fmt.Errorf("%w: last occurrence ends at %d past text size %d", ErrOverlap, len(text), textSize)
	}
	return alphabet.Append(text, a, textSize-len(text)), nil
}
