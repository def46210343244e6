package gen

import "errors"

// Configuration errors. All are returned before any random draw happens.
var (
	ErrInvalidRate    = errors.New("gen: occurrence rate must lie in [0,1]")
	ErrZeroRate       = errors.New("gen: occurrence rate is zero but occurrences were requested")
	ErrNegativeCount  = errors.New("gen: occurrence count is negative")
	ErrEmptyPattern   = errors.New("gen: pattern must not be empty")
	ErrEmptyText      = errors.New("gen: text size must not be zero")
	ErrPatternTooLong = errors.New("gen: pattern does not fit into text")
	ErrTextTooLarge   = errors.New("gen: text size exceeds MaxTextSize")
)

// ErrOverlap means a position list handed to Assemble is unsorted, overlapping
// or runs past the text end.
var ErrOverlap = errors.New("gen: occurrence positions overlap")
