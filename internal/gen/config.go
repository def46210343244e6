package gen

import (
	"fmt"
	"math"
)

// MaxTextSize bounds TextSize.
const MaxTextSize = math.MaxInt32

// Config describes one test: how long the pattern is, how many copies to
// place and what share of the text they should occupy.
type Config struct {
	PatternSize     int     `json:"pattern_size"`
	OccurrenceCount int     `json:"occurrence_count"`
	OccurrenceRate  float64 `json:"occurrence_rate"`
}

func (c Config) String() string {
	return fmt.Sprintf("pattern size: %d, occurrence count: %d, occurrence rate: %g",
		c.PatternSize, c.OccurrenceCount, c.OccurrenceRate)
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if math.IsNaN(c.OccurrenceRate) || c.OccurrenceRate < 0 || c.OccurrenceRate > 1 {
		return fmt.Errorf("%w, got %g", ErrInvalidRate, c.OccurrenceRate)
	}
	if c.PatternSize <= 0 {
		return fmt.Errorf("%w, got size %d", ErrEmptyPattern, c.PatternSize)
	}
	if c.OccurrenceCount < 0 {
		return fmt.Errorf("%w, got %d", ErrNegativeCount, c.OccurrenceCount)
	}
	if c.OccurrenceRate == 0 && c.OccurrenceCount > 0 {
		return ErrZeroRate
	}
	return nil
}

// TextSize is ceil(PatternSize*OccurrenceCount/OccurrenceRate). It does not
// depend on any random draw. A config without occurrences has size 0.
func (c Config) TextSize() (int, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	if c.OccurrenceCount == 0 {
		return 0, nil
	}
	occupied := float64(c.PatternSize) * float64(c.OccurrenceCount)
	size := math.Ceil(occupied / c.OccurrenceRate)
	if math.IsInf(size, 0) || size > MaxTextSize {
		return 0, fmt.Errorf("%w, got %g", ErrTextTooLarge, size)
	}
	return int(size), nil
}
