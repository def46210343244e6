// Package lines cuts a generated text into lines and translates absolute
// occurrence offsets into the (line, word) pairs a matcher reports.
package lines

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

var ErrEmptyText = errors.New("lines: text is empty")

// Location is a 1-based (line, word) pair.
type Location struct {
	Line int `json:"line"`
	Word int `json:"word"`
}

func (l Location) String() string { return fmt.Sprintf("%d, %d", l.Line, l.Word) }

// Less orders locations line first, then word.
func (l Location) Less(o Location) bool {
	if l.Line != o.Line {
		return l.Line < o.Line
	}
	return l.Word < o.Word
}

// SplitPositions returns sorted distinct line start offsets: always 0, plus
// count offsets drawn from [1, textSize-1]. count is capped at textSize-1,
// the number of offsets available.
func SplitPositions(r *rand.Rand, textSize, count int) ([]int, error) {
	if textSize <= 0 {
		return nil, ErrEmptyText
	}
	if count > textSize-1 {
		count = textSize - 1
	}
	if count < 0 {
		count = 0
	}

	seen := make(map[int]struct{}, count+1)
	seen[0] = struct{}{}
	out := make([]int, 0, count+1)
	out = append(out, 0)
	for len(out) < count+1 {
		p := 1 + r.Intn(textSize-1)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Ints(out)
	return out, nil
}

// Remap converts absolute offsets into locations. linePositions must be
// sorted and start with 0.
func Remap(linePositions, positions []int) []Location {
	out := make([]Location, 0, len(positions))
	for _, p := range positions {
		// first line starting after p, minus one
		idx := sort.Search(len(linePositions), func(i int) bool { return linePositions[i] > p }) - 1
		if idx < 0 {
			idx = 0
		}
		out = append(out, Location{Line: idx + 1, Word: p - linePositions[idx] + 1})
	}
	return out
}

// Segments returns the text pieces between consecutive line starts; the
// last one runs to the end of text.
func Segments[S any](text []S, linePositions []int) [][]S {
	out := make([][]S, 0, len(linePositions))
	for i, start := range linePositions {
		end := len(text)
		if i+1 < len(linePositions) {
			end = linePositions[i+1]
		}
		out = append(out, text[start:end])
	}
	return out
}
