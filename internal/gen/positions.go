package gen

import (
	"math/rand"
	"sort"
)

// Positions places up to count non-overlapping occurrences and returns their
// start offsets in ascending order. It stops early, without error, once no
// free interval is left.
//
// The interval is picked uniformly by index, not weighted by width, so
// short intervals receive as many placements as long ones.
func Positions(r *rand.Rand, textSize, patternSize, count int) ([]int, error) {
	if patternSize <= 0 {
		return nil, ErrEmptyPattern
	}
	if textSize <= 0 {
		return nil, ErrEmptyText
	}
	t, err := NewTracker(textSize, patternSize)
	if err != nil {
		return nil, err
	}

	out := make([]int, 0, count)
	for t.Len() > 0 && count > 0 {
		idx := r.Intn(t.Len())
		iv := t.At(idx)
		p := iv.Lo + r.Intn(iv.Width())

		left, right, hasLeft, hasRight := Split(iv, p, patternSize)
		t.Update(idx, left, right, hasLeft, hasRight)

		out = append(out, p)
		count--
	}
	sort.Ints(out)
	return out, nil
}
