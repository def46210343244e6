package gen

import "fmt"

// Interval is a closed range [Lo, Hi] of candidate start offsets.
type Interval struct {
	Lo int
	Hi int
}

func (iv Interval) Width() int { return iv.Hi - iv.Lo + 1 }

func (iv Interval) String() string { return fmt.Sprintf("[%d, %d]", iv.Lo, iv.Hi) }

// Tracker owns the free intervals: start offsets where one more occurrence
// fits without overlapping any placed one. Intervals never overlap and
// always have Hi >= Lo.
type Tracker struct {
	free []Interval
}

// NewTracker starts with the single interval [0, textSize-patternSize-1].
func NewTracker(textSize, patternSize int) (*Tracker, error) {
	hi := textSize - patternSize - 1
	if hi < 0 {
		return nil, fmt.Errorf("%w: text %d, pattern %d", ErrPatternTooLong, textSize, patternSize)
	}
	return &Tracker{free: []Interval{{Lo: 0, Hi: hi}}}, nil
}

func (t *Tracker) Len() int { return len(t.free) }

func (t *Tracker) At(i int) Interval { return t.free[i] }

// Intervals returns a copy of the current set.
func (t *Tracker) Intervals() []Interval {
	return append([]Interval(nil), t.free...)
}

// Split removes the exclusion zone around p from iv. Another start inside
// (p-patternSize, p+patternSize) would overlap the occurrence at p.
func Split(iv Interval, p, patternSize int) (left, right Interval, hasLeft, hasRight bool) {
	if l := p - patternSize; l >= iv.Lo {
		left, hasLeft = Interval{Lo: iv.Lo, Hi: l}, true
	}
	if r := p + patternSize; r <= iv.Hi {
		right, hasRight = Interval{Lo: r, Hi: iv.Hi}, true
	}
	return left, right, hasLeft, hasRight
}

// Update replaces interval idx with whatever remainders survived the split.
// An idx outside the set means the bookkeeping is broken, so it panics.
func (t *Tracker) Update(idx int, left, right Interval, hasLeft, hasRight bool) {
	if idx < 0 || idx >= len(t.free) {
		panic(fmt.Sprintf("gen: free interval %d does not exist (have %d)", idx, len(t.free)))
	}
	switch {
	case hasLeft && hasRight:
		t.free[idx] = left
		t.free = append(t.free, Interval{})
		copy(t.free[idx+2:], t.free[idx+1:])
		t.free[idx+1] = right
	case hasLeft:
		t.free[idx] = left
	case hasRight:
		t.free[idx] = right
	default:
		t.free = append(t.free[:idx], t.free[idx+1:]...)
	}
}
