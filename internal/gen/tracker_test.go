package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tr, err := NewTracker(167, 5)
	require.NoError(t, err)
	assert.Equal(t, []Interval{{Lo: 0, Hi: 161}}, tr.Intervals())

	_, err = NewTracker(5, 5)
	assert.ErrorIs(t, err, ErrPatternTooLong)
	_, err = NewTracker(3, 5)
	assert.ErrorIs(t, err, ErrPatternTooLong)

	tr, err = NewTracker(6, 5)
	require.NoError(t, err)
	assert.Equal(t, Interval{Lo: 0, Hi: 0}, tr.At(0))
}

func TestSplit(t *testing.T) {
	iv := Interval{Lo: 10, Hi: 40}

	l, r, hl, hr := Split(iv, 20, 5)
	assert.True(t, hl)
	assert.True(t, hr)
	assert.Equal(t, Interval{Lo: 10, Hi: 15}, l)
	assert.Equal(t, Interval{Lo: 25, Hi: 40}, r)

	// exactly one pattern length from the edges: single-offset remainders
	l, r, hl, hr = Split(iv, 15, 5)
	assert.True(t, hl)
	assert.Equal(t, Interval{Lo: 10, Hi: 10}, l)
	assert.True(t, hr)
	assert.Equal(t, Interval{Lo: 20, Hi: 40}, r)

	_, r, hl, hr = Split(iv, 12, 5)
	assert.False(t, hl)
	assert.True(t, hr)
	assert.Equal(t, Interval{Lo: 17, Hi: 40}, r)

	l, _, hl, hr = Split(iv, 38, 5)
	assert.True(t, hl)
	assert.False(t, hr)
	assert.Equal(t, Interval{Lo: 10, Hi: 33}, l)

	_, _, hl, hr = Split(Interval{Lo: 3, Hi: 6}, 4, 5)
	assert.False(t, hl)
	assert.False(t, hr)
}

func TestTracker_Update(t *testing.T) {
	tr := &Tracker{free: []Interval{{0, 4}, {10, 40}, {50, 60}}}

	l, r, hl, hr := Split(tr.At(1), 20, 5)
	tr.Update(1, l, r, hl, hr)
	assert.Equal(t, []Interval{{0, 4}, {10, 15}, {25, 40}, {50, 60}}, tr.Intervals())

	l, r, hl, hr = Split(tr.At(3), 52, 5)
	tr.Update(3, l, r, hl, hr)
	assert.Equal(t, []Interval{{0, 4}, {10, 15}, {25, 40}, {57, 60}}, tr.Intervals())

	l, r, hl, hr = Split(tr.At(2), 39, 5)
	tr.Update(2, l, r, hl, hr)
	assert.Equal(t, []Interval{{0, 4}, {10, 15}, {25, 34}, {57, 60}}, tr.Intervals())

	l, r, hl, hr = Split(tr.At(0), 2, 5)
	tr.Update(0, l, r, hl, hr)
	assert.Equal(t, []Interval{{10, 15}, {25, 34}, {57, 60}}, tr.Intervals())
	assert.Equal(t, 3, tr.Len())
}

func TestTracker_UpdateMissingIntervalPanics(t *testing.T) {
	tr := &Tracker{free: []Interval{{0, 4}}}
	assert.Panics(t, func() { tr.Update(1, Interval{}, Interval{}, false, false) })
	assert.Panics(t, func() { tr.Update(-1, Interval{}, Interval{}, false, false) })

	tr.Update(0, Interval{}, Interval{}, false, false)
	assert.Zero(t, tr.Len())
	assert.Panics(t, func() { tr.Update(0, Interval{}, Interval{}, false, false) })
}
