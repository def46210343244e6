package alphabet

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gcFrac(b []byte) float64 {
	if len(b) == 0 {
		return 0
	}
	gc := 0
	for _, x := range b {
		if x == 'G' || x == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(b))
}

func TestDNA_LengthAndGC(t *testing.T) {
	N := 10000
	seq := Fill[byte](NewDNA(0.42, NewRand(123)), N)
	if len(seq) != N {
		t.Fatalf("length: got %d want %d", len(seq), N)
	}
	// per-letter draws: allow ~6 standard deviations
	if got := gcFrac(seq); math.Abs(got-0.42) > 0.03 {
		t.Fatalf("gc: got %.4f want ~0.42", got)
	}
}

func TestDNA_SeedDeterministic(t *testing.T) {
	a := Fill[byte](NewDNA(0.5, NewRand(42)), 5000)
	b := Fill[byte](NewDNA(0.5, NewRand(42)), 5000)
	if !bytes.Equal(a, b) {
		t.Fatalf("same seed should reproduce sequence")
	}
	c := Fill[byte](NewDNA(0.5, NewRand(43)), 5000)
	if bytes.Equal(a, c) {
		t.Fatalf("different seed unexpectedly produced identical sequence")
	}
}

func TestDNA_GCExtremesAndClamp(t *testing.T) {
	for _, x := range Fill[byte](NewDNA(0, NewRand(7)), 1000) {
		if x == 'G' || x == 'C' {
			t.Fatalf("expected only A/T when gc=0, saw %c", x)
		}
	}
	for _, x := range Fill[byte](NewDNA(1, NewRand(7)), 1000) {
		if x == 'A' || x == 'T' {
			t.Fatalf("expected only G/C when gc=1, saw %c", x)
		}
	}
	assert.Equal(t, 0.0, NewDNA(-0.1, NewRand(1)).GC())
	assert.Equal(t, 1.0, NewDNA(1.5, NewRand(1)).GC())
}

func TestUint_Bounds(t *testing.T) {
	u := NewUint(3, NewRand(9))
	seen := map[uint32]bool{}
	for i := 0; i < 1000; i++ {
		l := u.Letter()
		require.LessOrEqual(t, l, uint32(3))
		seen[l] = true
	}
	assert.Len(t, seen, 4, "every letter of [0,3] should show up in 1000 draws")

	zero := NewUint(0, NewRand(9))
	for i := 0; i < 10; i++ {
		assert.Equal(t, uint32(0), zero.Letter())
	}

	full := NewUint(^uint32(0), NewRand(9))
	_ = full.Letter()
}

func TestFillAndAppend(t *testing.T) {
	n := 0
	f := Func[int](func() int { n++; return n })

	assert.Empty(t, Fill[int](f, 0))
	assert.Empty(t, Fill[int](f, -3))
	assert.Equal(t, []int{1, 2, 3}, Fill[int](f, 3))
	assert.Equal(t, []int{9, 4, 5}, Append([]int{9}, Alphabet[int](f), 2))
}

func TestDeriveSeed(t *testing.T) {
	a := DeriveSeed(42, 0)
	assert.Equal(t, a, DeriveSeed(42, 0))
	assert.NotEqual(t, a, DeriveSeed(42, 1))
	assert.NotEqual(t, a, DeriveSeed(43, 0))
	assert.Positive(t, a)
}
