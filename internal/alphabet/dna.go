package alphabet

import "math/rand"

// DNA draws upper-case nucleotides; each letter is G or C with
// probability GC, otherwise A or T.
type DNA struct {
	gc float64
	r  *rand.Rand
}

// NewDNA clamps gc to [0,1].
func NewDNA(gc float64, r *rand.Rand) *DNA {
	if gc < 0 {
		gc = 0
	}
	if gc > 1 {
		gc = 1
	}
	return &DNA{gc: gc, r: r}
}

func (d *DNA) GC() float64 { return d.gc }

func (d *DNA) Letter() byte {
	if d.r.Float64() < d.gc {
		if d.r.Intn(2) == 0 {
			return 'G'
		}
		return 'C'
	}
	if d.r.Intn(2) == 0 {
		return 'A'
	}
	return 'T'
}
