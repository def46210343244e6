package alphabet

import "math/rand"

// DefaultMaxLetter keeps the letter domain small so that matchers are
// exercised on texts with many partial matches.
const DefaultMaxLetter = 10

// Uint draws uint32 letters uniformly from [0, Max].
type Uint struct {
	Max uint32
	r   *rand.Rand
}

func NewUint(max uint32, r *rand.Rand) *Uint {
	return &Uint{Max: max, r: r}
}

func (u *Uint) Letter() uint32 {
	if u.Max == ^uint32(0) {
		return u.r.Uint32()
	}
	return uint32(u.r.Int63n(int64(u.Max) + 1))
}
