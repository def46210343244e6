package alphabet

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
)

// NewRand returns a seeded source. If seed==0 we use a time-based seed;
// otherwise results are reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a base seed and a stream number into an independent
// non-zero seed, so run i of a batch can be replayed on its own.
func DeriveSeed(base int64, stream uint64) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(base))
	binary.LittleEndian.PutUint64(buf[8:], stream)
	s := int64(xxhash.Sum64(buf[:]) >> 1)
	if s == 0 {
		s = 1
	}
	return s
}
