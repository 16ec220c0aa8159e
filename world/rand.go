package world

import "math/rand/v2"

// Rand is a deterministic random number generator. It holds its whole state by
// value, so copying a Rand gives two generators that produce the same numbers
// from that point on. The World owns one and uses it for everything random, so
// a seed and a list of inputs are enough to replay a playthrough exactly.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9E3779B97F4A7C15)
	return
}

// RInt returns a random number in [min, max], both ends included.
func (r *Rand) RInt(min int64, max int64) int64 {
	if max <= min {
		return min
	}
	n := uint64(max - min + 1)
	return min + int64(r.pcg.Uint64()%n)
}

// ROdd returns a random odd number in [1, n-2]. These are the indexes of the
// cells of the carving lattice of a grid of size n.
func (r *Rand) ROdd(n int64) int64 {
	return 1 + 2*r.RInt(0, (n-3)/2)
}

func Shuffle[T any](r *Rand, s []T) {
	for i := int64(len(s)) - 1; i > 0; i-- {
		j := r.RInt(0, i)
		s[i], s[j] = s[j], s[i]
	}
}

func RElem[T any](r *Rand, s []T) T {
	return s[r.RInt(0, int64(len(s))-1)]
}
