package world

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRand_SameSeedSameRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(13)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_DifferentSeedsDifferentRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(14)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.NotEqual(t, v1, v2)
}

func TestRand_CopyMakesIdenticalGenerators(t *testing.T) {
	r1 := NewRand(13)
	for range 10 {
		r1.RInt(0, 1000000)
	}

	r2 := r1

	v1 := [10]int64{}
	v2 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
		v2[i] = r2.RInt(0, 1000000)
	}
	assert.Equal(t, v1, v2)
}

func TestRand_RIntStaysInRange(t *testing.T) {
	r := NewRand(0)
	seen := map[int64]bool{}
	for range 1000 {
		v := r.RInt(-2, 2)
		assert.GreaterOrEqual(t, v, int64(-2))
		assert.LessOrEqual(t, v, int64(2))
		seen[v] = true
	}
	// Both ends are included.
	assert.Len(t, seen, 5)

	// An empty range gives the minimum.
	assert.Equal(t, int64(7), r.RInt(7, 7))
	assert.Equal(t, int64(7), r.RInt(7, 3))
}

func TestRand_ROddGivesLatticeIndexes(t *testing.T) {
	r := NewRand(0)
	for _, n := range []int64{5, 6, 9, 13, 14} {
		for range 200 {
			v := r.ROdd(n)
			assert.Equal(t, int64(1), v%2)
			assert.GreaterOrEqual(t, v, int64(1))
			assert.LessOrEqual(t, v, n-2)
		}
	}
}

func TestRand_ShuffleKeepsElements(t *testing.T) {
	r := NewRand(3)
	s := []int64{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(&r, s)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8}, s)
}
