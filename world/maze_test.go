package world

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// checkMaze verifies everything a freshly generated maze must satisfy.
func checkMaze(t *testing.T, g *Grid) {
	var pt Pt
	for pt.Y = 0; pt.Y < g.NRows(); pt.Y++ {
		for pt.X = 0; pt.X < g.NCols(); pt.X++ {
			if g.IsBorder(pt) {
				assert.Equal(t, Wall, g.Get(pt), "border cell %v", pt)
			}
		}
	}
	assert.Equal(t, Floor, g.Get(StartCell))
	assert.Equal(t, int64(0), g.CountGoals())

	reach := ReachableFrom(g, StartCell)
	for pt.Y = 0; pt.Y < g.NRows(); pt.Y++ {
		for pt.X = 0; pt.X < g.NCols(); pt.X++ {
			if g.Walkable(pt) {
				assert.True(t, reach.Has(pt), "unreachable cell %v", pt)
			}
		}
	}
}

func TestGenerateMaze_EverythingReachable(t *testing.T) {
	sizes := []Pt{{5, 5}, {9, 13}, {13, 13}, {31, 21}, {6, 8}, {10, 7}}
	for seed := range int64(50) {
		for _, size := range sizes {
			r := NewRand(seed)
			g := GenerateMaze(&r, size.Y, size.X, 10)
			assert.Equal(t, size.Y, g.NRows())
			assert.Equal(t, size.X, g.NCols())
			checkMaze(t, &g)
		}
	}
}

func TestGenerateMaze_13x13(t *testing.T) {
	r := NewRand(42)
	g := GenerateMaze(&r, 13, 13, 10)
	checkMaze(t, &g)
	reach := ReachableFrom(&g, StartCell)
	assert.Greater(t, reach.Len(), int64(13*13/4))
}

func TestGenerateMaze_SameSeedSameMaze(t *testing.T) {
	r1 := NewRand(7)
	r2 := NewRand(7)
	g1 := GenerateMaze(&r1, 9, 13, 10)
	g2 := GenerateMaze(&r2, 9, 13, 10)
	assert.Equal(t, g1.String(), g2.String())
}

func TestGenerateMaze_LoopsOnlyRemoveWalls(t *testing.T) {
	for seed := range int64(20) {
		r1 := NewRand(seed)
		r2 := NewRand(seed)
		tree := GenerateMaze(&r1, 13, 13, 0)
		withLoops := GenerateMaze(&r2, 13, 13, 30)

		var pt Pt
		for pt.Y = 0; pt.Y < tree.NRows(); pt.Y++ {
			for pt.X = 0; pt.X < tree.NCols(); pt.X++ {
				if tree.Walkable(pt) {
					assert.True(t, withLoops.Walkable(pt))
				}
			}
		}
	}
}

func TestGenerateMaze_SpanningTreeCoversLattice(t *testing.T) {
	r := NewRand(1)
	g := GenerateMaze(&r, 11, 15, 0)
	var pt Pt
	for pt.Y = 1; pt.Y < g.NRows()-1; pt.Y += 2 {
		for pt.X = 1; pt.X < g.NCols()-1; pt.X += 2 {
			assert.Equal(t, Floor, g.Get(pt))
		}
	}

	// A tree over n cells has n-1 edges, so without loops there are exactly
	// 2n-1 floor cells.
	n := int64(5 * 7)
	reach := ReachableFrom(&g, StartCell)
	assert.Equal(t, 2*n-1, reach.Len())
}

func TestGenerateMaze_DegenerateSizes(t *testing.T) {
	for _, size := range []Pt{{0, 0}, {1, 1}, {3, 3}, {4, 9}, {9, 2}} {
		r := NewRand(0)
		g := GenerateMaze(&r, size.Y, size.X, 10)
		assert.Equal(t, max(size.Y, MinMazeSize), g.NRows())
		assert.Equal(t, max(size.X, MinMazeSize), g.NCols())
		checkMaze(t, &g)
	}
}

func BenchmarkGenerateMaze(b *testing.B) {
	r := NewRand(0)
	for b.Loop() {
		GenerateMaze(&r, 101, 101, 100)
	}
}
