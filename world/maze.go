package world

import log "github.com/sirupsen/logrus"

// MinMazeSize is the smallest number of rows or columns a maze can have. Below
// this there is no room for a lattice with more than one cell.
const MinMazeSize = 5

// carveOffsets are the moves between cells of the carving lattice. Cells of
// the lattice have odd coordinates and the even coordinates in between them
// are the walls that get knocked down.
var carveOffsets = [4]Pt{{0, 2}, {0, -2}, {2, 0}, {-2, 0}}

// GenerateMaze builds a maze with nRows x nCols cells:
// - A randomized depth-first backtracker carves a spanning tree over the
// lattice of odd cells, starting at StartCell. Every lattice cell ends up
// connected to the start.
// - extraPaths attempts knock down extra walls to add loops, so there is more
// than one way to get anywhere. This only ever removes walls, so it can't cut
// anything off.
// - The outer ring is forced to be walls and the start cell is forced to be
// floor.
//
// Dimensions smaller than MinMazeSize are raised to MinMazeSize. Even
// dimensions are fine, the last row or column of the interior just stays
// solid.
func GenerateMaze(r *Rand, nRows, nCols, extraPaths int64) Grid {
	if nRows < MinMazeSize || nCols < MinMazeSize {
		log.WithFields(log.Fields{
			"rows": nRows,
			"cols": nCols,
		}).Debug("maze dimensions too small, using the minimum size")
		nRows = max(nRows, MinMazeSize)
		nCols = max(nCols, MinMazeSize)
	}

	g := NewGrid(nRows, nCols)
	carve(r, &g)
	addLoops(r, &g, extraPaths)
	g.Set(StartCell, Floor)
	g.EnforceBorder()
	g.ClearGoals()
	return g
}

// carveFrame is one level of the backtracker. Each frame remembers its own
// shuffled directions and how many of them it has already tried, which is
// exactly the state a recursive implementation would keep on the call stack.
type carveFrame struct {
	pos  Pt
	dirs [4]Pt
	next int
}

func newCarveFrame(r *Rand, pos Pt) carveFrame {
	f := carveFrame{pos: pos, dirs: carveOffsets}
	Shuffle(r, f.dirs[:])
	return f
}

// carve uses an explicit stack instead of recursion so that big grids don't
// depend on how deep the goroutine stack can grow.
func carve(r *Rand, g *Grid) {
	g.Set(StartCell, Floor)
	stack := []carveFrame{newCarveFrame(r, StartCell)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		target := top.pos.Plus(d)
		// Stay strictly inside the border.
		if target.X <= 0 || target.Y <= 0 ||
			target.X >= g.NCols()-1 || target.Y >= g.NRows()-1 {
			continue
		}
		if g.Get(target) != Wall {
			continue
		}
		g.Set(top.pos.Plus(d.DivBy(2)), Floor)
		g.Set(target, Floor)
		// top is invalidated by the append, but we're done with it.
		stack = append(stack, newCarveFrame(r, target))
	}
}

func addLoops(r *Rand, g *Grid, extraPaths int64) {
	neighbors := make([]Pt, 0, 4)
	for range extraPaths {
		pos := Pt{r.ROdd(g.NCols()), r.ROdd(g.NRows())}
		neighbors = neighbors[:0]
		for _, d := range directions {
			n := pos.Plus(d)
			if g.InBounds(n) && !g.IsBorder(n) && g.Get(n) == Wall {
				neighbors = append(neighbors, n)
			}
		}
		if len(neighbors) > 0 {
			g.Set(RElem(r, neighbors), Floor)
		}
	}
}
