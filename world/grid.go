package world

import (
	"fmt"
	"strings"
)

type Cell int64

// The zero value is Wall, so a new Grid is solid rock until something carves
// it.
const (
	Wall Cell = iota
	Floor
	Goal
)

func (c Cell) Walkable() bool {
	return c != Wall
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "#"
	case Floor:
		return "."
	case Goal:
		return "G"
	default:
		return "?"
	}
}

// StartCell is where the player spawns and where every maze starts carving.
var StartCell = Pt{1, 1}

// Grid is a matrix of cells. Positions are Pt{column, row}.
type Grid struct {
	cells []Cell
	size  Pt
}

func NewGrid(nRows, nCols int64) Grid {
	g := Grid{}
	g.size = Pt{nCols, nRows}
	g.cells = make([]Cell, nRows*nCols)
	return g
}

func (g *Grid) NRows() int64 {
	return g.size.Y
}

func (g *Grid) NCols() int64 {
	return g.size.X
}

func (g *Grid) Size() Pt {
	return g.size
}

func (g *Grid) Set(pos Pt, val Cell) {
	g.cells[pos.Y*g.size.X+pos.X] = val
}

func (g *Grid) Get(pos Pt) Cell {
	return g.cells[pos.Y*g.size.X+pos.X]
}

func (g *Grid) InBounds(pt Pt) bool {
	return pt.X >= 0 &&
		pt.Y >= 0 &&
		pt.Y < g.size.Y &&
		pt.X < g.size.X
}

// Walkable is false for walls and for anything outside the grid.
func (g *Grid) Walkable(pt Pt) bool {
	return g.InBounds(pt) && g.Get(pt).Walkable()
}

func (g *Grid) IsBorder(pt Pt) bool {
	return pt.X == 0 || pt.Y == 0 || pt.X == g.size.X-1 || pt.Y == g.size.Y-1
}

// Clamp returns the cell of the grid closest to pt.
func (g *Grid) Clamp(pt Pt) Pt {
	return Pt{max(0, min(pt.X, g.size.X-1)), max(0, min(pt.Y, g.size.Y-1))}
}

// Cells returns a copy of all the cells, row by row.
func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

// EnforceBorder turns the outer ring into walls. It is idempotent.
func (g *Grid) EnforceBorder() {
	for x := int64(0); x < g.size.X; x++ {
		g.Set(Pt{x, 0}, Wall)
		g.Set(Pt{x, g.size.Y - 1}, Wall)
	}
	for y := int64(0); y < g.size.Y; y++ {
		g.Set(Pt{0, y}, Wall)
		g.Set(Pt{g.size.X - 1, y}, Wall)
	}
}

// ClearGoals turns every Goal cell back into Floor.
func (g *Grid) ClearGoals() {
	for i := range g.cells {
		if g.cells[i] == Goal {
			g.cells[i] = Floor
		}
	}
}

func (g *Grid) CountGoals() (n int64) {
	for _, c := range g.cells {
		if c == Goal {
			n++
		}
	}
	return
}

// FindGoal returns the first Goal cell, scanning row by row.
func (g *Grid) FindGoal() (Pt, bool) {
	for i, c := range g.cells {
		if c == Goal {
			return Pt{int64(i) % g.size.X, int64(i) / g.size.X}, true
		}
	}
	return Pt{}, false
}

func (g *Grid) String() string {
	var sb strings.Builder
	pt := Pt{}
	for pt.Y = 0; pt.Y < g.size.Y; pt.Y++ {
		for pt.X = 0; pt.X < g.size.X; pt.X++ {
			sb.WriteString(g.Get(pt).String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseGrid builds a grid from rows of '#' (wall), '.' (floor) and 'G' (goal).
// All rows must have the same length and there can be at most one goal.
func ParseGrid(rows []string) (Grid, error) {
	if len(rows) < 3 {
		return Grid{}, fmt.Errorf("a grid needs at least 3 rows, got %d", len(rows))
	}
	nCols := int64(len(rows[0]))
	if nCols < 3 {
		return Grid{}, fmt.Errorf("a grid needs at least 3 columns, got %d", nCols)
	}

	g := NewGrid(int64(len(rows)), nCols)
	nGoals := 0
	for y, row := range rows {
		if int64(len(row)) != nCols {
			return Grid{}, fmt.Errorf("row %d has %d columns, expected %d",
				y, len(row), nCols)
		}
		for x, ch := range row {
			var c Cell
			switch ch {
			case '#':
				c = Wall
			case '.':
				c = Floor
			case 'G':
				c = Goal
				nGoals++
			default:
				return Grid{}, fmt.Errorf("invalid character %q at row %d, "+
					"column %d", ch, y, x)
			}
			g.Set(Pt{int64(x), int64(y)}, c)
		}
	}
	if nGoals > 1 {
		return Grid{}, fmt.Errorf("a grid can have at most one goal, got %d",
			nGoals)
	}
	return g, nil
}
