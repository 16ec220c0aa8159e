package world

import "fmt"

// Layout is a hand-made maze. When a World has a Layout, every level uses it
// instead of a generated maze. Rows use '#' for walls, '.' for floor and 'G'
// for the goal. If there is no 'G', or the player can't get to it, the goal is
// placed like for a generated maze.
type Layout struct {
	Maze []string `yaml:"Maze"`
}

func (l *Layout) IsSet() bool {
	return len(l.Maze) > 0
}

// Grid builds the grid of the layout. The border is forced to walls and the
// start cell to floor, same as for a generated maze. A layout must be at least
// as big as the smallest generated maze, so that there is room for the goal
// and the enemies next to the start cell.
func (l *Layout) Grid() (Grid, error) {
	g, err := ParseGrid(l.Maze)
	if err != nil {
		return Grid{}, err
	}
	if g.NRows() < MinMazeSize || g.NCols() < MinMazeSize {
		return Grid{}, fmt.Errorf("a layout needs at least %dx%d cells, got "+
			"%dx%d", MinMazeSize, MinMazeSize, g.NRows(), g.NCols())
	}
	g.EnforceBorder()
	g.Set(StartCell, Floor)
	return g, nil
}
