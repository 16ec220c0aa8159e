package world

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func parse(t *testing.T, rows ...string) Grid {
	g, err := ParseGrid(rows)
	require.NoError(t, err)
	return g
}

func TestReachableFrom(t *testing.T) {
	g := parse(t,
		"#######",
		"#..#..#",
		"#.##.G#",
		"#######")

	reach := ReachableFrom(&g, StartCell)
	assert.Equal(t, []Pt{{1, 1}, {2, 1}, {1, 2}}, reach.Order)
	assert.False(t, reach.Has(Pt{4, 1}))

	reach = ReachableFrom(&g, Pt{4, 1})
	assert.Equal(t, int64(4), reach.Len())
	assert.True(t, reach.Has(Pt{5, 2}))

	// Starting from a wall gives nothing.
	reach = ReachableFrom(&g, Pt{0, 0})
	assert.Equal(t, int64(0), reach.Len())
	assert.False(t, reach.Has(Pt{0, 0}))
}

func TestPickGoal_Random(t *testing.T) {
	for seed := range int64(100) {
		r := NewRand(seed)
		g := GenerateMaze(&r, 9, 13, 10)
		reach := ReachableFrom(&g, StartCell)
		goal := PickGoal(&r, &g, &reach, GoalRandom)
		assert.NotEqual(t, StartCell, goal)
		assert.True(t, reach.Has(goal))
	}
}

func TestPickGoal_Farthest(t *testing.T) {
	g := parse(t,
		"#######",
		"#.....#",
		"#.#####",
		"#######")
	r := NewRand(0)
	reach := ReachableFrom(&g, StartCell)
	assert.Equal(t, Pt{5, 1}, PickGoal(&r, &g, &reach, GoalFarthest))

	// Ties go to the cell found first.
	g = parse(t,
		"#####",
		"#...#",
		"#.###",
		"#.###",
		"#####")
	reach = ReachableFrom(&g, StartCell)
	assert.Equal(t, Pt{3, 1}, PickGoal(&r, &g, &reach, GoalFarthest))
}

func TestPickGoal_Fallback(t *testing.T) {
	g := parse(t,
		"#####",
		"#.###",
		"#####",
		"#####",
		"#####")
	r := NewRand(0)
	reach := ReachableFrom(&g, StartCell)
	goal := PickGoal(&r, &g, &reach, GoalRandom)
	assert.Equal(t, Pt{1, 2}, goal)
	assert.Equal(t, Floor, g.Get(goal))
}

func TestPickGoal_FallbackAvoidsStartCell(t *testing.T) {
	// The fallback cell is outside of this grid and the closest interior cell
	// is the start cell.
	g := parse(t,
		"#####",
		"#.###",
		"#####")
	r := NewRand(0)
	reach := ReachableFrom(&g, StartCell)
	goal := PickGoal(&r, &g, &reach, GoalRandom)
	assert.Equal(t, Pt{2, 1}, goal)
	assert.Equal(t, Floor, g.Get(goal))

	cell := PickPowerUpCell(&r, &g, &reach, goal, 0)
	assert.Equal(t, Pt{3, 1}, cell)
	assert.Equal(t, Floor, g.Get(StartCell))
}

func TestPickEnemyCell(t *testing.T) {
	g := parse(t,
		"#####",
		"#..G#",
		"#####")
	r := NewRand(0)
	reach := ReachableFrom(&g, StartCell)
	for range 20 {
		assert.Equal(t, Pt{2, 1}, PickEnemyCell(&r, &g, &reach, Pt{3, 1}))
	}

	g = parse(t,
		"#####",
		"#.###",
		"#####",
		"#####",
		"#####")
	reach = ReachableFrom(&g, StartCell)
	cell := PickEnemyCell(&r, &g, &reach, Pt{1, 2})
	assert.Equal(t, Pt{3, 3}, cell)
	assert.Equal(t, Floor, g.Get(cell))
}

func TestPickPowerUpCell_MinGoalDistance(t *testing.T) {
	g := parse(t,
		"#########",
		"#.......#",
		"#########")
	goal := Pt{7, 1}
	r := NewRand(0)
	reach := ReachableFrom(&g, StartCell)

	for range 50 {
		cell := PickPowerUpCell(&r, &g, &reach, goal, 3)
		assert.NotEqual(t, StartCell, cell)
		assert.GreaterOrEqual(t, cell.ManhattanDistTo(goal), int64(3))
	}

	// If nothing is far enough, the distance is ignored.
	for range 50 {
		cell := PickPowerUpCell(&r, &g, &reach, goal, 100)
		assert.NotEqual(t, StartCell, cell)
		assert.NotEqual(t, goal, cell)
		assert.True(t, reach.Has(cell))
	}
}

func TestPickPowerUpCell_Fallback(t *testing.T) {
	g := parse(t,
		"#####",
		"#.###",
		"#####",
		"#####",
		"#####")
	r := NewRand(0)
	reach := ReachableFrom(&g, StartCell)
	cell := PickPowerUpCell(&r, &g, &reach, Pt{3, 3}, 0)
	assert.Equal(t, Pt{1, 2}, cell)
	assert.Equal(t, Floor, g.Get(cell))
}

func TestNearestWalkable(t *testing.T) {
	g := parse(t,
		"#######",
		"#.###.#",
		"#######")

	cell, ok := NearestWalkable(&g, Pt{2, 1})
	assert.True(t, ok)
	assert.Equal(t, Pt{1, 1}, cell)

	cell, ok = NearestWalkable(&g, Pt{4, 1})
	assert.True(t, ok)
	assert.Equal(t, Pt{5, 1}, cell)

	// Outside the grid, the search starts from the closest cell of the grid.
	cell, ok = NearestWalkable(&g, Pt{20, -3})
	assert.True(t, ok)
	assert.Equal(t, Pt{5, 1}, cell)

	g = parse(t,
		"###",
		"###",
		"###")
	_, ok = NearestWalkable(&g, Pt{1, 1})
	assert.False(t, ok)
}
