package world

import (
	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"slices"
)

// Goal placement policies.
const (
	GoalRandom   = "Random"
	GoalFarthest = "Farthest"
)

// Cells used when a placement finds nothing to choose from. They are forced to
// Floor so whatever is placed there can at least stand on them.
var (
	fallbackGoalCell    = Pt{1, 2}
	fallbackEnemyCell   = Pt{3, 3}
	fallbackPowerUpCell = Pt{1, 2}
)

var directions = [4]Pt{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Reachable is the set of walkable cells connected to a start cell.
// Order keeps the cells in the order the BFS visited them. Random choices are
// always made from Order and never by iterating the set, so that the same seed
// always picks the same cells.
type Reachable struct {
	set   mapset.Set[Pt]
	Order []Pt
}

// ReachableFrom does a 4-directional BFS over Floor and Goal cells. If start
// is not walkable the result is empty.
func ReachableFrom(g *Grid, start Pt) Reachable {
	r := Reachable{set: mapset.New[Pt]()}
	if !g.Walkable(start) {
		return r
	}

	r.set.Put(start)
	r.Order = append(r.Order, start)
	for i := 0; i < len(r.Order); i++ {
		for _, d := range directions {
			n := r.Order[i].Plus(d)
			if g.Walkable(n) && !r.set.Has(n) {
				r.set.Put(n)
				r.Order = append(r.Order, n)
			}
		}
	}
	return r
}

func (r *Reachable) Has(pt Pt) bool {
	return r.set.Has(pt)
}

func (r *Reachable) Len() int64 {
	return int64(len(r.Order))
}

// Candidates returns the reachable cells, in BFS order, minus the excluded
// ones.
func (r *Reachable) Candidates(exclude ...Pt) []Pt {
	candidates := make([]Pt, 0, len(r.Order))
	for _, pt := range r.Order {
		excluded := false
		for _, e := range exclude {
			if pt == e {
				excluded = true
				break
			}
		}
		if !excluded {
			candidates = append(candidates, pt)
		}
	}
	return candidates
}

// useFallback makes pt walkable and returns it. On grids too small to have pt
// inside the border, the closest interior cell is used instead. If that cell
// is excluded, the first interior cell that isn't is used. Only a grid with a
// single interior cell can't avoid the excluded cells.
func useFallback(g *Grid, pt Pt, exclude ...Pt) Pt {
	pt.X = max(1, min(pt.X, g.NCols()-2))
	pt.Y = max(1, min(pt.Y, g.NRows()-2))
	if slices.Contains(exclude, pt) {
		var alt Pt
	search:
		for alt.Y = 1; alt.Y < g.NRows()-1; alt.Y++ {
			for alt.X = 1; alt.X < g.NCols()-1; alt.X++ {
				if !slices.Contains(exclude, alt) {
					pt = alt
					break search
				}
			}
		}
	}
	if !g.Walkable(pt) {
		g.Set(pt, Floor)
	}
	return pt
}

// PickGoal chooses the goal cell among the reachable cells other than the
// start, using the given policy. An unknown policy behaves like GoalRandom.
func PickGoal(rng *Rand, g *Grid, reach *Reachable, policy string) Pt {
	candidates := reach.Candidates(StartCell)
	if len(candidates) == 0 {
		log.WithFields(log.Fields{
			"fallback": fallbackGoalCell,
		}).Debug("no reachable cell for the goal")
		return useFallback(g, fallbackGoalCell, StartCell)
	}

	if policy == GoalFarthest {
		best := candidates[0]
		for _, pt := range candidates[1:] {
			if pt.ManhattanDistTo(StartCell) > best.ManhattanDistTo(StartCell) {
				best = pt
			}
		}
		return best
	}
	return RElem(rng, candidates)
}

// PickEnemyCell chooses a spawn cell for an enemy among the reachable cells
// other than the start and the goal.
func PickEnemyCell(rng *Rand, g *Grid, reach *Reachable, goal Pt) Pt {
	candidates := reach.Candidates(StartCell, goal)
	if len(candidates) == 0 {
		log.WithFields(log.Fields{
			"fallback": fallbackEnemyCell,
		}).Debug("no reachable cell for an enemy")
		return useFallback(g, fallbackEnemyCell, StartCell, goal)
	}
	return RElem(rng, candidates)
}

// PickPowerUpCell is like PickEnemyCell but also keeps power-ups at least
// minGoalDist (Manhattan distance) away from the goal. A minGoalDist of 0
// disables the filter. If the filter leaves nothing, it is ignored.
func PickPowerUpCell(rng *Rand, g *Grid, reach *Reachable, goal Pt,
	minGoalDist int64) Pt {
	candidates := reach.Candidates(StartCell, goal)
	if minGoalDist > 0 {
		far := make([]Pt, 0, len(candidates))
		for _, pt := range candidates {
			if pt.ManhattanDistTo(goal) >= minGoalDist {
				far = append(far, pt)
			}
		}
		if len(far) > 0 {
			candidates = far
		} else {
			log.WithFields(log.Fields{
				"minGoalDist": minGoalDist,
			}).Debug("no power-up cell far enough from the goal, ignoring " +
				"the distance")
		}
	}

	if len(candidates) == 0 {
		log.WithFields(log.Fields{
			"fallback": fallbackPowerUpCell,
		}).Debug("no reachable cell for a power-up")
		return useFallback(g, fallbackPowerUpCell, StartCell, goal)
	}
	return RElem(rng, candidates)
}

// NearestWalkable does a BFS over every cell of the grid, walls included,
// starting from the cell closest to from. It returns the first walkable cell
// it finds, which is one of the nearest ones. It returns false only if the
// grid has no walkable cell at all.
func NearestWalkable(g *Grid, from Pt) (Pt, bool) {
	start := g.Clamp(from)
	visited := mapset.New[Pt]()
	visited.Put(start)
	queue := []Pt{start}
	for len(queue) > 0 {
		pt := queue[0]
		queue = queue[1:]
		if g.Walkable(pt) {
			return pt, true
		}
		for _, d := range directions {
			n := pt.Plus(d)
			if g.InBounds(n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return Pt{}, false
}
