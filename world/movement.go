package world

import log "github.com/sirupsen/logrus"

// MovePlayer moves the player by d pixels, first on X and then on Y.
//
// I move the player pixel by pixel and check for walls after each pixel. It's
// not the cheapest way but it's simple, it works with integers only and it
// lets the player slide flush against a wall no matter the speed. A move that
// hits a wall just stops on that axis, and the rest of the displacement on
// that axis is lost for this tick.
//
// If the glitch is active and hasn't been used yet, hitting a wall teleports
// the player GlitchDistance tiles ahead instead. That happens once per
// activation. After a teleport the player might end up inside a wall or
// outside the grid, which SnapBack fixes.
func (w *World) MovePlayer(d Pt) {
	w.movePlayerOnAxis(Pt{Sign(d.X), 0}, Abs(d.X))
	w.movePlayerOnAxis(Pt{0, Sign(d.Y)}, Abs(d.Y))
}

func (w *World) movePlayerOnAxis(step Pt, nPixels int64) {
	p := &w.Player
	for range nPixels {
		next := p.Bounds.Translate(step)
		if !w.OverlapsWall(next) {
			p.Bounds = next
			continue
		}

		if w.Glitch.Active && !p.GlitchUsed {
			p.LastValidPos = p.Bounds.Min
			jump := step.Times(w.Params.GlitchDistance * w.Params.TileSize)
			p.Bounds = p.Bounds.Translate(jump)
			p.GlitchUsed = true
			w.JustTeleported = true
			w.SnapBack()
		}
		return
	}
}

// SnapBack gets the player out of a wall after a teleport:
// - If no corner of the player is in a wall or outside the grid, nothing
// happens.
// - Otherwise the player goes back to LastValidPos.
// - If that is also bad (the grid changed, or LastValidPos was never set),
// the player goes to the walkable cell nearest to where it got stuck.
// - If there's no walkable cell at all, the player goes to the start cell.
func (w *World) SnapBack() {
	p := &w.Player
	if !w.Stuck(p.Bounds) {
		return
	}
	w.JustSnappedBack = true

	stuckAt := w.PixelToCell(p.Bounds.Center())
	p.Bounds = p.Bounds.MoveTo(p.LastValidPos)
	if !w.Stuck(p.Bounds) {
		return
	}

	cell, ok := NearestWalkable(&w.Grid, stuckAt)
	if !ok {
		log.WithFields(log.Fields{
			"pos": p.Bounds.Min,
		}).Debug("no walkable cell to snap back to, using the start cell")
		cell = StartCell
	}
	p.Bounds = p.Bounds.MoveTo(w.CellToPixel(cell))
}

// Stuck checks if any corner of r is in a wall or outside the grid.
func (w *World) Stuck(r Rectangle) bool {
	for _, corner := range r.Corners() {
		if !w.Grid.Walkable(w.PixelToCell(corner)) {
			return true
		}
	}
	return false
}

// OverlapsWall checks if r overlaps any wall tile. Pixels outside the grid are
// not walls, the border of the grid is what keeps entities inside.
func (w *World) OverlapsWall(r Rectangle) bool {
	first := w.Grid.Clamp(w.PixelToCell(r.Min))
	last := w.Grid.Clamp(w.PixelToCell(r.Max.Minus(Pt{1, 1})))
	var pt Pt
	for pt.Y = first.Y; pt.Y <= last.Y; pt.Y++ {
		for pt.X = first.X; pt.X <= last.X; pt.X++ {
			if w.Grid.Get(pt) == Wall && r.Intersects(w.TileBounds(pt)) {
				return true
			}
		}
	}
	return false
}
