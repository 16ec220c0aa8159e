package world

type Player struct {
	Bounds    Rectangle
	BaseSpeed int64
	Speed     int64
	// LastValidPos is where the player was right before the last glitch
	// teleport.
	LastValidPos Pt
	// GlitchUsed is set by the teleport and cleared when the glitch is
	// activated again, so each activation teleports at most once.
	GlitchUsed bool
}

type Enemy struct {
	Bounds  Rectangle
	Speed   int64
	Heading Pt
}

func NewEnemy(pos Pt, size int64, speed int64, heading Pt) Enemy {
	return Enemy{
		Bounds:  RectAt(pos, Pt{size, size}),
		Speed:   speed,
		Heading: heading,
	}
}

// Step moves the enemy by its whole displacement or not at all. If the move
// would hit a wall or leave the playfield, the enemy stays where it is and
// picks a new heading at random. The new heading can be the same as the old
// one.
func (e *Enemy) Step(w *World) {
	next := e.Bounds.Translate(e.Heading.Times(e.Speed))
	if w.Playfield().ContainsRect(next) && !w.OverlapsWall(next) {
		e.Bounds = next
		return
	}
	e.Heading = RElem(&w.Rand, directions[:])
}
