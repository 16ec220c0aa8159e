package world

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

// newTestWorld makes a world with the given grid and the player on the start
// cell. Unlike NewWorld it doesn't place a goal, enemies or power-ups, so
// tests can set up exactly what they need.
func newTestWorld(t *testing.T, rows ...string) World {
	var w World
	w.Params = DefaultParams()
	w.Rand = NewRand(0)
	w.Glitch = NewGlitch(w.Params)
	w.Grid = parse(t, rows...)
	w.Player = Player{
		Bounds:    RectAt(w.CellToPixel(StartCell), Pt{55, 55}),
		BaseSpeed: 4,
		Speed:     4,
	}
	w.Player.LastValidPos = w.Player.Bounds.Min
	return w
}

func TestMovePlayer_StopsAtWall(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#.#.#",
		"#####")

	// The wall starts at x = 120 and the player ends at x = 118, so there
	// are 2 pixels of room.
	w.Player.Bounds = w.Player.Bounds.MoveTo(Pt{63, 100})
	w.MovePlayer(Pt{4, 0})
	assert.Equal(t, Pt{65, 100}, w.Player.Bounds.Min)
	assert.False(t, w.OverlapsWall(w.Player.Bounds))

	// Flush against the wall, nothing moves.
	w.MovePlayer(Pt{4, 0})
	assert.Equal(t, Pt{65, 100}, w.Player.Bounds.Min)

	w.MovePlayer(Pt{-4, 0})
	assert.Equal(t, Pt{61, 100}, w.Player.Bounds.Min)
	w.MovePlayer(Pt{-4, 0})
	assert.Equal(t, Pt{60, 100}, w.Player.Bounds.Min)
}

func TestMovePlayer_AxesAreIndependent(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#...#",
		"#...#",
		"#####")

	w.MovePlayer(Pt{4, 4})
	assert.Equal(t, Pt{64, 104}, w.Player.Bounds.Min)

	// Blocked on Y, but X still moves.
	w.Player.Bounds = w.Player.Bounds.MoveTo(Pt{64, 163})
	w.MovePlayer(Pt{4, 4})
	assert.Equal(t, Pt{68, 165}, w.Player.Bounds.Min)
	assert.False(t, w.OverlapsWall(w.Player.Bounds))
}

func TestMovePlayer_GlitchTeleportsOnce(t *testing.T) {
	w := newTestWorld(t,
		"#######",
		"#.#...#",
		"#######")
	w.Player.Bounds = w.Player.Bounds.MoveTo(Pt{65, 100})

	assert.True(t, w.Glitch.TryActivate())
	w.MovePlayer(Pt{4, 0})
	assert.True(t, w.JustTeleported)
	assert.False(t, w.JustSnappedBack)
	assert.True(t, w.Player.GlitchUsed)
	assert.Equal(t, Pt{65, 100}, w.Player.LastValidPos)
	assert.Equal(t, Pt{185, 100}, w.Player.Bounds.Min)
	assert.False(t, w.Stuck(w.Player.Bounds))

	// The glitch is still active but it was already used, so the walls are
	// solid again.
	w.JustTeleported = false
	for range 50 {
		w.MovePlayer(Pt{4, 0})
	}
	assert.Equal(t, Pt{305, 100}, w.Player.Bounds.Min)
	for range 50 {
		w.MovePlayer(Pt{-4, 0})
	}
	assert.Equal(t, Pt{180, 100}, w.Player.Bounds.Min)
	assert.True(t, w.Glitch.Active)
	assert.False(t, w.JustTeleported)
}

func TestMovePlayer_NoGlitchNoTeleport(t *testing.T) {
	w := newTestWorld(t,
		"#######",
		"#.#...#",
		"#######")
	w.Player.Bounds = w.Player.Bounds.MoveTo(Pt{65, 100})
	w.MovePlayer(Pt{4, 0})
	assert.False(t, w.JustTeleported)
	assert.Equal(t, Pt{65, 100}, w.Player.Bounds.Min)
}

func TestMovePlayer_SnapBackFromWall(t *testing.T) {
	w := newTestWorld(t,
		"#######",
		"#.###.#",
		"#######")
	w.Player.Bounds = w.Player.Bounds.MoveTo(Pt{65, 100})

	assert.True(t, w.Glitch.TryActivate())
	w.MovePlayer(Pt{4, 0})
	assert.True(t, w.JustTeleported)
	assert.True(t, w.JustSnappedBack)
	assert.Equal(t, Pt{65, 100}, w.Player.Bounds.Min)
	assert.True(t, w.Player.GlitchUsed)
}

func TestMovePlayer_SnapBackFromOutsideGrid(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#...#",
		"#####")
	w.Player.Bounds = w.Player.Bounds.MoveTo(Pt{185, 100})

	assert.True(t, w.Glitch.TryActivate())
	w.MovePlayer(Pt{4, 0})
	assert.True(t, w.JustSnappedBack)
	assert.Equal(t, Pt{185, 100}, w.Player.Bounds.Min)
}

func TestSnapBack_NearestWalkable(t *testing.T) {
	w := newTestWorld(t,
		"#######",
		"#.###.#",
		"#######")
	w.Player.Bounds = w.Player.Bounds.MoveTo(w.CellToPixel(Pt{4, 1}))
	w.Player.LastValidPos = Pt{0, 0}

	w.SnapBack()
	assert.True(t, w.JustSnappedBack)
	assert.Equal(t, w.CellToPixel(Pt{5, 1}), w.Player.Bounds.Min)
}

func TestSnapBack_StartCell(t *testing.T) {
	w := newTestWorld(t,
		"###",
		"###",
		"###")
	w.Player.LastValidPos = Pt{0, 0}

	w.SnapBack()
	assert.True(t, w.JustSnappedBack)
	assert.Equal(t, w.CellToPixel(StartCell), w.Player.Bounds.Min)
}

func TestSnapBack_NotStuck(t *testing.T) {
	w := newTestWorld(t,
		"###",
		"#.#",
		"###")
	w.SnapBack()
	assert.False(t, w.JustSnappedBack)
	assert.Equal(t, w.CellToPixel(StartCell), w.Player.Bounds.Min)
}

func TestEnemyStep_Rollback(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#...#",
		"#####")

	e := NewEnemy(w.CellToPixel(Pt{3, 1}), 60, 2, Pt{1, 0})
	e.Step(&w)
	assert.Equal(t, w.CellToPixel(Pt{3, 1}), e.Bounds.Min)
	assert.Contains(t, directions, e.Heading)

	e.Heading = Pt{-1, 0}
	e.Step(&w)
	assert.Equal(t, w.CellToPixel(Pt{3, 1}).Plus(Pt{-2, 0}), e.Bounds.Min)
}

func TestEnemyStep_StaysInPlayfield(t *testing.T) {
	w := newTestWorld(t,
		"...",
		"...",
		"...")

	e := NewEnemy(w.CellToPixel(Pt{2, 1}), 60, 3, Pt{1, 0})
	e.Step(&w)
	assert.Equal(t, w.CellToPixel(Pt{2, 1}), e.Bounds.Min)

	e = NewEnemy(w.CellToPixel(Pt{1, 0}), 60, 3, Pt{0, -1})
	e.Step(&w)
	assert.Equal(t, w.CellToPixel(Pt{1, 0}), e.Bounds.Min)

	e = NewEnemy(w.CellToPixel(Pt{1, 1}), 60, 3, Pt{0, 1})
	e.Step(&w)
	assert.Equal(t, w.CellToPixel(Pt{1, 1}).Plus(Pt{0, 3}), e.Bounds.Min)
}

func TestPixelToCell(t *testing.T) {
	w := newTestWorld(t,
		"###",
		"#.#",
		"###")
	assert.Equal(t, Pt{60, 100}, w.CellToPixel(Pt{1, 1}))
	assert.Equal(t, Pt{1, 1}, w.PixelToCell(Pt{60, 100}))
	assert.Equal(t, Pt{1, 1}, w.PixelToCell(Pt{119, 159}))
	assert.Equal(t, Pt{0, -1}, w.PixelToCell(Pt{0, 39}))
	assert.Equal(t, Pt{-1, 0}, w.PixelToCell(Pt{-1, 40}))
	assert.Equal(t, NewRectangle(0, 40, 180, 220), w.Playfield())
}

func TestOverlapsWall_EmptyRect(t *testing.T) {
	w := newTestWorld(t,
		"#####",
		"#.#.#",
		"#####")
	// Inside the wall at (2, 1), but with no pixels.
	assert.False(t, w.OverlapsWall(NewRectangle(130, 110, 130, 110)))
	assert.True(t, w.OverlapsWall(NewRectangle(130, 110, 131, 111)))
}
