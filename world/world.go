package world

type State int64

const (
	Menu State = iota
	Playing
	Paused
	Lose
	Instructions
)

func (s State) String() string {
	switch s {
	case Menu:
		return "Menu"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Lose:
		return "Lose"
	case Instructions:
		return "Instructions"
	default:
		return "Unknown"
	}
}

// PlayerInput is everything the player asked for during one tick. Movement is
// sampled as held keys, the rest as key presses.
type PlayerInput struct {
	Left    bool
	Right   bool
	Up      bool
	Down    bool
	Glitch  bool
	Pause   bool
	Confirm bool
	Back    bool
	Help    bool
	Quit    bool
}

// World rules
// - The maze is a grid of tiles. The player, the enemies, the power-ups and
// the goal are rectangles in pixel coordinates on top of it. The grid starts
// InfoBarHeight pixels from the top, to leave room for the info bar.
// - The player moves with the arrows and can't go through walls, except once
// per glitch activation.
// - Enemies walk in a straight line and pick a random direction when they
// hit a wall.
// - Touching the goal gets you to the next level, which has a new maze,
// faster enemies and eventually more of them.
// - Touching an enemy loses the game.
// - Touching a power-up gives you its effect for a while.
type World struct {
	Params Params
	Layout Layout
	Rand   Rand
	State  State
	Quit   bool

	Level      int64
	Score      int64
	FinalScore int64
	EnemySpeed int64

	Grid       Grid
	Goal       Pt
	GoalBounds Rectangle
	Player     Player
	Enemies    []Enemy
	PowerUps   []PowerUp
	Glitch     Glitch

	// Things that happened during the last Step, for the GUI.
	JustLeveledUp   bool
	JustLost        bool
	JustGlitched    bool
	JustTeleported  bool
	JustSnappedBack bool
	JustCollected   []PowerUpKind
}

// HUD holds the numbers the info bar shows.
type HUD struct {
	Level                  int64
	Score                  int64
	EnemySpeed             int64
	GlitchCooldownFraction float64
	GlitchActive           bool
}

func NewWorld(seed int64, params Params, layout Layout) (w World) {
	Check(params.Validate())
	if layout.IsSet() {
		_, err := layout.Grid()
		Check(err)
	}
	w.Params = params
	w.Layout = layout
	w.Rand = NewRand(seed)
	w.Glitch = NewGlitch(params)
	w.State = Menu
	w.NewGame()
	return
}

// NewGame goes back to level 1 with a new maze.
func (w *World) NewGame() {
	w.Level = 1
	w.Score = 0
	w.EnemySpeed = w.Params.InitialEnemySpeed
	w.Regenerate()
}

func (w *World) Step(input PlayerInput) {
	if w.Quit {
		return
	}
	if input.Quit {
		w.Quit = true
		return
	}

	w.JustLeveledUp = false
	w.JustLost = false
	w.JustGlitched = false
	w.JustTeleported = false
	w.JustSnappedBack = false
	w.JustCollected = w.JustCollected[:0]

	switch w.State {
	case Menu:
		if input.Confirm {
			w.NewGame()
			w.State = Playing
		} else if input.Help {
			w.State = Instructions
		}
	case Instructions:
		if input.Back || input.Help {
			w.State = Menu
		}
	case Playing:
		if input.Pause || input.Back {
			w.State = Paused
			return
		}
		w.play(input)
	case Paused:
		if input.Back {
			w.State = Menu
		} else if input.Pause || input.Confirm {
			w.State = Playing
		}
	case Lose:
		if input.Back {
			w.State = Menu
		} else if input.Confirm {
			w.NewGame()
			w.State = Playing
		}
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// play runs one tick of the game itself.
func (w *World) play(input PlayerInput) {
	if input.Glitch && w.Glitch.TryActivate() {
		w.Player.GlitchUsed = false
		w.JustGlitched = true
	}

	d := Pt{
		boolToInt(input.Right) - boolToInt(input.Left),
		boolToInt(input.Down) - boolToInt(input.Up),
	}
	w.MovePlayer(d.Times(w.Player.Speed))

	for i := range w.Enemies {
		w.Enemies[i].Step(w)
	}

	if w.Player.Bounds.Intersects(w.GoalBounds) {
		w.LevelUp()
		return
	}

	if RectIntersectsRects(w.Player.Bounds, w.EnemyBounds()) {
		w.GameOver()
		return
	}

	// A power-up that was just picked up starts ticking on the next tick, so
	// it lasts exactly its duration.
	t := w.target()
	for _, p := range w.PowerUps {
		if p.Available() && w.Player.Bounds.Intersects(p.Bounds()) {
			p.Apply(t)
			w.JustCollected = append(w.JustCollected, p.Kind())
		} else {
			p.Update(t)
		}
	}

	w.Glitch.Step()
}

func (w *World) LevelUp() {
	w.Level++
	w.EnemySpeed++
	w.Score++
	w.JustLeveledUp = true
	w.Regenerate()
}

func (w *World) GameOver() {
	w.FinalScore = w.Score
	w.Level = 1
	w.EnemySpeed = w.Params.InitialEnemySpeed
	w.Score = 0
	w.JustLost = true
	w.Regenerate()
	w.State = Lose
}

func (w *World) NumEnemies() int64 {
	return 1 + w.Level/3
}

func (w *World) target() Target {
	return Target{Player: &w.Player, Enemies: w.Enemies}
}

func (w *World) EnemyBounds() []Rectangle {
	rects := make([]Rectangle, len(w.Enemies))
	for i := range w.Enemies {
		rects[i] = w.Enemies[i].Bounds
	}
	return rects
}

// Regenerate builds the next level from scratch: maze, goal, player, enemies
// and power-ups. The glitch is not touched, its cooldown carries over from one
// level to the next.
func (w *World) Regenerate() {
	// Undo the effects of the old power-ups before anything else changes, so
	// nothing carries over into the new level.
	t := w.target()
	for _, p := range w.PowerUps {
		p.Reset(t)
	}
	w.PowerUps = nil

	if w.Layout.IsSet() {
		var err error
		w.Grid, err = w.Layout.Grid()
		Check(err)
	} else {
		w.Grid = GenerateMaze(&w.Rand, w.Params.NRows, w.Params.NCols,
			w.Params.ExtraPaths)
	}

	reach := ReachableFrom(&w.Grid, StartCell)
	goal, ok := w.Grid.FindGoal()
	if !ok || !reach.Has(goal) {
		w.Grid.ClearGoals()
		goal = PickGoal(&w.Rand, &w.Grid, &reach, w.Params.GoalPlacement)
	}
	w.Goal = goal
	w.Grid.Set(w.Goal, Goal)
	w.GoalBounds = w.TileBounds(w.Goal)

	glitchUsed := w.Player.GlitchUsed
	w.Player = Player{
		Bounds:     RectAt(w.CellToPixel(StartCell), Pt{w.Params.PlayerSize, w.Params.PlayerSize}),
		BaseSpeed:  w.Params.PlayerSpeed,
		Speed:      w.Params.PlayerSpeed,
		GlitchUsed: glitchUsed,
	}
	w.Player.LastValidPos = w.Player.Bounds.Min

	w.Enemies = make([]Enemy, 0, w.NumEnemies())
	for range w.NumEnemies() {
		cell := PickEnemyCell(&w.Rand, &w.Grid, &reach, w.Goal)
		heading := RElem(&w.Rand, directions[:])
		w.Enemies = append(w.Enemies, NewEnemy(w.CellToPixel(cell),
			w.Params.EnemySize, w.EnemySpeed, heading))
	}

	cell := PickPowerUpCell(&w.Rand, &w.Grid, &reach, w.Goal,
		w.Params.PowerUpMinGoalDistance)
	w.PowerUps = append(w.PowerUps, NewSpeedBoost(w.TileBounds(cell),
		w.Params.SpeedBoostFactor, w.Params.SpeedBoostDuration))
	cell = PickPowerUpCell(&w.Rand, &w.Grid, &reach, w.Goal,
		w.Params.PowerUpMinGoalDistance)
	w.PowerUps = append(w.PowerUps, NewEnemySlow(w.TileBounds(cell),
		w.Params.EnemySlowSpeed, w.Params.EnemySlowPercent,
		w.Params.EnemySlowDuration))

	Assert(w.Grid.Get(StartCell) == Floor)
	Assert(w.Grid.CountGoals() == 1)
	Assert(w.borderIsWall())
}

func (w *World) borderIsWall() bool {
	var pt Pt
	for pt.Y = 0; pt.Y < w.Grid.NRows(); pt.Y++ {
		for pt.X = 0; pt.X < w.Grid.NCols(); pt.X++ {
			if w.Grid.IsBorder(pt) && w.Grid.Get(pt) != Wall {
				return false
			}
		}
	}
	return true
}

func (w *World) HUD() HUD {
	return HUD{
		Level:                  w.Level,
		Score:                  w.Score,
		EnemySpeed:             w.EnemySpeed,
		GlitchCooldownFraction: w.Glitch.CooldownFraction(),
		GlitchActive:           w.Glitch.Active,
	}
}

func (w *World) CellToPixel(cell Pt) Pt {
	return Pt{cell.X * w.Params.TileSize,
		cell.Y*w.Params.TileSize + w.Params.InfoBarHeight}
}

func (w *World) PixelToCell(pixel Pt) Pt {
	return Pt{FloorDiv(pixel.X, w.Params.TileSize),
		FloorDiv(pixel.Y-w.Params.InfoBarHeight, w.Params.TileSize)}
}

func (w *World) TileBounds(cell Pt) Rectangle {
	return RectAt(w.CellToPixel(cell), Pt{w.Params.TileSize, w.Params.TileSize})
}

// Playfield is the rectangle covered by the grid.
func (w *World) Playfield() Rectangle {
	return Rectangle{
		w.CellToPixel(Pt{0, 0}),
		w.CellToPixel(w.Grid.Size()),
	}
}
