package world

type PowerUpKind int64

const (
	SpeedBoostKind PowerUpKind = iota
	EnemySlowKind
)

func (k PowerUpKind) String() string {
	switch k {
	case SpeedBoostKind:
		return "SpeedBoost"
	case EnemySlowKind:
		return "EnemySlow"
	default:
		return "Unknown"
	}
}

// Target is what a power-up acts on. Enemies shares its backing array with
// the world, so changing the speed of Enemies[i] changes the real enemy.
type Target struct {
	Player  *Player
	Enemies []Enemy
}

// PowerUp is a timed effect that sits on the board until the player picks it
// up.
//
// Lifecycle:
// - Idle: on the board, waiting.
// - Apply: the effect starts, the power-up leaves the board and its timer
// starts. Applying an active power-up does nothing.
// - Update: called once per tick. When the timer reaches 0 it calls Remove.
// - Remove: the effect is undone and the power-up is idle again, but it stays
// off the board for the rest of the level.
// - Reset: like Remove but it can be called at any time, and it puts the
// power-up back on the board.
type PowerUp interface {
	Kind() PowerUpKind
	Bounds() Rectangle
	IsActive() bool
	TimeLeft() int64
	// Available is true if the power-up is on the board and can be picked up.
	Available() bool
	Apply(t Target)
	Update(t Target)
	Remove(t Target)
	Reset(t Target)
}

// timer holds what all power-ups have in common.
type timer struct {
	home     Rectangle
	bounds   Rectangle
	active   bool
	timeLeft int64
	duration int64
}

func newTimer(bounds Rectangle, duration int64) timer {
	return timer{home: bounds, bounds: bounds, duration: duration}
}

func (t *timer) Bounds() Rectangle { return t.bounds }
func (t *timer) IsActive() bool    { return t.active }
func (t *timer) TimeLeft() int64   { return t.timeLeft }

func (t *timer) Available() bool {
	return !t.active && t.bounds == t.home
}

// start moves the power-up to negative coordinates, where nothing on the
// playfield can touch it.
func (t *timer) start() {
	t.active = true
	t.timeLeft = t.duration
	t.bounds = t.bounds.MoveTo(Pt{-t.bounds.Width() - 1, -t.bounds.Height() - 1})
}

// tick returns true when the timer runs out.
func (t *timer) tick() bool {
	t.timeLeft--
	return t.timeLeft <= 0
}

func (t *timer) stop() {
	t.active = false
	t.timeLeft = 0
}

type SpeedBoost struct {
	timer
	Factor int64
}

func NewSpeedBoost(bounds Rectangle, factor int64, duration int64) *SpeedBoost {
	return &SpeedBoost{timer: newTimer(bounds, duration), Factor: factor}
}

func (s *SpeedBoost) Kind() PowerUpKind { return SpeedBoostKind }

func (s *SpeedBoost) Apply(t Target) {
	if s.active {
		return
	}
	t.Player.Speed *= s.Factor
	s.start()
}

func (s *SpeedBoost) Update(t Target) {
	if s.active && s.tick() {
		s.Remove(t)
	}
}

func (s *SpeedBoost) Remove(t Target) {
	if !s.active {
		return
	}
	t.Player.Speed /= s.Factor
	s.stop()
}

func (s *SpeedBoost) Reset(t Target) {
	s.Remove(t)
	s.stop()
	s.bounds = s.home
}

// EnemySlow slows down every enemy. The original speeds are remembered by
// index, not by enemy. If there are fewer enemies when the effect ends than
// when it started, only the ones that are still there get their speed back,
// and if there are more the new ones keep whatever speed they have.
type EnemySlow struct {
	timer
	// SlowSpeed is the speed every enemy gets. If it is 0, Percent is used
	// instead.
	SlowSpeed int64
	Percent   int64
	saved     []int64
}

func NewEnemySlow(bounds Rectangle, slowSpeed int64, percent int64,
	duration int64) *EnemySlow {
	return &EnemySlow{
		timer:     newTimer(bounds, duration),
		SlowSpeed: slowSpeed,
		Percent:   percent,
	}
}

func (s *EnemySlow) Kind() PowerUpKind { return EnemySlowKind }

func (s *EnemySlow) Apply(t Target) {
	if s.active {
		return
	}
	s.saved = s.saved[:0]
	for i := range t.Enemies {
		e := &t.Enemies[i]
		s.saved = append(s.saved, e.Speed)
		if s.SlowSpeed > 0 {
			e.Speed = s.SlowSpeed
		} else if e.Speed > 0 {
			e.Speed = max(1, e.Speed*s.Percent/100)
		}
	}
	s.start()
}

func (s *EnemySlow) Update(t Target) {
	if s.active && s.tick() {
		s.Remove(t)
	}
}

func (s *EnemySlow) Remove(t Target) {
	if !s.active {
		return
	}
	for i := range min(len(s.saved), len(t.Enemies)) {
		t.Enemies[i].Speed = s.saved[i]
	}
	s.saved = s.saved[:0]
	s.stop()
}

func (s *EnemySlow) Reset(t Target) {
	s.Remove(t)
	s.saved = s.saved[:0]
	s.stop()
	s.bounds = s.home
}
