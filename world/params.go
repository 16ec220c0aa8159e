package world

import "fmt"

// Params are the tunables of the simulation. Sizes and speeds are in pixels,
// durations are in ticks.
type Params struct {
	NRows          int64 `yaml:"NRows"`
	NCols          int64 `yaml:"NCols"`
	TileSize       int64 `yaml:"TileSize"`
	InfoBarHeight  int64 `yaml:"InfoBarHeight"`
	TicksPerSecond int64 `yaml:"TicksPerSecond"`

	ExtraPaths             int64  `yaml:"ExtraPaths"`
	GoalPlacement          string `yaml:"GoalPlacement"`
	PowerUpMinGoalDistance int64  `yaml:"PowerUpMinGoalDistance"`

	PlayerSize        int64 `yaml:"PlayerSize"`
	PlayerSpeed       int64 `yaml:"PlayerSpeed"`
	EnemySize         int64 `yaml:"EnemySize"`
	InitialEnemySpeed int64 `yaml:"InitialEnemySpeed"`

	SpeedBoostFactor   int64 `yaml:"SpeedBoostFactor"`
	SpeedBoostDuration int64 `yaml:"SpeedBoostDuration"`
	EnemySlowSpeed     int64 `yaml:"EnemySlowSpeed"`
	EnemySlowPercent   int64 `yaml:"EnemySlowPercent"`
	EnemySlowDuration  int64 `yaml:"EnemySlowDuration"`

	GlitchDuration int64 `yaml:"GlitchDuration"`
	GlitchCooldown int64 `yaml:"GlitchCooldown"`
	GlitchDistance int64 `yaml:"GlitchDistance"`
}

func DefaultParams() Params {
	return Params{
		NRows:          9,
		NCols:          13,
		TileSize:       60,
		InfoBarHeight:  40,
		TicksPerSecond: 30,

		ExtraPaths:             10,
		GoalPlacement:          GoalRandom,
		PowerUpMinGoalDistance: 0,

		PlayerSize:        55,
		PlayerSpeed:       4,
		EnemySize:         60,
		InitialEnemySpeed: 2,

		SpeedBoostFactor:   2,
		SpeedBoostDuration: 200,
		EnemySlowSpeed:     1,
		EnemySlowPercent:   50,
		EnemySlowDuration:  200,

		GlitchDuration: 30,
		GlitchCooldown: 150,
		GlitchDistance: 2,
	}
}

// Validate catches params that can't describe a playable world. Grid
// dimensions below MinMazeSize are allowed, the generator raises them.
func (p *Params) Validate() error {
	positive := []struct {
		name string
		val  int64
	}{
		{"NRows", p.NRows},
		{"NCols", p.NCols},
		{"TileSize", p.TileSize},
		{"TicksPerSecond", p.TicksPerSecond},
		{"PlayerSize", p.PlayerSize},
		{"EnemySize", p.EnemySize},
		{"SpeedBoostFactor", p.SpeedBoostFactor},
		{"GlitchDistance", p.GlitchDistance},
	}
	for _, f := range positive {
		if f.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d",
				ErrInvalidParams, f.name, f.val)
		}
	}

	nonNegative := []struct {
		name string
		val  int64
	}{
		{"InfoBarHeight", p.InfoBarHeight},
		{"ExtraPaths", p.ExtraPaths},
		{"PowerUpMinGoalDistance", p.PowerUpMinGoalDistance},
		{"PlayerSpeed", p.PlayerSpeed},
		{"InitialEnemySpeed", p.InitialEnemySpeed},
		{"SpeedBoostDuration", p.SpeedBoostDuration},
		{"EnemySlowSpeed", p.EnemySlowSpeed},
		{"EnemySlowDuration", p.EnemySlowDuration},
		{"GlitchDuration", p.GlitchDuration},
		{"GlitchCooldown", p.GlitchCooldown},
	}
	for _, f := range nonNegative {
		if f.val < 0 {
			return fmt.Errorf("%w: %s can't be negative, got %d",
				ErrInvalidParams, f.name, f.val)
		}
	}

	if p.PlayerSize > p.TileSize || p.EnemySize > p.TileSize {
		return fmt.Errorf("%w: entities must fit in a tile of size %d",
			ErrInvalidParams, p.TileSize)
	}
	if p.EnemySlowSpeed == 0 &&
		(p.EnemySlowPercent <= 0 || p.EnemySlowPercent > 100) {
		return fmt.Errorf("%w: EnemySlowPercent must be in (0, 100], got %d",
			ErrInvalidParams, p.EnemySlowPercent)
	}
	if p.GoalPlacement != GoalRandom && p.GoalPlacement != GoalFarthest {
		return fmt.Errorf("%w: unknown GoalPlacement %q", ErrInvalidParams,
			p.GoalPlacement)
	}
	return nil
}
