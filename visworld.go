package main

import (
	"github.com/marisvali/neonhacker/world"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"image/color"
)

const (
	goalGlowMin      = 2
	goalGlowMax      = 6
	goalPulseSeconds = 0.8
	flashSeconds     = 0.4
)

// Flash is a rectangle that lights up and fades away. It doesn't represent an
// entity in the World, it is a standalone effect, like a splash.
type Flash struct {
	Bounds world.Rectangle
	Color  color.NRGBA
	Alpha  float32
	tween  *gween.Tween
	done   bool
}

// VisWorld is a world parallel to World that holds "visual logic". Its role is
// to store data and execute logic for ongoing visual effects like animations.
// Draw() relies the information in VisWorld to draw things, just like it relies
// on World.
//
// VisWorld runs parallel to World and is meant to be updated alongside World,
// in the Update() function.
type VisWorld struct {
	Sprites  Sprites
	GoalGlow float32
	Flashes  []*Flash
	dt       float32
	pulse    *gween.Tween
	pulseUp  bool
}

func NewVisWorld(sprites Sprites, w *world.World) (v VisWorld) {
	v.Sprites = sprites
	v.dt = 1 / float32(w.Params.TicksPerSecond)
	v.GoalGlow = goalGlowMin
	v.pulseUp = true
	v.pulse = gween.New(goalGlowMin, goalGlowMax, goalPulseSeconds, ease.InOutSine)
	return v
}

func (v *VisWorld) Step(w *world.World) {
	v.Sprites.animPlayer.Step()
	v.Sprites.animEnemy.Step()
	v.Sprites.animSpeedBoost.Step()
	v.Sprites.animEnemySlow.Step()

	// The goal glows brighter and dimmer, forever.
	var done bool
	v.GoalGlow, done = v.pulse.Update(v.dt)
	if done {
		v.pulseUp = !v.pulseUp
		if v.pulseUp {
			v.pulse = gween.New(goalGlowMin, goalGlowMax, goalPulseSeconds, ease.InOutSine)
		} else {
			v.pulse = gween.New(goalGlowMax, goalGlowMin, goalPulseSeconds, ease.InOutSine)
		}
	}

	// Step existing flashes.
	for _, f := range v.Flashes {
		f.Alpha, f.done = f.tween.Update(v.dt)
	}

	// Filter out obsolete flashes.
	n := 0
	for i := range v.Flashes {
		if !v.Flashes[i].done {
			v.Flashes[n] = v.Flashes[i]
			n++
		}
	}
	v.Flashes = v.Flashes[:n]

	// Create new flashes if necessary.
	if w.JustTeleported {
		v.AddFlash(w.Player.Bounds, colorGlitch)
	}
	if w.JustSnappedBack {
		v.AddFlash(w.Player.Bounds, colorEnemy)
	}
	for _, kind := range w.JustCollected {
		c := colorSpeedBoost
		if kind == world.EnemySlowKind {
			c = colorEnemySlow
		}
		v.AddFlash(w.Player.Bounds, c)
	}
	if w.JustLeveledUp {
		v.AddFlash(w.Playfield(), colorGoal)
	}
}

func (v *VisWorld) AddFlash(bounds world.Rectangle, c color.NRGBA) {
	v.Flashes = append(v.Flashes, &Flash{
		Bounds: bounds,
		Color:  c,
		Alpha:  0.8,
		tween:  gween.New(0.8, 0, flashSeconds, ease.OutQuad),
	})
}
