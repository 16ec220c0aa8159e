package world

// Glitch is the player's wall-phasing ability. All values are in ticks.
// The cooldown only starts counting once the active window is over, so the
// glitch can be used again Duration + CooldownTotal ticks after an activation.
type Glitch struct {
	Active        bool
	Timer         int64
	Cooldown      int64
	Duration      int64
	CooldownTotal int64
}

func NewGlitch(params Params) Glitch {
	return Glitch{
		Duration:      params.GlitchDuration,
		CooldownTotal: params.GlitchCooldown,
	}
}

// TryActivate turns the glitch on, unless it is already on or still cooling
// down.
func (g *Glitch) TryActivate() bool {
	if g.Active || g.Cooldown > 0 {
		return false
	}
	g.Active = true
	g.Timer = g.Duration
	g.Cooldown = g.CooldownTotal
	return true
}

func (g *Glitch) Step() {
	if g.Active {
		g.Timer--
		if g.Timer <= 0 {
			g.Active = false
			g.Timer = 0
		}
	} else if g.Cooldown > 0 {
		g.Cooldown--
	}
}

// CooldownFraction is 1 from an activation until the active window ends and 0
// when the glitch can be activated again.
func (g *Glitch) CooldownFraction() float64 {
	if g.CooldownTotal <= 0 {
		return 0
	}
	return float64(g.Cooldown) / float64(g.CooldownTotal)
}
