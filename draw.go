package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/neonhacker/world"
	"image/color"
)

var (
	colorBackground = color.NRGBA{R: 8, G: 8, B: 20, A: 255}
	colorInfoBar    = color.NRGBA{R: 16, G: 16, B: 36, A: 255}
	colorWall       = color.NRGBA{R: 0, G: 255, B: 120, A: 255}
	colorWallFill   = color.NRGBA{R: 0, G: 60, B: 30, A: 255}
	colorGoal       = color.NRGBA{R: 190, G: 60, B: 255, A: 255}
	colorPlayer     = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	colorGlitch     = color.NRGBA{R: 255, G: 0, B: 200, A: 255}
	colorEnemy      = color.NRGBA{R: 255, G: 40, B: 80, A: 255}
	colorSpeedBoost = color.NRGBA{R: 255, G: 220, B: 0, A: 255}
	colorEnemySlow  = color.NRGBA{R: 60, G: 140, B: 255, A: 255}
	colorText       = color.NRGBA{R: 220, G: 255, B: 240, A: 255}
	colorOverlay    = color.NRGBA{R: 0, G: 0, B: 0, A: 190}
)

func (g *Gui) Draw(screen *ebiten.Image) {
	// The screen bitmap has the aspect ratio of the application window. We fill
	// it with some background. Then, we select the area inside of screen on
	// which we draw all the actually interesting elements of our game.
	screen.Fill(colorBackground)

	game := SubImage(screen, g.gameArea)
	g.DrawInfoBar(game)
	g.DrawMaze(game)
	g.DrawGoal(game)
	g.DrawPowerUps(game)
	g.DrawEnemies(game)
	g.DrawPlayer(game)
	g.DrawFlashes(game)

	switch g.world.State {
	case world.Menu:
		g.DrawOverlay(game, "NEON HACKER",
			"Enter to start, H for help, Ctrl+Q to quit")
	case world.Instructions:
		g.DrawInstructions(game)
	case world.Paused:
		g.DrawOverlay(game, "PAUSED", "P to resume, Esc for the menu")
	case world.Lose:
		g.DrawOverlay(game, fmt.Sprintf("CAUGHT - SCORE %d", g.world.FinalScore),
			"Enter to retry, Esc for the menu")
	default:
	}

	if g.enableDebugArea {
		g.DrawPlayBar(SubImage(screen, g.debugArea))
	}
}

func (g *Gui) DrawInfoBar(screen *ebiten.Image) {
	bar := world.Rectangle{
		Max: world.Pt{X: g.gameArea.Width(), Y: g.world.Params.InfoBarHeight},
	}
	DrawFilledRect(screen, bar, colorInfoBar)
	if bar.Height() == 0 {
		return
	}

	hud := g.world.HUD()
	third := bar.Width() / 3
	g.DrawText(SubImage(screen, world.Rectangle{
		Min: world.Pt{X: 10},
		Max: world.Pt{X: third, Y: bar.Max.Y}}),
		fmt.Sprintf("LEVEL %d  SCORE %d", hud.Level, hud.Score),
		false, true, colorText)
	g.DrawText(SubImage(screen, world.Rectangle{
		Min: world.Pt{X: third},
		Max: world.Pt{X: 2 * third, Y: bar.Max.Y}}),
		fmt.Sprintf("DRONE SPEED %d", hud.EnemySpeed),
		true, true, colorText)

	// The glitch bar is full when the glitch is ready and empties right after
	// it is used.
	glitchArea := world.Rectangle{
		Min: world.Pt{X: 2*third + 10, Y: bar.Height() / 4},
		Max: world.Pt{X: bar.Width() - 10, Y: bar.Height() * 3 / 4},
	}
	ready := glitchArea
	ready.Max.X = ready.Min.X +
		int64(float64(glitchArea.Width())*(1-hud.GlitchCooldownFraction))
	barColor := colorWall
	if hud.GlitchActive {
		barColor = colorGlitch
	}
	DrawFilledRect(screen, ready, barColor)
	DrawRect(screen, glitchArea, 2, colorText)
	g.DrawText(SubImage(screen, glitchArea), "GLITCH", true, true, colorBackground)
}

func (g *Gui) DrawMaze(screen *ebiten.Image) {
	grid := &g.world.Grid
	var pt world.Pt
	for pt.Y = 0; pt.Y < grid.NRows(); pt.Y++ {
		for pt.X = 0; pt.X < grid.NCols(); pt.X++ {
			if grid.Get(pt) != world.Wall {
				continue
			}
			tile := g.world.TileBounds(pt)
			DrawFilledRect(screen, tile, colorWallFill)
			DrawRect(screen, tile, 1, colorWall)
		}
	}
}

func (g *Gui) DrawGoal(screen *ebiten.Image) {
	goal := g.world.GoalBounds
	DrawFilledRect(screen, goal, WithAlpha(colorGoal, 0.35))
	DrawRect(screen, goal, g.visWorld.GoalGlow, colorGoal)
}

func (g *Gui) DrawPowerUps(screen *ebiten.Image) {
	for _, p := range g.world.PowerUps {
		if !p.Available() {
			continue
		}
		switch p.Kind() {
		case world.SpeedBoostKind:
			DrawEntity(screen, g.visWorld.Sprites.animSpeedBoost.CurrentImg(),
				p.Bounds(), colorSpeedBoost)
		case world.EnemySlowKind:
			DrawEntity(screen, g.visWorld.Sprites.animEnemySlow.CurrentImg(),
				p.Bounds(), colorEnemySlow)
		}
	}
}

func (g *Gui) DrawEnemies(screen *ebiten.Image) {
	for _, e := range g.world.Enemies {
		DrawEntity(screen, g.visWorld.Sprites.animEnemy.CurrentImg(), e.Bounds,
			colorEnemy)
	}
}

func (g *Gui) DrawPlayer(screen *ebiten.Image) {
	bounds := g.world.Player.Bounds
	DrawEntity(screen, g.visWorld.Sprites.animPlayer.CurrentImg(), bounds,
		colorPlayer)
	if g.world.Glitch.Active && !g.world.Player.GlitchUsed {
		DrawRect(screen, bounds, 3, colorGlitch)
	}
}

func (g *Gui) DrawFlashes(screen *ebiten.Image) {
	for _, f := range g.visWorld.Flashes {
		DrawFilledRect(screen, f.Bounds, WithAlpha(f.Color, f.Alpha))
	}
}

func (g *Gui) DrawOverlay(screen *ebiten.Image, title string, hint string) {
	size := screen.Bounds().Size()
	DrawFilledRect(screen, world.Rectangle{
		Max: world.Pt{X: int64(size.X), Y: int64(size.Y)}}, colorOverlay)

	mid := int64(size.Y) / 2
	g.DrawText(SubImage(screen, world.Rectangle{
		Max: world.Pt{X: int64(size.X), Y: mid}}),
		title, true, false, colorText)
	g.DrawTextWithFace(SubImage(screen, world.Rectangle{
		Min: world.Pt{Y: mid},
		Max: world.Pt{X: int64(size.X), Y: mid + 60}}),
		g.smallFont, hint, true, true, colorText)
}

var instructions = []string{
	"Arrow keys / WASD to move",
	"Avoid the drones",
	"Reach the purple portal to go deeper",
	"Collect power-ups for boosts",
	"Space to glitch through a wall",
	"P to pause",
}

func (g *Gui) DrawInstructions(screen *ebiten.Image) {
	size := screen.Bounds().Size()
	DrawFilledRect(screen, world.Rectangle{
		Max: world.Pt{X: int64(size.X), Y: int64(size.Y)}}, colorOverlay)

	lineHeight := int64(size.Y) / int64(len(instructions)+3)
	line := func(i int64) *ebiten.Image {
		return SubImage(screen, world.Rectangle{
			Min: world.Pt{Y: i * lineHeight},
			Max: world.Pt{X: int64(size.X), Y: (i + 1) * lineHeight}})
	}
	g.DrawText(line(0), "HOW TO PLAY", true, true, colorGoal)
	for i, msg := range instructions {
		g.DrawTextWithFace(line(int64(i)+1), g.smallFont, msg, true, true,
			colorText)
	}
	g.DrawTextWithFace(line(int64(len(instructions))+2), g.smallFont,
		"Esc to return to the menu", true, true, colorWall)
}

func (g *Gui) DrawPlayBar(screen *ebiten.Image) {
	screen.Fill(colorInfoBar)
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}
	size := screen.Bounds().Size()
	cursorX := g.frameIdx * int64(size.X) / nFrames
	DrawFilledRect(screen, world.Rectangle{
		Max: world.Pt{X: cursorX, Y: int64(size.Y)}},
		WithAlpha(colorWall, 0.5))

	status := "playing"
	if g.playbackPaused || g.state == DebugCrash {
		status = "paused"
	}
	g.DrawTextWithFace(screen, g.smallFont,
		fmt.Sprintf("frame %d / %d (%s)", g.frameIdx, nFrames, status),
		true, true, colorText)
}
