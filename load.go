package main

import (
	"embed"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/neonhacker/world"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// This repetition is meant to avoid crashes due to reading files
	// while they are still being written.
	// It's a hack but possibly a quick and very useful one.
	// This repeated reading is only useful when we're not reading from the
	// embedded filesystem. When we're reading from the embedded filesystem we
	// want to crash as soon as possible. We might be in the browser, in which
	// case we want to see an error in the developer console instead of a page
	// that keeps trying to load and reports nothing.
	previousVal := world.CheckCrashes
	if _, embedded := g.FSys.(*embed.FS); !embedded {
		world.CheckCrashes = false
	}
	for {
		world.CheckFailed = nil
		// Fields missing from the yaml keep their default values.
		g.Config.World = world.DefaultParams()
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		g.animPlayer = NewAnimation(g.FSys, "data/gui/player")
		g.animEnemy = NewAnimation(g.FSys, "data/gui/enemy")
		g.animSpeedBoost = NewAnimation(g.FSys, "data/gui/speed-boost")
		g.animEnemySlow = NewAnimation(g.FSys, "data/gui/enemy-slow")

		if world.CheckFailed == nil {
			break
		}
		log.WithError(world.CheckFailed).Warn("loading gui data failed, retrying")
	}
	world.CheckCrashes = previousVal

	if g.LogLevel != "" {
		level, err := log.ParseLevel(g.LogLevel)
		world.Check(err)
		log.SetLevel(level)
	}

	// Load the Go font.
	fontData, err := opentype.Parse(goregular.TTF)
	world.Check(err)

	g.defaultFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    28,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	world.Check(err)

	g.smallFont, err = opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	world.Check(err)
}

// UpdateWindowSize sizes the window for the world that is actually running,
// at most 90% of the monitor.
func (g *Gui) UpdateWindowSize() {
	monitorWidth, monitorHeight := ebiten.Monitor().Size()
	width, height := g.WindowSize(monitorWidth, monitorHeight)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Neon Hacker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// WindowSize fits the game area, and the debug area if it is shown, in 90% of
// the monitor. The game is never scaled up. A monitor of unknown size (0)
// doesn't limit anything.
func (g *Gui) WindowSize(monitorWidth, monitorHeight int) (int, int) {
	game := g.GameSize()
	width := float64(game.X)
	height := float64(game.Y)
	if g.enableDebugArea {
		height += float64(DebugHeight)
	}

	maxWidth := float64(monitorWidth) * 0.9
	maxHeight := float64(monitorHeight) * 0.9
	scale := 1.0
	if maxWidth > 0 && maxHeight > 0 {
		scale = min(1.0, maxWidth/width, maxHeight/height)
	}
	return int(width * scale), int(height * scale)
}
