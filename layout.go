package main

import "github.com/marisvali/neonhacker/world"

// Visual areas
// ------------
//
// - The game area: the info bar on top and the maze under it. This is exactly
// the space the World knows about, so World coordinates are game area
// coordinates. Its size depends on the grid size and tile size from the
// config.
// - The debug area: a play bar under the game area, only shown during
// playback.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const DebugHeight = int64(40)

func (g *Gui) GameSize() world.Pt {
	p := &g.world.Params
	return world.Pt{
		X: g.world.Grid.NCols() * p.TileSize,
		Y: g.world.Grid.NRows()*p.TileSize + p.InfoBarHeight,
	}
}

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window. Ebitengine scales that
	// bitmap to fit the window and keeps its aspect ratio.
	//
	// What I want:
	// - Cover the entire window with some background.
	// - Have a game area of a fixed size in pixels, so that I can reason about
	// it easily no matter the size of the window.
	//
	// Solution:
	// - Return a screen with the aspect ratio of the window, as small as it
	// can be while still containing the game area (and the debug area).
	// - Center the game area horizontally.
	game := g.GameSize()
	gameWidth := game.X
	gameHeight := game.Y
	if g.enableDebugArea {
		gameHeight += DebugHeight
	}

	// If the window is thinner than the game, the game fills the width and
	// there is space left at the top and the bottom. Otherwise it fills the
	// height.
	screenAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if screenAspectRatio < gameAspectRatio {
		screenWidth = int(gameWidth)
		screenHeight = int(float64(screenWidth) / screenAspectRatio)
	} else {
		screenHeight = int(gameHeight)
		screenWidth = int(float64(screenHeight) * screenAspectRatio)
	}

	g.gameArea = world.RectAt(
		world.Pt{X: (int64(screenWidth) - gameWidth) / 2},
		game)
	g.debugArea = world.RectAt(
		world.Pt{X: g.gameArea.Min.X, Y: g.gameArea.Max.Y},
		world.Pt{X: gameWidth, Y: DebugHeight})
	return
}
