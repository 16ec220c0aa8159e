package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/neonhacker/world"
	log "github.com/sirupsen/logrus"
	"slices"
)

func (g *Gui) Update() error {
	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		log.Info("data/gui changed, reloading")
		g.LoadGuiData()
		g.visWorld.Sprites = g.Sprites
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
		if g.world.Quit {
			log.Info("quitting")
			return ebiten.Termination
		}
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic("unhandled default case")
	}

	return nil
}

// PlayerInput turns the keyboard state into what the World understands.
// Movement keys count while they are held. Everything else counts only on the
// frame the key goes down, so holding Space doesn't keep retrying the glitch.
func (g *Gui) PlayerInput() (input world.PlayerInput) {
	input.Left = g.Pressed(ebiten.KeyArrowLeft) || g.Pressed(ebiten.KeyA)
	input.Right = g.Pressed(ebiten.KeyArrowRight) || g.Pressed(ebiten.KeyD)
	input.Up = g.Pressed(ebiten.KeyArrowUp) || g.Pressed(ebiten.KeyW)
	input.Down = g.Pressed(ebiten.KeyArrowDown) || g.Pressed(ebiten.KeyS)
	input.Glitch = g.JustPressed(ebiten.KeySpace)
	input.Pause = g.JustPressed(ebiten.KeyP)
	input.Confirm = g.JustPressed(ebiten.KeyEnter) ||
		g.JustPressed(ebiten.KeyNumpadEnter)
	input.Back = g.JustPressed(ebiten.KeyEscape)
	input.Help = g.JustPressed(ebiten.KeyH)
	input.Quit = g.JustPressed(ebiten.KeyQ) && g.Pressed(ebiten.KeyControl)
	return
}

func (g *Gui) UpdatePlayScreen() {
	input := g.PlayerInput()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the World. If
		// a bug in the World causes it to crash, we want to save the input
		// that caused the bug before the program crashes.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	previousState := g.world.State
	g.world.Step(input)
	g.LogEvents(previousState)
	g.visWorld.Step(&g.world)
	g.frameIdx++
}

// LogEvents reports what happened in the last world step.
func (g *Gui) LogEvents(previousState world.State) {
	w := &g.world
	if w.State != previousState {
		log.WithFields(log.Fields{
			"from": previousState,
			"to":   w.State,
		}).Info("state changed")
	}
	if w.JustLeveledUp {
		log.WithFields(log.Fields{
			"level":      w.Level,
			"score":      w.Score,
			"enemySpeed": w.EnemySpeed,
			"enemies":    len(w.Enemies),
		}).Info("level up")
	}
	if w.JustLost {
		log.WithField("finalScore", w.FinalScore).Info("caught by a drone")
	}
	if w.JustGlitched {
		log.Debug("glitch activated")
	}
	if w.JustTeleported {
		log.WithField("pos", w.Player.Bounds.Min).Debug("glitched through a wall")
	}
	if w.JustSnappedBack {
		log.WithField("pos", w.Player.Bounds.Min).Debug("snapped back")
	}
	for _, kind := range w.JustCollected {
		log.WithField("kind", kind).Debug("power-up collected")
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

// Rewind rebuilds the world as it was right before frame frameIdx of the
// playthrough.
func (g *Gui) Rewind(frameIdx int64) {
	g.world = world.NewWorldFromPlaythrough(&g.playthrough)
	for i := range frameIdx {
		g.world.Step(g.playthrough.History[i])
	}
	g.visWorld = NewVisWorld(g.Sprites, &g.world)
	g.frameIdx = frameIdx
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	if g.JustPressed(ebiten.KeySpace) {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pt := world.Pt{X: int64(x), Y: int64(y)}
		if g.debugArea.Intersects(world.RectAt(pt, world.Pt{X: 1, Y: 1})) {
			dx := pt.X - g.debugArea.Min.X
			targetFrameIdx = dx * nFrames / g.debugArea.Width()
		}
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	// frameIdx == nFrames means every input was played.
	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))

	if targetFrameIdx != g.frameIdx {
		g.Rewind(targetFrameIdx)
	}

	if !g.playbackPaused && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(&g.world)
		g.frameIdx++
	}
}

func (g *Gui) UpdateDebugCrash() {
	// Don't do anything, wait for the player to press a key.
	nFrames := int64(len(g.playthrough.History))

	// Go to the next frame.
	goToNextFrame := g.JustPressed(ebiten.KeyD) || g.JustPressed(ebiten.KeyRight)
	if goToNextFrame && g.frameIdx < nFrames {
		g.world.Step(g.playthrough.History[g.frameIdx])
		g.visWorld.Step(&g.world)
		g.frameIdx++
		if world.CheckFailed != nil {
			log.WithError(world.CheckFailed).Warn("check failed")
			world.CheckFailed = nil
		}
	}

	// Go to the previous frame.
	goToPreviousFrame := g.JustPressed(ebiten.KeyA) || g.JustPressed(ebiten.KeyLeft)
	if goToPreviousFrame && g.frameIdx > 0 {
		// I have no better way to go to the previous frame than redoing all the
		// frames from the beginning.
		g.Rewind(g.frameIdx - 1)
	}
}
