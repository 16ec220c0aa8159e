package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/neonhacker/world"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	_ "image/png"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play. It is meant as a unique label for the functionality that a
// user/player is presented with.
// ReleaseVersion must change when world.SimulationVersion or
// world.InputVersion change. But it also changes for things that don't touch
// the simulation:
// - asserts are enabled or disabled
// - writing to the disk is enabled or disabled
// - graphics change
const ReleaseVersion = 2

//go:embed data/*
var embeddedFiles embed.FS

type GuiState int64

const (
	PlayScreen GuiState = iota
	Playback
	DebugCrash
)

type Gui struct {
	Config
	Sprites
	FSys                FS
	world               world.World
	visWorld            VisWorld
	playthrough         world.Playthrough
	frameIdx            int64
	state               GuiState
	playbackPaused      bool
	pressedKeys         []ebiten.Key
	justPressedKeys     []ebiten.Key // keys pressed in this frame
	FrameSkipShiftArrow int64
	FrameSkipArrow      int64
	folderWatcher       FolderWatcher
	defaultFont         font.Face
	smallFont           font.Face
	gameArea            world.Rectangle
	debugArea           world.Rectangle
	enableDebugArea     bool
	username            string
	devModeEnabled      bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LoadTest      bool   `yaml:"LoadTest"`
	TestFile      string `yaml:"TestFile"`
	LogLevel      string `yaml:"LogLevel"`
	// Seed is used for the world if it's not 0. Otherwise every run gets a
	// new seed.
	Seed  int64        `yaml:"Seed"`
	World world.Params `yaml:"World"`
}

type Sprites struct {
	animPlayer     Animation
	animEnemy      Animation
	animSpeedBoost Animation
	animEnemySlow  Animation
}

func main() {
	ebiten.SetWindowPosition(100, 100)

	var g Gui
	g.username = getUsername()
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data/gui"
		// Initialize the watcher so that it doesn't report a change on the
		// first frame.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.state = Playback
		g.enableDebugArea = true
		g.playthrough = LoadPlaythrough(g.PlaybackFile)
		log.WithFields(log.Fields{
			"file":   g.PlaybackFile,
			"frames": len(g.playthrough.History),
		}).Info("playing back recording")
	} else if g.StartState == "DebugCrash" {
		g.state = DebugCrash
		g.enableDebugArea = true
		// Don't crash when we are debugging the crash. This is useful if the
		// crash was caused by one of my asserts:
		// - world.Step() crashed during the last frame, because of a Check()
		// - Now Check() doesn't crash anymore.
		// - I can have the world.Step() with the bug execute, and I can see the
		// results visually
		world.CheckCrashes = false
		g.playthrough = LoadPlaythrough(g.PlaybackFile)
	} else if g.StartState == "Play" {
		g.state = PlayScreen
		var layout world.Layout
		if g.LoadTest {
			layout = LoadLayout(g.FSys, g.TestFile)
		}
		seed := g.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.playthrough = world.NewPlaythrough(ReleaseVersion, g.username, seed,
			g.World, layout)
		if g.RecordToFile {
			log.WithField("file", g.RecordingFile).Info("recording playthrough")
		}
	} else {
		world.Check(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = world.NewWorldFromPlaythrough(&g.playthrough)
	// The world may not use the params from the config: a recording keeps its
	// own params and the maze generator raises grids that are too small.
	g.UpdateWindowSize()
	g.visWorld = NewVisWorld(g.Sprites, &g.world)
	ebiten.SetTPS(int(g.world.Params.TicksPerSecond))

	// The last input caused the crash, so run the whole playthrough except the
	// last input. This gives me a chance to see the current state of the world
	// visually, maybe place a breakpoint and inspect the state of the world
	// in the debugger, and then when I'm ready, trigger the bug.
	if g.state == DebugCrash {
		g.frameIdx = max(0, int64(len(g.playthrough.History))-1)
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
	}

	err := ebiten.RunGame(&g)
	world.Check(err)
}

func LoadPlaythrough(name string) world.Playthrough {
	p, err := world.DeserializePlaythrough(ReadFile(name))
	world.Check(err)
	return p
}
