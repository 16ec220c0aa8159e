package world

import (
	"crypto/sha256"
	"encoding/hex"
	"github.com/vmihailenco/msgpack/v5"
)

type powerUpState struct {
	Kind     PowerUpKind
	Bounds   Rectangle
	Active   bool
	TimeLeft int64
}

type worldState struct {
	State      State
	Level      int64
	Score      int64
	FinalScore int64
	EnemySpeed int64
	Cells      []Cell
	Goal       Pt
	Player     Player
	Enemies    []Enemy
	PowerUps   []powerUpState
	Glitch     Glitch
}

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes
// they are considered "the same", even though they may be implemented
// differently.
//
// I follow what the GUI shows, plus a few things it doesn't show directly
// but that decide what happens next (timers, headings, speeds). The random
// number generator is not included. If it drifts, the next maze will show it.
func (w *World) StateBytes() []byte {
	s := worldState{
		State:      w.State,
		Level:      w.Level,
		Score:      w.Score,
		FinalScore: w.FinalScore,
		EnemySpeed: w.EnemySpeed,
		Cells:      w.Grid.Cells(),
		Goal:       w.Goal,
		Player:     w.Player,
		Enemies:    w.Enemies,
		Glitch:     w.Glitch,
	}
	for _, p := range w.PowerUps {
		s.PowerUps = append(s.PowerUps, powerUpState{
			Kind:     p.Kind(),
			Bounds:   p.Bounds(),
			Active:   p.IsActive(),
			TimeLeft: p.TimeLeft(),
		})
	}
	data, err := msgpack.Marshal(&s)
	Check(err)
	return data
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough.
// - If the RegressionId hasn't changed, the refactoring did not alter the
// playthrough.
func RegressionId(p *Playthrough) string {
	_, id := Replay(p)
	return id
}

// Replay runs the whole playthrough and returns the World it ends with,
// together with its RegressionId.
func Replay(p *Playthrough) (World, string) {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(p)
	hash.Write(w.StateBytes())
	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return w, hex.EncodeToString(hash.Sum(nil))
}
