// Replay runs recorded playthroughs without a window and prints what they
// ended up as. If a change to the world package changes the regression id of
// an old recording, the simulation changed.
//
// Usage: replay <playthrough-file>...
package main

import (
	"fmt"
	"github.com/marisvali/neonhacker/world"
	log "github.com/sirupsen/logrus"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: replay <playthrough-file>...")
		os.Exit(2)
	}

	failed := false
	for _, name := range os.Args[1:] {
		if err := ReplayFile(name); err != nil {
			log.WithError(err).WithField("file", name).Error("replay failed")
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func ReplayFile(name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	p, err := world.DeserializePlaythrough(data)
	if err != nil {
		return err
	}
	if p.SimulationVersion != world.SimulationVersion {
		return fmt.Errorf("recorded with simulation version %d, current is %d",
			p.SimulationVersion, world.SimulationVersion)
	}

	w, id := world.Replay(&p)

	log.WithFields(log.Fields{
		"file":    name,
		"id":      p.Id,
		"user":    p.User,
		"release": p.ReleaseVersion,
		"frames":  len(p.History),
		"state":   w.State,
		"level":   w.Level,
		"score":   w.Score,
	}).Info("replayed")
	fmt.Printf("%s %s\n", name, id)
	fmt.Print(w.Grid.String())
	return nil
}
