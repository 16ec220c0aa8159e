package main

import (
	"github.com/marisvali/neonhacker/world"
	log "github.com/sirupsen/logrus"
)

// LoadLayout reads a hand-made maze, used to test specific situations instead
// of playing on generated mazes.
func LoadLayout(fsys FS, name string) (l world.Layout) {
	LoadYAML(fsys, name, &l)
	if !l.IsSet() {
		log.WithField("file", name).Warn("layout has no maze, generating mazes")
	}
	return
}
