package main

import (
	"github.com/goccy/go-yaml"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/marisvali/neonhacker/world"
	log "github.com/sirupsen/logrus"
	"image"
	"io/fs"
	"os"
	"time"
)

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. This way the code that reads data from
// disk can use a FS object and thus work the same if the files are embedded
// or not.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}

func LoadYAML(fsys FS, filename string, v any) {
	data, err := fsys.ReadFile(filename)
	world.Check(err)
	if err != nil {
		return
	}
	world.Check(yaml.Unmarshal(data, v))
}

// LoadImage returns nil if the file doesn't exist. Every sprite has a fallback
// drawing, so a missing image is not an error.
func LoadImage(fsys FS, str string) *ebiten.Image {
	if !FileExists(fsys, str) {
		log.WithField("file", str).Warn("image not found")
		return nil
	}

	file, err := fsys.Open(str)
	world.Check(err)
	if err != nil {
		return nil
	}
	defer CloseFile(file)

	img, _, err := image.Decode(file)
	world.Check(err)
	if err != nil {
		return nil
	}

	return ebiten.NewImageFromImage(img)
}

func CloseFile(f fs.File) {
	world.Check(f.Close())
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	world.Check(err)
	return data
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

type FolderWatcher struct {
	Folder string
	times  []time.Time
}

func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	world.Check(err)
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		world.Check(err)
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed
}
