package world

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"io"
	"slices"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
// An executable can replay any playthrough with the same InputVersion and
// SimulationVersion as the ones in the executable.
const InputVersion = 2

// SimulationVersion changes every time the World behaves differently for the
// same inputs. Old playthroughs can still be loaded but not replayed.
const SimulationVersion = 2

// Playthrough represents all the input sent to a World during a session.
// Given this input and a compatible simulation, the same output should be
// generated in the end.
type Playthrough struct {
	InputVersion      int64
	SimulationVersion int64
	ReleaseVersion    int64
	Id                uuid.UUID
	User              string
	Seed              int64
	Params            Params
	Layout            Layout
	History           []PlayerInput
}

func NewPlaythrough(releaseVersion int64, user string, seed int64,
	params Params, layout Layout) Playthrough {
	return Playthrough{
		InputVersion:      InputVersion,
		SimulationVersion: SimulationVersion,
		ReleaseVersion:    releaseVersion,
		Id:                uuid.New(),
		User:              user,
		Seed:              seed,
		Params:            params,
		Layout:            layout,
	}
}

func (p *Playthrough) Serialize() []byte {
	data, err := msgpack.Marshal(p)
	Check(err)
	return Zip(data)
}

func (p *Playthrough) Clone() *Playthrough {
	clone := *p
	clone.History = slices.Clone(p.History)
	clone.Layout.Maze = slices.Clone(p.Layout.Maze)
	return &clone
}

func DeserializePlaythrough(data []byte) (p Playthrough, err error) {
	raw, err := Unzip(data)
	if err != nil {
		return Playthrough{}, fmt.Errorf("can't unzip playthrough: %w", err)
	}
	if err = msgpack.Unmarshal(raw, &p); err != nil {
		return Playthrough{}, fmt.Errorf("can't decode playthrough: %w", err)
	}
	if p.InputVersion != InputVersion {
		return Playthrough{}, fmt.Errorf("can't deserialize this playthrough - "+
			"we are at InputVersion %d and playthrough was generated with "+
			"InputVersion %d", InputVersion, p.InputVersion)
	}
	return p, nil
}

// NewWorldFromPlaythrough creates the World the playthrough started with.
func NewWorldFromPlaythrough(p *Playthrough) World {
	if p.SimulationVersion != SimulationVersion {
		Check(fmt.Errorf("can't replay this playthrough - we are at "+
			"SimulationVersion %d and playthrough was generated with "+
			"SimulationVersion %d", SimulationVersion, p.SimulationVersion))
	}
	return NewWorld(p.Seed, p.Params, p.Layout)
}

func Zip(data []byte) []byte {
	buf := new(bytes.Buffer)
	w := zlib.NewWriter(buf)
	_, err := w.Write(data)
	Check(err)
	Check(w.Close())
	return buf.Bytes()
}

func Unzip(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer func(r io.ReadCloser) { Check(r.Close()) }(r)
	return io.ReadAll(r)
}
