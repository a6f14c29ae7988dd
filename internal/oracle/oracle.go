// Package oracle reads the generated layer files and answers "what is the
// optimal move here" in one seek per probe.
package oracle

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"

	"github.com/ousticrame/quoridor/internal/codec"
	"github.com/ousticrame/quoridor/internal/game"
	"github.com/ousticrame/quoridor/internal/storage"
)

// Prober is the interface for oracle lookups.
type Prober interface {
	// Probe looks up the optimal move for a position. NoMove means the
	// position has no decision: it is terminal, unreachable, or lost with
	// no forced line.
	Probe(pos *game.Position) (game.Move, error)
}

// FileProber probes the compressed layer files directly. Layer files are
// opened lazily and kept open; probes are safe for concurrent use.
type FileProber struct {
	board game.Board
	codec *codec.Codec
	dir   string

	mu    sync.Mutex
	files map[int]*os.File
}

// NewFileProber creates a prober over the oracle directory for one board
// geometry (see storage.Dir).
func NewFileProber(dir string, b game.Board) *FileProber {
	return &FileProber{
		board: b,
		codec: codec.New(b),
		dir:   dir,
		files: make(map[int]*os.File),
	}
}

// Probe encodes the position within its layer and reads the 16-bit move at
// index*2 in that layer's file.
func (fp *FileProber) Probe(pos *game.Position) (game.Move, error) {
	layer := fp.board.Layer(pos)
	f, err := fp.file(layer)
	if err != nil {
		return game.NoMove, err
	}

	index := fp.codec.Encode(pos, layer)
	var buf [storage.MoveSize]byte
	if _, err := f.ReadAt(buf[:], int64(index)*storage.MoveSize); err != nil {
		return game.NoMove, fmt.Errorf("probe layer %d index %d: %w", layer, index, err)
	}
	return game.Move(binary.LittleEndian.Uint16(buf[:])), nil
}

// Board returns the geometry the prober serves.
func (fp *FileProber) Board() game.Board {
	return fp.board
}

// Close releases the open layer files.
func (fp *FileProber) Close() error {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	var first error
	for layer, f := range fp.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		delete(fp.files, layer)
	}
	return first
}

func (fp *FileProber) file(layer int) (*os.File, error) {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	if f, ok := fp.files[layer]; ok {
		return f, nil
	}
	f, err := os.Open(storage.FinalPath(fp.dir, layer))
	if err != nil {
		return nil, fmt.Errorf("open layer %d: %w", layer, err)
	}
	fp.files[layer] = f
	return f, nil
}
