package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
)

// LayerStore owns the two live layer files: current (read-write, the layer
// being solved) and previous (read-only, the finished layer above). Records
// are addressed by encoded index; the backing is a plain file so a layer
// may exceed RAM.
type LayerStore struct {
	dir      string
	current  *os.File
	previous *os.File
	log      zerolog.Logger
}

// Open prepares a store rooted at dir (see Dir).
func Open(dir string, log zerolog.Logger) *LayerStore {
	return &LayerStore{dir: dir, log: log}
}

// InitLayer creates the working file for a layer with size records, every
// slot set to the initial record. The previous layer, if any, stays open
// for reads until Rotate.
func (s *LayerStore) InitLayer(layer int, size uint64) error {
	f, err := os.OpenFile(TempPath(s.dir, layer), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("init layer %d: %w", layer, err)
	}

	s.log.Info().
		Int("layer", layer).
		Uint64("records", size).
		Str("size", humanize.Bytes(size*RecordSize)).
		Msg("initializing layer file")

	var buf [RecordSize]byte
	initialRecord.marshal(&buf)

	w := bufio.NewWriterSize(f, 1<<20)
	for i := uint64(0); i < size; i++ {
		if _, err := w.Write(buf[:]); err != nil {
			f.Close()
			return fmt.Errorf("fill layer %d: %w", layer, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("fill layer %d: %w", layer, err)
	}

	if s.current != nil {
		// A Rotate was skipped; do not leak the handle.
		s.current.Close()
	}
	s.current = f
	return nil
}

// Read returns the record at index, from the current layer when current is
// set and from the previous layer otherwise.
func (s *LayerStore) Read(index uint64, current bool) (Record, error) {
	f := s.previous
	if current {
		f = s.current
	}
	var buf [RecordSize]byte
	if _, err := f.ReadAt(buf[:], int64(index)*RecordSize); err != nil {
		return Record{}, fmt.Errorf("read record %d: %w", index, err)
	}
	return unmarshalRecord(&buf), nil
}

// Write stores the record at index in the current layer.
func (s *LayerStore) Write(index uint64, rec Record) error {
	var buf [RecordSize]byte
	rec.marshal(&buf)
	if _, err := s.current.WriteAt(buf[:], int64(index)*RecordSize); err != nil {
		return fmt.Errorf("write record %d: %w", index, err)
	}
	return nil
}

// Compress rewrites the current layer as the final oracle file: the move
// field of every record, fixed-width, in index order.
func (s *LayerStore) Compress(layer int, size uint64) error {
	s.log.Info().
		Int("layer", layer).
		Str("size", humanize.Bytes(size*MoveSize)).
		Msg("compressing layer")

	out, err := os.OpenFile(FinalPath(s.dir, layer), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("compress layer %d: %w", layer, err)
	}
	defer out.Close()

	in := bufio.NewReaderSize(io.NewSectionReader(s.current, 0, int64(size)*RecordSize), 1<<20)
	w := bufio.NewWriterSize(out, 1<<20)

	var buf [RecordSize]byte
	for i := uint64(0); i < size; i++ {
		if _, err := io.ReadFull(in, buf[:]); err != nil {
			return fmt.Errorf("compress layer %d: read record %d: %w", layer, i, err)
		}
		if _, err := w.Write(buf[10:12]); err != nil {
			return fmt.Errorf("compress layer %d: %w", layer, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("compress layer %d: %w", layer, err)
	}
	return out.Sync()
}

// Rotate finishes the current layer: the prior previous layer is dropped
// and current becomes the previous layer for the next, wall-lighter solve.
func (s *LayerStore) Rotate() error {
	if s.previous != nil {
		if err := s.previous.Close(); err != nil {
			return fmt.Errorf("rotate: %w", err)
		}
	}
	s.previous = s.current
	s.current = nil
	return nil
}

// Close releases both layer files.
func (s *LayerStore) Close() error {
	var first error
	for _, f := range []*os.File{s.previous, s.current} {
		if f != nil {
			if err := f.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	s.previous, s.current = nil, nil
	return first
}
