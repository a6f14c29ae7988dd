// Package storage is the layer record store: fixed-width random-access
// files sized by the codec, two layers live at a time (the one being
// solved and the finished one above it), plus the final compression pass
// that ships the oracle files.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ousticrame/quoridor/internal/game"
)

// Dir returns the output directory for a board geometry, creating it if
// needed: <root>/data/boardSize_<B>/nbWalls_<W>/.
func Dir(root string, b game.Board) (string, error) {
	dir := filepath.Join(root, "data",
		fmt.Sprintf("boardSize_%d", b.Size),
		fmt.Sprintf("nbWalls_%d", b.Quota))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

// TempPath returns the working-file path for a layer.
func TempPath(dir string, layer int) string {
	return filepath.Join(dir, fmt.Sprintf("layer_%d_memory.temp", layer))
}

// FinalPath returns the compressed oracle-file path for a layer.
func FinalPath(dir string, layer int) string {
	return filepath.Join(dir, fmt.Sprintf("layer_%d.quoridor", layer))
}
