// quoridor-gen solves Quoridor by exhaustive retrograde analysis and writes
// the per-layer oracle files under data/ in the working directory.
package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog"

	"github.com/ousticrame/quoridor/internal/codec"
	"github.com/ousticrame/quoridor/internal/game"
	"github.com/ousticrame/quoridor/internal/solver"
	"github.com/ousticrame/quoridor/internal/storage"
)

// Board parameters are fixed at build time; the output tree is named after
// them.
const (
	boardSize = 4
	nbWalls   = 0
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	board := game.Board{Size: boardSize, Quota: nbWalls}
	log.Info().Int("boardSize", board.Size).Int("nbWalls", board.Quota).Msg("starting generation")

	dir, err := storage.Dir(".", board)
	if err != nil {
		log.Fatal().Err(err).Msg("could not prepare output directory")
	}

	c := codec.New(board)
	log.Info().Uint64("positions", c.Dim(board.MaxLayer())).Msg("fullest layer sized")

	store := storage.Open(dir, log)
	defer store.Close()

	if err := solver.New(c, store, log).Run(); err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
	log.Info().Str("dir", dir).Msg("generation complete")
}
