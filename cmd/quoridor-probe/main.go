// quoridor-probe looks up generated oracle files: it plays out the optimal
// line from the starting position, and can sweep random self-play games to
// verify a generated table.
package main

import (
	"flag"
	"fmt"
	"os"

	"lukechampine.com/frand"

	"github.com/ousticrame/quoridor/internal/game"
	"github.com/ousticrame/quoridor/internal/oracle"
	"github.com/ousticrame/quoridor/internal/storage"
)

// Board parameters are fixed at build time and must match the generated
// files.
const (
	boardSize = 4
	nbWalls   = 0
)

var (
	verify   = flag.Int("verify", 0, "self-play this many random start positions")
	workers  = flag.Int("workers", 4, "concurrent self-play games during -verify")
	maxPlies = flag.Int("max-plies", 4096, "abort a play-out after this many plies")
	cacheDir = flag.String("cache", "", "cache probes in a badger database at this directory")
)

func main() {
	flag.Parse()

	board := game.Board{Size: boardSize, Quota: nbWalls}
	dir, err := storage.Dir(".", board)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fp := oracle.NewFileProber(dir, board)
	defer fp.Close()

	var prober oracle.Prober = fp
	if *cacheDir != "" {
		cp, err := oracle.NewCachedProber(fp, board, *cacheDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer cp.Close()
		prober = cp
	}

	if *verify > 0 {
		starts := make([]game.Position, *verify)
		for i := range starts {
			starts[i] = randomStart(board)
		}
		if err := oracle.Verify(prober, board, starts, *maxPlies, *workers); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("verified %d self-play games\n", *verify)
		return
	}

	if err := printLine(prober, board, *maxPlies); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printLine plays the oracle against itself from the standard start and
// prints every move.
func printLine(p oracle.Prober, b game.Board, maxPlies int) error {
	pos := startPosition(b)
	for ply := 0; ply < maxPlies; ply++ {
		if winner, done := b.Winner(&pos); done {
			fmt.Printf("player %d wins after %d plies\n", winner, ply)
			return nil
		}
		m, err := p.Probe(&pos)
		if err != nil {
			return err
		}
		if m == game.NoMove {
			fmt.Printf("player %d has no move, player %d wins after %d plies\n",
				pos.Turn, pos.Turn.Opponent(), ply)
			return nil
		}
		fmt.Printf("%3d  %s  %s\n", ply+1, pos.String(), m)
		if !b.Apply(&pos, m) {
			return fmt.Errorf("oracle returned illegal move %s in %s", m, pos.String())
		}
	}
	return fmt.Errorf("no result within %d plies", maxPlies)
}

// startPosition places both pawns mid-edge with full wall quotas.
func startPosition(b game.Board) game.Position {
	var pos game.Position
	pos.Pawns[0] = game.Pawn{X: 0, Y: uint8(b.Size / 2), Walls: uint8(b.Quota)}
	pos.Pawns[1] = game.Pawn{X: uint8(b.Size - 1), Y: uint8(b.Size / 2), Walls: uint8(b.Quota)}
	pos.Turn = game.Player0
	return pos
}

// randomStart draws a wall-free position with neither pawn on its goal row.
func randomStart(b game.Board) game.Position {
	var pos game.Position
	pos.Pawns[0] = game.Pawn{
		X:     uint8(frand.Intn(b.Size - 1)),
		Y:     uint8(frand.Intn(b.Size)),
		Walls: uint8(b.Quota),
	}
	for {
		p1 := game.Pawn{
			X:     uint8(1 + frand.Intn(b.Size-1)),
			Y:     uint8(frand.Intn(b.Size)),
			Walls: uint8(b.Quota),
		}
		if p1.X != pos.Pawns[0].X || p1.Y != pos.Pawns[0].Y {
			pos.Pawns[1] = p1
			break
		}
	}
	pos.Turn = game.Player(frand.Intn(2))
	return pos
}
