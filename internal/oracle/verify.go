package oracle

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ousticrame/quoridor/internal/game"
)

// PlayOut follows oracle moves from start until the game is decided,
// returning the winner and the number of plies played. A NoMove answer
// means the side to move has lost with no forced line, so the opponent
// wins on the spot. Every probed move is applied through the rules, so an
// illegal stored move fails loudly.
func PlayOut(p Prober, b game.Board, start game.Position, maxPlies int) (game.Player, int, error) {
	pos := start
	for ply := 0; ply < maxPlies; ply++ {
		if winner, done := b.Winner(&pos); done {
			return winner, ply, nil
		}
		m, err := p.Probe(&pos)
		if err != nil {
			return 0, ply, err
		}
		if m == game.NoMove {
			return pos.Turn.Opponent(), ply, nil
		}
		if !b.Apply(&pos, m) {
			return 0, ply, fmt.Errorf("oracle: illegal move %s in %s", m, pos.String())
		}
	}
	return 0, maxPlies, fmt.Errorf("oracle: no result within %d plies from %s", maxPlies, start.String())
}

// Verify plays out every start position concurrently and reports the first
// inconsistency. It only reads finalized oracle files, so the fan-out is
// safe.
func Verify(p Prober, b game.Board, starts []game.Position, maxPlies, workers int) error {
	var g errgroup.Group
	g.SetLimit(workers)
	for _, start := range starts {
		g.Go(func() error {
			_, _, err := PlayOut(p, b, start, maxPlies)
			return err
		})
	}
	return g.Wait()
}
