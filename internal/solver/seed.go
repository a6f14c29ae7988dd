package solver

import (
	"github.com/ousticrame/quoridor/internal/game"
	"github.com/ousticrame/quoridor/internal/storage"
)

// Seed writes the terminal boundary of a layer and fills the propagation
// queue. It enumerates every wall configuration of exactly layer walls that
// passes the pairwise placement check, and for each one:
//
//   - writes a loser-to-move record for every placement with a pawn on its
//     own goal row, and enqueues the straight predecessor of the winning
//     move so propagation starts from the boundary inward;
//   - below the fullest layer, enqueues every position with both pawns on
//     squares still connected to their goal rows, over all wall splits and
//     both turns, so each one is visited at least once and can pick up its
//     value from the layer above by a placement move.
//
// The fullest layer has no placement moves, so it relies on the boundary
// cascade alone.
func (s *Solver) Seed(layer int) error {
	s.log.Info().Int("layer", layer).Msg("seeding layer")
	var walls game.WallGrid
	return s.placeWalls(&walls, layer, 0, layer)
}

// placeWalls enumerates wall configurations recursively, anchors in
// increasing order, keeping every pair compatible under CanSimplePlace.
func (s *Solver) placeWalls(walls *game.WallGrid, layer, offset, remaining int) error {
	if remaining == 0 {
		return s.seedConfig(walls, layer)
	}
	interior := s.board.Interior()
	for a := offset; a <= interior-remaining; a++ {
		if remaining == layer {
			s.log.Debug().Int("layer", layer).Int("anchor", a).Msg("seeding walls")
		}
		i, j := s.board.AnchorCoords(a)
		for _, w := range []game.Wall{game.WallHorizontal, game.WallVertical} {
			if !s.board.CanSimplePlace(walls, i, j, w) {
				continue
			}
			walls[i][j] = w
			if err := s.placeWalls(walls, layer, a+1, remaining-1); err != nil {
				return err
			}
			walls[i][j] = game.WallNone
		}
	}
	return nil
}

func (s *Solver) seedConfig(walls *game.WallGrid, layer int) error {
	b := s.board
	lo, hi := s.codec.WallRange(layer)
	total := 2*b.Quota - layer

	reach := [2][game.MaxBoardSize][game.MaxBoardSize]bool{
		b.Reachable(walls, game.Player0),
		b.Reachable(walls, game.Player1),
	}

	terminal := storage.Record{Next: 0, MoveToWin: 2, Move: game.NoMove}

	// Terminal boundary: one pawn on its own goal row, the loser to move.
	for p := game.Player0; p <= game.Player1; p++ {
		q := p.Opponent()
		goal := b.GoalRow(p)
		back := goal - 1
		if p == game.Player1 {
			back = goal + 1
		}
		for wy := 0; wy < b.Size; wy++ {
			for x := 0; x < b.Size; x++ {
				for y := 0; y < b.Size; y++ {
					if !reach[q][x][y] || x == b.GoalRow(q) || (x == goal && y == wy) {
						continue
					}
					for w0 := lo; w0 <= hi; w0++ {
						var pos game.Position
						pos.Walls = *walls
						pos.Pawns[p] = game.Pawn{X: uint8(goal), Y: uint8(wy)}
						pos.Pawns[q] = game.Pawn{X: uint8(x), Y: uint8(y)}
						pos.Pawns[0].Walls = uint8(w0)
						pos.Pawns[1].Walls = uint8(total - w0)
						pos.Turn = q

						if err := s.store.Write(s.codec.Encode(&pos, layer), terminal); err != nil {
							return err
						}

						// The winner stood one row short a ply ago; start
						// the cascade there.
						pred := pos
						pred.Pawns[p].X = uint8(back)
						pred.Turn = p
						s.queue.Enqueue(s.codec.Encode(&pred, layer))
					}
				}
			}
		}
	}

	if layer == b.MaxLayer() {
		return nil
	}

	// Every consistent pawn placement, so placement moves into the layer
	// above are considered at least once.
	for x0 := 0; x0 < b.Size; x0++ {
		for y0 := 0; y0 < b.Size; y0++ {
			if !reach[0][x0][y0] || x0 == b.GoalRow(game.Player0) {
				continue
			}
			for x1 := 0; x1 < b.Size; x1++ {
				for y1 := 0; y1 < b.Size; y1++ {
					if !reach[1][x1][y1] || x1 == b.GoalRow(game.Player1) {
						continue
					}
					if x0 == x1 && y0 == y1 {
						continue
					}
					for w0 := lo; w0 <= hi; w0++ {
						for turn := game.Player0; turn <= game.Player1; turn++ {
							var pos game.Position
							pos.Walls = *walls
							pos.Pawns[0] = game.Pawn{X: uint8(x0), Y: uint8(y0), Walls: uint8(w0)}
							pos.Pawns[1] = game.Pawn{X: uint8(x1), Y: uint8(y1), Walls: uint8(total - w0)}
							pos.Turn = turn
							s.queue.Enqueue(s.codec.Encode(&pos, layer))
						}
					}
				}
			}
		}
	}
	return nil
}
