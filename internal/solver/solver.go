// Package solver computes the game-theoretic value of every position by
// layered retrograde analysis. Layers are solved from the fullest wall
// count down to the empty board; within a layer, values propagate backward
// from the terminal boundary through pawn moves, and downward from the
// finished layer above through wall placements.
package solver

import (
	"github.com/rs/zerolog"

	"github.com/ousticrame/quoridor/internal/codec"
	"github.com/ousticrame/quoridor/internal/game"
	"github.com/ousticrame/quoridor/internal/storage"
)

// Solver carries the per-run state: geometry, codec, the two-layer store
// and the propagation queue.
type Solver struct {
	board game.Board
	codec *codec.Codec
	store *storage.LayerStore
	queue *Queue
	log   zerolog.Logger
}

// New builds a solver over an opened store.
func New(c *codec.Codec, store *storage.LayerStore, log zerolog.Logger) *Solver {
	return &Solver{
		board: c.Board(),
		codec: c,
		store: store,
		queue: NewQueue(),
		log:   log,
	}
}

// Run solves every layer from the fullest down to the empty board,
// compressing and rotating each one before moving on.
func (s *Solver) Run() error {
	for layer := s.board.MaxLayer(); layer >= 0; layer-- {
		dim := s.codec.Dim(layer)
		if err := s.store.InitLayer(layer, dim); err != nil {
			return err
		}
		s.queue = NewQueue()
		if err := s.Seed(layer); err != nil {
			return err
		}
		if err := s.Propagate(layer); err != nil {
			return err
		}
		if err := s.store.Compress(layer, dim); err != nil {
			return err
		}
		if err := s.store.Rotate(); err != nil {
			return err
		}
	}
	return nil
}

// Propagate drains the queue to the layer's fixed point. Each popped code
// is re-evaluated from scratch: the best over its same-layer pawn
// successors (chain-checked) and its placements into the layer above, plus
// one ply. When the value changes, every position that can reach this one
// by a pawn move is enqueued.
func (s *Solver) Propagate(layer int) error {
	s.log.Info().Int("layer", layer).Int("queued", s.queue.Len()).Msg("propagating")
	chainLimit := 2 * s.codec.Dim(layer)

	for n := 0; !s.queue.Empty(); n++ {
		if n%100000 == 0 && n > 0 {
			s.log.Info().Int("layer", layer).Int("queued", s.queue.Len()).Msg("propagation progress")
		}
		code := s.queue.Dequeue()
		pos := s.codec.Decode(code, layer)

		// Terminal positions are boundary conditions: their seeded records
		// must survive, and nothing propagates through them.
		if _, won := s.board.Winner(&pos); won {
			continue
		}

		best := storage.Record{Next: 0, MoveToWin: 1, Move: game.NoMove}

		// Same-layer successors by pawn move.
		for d := game.Up; d <= game.Down; d++ {
			for _, jump := range []bool{false, true} {
				next := pos
				if !s.board.Move(&next, d, jump) {
					continue
				}
				succ := s.codec.Encode(&next, layer)
				ok, err := s.verifyChain(code, succ, chainLimit)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				rec, err := s.store.Read(succ, true)
				if err != nil {
					return err
				}
				rec.Next = succ
				rec.Move = game.NewPawnMove(d, jump)
				best = combine(best, rec)
			}
		}

		// Successors in the layer above by wall placement.
		if layer != s.board.MaxLayer() {
			for a := 0; a < s.board.Interior(); a++ {
				i, j := s.board.AnchorCoords(a)
				for _, w := range []game.Wall{game.WallHorizontal, game.WallVertical} {
					next := pos
					if !s.board.Place(&next, i, j, w) {
						continue
					}
					succ := s.codec.Encode(&next, layer+1)
					rec, err := s.store.Read(succ, false)
					if err != nil {
						return err
					}
					rec.Next = succ
					rec.Move = s.board.WallMove(i, j, w)
					best = combine(best, rec)
				}
			}
		}

		best.MoveToWin++

		stored, err := s.store.Read(code, true)
		if err != nil {
			return err
		}
		if sameValue(best, stored) {
			continue
		}
		if err := s.store.Write(code, best); err != nil {
			return err
		}

		// The value moved: revisit everything that can reach this position
		// by one pawn move.
		for d := game.Up; d <= game.Down; d++ {
			for _, jump := range []bool{false, true} {
				prev := pos
				if !s.board.BackMove(&prev, d, jump) {
					continue
				}
				s.queue.Enqueue(s.codec.Encode(&prev, layer))
			}
		}
	}
	return nil
}

// verifyChain checks that adopting succ as a witness for code cannot close
// a cycle of same-layer pawn moves: the witness chain must end at a record
// anchored outside the chain, either a terminal (no move, value set) or a
// wall placement whose witness lives in the layer above, without revisiting
// code. The step limit bounds degenerate chains.
func (s *Solver) verifyChain(code, succ uint64, limit uint64) (bool, error) {
	cur := succ
	for steps := uint64(0); steps < limit; steps++ {
		if cur == code {
			return false, nil
		}
		rec, err := s.store.Read(cur, true)
		if err != nil {
			return false, err
		}
		if rec.MoveToWin < 2 {
			return false, nil
		}
		if rec.Move == game.NoMove || rec.Move.IsWall() {
			return true, nil
		}
		cur = rec.Next
	}
	return false, nil
}
