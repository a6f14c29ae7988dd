package codec

import (
	"fmt"
	"math/bits"

	"github.com/ousticrame/quoridor/internal/game"
)

// Codec is the position<->index bijection for one board geometry. The
// mixed-radix digit order, most significant first: wall-anchor subset rank
// (co-lexicographic), one orientation bit per wall, the four pawn
// coordinates, player 0's wall count offset into the layer's range, and the
// turn bit.
type Codec struct {
	board  game.Board
	pascal *Pascal
}

// New builds a codec, precomputing the Pascal table for the board's
// interior intersection count.
func New(b game.Board) *Codec {
	return &Codec{board: b, pascal: NewPascal(b.Interior())}
}

// Board returns the geometry the codec was built for.
func (c *Codec) Board() game.Board {
	return c.board
}

// Pascal exposes the combinatorics table.
func (c *Codec) Pascal() *Pascal {
	return c.pascal
}

// WallRange returns the bounds of player 0's remaining wall count within
// the layer: with layer walls on the board, player 0 holds between
// max(0, Quota-layer) and min(2*Quota-layer, Quota) walls inclusive.
func (c *Codec) WallRange(layer int) (lo, hi int) {
	q := c.board.Quota
	return max(0, q-layer), min(2*q-layer, q)
}

func (c *Codec) wallSpan(layer int) (lo, span int) {
	lo, hi := c.WallRange(layer)
	return lo, 1 + hi - lo
}

// Dim returns the layer size: the number of encodable positions with
// exactly layer walls. It panics when the product overflows 64 bits; the
// driver sizes files from it, so the overflow must surface before any I/O.
func (c *Codec) Dim(layer int) uint64 {
	b := uint64(c.board.Size)
	_, span := c.wallSpan(layer)

	result := c.pascal.C(c.board.Interior(), layer)
	for _, f := range []uint64{uint64(1) << layer, b * b * b * b, uint64(span), 2} {
		hi, lo := bits.Mul64(result, f)
		if hi != 0 {
			panic(fmt.Sprintf("codec: layer %d dimension overflows uint64", layer))
		}
		result = lo
	}
	return result
}

// Encode maps a position with exactly layer walls to its index in
// [0, Dim(layer)).
func (c *Codec) Encode(pos *game.Position, layer int) uint64 {
	n := c.board.Size - 1
	interior := c.board.Interior()

	anchors := make([]int, 0, layer)
	horizontal := make([]bool, 0, layer)
	for a := 0; a < interior; a++ {
		if w := pos.Walls[a/n][a%n]; w != game.WallNone {
			anchors = append(anchors, a)
			horizontal = append(horizontal, w == game.WallHorizontal)
		}
	}

	// Combinatorial rank of the anchor subset.
	var result uint64
	start := 0
	for i, a := range anchors {
		for j := start; j < a; j++ {
			result += c.pascal.C(interior-(j+1), layer-(i+1))
		}
		start = a + 1
	}

	for _, h := range horizontal {
		result *= 2
		if h {
			result++
		}
	}

	b := uint64(c.board.Size)
	result = result*b + uint64(pos.Pawns[0].X)
	result = result*b + uint64(pos.Pawns[0].Y)
	result = result*b + uint64(pos.Pawns[1].X)
	result = result*b + uint64(pos.Pawns[1].Y)

	lo, span := c.wallSpan(layer)
	result = result*uint64(span) + uint64(int(pos.Pawns[0].Walls)-lo)

	return result*2 + uint64(pos.Turn)
}

// Decode maps an index back to its position, reversing Encode digit by
// digit. It does not check reachability: unreachable indices decode to
// positions the solver never visits.
func (c *Codec) Decode(code uint64, layer int) game.Position {
	var pos game.Position
	b := uint64(c.board.Size)
	n := c.board.Size - 1
	interior := c.board.Interior()

	pos.Turn = game.Player(code % 2)
	code /= 2

	lo, span := c.wallSpan(layer)
	pos.Pawns[0].Walls = uint8(int(code%uint64(span)) + lo)
	pos.Pawns[1].Walls = uint8(2*c.board.Quota - layer - int(pos.Pawns[0].Walls))
	code /= uint64(span)

	pos.Pawns[1].Y = uint8(code % b)
	code /= b
	pos.Pawns[1].X = uint8(code % b)
	code /= b
	pos.Pawns[0].Y = uint8(code % b)
	code /= b
	pos.Pawns[0].X = uint8(code % b)
	code /= b

	orientations := make([]game.Wall, layer)
	for i := layer; i > 0; i-- {
		if code%2 == 1 {
			orientations[i-1] = game.WallHorizontal
		} else {
			orientations[i-1] = game.WallVertical
		}
		code /= 2
	}

	// Greedy unranking of the anchor subset.
	start := 0
	for i := 0; i < layer; i++ {
		for j := start; j < interior; j++ {
			d := c.pascal.C(interior-(j+1), layer-(i+1))
			if code < d {
				pos.Walls[j/n][j%n] = orientations[i]
				start = j + 1
				break
			}
			code -= d
		}
	}

	return pos
}
