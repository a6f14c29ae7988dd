package game

import "fmt"

// Move encodes a solved best move in 16 bits. The two low bits tag the
// kind: 01 for a pawn move, 11 for a wall placement. For a pawn move the
// payload is direction*2 + jumpFlag; for a placement it is
// anchor*2 + horizontalFlag, where anchor = i*(Size-1) + j.
type Move uint16

// NoMove means "no decision": an unreachable index or a still-losing leaf.
const NoMove Move = 0

const (
	tagPawn = 1
	tagWall = 3
)

// NewPawnMove encodes a pawn move.
func NewPawnMove(d Direction, jump bool) Move {
	payload := uint16(d) * 2
	if jump {
		payload++
	}
	return Move(payload*4 + tagPawn)
}

// NewWallMove encodes a wall placement at flat anchor index a.
func NewWallMove(anchor int, w Wall) Move {
	payload := uint16(anchor) * 2
	if w == WallHorizontal {
		payload++
	}
	return Move(payload*4 + tagWall)
}

// WallMove encodes a wall placement at intersection (i, j).
func (b Board) WallMove(i, j int, w Wall) Move {
	return NewWallMove(i*(b.Size-1)+j, w)
}

// IsPawn reports whether m is a pawn move.
func (m Move) IsPawn() bool {
	return m&3 == tagPawn
}

// IsWall reports whether m is a wall placement.
func (m Move) IsWall() bool {
	return m&3 == tagWall
}

// Pawn decodes a pawn move. Only valid when IsPawn.
func (m Move) Pawn() (Direction, bool) {
	payload := uint16(m) / 4
	return Direction(payload / 2), payload%2 == 1
}

// Wall decodes a wall placement into its flat anchor and orientation.
// Only valid when IsWall.
func (m Move) Wall() (int, Wall) {
	payload := uint16(m) / 4
	w := WallVertical
	if payload%2 == 1 {
		w = WallHorizontal
	}
	return int(payload / 2), w
}

// Apply plays the decoded move on pos. It returns false when the move is
// NoMove or illegal in pos.
func (b Board) Apply(pos *Position, m Move) bool {
	switch {
	case m.IsPawn():
		d, jump := m.Pawn()
		return b.Move(pos, d, jump)
	case m.IsWall():
		anchor, w := m.Wall()
		i, j := b.AnchorCoords(anchor)
		return b.Place(pos, i, j, w)
	}
	return false
}

// String renders the move for logs. Splitting a placement anchor needs the
// board size, so placements print the flat anchor index.
func (m Move) String() string {
	switch {
	case m == NoMove:
		return "none"
	case m.IsPawn():
		d, jump := m.Pawn()
		if jump {
			return d.String() + "+jump"
		}
		return d.String()
	case m.IsWall():
		anchor, w := m.Wall()
		o := "v"
		if w == WallHorizontal {
			o = "h"
		}
		return fmt.Sprintf("wall %s@%d", o, anchor)
	}
	return "invalid"
}
