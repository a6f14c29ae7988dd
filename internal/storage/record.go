package storage

import (
	"encoding/binary"

	"github.com/ousticrame/quoridor/internal/game"
)

// Record is one layer-table entry.
type Record struct {
	// Next is the encoded index of the successor that witnesses the best
	// move: in the same layer for a pawn move, in the layer above for a
	// placement.
	Next uint64

	// MoveToWin carries the distance-to-completion in the stored
	// convention: plies plus two, with even meaning the side to move
	// loses and odd meaning it wins. The initial value 1 marks "no value
	// yet".
	MoveToWin uint16

	// Move is the encoded best move; NoMove until one is decided.
	Move game.Move
}

// RecordSize is the on-disk width of a working record: next, moveToWin and
// move packed little-endian with no padding.
const RecordSize = 12

// MoveSize is the on-disk width of a compressed entry: the move field
// alone.
const MoveSize = 2

// initialRecord is the value every slot holds after InitLayer.
var initialRecord = Record{Next: 0, MoveToWin: 1, Move: game.NoMove}

func (r Record) marshal(buf *[RecordSize]byte) {
	binary.LittleEndian.PutUint64(buf[0:8], r.Next)
	binary.LittleEndian.PutUint16(buf[8:10], r.MoveToWin)
	binary.LittleEndian.PutUint16(buf[10:12], uint16(r.Move))
}

func unmarshalRecord(buf *[RecordSize]byte) Record {
	return Record{
		Next:      binary.LittleEndian.Uint64(buf[0:8]),
		MoveToWin: binary.LittleEndian.Uint16(buf[8:10]),
		Move:      game.Move(binary.LittleEndian.Uint16(buf[10:12])),
	}
}
