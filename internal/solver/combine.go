package solver

import "github.com/ousticrame/quoridor/internal/storage"

// combine picks the better of two candidate witness records for the same
// position. Candidates carry the raw value of the successor they point to,
// before the one-ply shift, so the perspective is the opponent's: an even
// moveToWin means the opponent loses through that successor. Prefer even
// over odd; among even prefer the smaller (win sooner), among odd the
// larger (lose later). Ties keep a, which makes the enumeration order the
// deterministic tie-break.
func combine(a, b storage.Record) storage.Record {
	aEven := a.MoveToWin%2 == 0
	bEven := b.MoveToWin%2 == 0
	switch {
	case aEven && bEven:
		if a.MoveToWin <= b.MoveToWin {
			return a
		}
		return b
	case aEven:
		return a
	case bEven:
		return b
	default:
		if a.MoveToWin < b.MoveToWin {
			return b
		}
		return a
	}
}

// sameValue reports whether two records agree on the fields the fixed
// point is defined over. Next is a witness, not part of the value.
func sameValue(a, b storage.Record) bool {
	return a.Move == b.Move && a.MoveToWin == b.MoveToWin
}
