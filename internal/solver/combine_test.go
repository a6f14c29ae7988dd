package solver

import (
	"testing"

	"github.com/ousticrame/quoridor/internal/game"
	"github.com/ousticrame/quoridor/internal/storage"
)

func rec(mtw uint16, move game.Move) storage.Record {
	return storage.Record{MoveToWin: mtw, Move: move}
}

// Candidates hold raw successor values: even means the opponent loses
// through that successor, so even beats odd, smaller even beats larger
// even, and larger odd beats smaller odd.
func TestCombine(t *testing.T) {
	a := game.Move(5)
	b := game.Move(9)

	cases := []struct {
		name string
		x, y storage.Record
		want game.Move
	}{
		{"even beats odd", rec(4, a), rec(3, b), a},
		{"even beats odd reversed", rec(3, a), rec(4, b), b},
		{"smaller even wins", rec(2, a), rec(6, b), a},
		{"smaller even wins reversed", rec(6, a), rec(2, b), b},
		{"larger odd wins", rec(3, a), rec(7, b), b},
		{"larger odd wins reversed", rec(7, a), rec(3, b), a},
		{"even tie keeps first", rec(4, a), rec(4, b), a},
		{"odd tie keeps first", rec(5, a), rec(5, b), a},
		{"sentinel loses to even", rec(1, a), rec(8, b), b},
		{"sentinel loses to larger odd", rec(1, a), rec(9, b), b},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := combine(c.x, c.y); got.Move != c.want {
				t.Errorf("combine picked %v, want %v", got.Move, c.want)
			}
		})
	}
}

func TestSameValue(t *testing.T) {
	x := storage.Record{Next: 1, MoveToWin: 3, Move: 5}
	y := storage.Record{Next: 99, MoveToWin: 3, Move: 5}
	if !sameValue(x, y) {
		t.Error("records differing only in Next must compare equal")
	}
	y.MoveToWin = 5
	if sameValue(x, y) {
		t.Error("records with different values must compare unequal")
	}
}
