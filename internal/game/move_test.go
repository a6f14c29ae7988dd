package game

import "testing"

func TestPawnMoveRoundTrip(t *testing.T) {
	for d := Up; d <= Down; d++ {
		for _, jump := range []bool{false, true} {
			m := NewPawnMove(d, jump)
			if !m.IsPawn() || m.IsWall() {
				t.Fatalf("%s tagged wrong", m)
			}
			gd, gj := m.Pawn()
			if gd != d || gj != jump {
				t.Errorf("NewPawnMove(%s,%v) decoded to (%s,%v)", d, jump, gd, gj)
			}
		}
	}
}

func TestWallMoveRoundTrip(t *testing.T) {
	b := Board{Size: 4}
	for a := 0; a < b.Interior(); a++ {
		for _, w := range []Wall{WallHorizontal, WallVertical} {
			i, j := b.AnchorCoords(a)
			m := b.WallMove(i, j, w)
			if !m.IsWall() || m.IsPawn() {
				t.Fatalf("%s tagged wrong", m)
			}
			ga, gw := m.Wall()
			if ga != a || gw != w {
				t.Errorf("WallMove(%d,%d,%v) decoded to (%d,%v)", i, j, w, ga, gw)
			}
		}
	}
}

func TestNoMoveIsNeither(t *testing.T) {
	if NoMove.IsPawn() || NoMove.IsWall() {
		t.Error("NoMove must not decode as a move")
	}
}

func TestApply(t *testing.T) {
	b := Board{Size: 4, Quota: 1}

	p := pos(2, 0, 1, 3, Player0)
	if !b.Apply(&p, NewPawnMove(Down, false)) {
		t.Fatal("applying a legal pawn move failed")
	}
	if p.Pawns[0].X != 3 {
		t.Errorf("pawn at row %d, want 3", p.Pawns[0].X)
	}

	q := pos(0, 1, 3, 1, Player0)
	q.Pawns[0].Walls = 1
	if !b.Apply(&q, b.WallMove(1, 1, WallHorizontal)) {
		t.Fatal("applying a legal placement failed")
	}
	if q.Walls[1][1] != WallHorizontal {
		t.Error("placement not applied")
	}

	r := pos(0, 0, 3, 3, Player0)
	if b.Apply(&r, NoMove) {
		t.Error("applying NoMove must fail")
	}
}
