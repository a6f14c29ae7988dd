package codec

import "testing"

func TestPascalKnownValues(t *testing.T) {
	p := NewPascal(16)

	cases := []struct {
		n, k int
		want uint64
	}{
		{0, 0, 1},
		{4, 2, 6},
		{9, 2, 36},
		{9, 9, 1},
		{16, 8, 12870},
		{16, 1, 16},
		{12, 5, 792},
	}
	for _, c := range cases {
		if got := p.C(c.n, c.k); got != c.want {
			t.Errorf("C(%d,%d) = %d, want %d", c.n, c.k, got, c.want)
		}
	}
}

func TestPascalSymmetry(t *testing.T) {
	p := NewPascal(16)
	for n := 0; n <= 16; n++ {
		for k := 0; k <= 16; k++ {
			if p.C(n, k) != p.C(k, n) {
				t.Fatalf("C(%d,%d) = %d but C(%d,%d) = %d", n, k, p.C(n, k), k, n, p.C(k, n))
			}
		}
	}
}

func TestPascalBoundaries(t *testing.T) {
	p := NewPascal(16)
	for n := 0; n <= 16; n++ {
		if p.C(n, 0) != 1 {
			t.Errorf("C(%d,0) = %d, want 1", n, p.C(n, 0))
		}
		if p.C(0, n) != 1 {
			t.Errorf("C(0,%d) = %d, want 1", n, p.C(0, n))
		}
		if p.C(n, n) != 1 {
			t.Errorf("C(%d,%d) = %d, want 1", n, n, p.C(n, n))
		}
	}
}
