package neural

import (
	"math"
	"testing"
)

func TestPositionalEncoding_Shape(t *testing.T) {
	pe := PositionalEncoding(10, 16)
	if len(pe) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(pe))
	}
	for _, row := range pe {
		if len(row) != 16 {
			t.Fatalf("expected 16 columns, got %d", len(row))
		}
	}
}

func TestPositionalEncoding_PositionZero(t *testing.T) {
	pe := PositionalEncoding(1, 8)
	for i, v := range pe[0] {
		want := 0.0
		if i%2 == 1 {
			want = 1.0
		}
		if v != want {
			t.Errorf("pe[0][%d] = %v, want %v", i, v, want)
		}
	}
}

func TestPositionalEncoding_Values(t *testing.T) {
	pe := PositionalEncoding(4, 4)
	cases := []struct {
		pos, i int
		want   float64
	}{
		{1, 0, math.Sin(1)},
		{1, 1, math.Cos(1)},
		{1, 2, math.Sin(0.01)},
		{1, 3, math.Cos(0.01)},
		{3, 0, math.Sin(3)},
	}
	for _, c := range cases {
		if math.Abs(pe[c.pos][c.i]-c.want) > 1e-12 {
			t.Errorf("pe[%d][%d] = %v, want %v", c.pos, c.i, pe[c.pos][c.i], c.want)
		}
	}
}

// Each (sin, cos) pair shares an angle, so the pair lies on the unit circle.
func TestPositionalEncoding_UnitPairs(t *testing.T) {
	pe := PositionalEncoding(10, 8)
	for pos, row := range pe {
		for i := 0; i < len(row); i += 2 {
			r := row[i]*row[i] + row[i+1]*row[i+1]
			if math.Abs(r-1) > 1e-12 {
				t.Errorf("pos %d pair %d: sin²+cos² = %v", pos, i/2, r)
			}
		}
	}
}

func TestPositionalEncoding_MatchesClosedForm(t *testing.T) {
	const seqLen, d = 10, 16
	pe := PositionalEncoding(seqLen, d)
	for pos := 0; pos < seqLen; pos++ {
		for k := 0; k < d; k += 2 {
			div := math.Exp(float64(k) * -(math.Log(10000.0) / d))
			angle := float64(pos) * div
			if math.Abs(pe[pos][k]-math.Sin(angle)) > 1e-9 || math.Abs(pe[pos][k+1]-math.Cos(angle)) > 1e-9 {
				t.Fatalf("pos %d dim %d differs from exp/log form", pos, k)
			}
		}
	}
}
