package neural

import (
	"math"
	"testing"
)

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func TestSoftmax_SumsToOne(t *testing.T) {
	inputs := [][]float64{
		{1, 2, 3},
		{0},
		{-5, 0, 5, 10},
		{1000, 1001, 1002},
		{-1000, -1000},
	}
	for _, x := range inputs {
		got := Softmax(x)
		if math.Abs(sum(got)-1) > 1e-12 {
			t.Errorf("Softmax(%v) sums to %v", x, sum(got))
		}
		for _, p := range got {
			if math.IsNaN(p) || p < 0 {
				t.Errorf("Softmax(%v) produced invalid probability %v", x, p)
			}
		}
	}
}

func TestSoftmax_ShiftInvariant(t *testing.T) {
	x := []float64{0.5, -1.25, 3}
	shifted := []float64{100.5, 98.75, 103}
	a, b := Softmax(x), Softmax(shifted)
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-12 {
			t.Errorf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSoftmax_Uniform(t *testing.T) {
	got := Softmax([]float64{7, 7, 7, 7})
	for _, p := range got {
		if math.Abs(p-0.25) > 1e-12 {
			t.Errorf("expected 0.25, got %v", p)
		}
	}
}

func TestSoftmax_Empty(t *testing.T) {
	if got := Softmax(nil); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}
