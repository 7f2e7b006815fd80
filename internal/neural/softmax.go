// Package neural implements the small building blocks of sequence models:
// softmax, dot-product attention, causal masks, sinusoidal positional
// encodings and a single-layer RNN cell.
package neural

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Softmax turns x into a probability distribution.
// max(x) is subtracted before exponentiating so large inputs do not overflow.
func Softmax(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	m := floats.Max(x)
	for i, v := range x {
		out[i] = math.Exp(v - m)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}
