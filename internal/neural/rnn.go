package neural

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RNNConfig configures a single-layer Elman cell with uniform weights.
type RNNConfig struct {
	HiddenSize   int
	InputWeight  float64 // every entry of W_x
	HiddenWeight float64 // every entry of W_h
	Bias         float64 // every entry of b
}

// DefaultRNNConfig returns the scalar cell with 0.5 weights and no bias.
func DefaultRNNConfig() RNNConfig {
	return RNNConfig{
		HiddenSize:   1,
		InputWeight:  0.5,
		HiddenWeight: 0.5,
	}
}

// RNN runs h_t = tanh(W_x·x_t + W_h·h_{t-1} + b) from a zero initial state.
type RNN struct {
	cfg RNNConfig
}

// NewRNN creates a cell. A non-positive HiddenSize falls back to 1.
func NewRNN(cfg RNNConfig) *RNN {
	if cfg.HiddenSize <= 0 {
		cfg.HiddenSize = 1
	}
	return &RNN{cfg: cfg}
}

// Config returns the cell configuration.
func (r *RNN) Config() RNNConfig { return r.cfg }

// States returns the full hidden state after each input. All inputs must
// have the dimension of the first one.
func (r *RNN) States(inputs [][]float64) [][]float64 {
	if len(inputs) == 0 {
		return nil
	}
	hs := r.cfg.HiddenSize
	d := len(inputs[0])

	var wx *mat.Dense
	if d > 0 {
		wx = uniform(hs, d, r.cfg.InputWeight)
	}
	wh := uniform(hs, hs, r.cfg.HiddenWeight)

	h := mat.NewVecDense(hs, nil)
	states := make([][]float64, 0, len(inputs))
	for _, x := range inputs {
		next := mat.NewVecDense(hs, nil)
		next.MulVec(wh, h)
		if wx != nil {
			var in mat.VecDense
			in.MulVec(wx, mat.NewVecDense(d, x))
			next.AddVec(next, &in)
		}
		for i := 0; i < hs; i++ {
			next.SetVec(i, math.Tanh(next.AtVec(i)+r.cfg.Bias))
		}
		h = next
		states = append(states, mat.Col(nil, 0, h))
	}
	return states
}

// Run returns the first hidden unit after each input, one output per step.
func (r *RNN) Run(inputs [][]float64) []float64 {
	states := r.States(inputs)
	if states == nil {
		return nil
	}
	out := make([]float64, len(states))
	for t, s := range states {
		out[t] = s[0]
	}
	return out
}

func uniform(rows, cols int, v float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(rows, cols, data)
}
