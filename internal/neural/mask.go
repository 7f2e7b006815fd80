package neural

// MaskValue is added to attention scores for positions that must not be
// attended to. It is large enough that softmax assigns them zero weight.
const MaskValue = -1e9

// CausalMask returns an n×n additive mask where row i may only see
// columns 0..i.
func CausalMask(n int) [][]float64 {
	if n <= 0 {
		return [][]float64{}
	}
	mask := make([][]float64, n)
	for i := range mask {
		row := make([]float64, n)
		for j := i + 1; j < n; j++ {
			row[j] = MaskValue
		}
		mask[i] = row
	}
	return mask
}

// ApplyMask adds mask to scores element-wise and returns the result as a new
// matrix. Both must have the same shape.
func ApplyMask(scores, mask [][]float64) [][]float64 {
	out := make([][]float64, len(scores))
	for i, row := range scores {
		m := mask[i]
		r := make([]float64, len(row))
		for j, v := range row {
			r[j] = v + m[j]
		}
		out[i] = r
	}
	return out
}
