package neural

import "gonum.org/v1/gonum/floats"

// AttentionWeights scores every key against query with a dot product and
// normalizes the scores with Softmax.
func AttentionWeights(query []float64, keys [][]float64) []float64 {
	scores := make([]float64, len(keys))
	for i, k := range keys {
		scores[i] = floats.Dot(k, query)
	}
	return Softmax(scores)
}

// Attention returns the attention-weighted sum of values for query.
// keys and values must have the same number of rows. Returns nil when there
// is nothing to attend to.
func Attention(query []float64, keys, values [][]float64) []float64 {
	if len(keys) == 0 || len(values) == 0 {
		return nil
	}
	weights := AttentionWeights(query, keys)

	out := make([]float64, len(values[0]))
	for i, v := range values {
		floats.AddScaled(out, weights[i], v)
	}
	return out
}
