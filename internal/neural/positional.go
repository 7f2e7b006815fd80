package neural

import "math"

// positionalBase is the wavelength base of the sinusoidal encoding.
const positionalBase = 10000.0

// PositionalEncoding returns a seqLen×dModel matrix of sinusoidal position
// embeddings. Dimension pairs (2k, 2k+1) share the angle
// pos / 10000^(2k/dModel); even columns take its sine, odd columns its cosine.
func PositionalEncoding(seqLen, dModel int) [][]float64 {
	if seqLen <= 0 {
		return [][]float64{}
	}
	pe := make([][]float64, seqLen)
	for pos := range pe {
		row := make([]float64, max(dModel, 0))
		for i := range row {
			angle := float64(pos) / math.Pow(positionalBase, float64(2*(i/2))/float64(dModel))
			if i%2 == 0 {
				row[i] = math.Sin(angle)
			} else {
				row[i] = math.Cos(angle)
			}
		}
		pe[pos] = row
	}
	return pe
}
