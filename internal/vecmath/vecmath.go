// Package vecmath provides distance and similarity measures over dense float vectors.
package vecmath

import (
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Vector is a dense float64 vector.
type Vector = []float64

// Round rounds the exact binary value of x to the given number of decimal
// places. Exact ties go to the even digit, so Round(0.125, 2) is 0.12.
func Round(x float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}

// EuclideanDistance returns the straight-line distance between p and q,
// rounded to 2 decimal places. Both points must have the same dimension.
func EuclideanDistance(p, q Vector) float64 {
	return Round(floats.Distance(p, q, 2), 2)
}

// DotProduct returns the sum of a[i]*b[i], rounded to 2 decimal places.
func DotProduct(a, b Vector) float64 {
	return Round(floats.Dot(a, b), 2)
}

// Magnitude returns the L2 norm of v.
func Magnitude(v Vector) float64 {
	if len(v) == 0 {
		return 0
	}
	return floats.Norm(v, 2)
}

// CosineSimilarity computes cosine similarity between two vectors.
// Returns 0 when either vector has zero magnitude. The dot product covers
// the common prefix of a and b; each magnitude covers its whole vector.
func CosineSimilarity(a, b Vector) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	normA, normB := Magnitude(a), Magnitude(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a[:n], b[:n]) / (normA * normB)
}
