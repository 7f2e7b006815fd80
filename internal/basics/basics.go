// Package basics holds the warm-up exercises: aggregates over slices,
// reversal, comprehension-style generation and small arithmetic helpers.
package basics

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds every element of xs.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// FindMaximum returns the largest element of xs. ok is false when xs is empty.
func FindMaximum[T constraints.Ordered](xs []T) (maximum T, ok bool) {
	if len(xs) == 0 {
		return maximum, false
	}
	maximum = xs[0]
	for _, x := range xs[1:] {
		if x > maximum {
			maximum = x
		}
	}
	return maximum, true
}

// MinMax returns the smallest and largest elements of xs.
func MinMax[T constraints.Ordered](xs []T) (lo, hi T, ok bool) {
	if len(xs) == 0 {
		return lo, hi, false
	}
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, true
}

// Reverse returns a new slice with the elements of items in reverse order.
func Reverse[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		out = append(out, items[i])
	}
	return out
}

// SquaresOfEvens returns i² for every even i in [0, n).
func SquaresOfEvens(n int) []int {
	out := []int{}
	for i := 0; i < n; i += 2 {
		out = append(out, i*i)
	}
	return out
}

// Greet returns a greeting for name.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// Add returns a + b.
func Add(a, b int) int { return a + b }

// Power raises base to exponent.
func Power(base float64, exponent int) float64 {
	return math.Pow(base, float64(exponent))
}

// Square is Power with the default exponent of 2.
func Square(base float64) float64 { return Power(base, 2) }
