package cli

import (
	"fmt"
	"io"

	"github.com/rcliao/mlprimer/internal/vecmath"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(
		vectorPairCmd("distance", "Euclidean distance between two points (rounded to 2 decimals)", vecmath.EuclideanDistance),
		vectorPairCmd("dot", "Dot product of two vectors (rounded to 2 decimals)", vecmath.DotProduct),
		vectorPairCmd("cosine", "Cosine similarity of two vectors", vecmath.CosineSimilarity),
	)
}

func vectorPairCmd(use, short string, fn func(a, b vecmath.Vector) float64) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [a] [b]",
		Short: short,
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := parseVector(args[0])
			if err != nil {
				exitErr("parse a", err)
			}
			b, err := parseVector(args[1])
			if err != nil {
				exitErr("parse b", err)
			}
			if len(a) != len(b) {
				exitErr(use, fmt.Errorf("dimension mismatch: %d != %d", len(a), len(b)))
			}

			result := fn(a, b)
			output(cmd, map[string]float64{use: result}, func(w io.Writer) {
				fmt.Fprintln(w, result)
			})
		},
	}
}
