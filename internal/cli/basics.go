package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rcliao/mlprimer/internal/basics"
	"github.com/rcliao/mlprimer/internal/text"
	"github.com/spf13/cobra"
)

func init() {
	basicsCmd := &cobra.Command{
		Use:   "basics",
		Short: "Warm-up exercises over lists and strings",
	}

	basicsCmd.AddCommand(
		&cobra.Command{
			Use:   "sum [numbers]",
			Short: "Sum a comma-separated list of numbers",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				xs, err := parseVector(args[0])
				if err != nil {
					exitErr("parse numbers", err)
				}
				total := basics.Sum(xs)
				output(cmd, map[string]float64{"sum": total}, func(w io.Writer) { fmt.Fprintln(w, total) })
			},
		},
		&cobra.Command{
			Use:   "max [numbers]",
			Short: "Largest of a comma-separated list; null when empty",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				xs, err := parseVector(args[0])
				if err != nil {
					exitErr("parse numbers", err)
				}
				var res *float64
				if m, ok := basics.FindMaximum(xs); ok {
					res = &m
				}
				output(cmd, map[string]*float64{"max": res}, func(w io.Writer) {
					if res == nil {
						fmt.Fprintln(w, "none")
						return
					}
					fmt.Fprintln(w, *res)
				})
			},
		},
		&cobra.Command{
			Use:   "vowels [text]",
			Short: "Count vowels",
			Args:  cobra.MinimumNArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				n := text.CountVowels(strings.Join(args, " "))
				output(cmd, map[string]int{"vowels": n}, func(w io.Writer) { fmt.Fprintln(w, n) })
			},
		},
		&cobra.Command{
			Use:   "reverse [items...]",
			Short: "Reverse the given items",
			Run: func(cmd *cobra.Command, args []string) {
				rev := basics.Reverse(args)
				output(cmd, rev, func(w io.Writer) { fmt.Fprintln(w, strings.Join(rev, " ")) })
			},
		},
		&cobra.Command{
			Use:   "squares [n]",
			Short: "Squares of the even numbers below n",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					exitErr("parse n", err)
				}
				sq := basics.SquaresOfEvens(n)
				output(cmd, sq, func(w io.Writer) { fmt.Fprintln(w, sq) })
			},
		},
		&cobra.Command{
			Use:   "minmax [integers]",
			Short: "Smallest and largest of a comma-separated list of integers",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				xs, err := parseInts(args[0])
				if err != nil {
					exitErr("parse integers", err)
				}
				lo, hi, ok := basics.MinMax(xs)
				if !ok {
					exitErr("minmax", fmt.Errorf("empty list"))
				}
				output(cmd, map[string]int{"min": lo, "max": hi}, func(w io.Writer) { fmt.Fprintln(w, lo, hi) })
			},
		},
		&cobra.Command{
			Use:   "greet [name]",
			Short: "Say hello",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				g := basics.Greet(args[0])
				output(cmd, map[string]string{"greeting": g}, func(w io.Writer) { fmt.Fprintln(w, g) })
			},
		},
	)

	RootCmd.AddCommand(basicsCmd)
}
