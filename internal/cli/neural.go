package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rcliao/mlprimer/internal/neural"
	"github.com/spf13/cobra"
)

func init() {
	softmaxCmd := &cobra.Command{
		Use:   "softmax [vector]",
		Short: "Softmax of a vector",
		Args:  cobra.ExactArgs(1),
		Run:   runSoftmax,
	}

	attentionCmd := &cobra.Command{
		Use:   "attention",
		Short: "Dot-product attention of one query over keys and values",
		Long:  "Scores each key against the query, softmaxes the scores and returns the weighted sum of values.",
		Run:   runAttention,
	}
	attentionCmd.Flags().StringP("query", "q", "", "Query vector (required)")
	attentionCmd.Flags().StringP("keys", "k", "", "Key matrix, rows separated by ';' (required)")
	attentionCmd.Flags().StringP("values", "v", "", "Value matrix, rows separated by ';' (required)")
	attentionCmd.MarkFlagRequired("query")
	attentionCmd.MarkFlagRequired("keys")
	attentionCmd.MarkFlagRequired("values")

	maskCmd := &cobra.Command{
		Use:   "mask [n]",
		Short: "Causal attention mask for a sequence of length n",
		Args:  cobra.ExactArgs(1),
		Run:   runMask,
	}

	posencCmd := &cobra.Command{
		Use:   "posenc",
		Short: "Sinusoidal positional encoding",
		Run:   runPosenc,
	}
	posencCmd.Flags().IntP("len", "l", 4, "Sequence length")
	posencCmd.Flags().IntP("dim", "m", 8, "Embedding dimension")

	RootCmd.AddCommand(softmaxCmd, attentionCmd, maskCmd, posencCmd)
}

func runSoftmax(cmd *cobra.Command, args []string) {
	x, err := parseVector(args[0])
	if err != nil {
		exitErr("parse vector", err)
	}
	probs := neural.Softmax(x)
	output(cmd, probs, func(w io.Writer) {
		fmt.Fprintln(w, formatVector(probs))
	})
}

type attentionResult struct {
	Weights []float64 `json:"weights"`
	Output  []float64 `json:"output"`
}

func runAttention(cmd *cobra.Command, args []string) {
	qs, _ := cmd.Flags().GetString("query")
	ks, _ := cmd.Flags().GetString("keys")
	vs, _ := cmd.Flags().GetString("values")

	query, err := parseVector(qs)
	if err != nil {
		exitErr("parse query", err)
	}
	keys, err := parseMatrix(ks)
	if err != nil {
		exitErr("parse keys", err)
	}
	values, err := parseMatrix(vs)
	if err != nil {
		exitErr("parse values", err)
	}
	if len(keys) != len(values) {
		exitErr("attention", fmt.Errorf("%d keys but %d values", len(keys), len(values)))
	}
	for i, k := range keys {
		if len(k) != len(query) {
			exitErr("attention", fmt.Errorf("key %d has %d dims, query has %d", i+1, len(k), len(query)))
		}
	}
	for i, v := range values {
		if len(v) != len(values[0]) {
			exitErr("attention", fmt.Errorf("value %d has %d dims, value 1 has %d", i+1, len(v), len(values[0])))
		}
	}

	res := attentionResult{
		Weights: neural.AttentionWeights(query, keys),
		Output:  neural.Attention(query, keys, values),
	}
	output(cmd, res, func(w io.Writer) {
		fmt.Fprintf(w, "weights: %s\noutput:  %s\n", formatVector(res.Weights), formatVector(res.Output))
	})
}

func runMask(cmd *cobra.Command, args []string) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("parse n", err)
	}
	mask := neural.CausalMask(n)
	output(cmd, mask, func(w io.Writer) {
		for _, row := range mask {
			fmt.Fprintln(w, formatVector(row))
		}
	})
}

func runPosenc(cmd *cobra.Command, args []string) {
	seqLen, _ := cmd.Flags().GetInt("len")
	dim, _ := cmd.Flags().GetInt("dim")
	if dim%2 != 0 {
		exitErr("posenc", fmt.Errorf("dimension must be even, got %d", dim))
	}
	pe := neural.PositionalEncoding(seqLen, dim)
	output(cmd, pe, func(w io.Writer) {
		for pos, row := range pe {
			fmt.Fprintf(w, "%d: %s\n", pos, formatVector(row))
		}
	})
}
