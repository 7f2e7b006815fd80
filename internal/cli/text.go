package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rcliao/mlprimer/internal/text"
	"github.com/rcliao/mlprimer/internal/vocab"
	"github.com/spf13/cobra"
)

func init() {
	normalizeCmd := &cobra.Command{
		Use:   "normalize [text]",
		Short: "Lowercase, strip punctuation and digits, and tokenize",
		Args:  cobra.MinimumNArgs(1),
		Run:   runNormalize,
	}

	freqCmd := &cobra.Command{
		Use:   "freq [sentence]",
		Short: "Count lowercased word frequencies",
		Args:  cobra.MinimumNArgs(1),
		Run:   runFreq,
	}

	ngramsCmd := &cobra.Command{
		Use:   "ngrams [word]",
		Short: "Character n-grams of a word",
		Args:  cobra.ExactArgs(1),
		Run:   runNGrams,
	}
	ngramsCmd.Flags().IntP("n", "n", 2, "N-gram size")
	ngramsCmd.Flags().String("compare", "", "Also report n-gram overlap with this word")

	vocabCmd := &cobra.Command{
		Use:   "vocab [sentence...]",
		Short: "Build an alphabetical word index from sentences",
		Args:  cobra.MinimumNArgs(1),
		Run:   runVocab,
	}
	vocabCmd.Flags().Bool("vectors", false, "Also print the bag-of-words vector of each sentence")

	RootCmd.AddCommand(normalizeCmd, freqCmd, ngramsCmd, vocabCmd)
}

func runNormalize(cmd *cobra.Command, args []string) {
	tokens := text.Normalize(strings.Join(args, " "))
	output(cmd, tokens, func(w io.Writer) {
		fmt.Fprintln(w, strings.Join(tokens, " "))
	})
}

func runFreq(cmd *cobra.Command, args []string) {
	freq := text.WordFrequency(strings.Join(args, " "))
	output(cmd, freq, func(w io.Writer) {
		words := make([]string, 0, len(freq))
		for word := range freq {
			words = append(words, word)
		}
		sort.Strings(words)
		for _, word := range words {
			fmt.Fprintf(w, "%s\t%d\n", word, freq[word])
		}
	})
}

type ngramResult struct {
	N       int      `json:"n"`
	NGrams  []string `json:"ngrams"`
	Compare string   `json:"compare,omitempty"`
	Overlap *float64 `json:"overlap,omitempty"`
}

func runNGrams(cmd *cobra.Command, args []string) {
	n, _ := cmd.Flags().GetInt("n")
	compare, _ := cmd.Flags().GetString("compare")

	res := ngramResult{N: n, NGrams: text.NGrams(args[0], n)}
	if compare != "" {
		overlap := text.SharedNGrams(args[0], compare, n)
		res.Compare = compare
		res.Overlap = &overlap
	}
	output(cmd, res, func(w io.Writer) {
		fmt.Fprintln(w, strings.Join(res.NGrams, " "))
		if res.Overlap != nil {
			fmt.Fprintf(w, "overlap with %s: %.4f\n", res.Compare, *res.Overlap)
		}
	})
}

type vocabResult struct {
	Vocabulary vocab.Vocabulary `json:"vocabulary"`
	Vectors    [][]int          `json:"vectors,omitempty"`
}

func runVocab(cmd *cobra.Command, args []string) {
	withVectors, _ := cmd.Flags().GetBool("vectors")

	res := vocabResult{Vocabulary: vocab.Build(args)}
	if withVectors {
		for _, s := range args {
			res.Vectors = append(res.Vectors, res.Vocabulary.Vectorize(s))
		}
	}
	output(cmd, res, func(w io.Writer) {
		for i, word := range res.Vocabulary.Words() {
			fmt.Fprintf(w, "%d\t%s\n", i, word)
		}
		for i, vec := range res.Vectors {
			fmt.Fprintf(w, "%q: %v\n", args[i], vec)
		}
	})
}
