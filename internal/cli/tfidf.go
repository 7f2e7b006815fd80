package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rcliao/mlprimer/internal/corpus"
	"github.com/rcliao/mlprimer/internal/logger"
	"github.com/rcliao/mlprimer/internal/tfidf"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tfidf [document...]",
		Short: "TF-IDF matrix of a document collection",
		Long: `Computes TF-IDF over documents given as arguments, over the blocks of a text
file (split on blank lines and headings), or over one column of a CSV file.`,
		Run: runTFIDF,
	}

	cmd.Flags().String("file", "", "Text file; each blank-line separated block is a document")
	cmd.Flags().String("csv", "", "CSV file holding one document per row")
	cmd.Flags().String("column", "review", "CSV column holding the documents")
	cmd.Flags().IntP("top", "t", 0, "Only report the top N terms per document")

	RootCmd.AddCommand(cmd)
}

func runTFIDF(cmd *cobra.Command, args []string) {
	file, _ := cmd.Flags().GetString("file")
	csvPath, _ := cmd.Flags().GetString("csv")
	column, _ := cmd.Flags().GetString("column")
	top, _ := cmd.Flags().GetInt("top")

	var m *tfidf.Matrix
	switch {
	case csvPath != "":
		f, err := os.Open(csvPath)
		if err != nil {
			exitErr("open csv", err)
		}
		defer f.Close()
		m, err = tfidf.FromColumn(f, column)
		if err != nil {
			exitErr("tfidf", err)
		}
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			exitErr("read file", err)
		}
		docs := corpus.Split(string(b))
		logger.Sugar().Debugf("tfidf: split %s into %d documents", file, len(docs))
		m = tfidf.Compute(corpus.Texts(docs))
	case len(args) > 0:
		m = tfidf.Compute(args)
	default:
		exitErr("tfidf", fmt.Errorf("no documents: pass arguments, --file or --csv"))
	}
	logger.Sugar().Debugf("tfidf: %d documents, %d terms", len(m.Docs), len(m.Terms))

	if top > 0 {
		ranked := make(map[string][]tfidf.TermScore, len(m.Docs))
		for i, doc := range m.Docs {
			ranked[doc] = m.Top(i, top)
		}
		output(cmd, ranked, func(w io.Writer) {
			for _, doc := range m.Docs {
				parts := make([]string, 0, top)
				for _, ts := range ranked[doc] {
					parts = append(parts, fmt.Sprintf("%s=%.4f", ts.Term, ts.Score))
				}
				fmt.Fprintf(w, "%s\t%s\n", doc, strings.Join(parts, " "))
			}
		})
		return
	}

	output(cmd, m, func(w io.Writer) {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "\t%s\n", strings.Join(m.Terms, "\t"))
		for i, row := range m.Scores {
			cells := make([]string, len(row))
			for j, s := range row {
				cells[j] = fmt.Sprintf("%.4f", s)
			}
			fmt.Fprintf(tw, "%s\t%s\n", m.Docs[i], strings.Join(cells, "\t"))
		}
		tw.Flush()
	})
}
