package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rcliao/mlprimer/internal/dataset"
	"github.com/rcliao/mlprimer/internal/logger"
	"github.com/rcliao/mlprimer/internal/model"
	"github.com/rcliao/mlprimer/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	embedCmd := &cobra.Command{
		Use:   "embed",
		Short: "Manage a table of word vectors and compare words",
	}
	embedCmd.PersistentFlags().StringP("ns", "n", model.DefaultNS, "Embedding table namespace")

	putCmd := &cobra.Command{
		Use:   "put [word] [vector]",
		Short: "Store the vector for a word",
		Args:  cobra.ExactArgs(2),
		Run:   runEmbedPut,
	}
	getCmd := &cobra.Command{
		Use:   "get [word]",
		Short: "Show the vector for a word",
		Args:  cobra.ExactArgs(1),
		Run:   runEmbedGet,
	}
	rmCmd := &cobra.Command{
		Use:   "rm [word]",
		Short: "Delete a word",
		Args:  cobra.ExactArgs(1),
		Run:   runEmbedRm,
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored words",
		Run:   runEmbedList,
	}
	listCmd.Flags().IntP("limit", "l", 100, "Max results")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import word vectors from CSV (word,dim_0,...) or JSON on stdin",
		Run:   runEmbedImport,
	}
	importCmd.Flags().String("csv", "", "CSV file path; reads JSON from stdin when empty")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export word vectors as JSON",
		Run:   runEmbedExport,
	}

	simCmd := &cobra.Command{
		Use:   "sim [word1] [word2]",
		Short: "Cosine similarity between two stored words",
		Args:  cobra.ExactArgs(2),
		Run:   runEmbedSim,
	}
	nearestCmd := &cobra.Command{
		Use:   "nearest [word]",
		Short: "Stored words ranked by similarity to a word",
		Args:  cobra.ExactArgs(1),
		Run:   runEmbedNearest,
	}
	nearestCmd.Flags().IntP("limit", "l", 10, "Max results")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show database statistics",
		Run:   runEmbedStats,
	}

	embedCmd.AddCommand(putCmd, getCmd, rmCmd, listCmd, importCmd, exportCmd, simCmd, nearestCmd, statsCmd)
	RootCmd.AddCommand(embedCmd)
}

func runEmbedPut(cmd *cobra.Command, args []string) {
	ns, _ := cmd.Flags().GetString("ns")
	vec, err := parseVector(args[1])
	if err != nil {
		exitErr("parse vector", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.Put(cmd.Context(), store.PutParams{NS: ns, Word: args[0], Vector: vec})
	if err != nil {
		exitErr("put", err)
	}
	output(cmd, e, func(w io.Writer) { fmt.Fprintf(w, "%s/%s (%d dims)\n", e.NS, e.Word, e.Dims) })
}

func runEmbedGet(cmd *cobra.Command, args []string) {
	ns, _ := cmd.Flags().GetString("ns")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	e, err := s.Get(cmd.Context(), ns, args[0])
	if err != nil {
		exitErr("get", err)
	}
	output(cmd, e, func(w io.Writer) { fmt.Fprintf(w, "%s\t%s\n", e.Word, formatVector(e.Vector)) })
}

func runEmbedRm(cmd *cobra.Command, args []string) {
	ns, _ := cmd.Flags().GetString("ns")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Rm(cmd.Context(), ns, args[0]); err != nil {
		exitErr("rm", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}

func runEmbedList(cmd *cobra.Command, args []string) {
	ns, _ := cmd.Flags().GetString("ns")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	list, err := s.List(cmd.Context(), store.ListParams{NS: ns, Limit: limit})
	if err != nil {
		exitErr("list", err)
	}
	if list == nil {
		list = []model.Embedding{}
	}
	output(cmd, list, func(w io.Writer) {
		for _, e := range list {
			fmt.Fprintf(w, "%s\t%s\n", e.Word, formatVector(e.Vector))
		}
	})
}

func runEmbedImport(cmd *cobra.Command, args []string) {
	ns, _ := cmd.Flags().GetString("ns")
	csvPath, _ := cmd.Flags().GetString("csv")

	var embeddings []model.Embedding
	if csvPath != "" {
		f, err := os.Open(csvPath)
		if err != nil {
			exitErr("open csv", err)
		}
		defer f.Close()
		embeddings, err = dataset.ReadEmbeddings(f)
		if err != nil {
			exitErr("read csv", err)
		}
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			exitErr("read stdin", err)
		}
		if err := json.Unmarshal(data, &embeddings); err != nil {
			exitErr("parse json", err)
		}
	}
	logger.Sugar().Debugf("embed import: %d rows into %s", len(embeddings), ns)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	imported, err := s.Import(cmd.Context(), ns, embeddings)
	if err != nil {
		exitErr("import", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"imported":%d}`+"\n", imported)
}

func runEmbedExport(cmd *cobra.Command, args []string) {
	var ns string
	if cmd.Flags().Changed("ns") {
		ns, _ = cmd.Flags().GetString("ns")
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	all, err := s.ExportAll(cmd.Context(), ns)
	if err != nil {
		exitErr("export", err)
	}
	if all == nil {
		all = []model.Embedding{}
	}
	b, _ := json.MarshalIndent(all, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func runEmbedSim(cmd *cobra.Command, args []string) {
	ns, _ := cmd.Flags().GetString("ns")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sim, err := s.Similarity(cmd.Context(), ns, args[0], args[1])
	if err != nil {
		exitErr("similarity", err)
	}
	output(cmd, map[string]any{"a": args[0], "b": args[1], "similarity": sim}, func(w io.Writer) {
		fmt.Fprintf(w, "%.4f\n", sim)
	})
}

func runEmbedNearest(cmd *cobra.Command, args []string) {
	ns, _ := cmd.Flags().GetString("ns")
	limit, _ := cmd.Flags().GetInt("limit")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	results, err := s.Nearest(cmd.Context(), store.NearestParams{NS: ns, Word: args[0], Limit: limit})
	if err != nil {
		exitErr("nearest", err)
	}
	if results == nil {
		results = []model.Neighbor{}
	}
	output(cmd, results, func(w io.Writer) {
		for _, n := range results {
			fmt.Fprintf(w, "%s\t%.4f\n", n.Word, n.Similarity)
		}
	})
}

func runEmbedStats(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context(), cfg.DBPath)
	if err != nil {
		exitErr("stats", err)
	}
	output(cmd, stats, func(w io.Writer) {
		fmt.Fprintf(w, "%s (%s), %d words\n", stats.DBPath, stats.DBSize, stats.TotalWords)
		for _, ns := range stats.Namespaces {
			fmt.Fprintf(w, "  %s\t%d words\t%d dims\n", ns.NS, ns.Words, ns.Dims)
		}
	})
}
