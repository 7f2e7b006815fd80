// Package cli implements the mlprimer CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rcliao/mlprimer/internal/config"
	"github.com/rcliao/mlprimer/internal/logger"
	"github.com/rcliao/mlprimer/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath     string
	formatFlag string
	logLevel   string

	cfg config.Config
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "mlprimer",
	Short: "Small ML and NLP building blocks",
	Long: `Vector math, attention, positional encodings, TF-IDF and text helpers.
Vectors are comma-separated (1,2,3); matrices separate rows with ';' (1,0;0,1).
Put "--" before arguments that start with a minus sign.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(config.Config{
			DBPath:   dbPath,
			LogLevel: config.LogLevel(logLevel),
			Format:   formatFlag,
		})
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.LogLevel.Zap()); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger.Sugar().Debugf("command %s: db=%s format=%s", cmd.CommandPath(), cfg.DBPath, cfg.Format)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Embedding database path (default: $MLPRIMER_DB or ~/.mlprimer/embeddings.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json or text (default: $MLPRIMER_FORMAT or json)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $MLPRIMER_LOG_LEVEL or error)")
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DBPath)
}

func exitErr(msg string, err error) {
	logger.Sugar().Debugf("%s failed: %v", msg, err)
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// output writes v as indented JSON, or calls text when --format=text.
func output(cmd *cobra.Command, v any, text func(w io.Writer)) {
	w := cmd.OutOrStdout()
	if cfg.Format == config.FormatText && text != nil {
		text(w)
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode output", err)
	}
	fmt.Fprintln(w, string(b))
}
