package cli

import (
	"github.com/rcliao/mlprimer/internal/logger"
	"github.com/rcliao/mlprimer/internal/neural"
	"github.com/rcliao/mlprimer/internal/seqio"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rnn",
		Short: "Run a simple RNN cell over a sequence read from stdin",
		Long: `Reads "n d" on the first line, then n lines of d space-separated floats.
Prints the first hidden unit after each step, one per line with six decimals.`,
		Args: cobra.NoArgs,
		Run:  runRNN,
	}

	def := neural.DefaultRNNConfig()
	cmd.Flags().Int("hidden-size", def.HiddenSize, "Hidden state size")
	cmd.Flags().Float64("input-weight", def.InputWeight, "Value of every input weight")
	cmd.Flags().Float64("hidden-weight", def.HiddenWeight, "Value of every recurrent weight")
	cmd.Flags().Float64("bias", def.Bias, "Value of every bias entry")

	RootCmd.AddCommand(cmd)
}

func runRNN(cmd *cobra.Command, args []string) {
	hiddenSize, _ := cmd.Flags().GetInt("hidden-size")
	inputWeight, _ := cmd.Flags().GetFloat64("input-weight")
	hiddenWeight, _ := cmd.Flags().GetFloat64("hidden-weight")
	bias, _ := cmd.Flags().GetFloat64("bias")

	inputs, err := seqio.ReadSequence(cmd.InOrStdin())
	if err != nil {
		exitErr("read sequence", err)
	}
	logger.Sugar().Debugf("rnn: %d steps, hidden size %d", len(inputs), hiddenSize)

	rnn := neural.NewRNN(neural.RNNConfig{
		HiddenSize:   hiddenSize,
		InputWeight:  inputWeight,
		HiddenWeight: hiddenWeight,
		Bias:         bias,
	})
	if err := seqio.WriteOutputs(cmd.OutOrStdout(), rnn.Run(inputs)); err != nil {
		exitErr("write outputs", err)
	}
}
