package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetIn(strings.NewReader(stdin))
	RootCmd.SetArgs(args)
	t.Cleanup(func() {
		RootCmd.SetOut(nil)
		RootCmd.SetIn(nil)
		RootCmd.SetArgs(nil)
		resetFlags(RootCmd)
	})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return out.String()
}

// resetFlags restores every flag in the command tree to its default, since
// cobra keeps parsed values on the shared RootCmd between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runExit runs the CLI in a child test process and returns its exit code and
// stderr. Commands that fail call os.Exit, which would end the test binary.
func runExit(t *testing.T, args ...string) (int, string) {
	t.Helper()
	if os.Getenv("MLPRIMER_CLI_CHILD") == "1" {
		RootCmd.SetArgs(args)
		_ = RootCmd.Execute()
		os.Exit(0)
	}
	cmd := exec.Command(os.Args[0], "-test.run=^"+t.Name()+"$")
	cmd.Env = append(os.Environ(), "MLPRIMER_CLI_CHILD=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err == nil {
		return 0, stderr.String()
	}
	var ee *exec.ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("run child: %v", err)
	}
	return ee.ExitCode(), stderr.String()
}

func TestDistanceCommand(t *testing.T) {
	out := run(t, "", "distance", "1,2,3", "3,4,5", "--format", "json")
	var got map[string]float64
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got["distance"] != 3.46 {
		t.Errorf("expected 3.46, got %v", got["distance"])
	}
}

func TestRNNCommand(t *testing.T) {
	out := run(t, "3 2\n1.0 0.5\n0.3 0.7\n0.8 0.2\n", "rnn")
	want := "0.635149\n0.673748\n0.684150\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestMaskCommand(t *testing.T) {
	out := run(t, "", "mask", "2", "--format", "json")
	var got [][]float64
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got[0][0] != 0 || got[0][1] != -1e9 || got[1][0] != 0 || got[1][1] != 0 {
		t.Errorf("unexpected mask %v", got)
	}
}

func TestAttentionCommand(t *testing.T) {
	out := run(t, "", "attention", "--query", "1,1", "--keys", "1,0;0,1", "--values", "10;20", "--format", "json")
	var got attentionResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Output) != 1 || math.Abs(got.Output[0]-15) > 1e-9 {
		t.Errorf("unexpected output %v", got.Output)
	}
}

func TestAttentionCommand_RaggedValues(t *testing.T) {
	code, stderr := runExit(t, "attention", "--query", "1,0", "--keys", "1,0;0,1", "--values", "1,2;3")
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d (stderr %q)", code, stderr)
	}
	if !strings.Contains(stderr, "value 2 has 1 dims") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestFlagsResetBetweenRuns(t *testing.T) {
	t.Setenv("MLPRIMER_FORMAT", "")
	run(t, "", "normalize", "Hi There", "--format", "text")
	resetFlags(RootCmd)
	out := run(t, "", "normalize", "Hi There")
	if !strings.HasPrefix(strings.TrimSpace(out), "[") {
		t.Errorf("expected JSON output after reset, got %q", out)
	}
}

func TestNormalizeCommand_Text(t *testing.T) {
	out := run(t, "", "normalize", "Hello World! I have 3 cats... Do you?", "--format", "text")
	if strings.TrimSpace(out) != "hello world i have cats do you" {
		t.Errorf("got %q", out)
	}
}

func TestVocabCommand(t *testing.T) {
	out := run(t, "", "vocab", "the cat sat", "the dog ran", "--format", "json")
	var got vocabResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Vocabulary["cat"] != 0 || got.Vocabulary["the"] != 4 || len(got.Vocabulary) != 5 {
		t.Errorf("unexpected vocabulary %v", got.Vocabulary)
	}
}

func TestTFIDFCommand(t *testing.T) {
	out := run(t, "", "tfidf", "a a b", "a b b", "--format", "json")
	var got struct {
		Terms  []string    `json:"terms"`
		Scores [][]float64 `json:"scores"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if strings.Join(got.Terms, ",") != "a,b" || len(got.Scores) != 2 {
		t.Errorf("unexpected matrix %+v", got)
	}
}

func TestEmbedCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "embed.db")

	run(t, "", "embed", "put", "king", "0.5,0.8,0.3,0.6,0.2", "--db", db, "--ns", "toy")
	run(t, "", "embed", "put", "queen", "0.4,0.9,0.4,0.5,0.3", "--db", db, "--ns", "toy")

	out := run(t, "", "embed", "sim", "king", "queen", "--db", db, "--ns", "toy", "--format", "json")
	var got struct {
		Similarity float64 `json:"similarity"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Similarity-0.982946) > 1e-6 {
		t.Errorf("unexpected similarity %v", got.Similarity)
	}

	csv := "word,dim_0,dim_1\napple,0.8,0.1\npear,0.7,0.2\n"
	path := filepath.Join(t.TempDir(), "fruit.csv")
	writeFile(t, path, csv)
	out = run(t, "", "embed", "import", "--csv", path, "--db", db, "--ns", "fruit")
	if !strings.Contains(out, `"imported":2`) {
		t.Errorf("unexpected import output %q", out)
	}
}
