// Package cli provides the cobra command surface of the remem binary.
package cli

import (
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/remem-labs/remem/internal/adapters/driven/config/file"
	"github.com/remem-labs/remem/internal/adapters/driven/tokenizer/heuristic"
	"github.com/remem-labs/remem/internal/adapters/driven/tokenizer/tiktoken"
	"github.com/remem-labs/remem/internal/core/ports/driven"
	"github.com/remem-labs/remem/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagConfigDir string
	flagModel     string
)

// configStore and counter are initialised once per invocation in
// initRun and shared by all commands.
var (
	configStore driven.ConfigStore
	counter     driven.TokenCounter
	runID       string
)

var rootCmd = &cobra.Command{
	Use:   "remem",
	Short: "Prepare text sources for a retrieval index",
	Long: `remem splits heterogeneous text sources (posts, chat exports) into
bounded, content-addressed chunks ready for embedding and similarity
search. Chunk identity is a content hash, so re-ingesting the same
input is a no-op.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "config directory (default ~/.remem)")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "tokenizer model (default gpt-4o)")
}

// initRun prepares the shared collaborators: logging, environment,
// configuration and the token counter.
func initRun(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)
	runID = uuid.New().String()
	logger.Debug("run %s", runID)

	// A local .env supplies database credentials during development.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env")
	}

	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return err
	}
	configStore = store

	counter = newCounter()
	return nil
}

// newCounter picks the tokenizer: the configured BPE model when its
// vocabulary is loadable, the character heuristic otherwise.
func newCounter() driven.TokenCounter {
	model := flagModel
	if model == "" {
		model = configStore.GetString(file.KeyTokenizerModel)
	}

	tk, err := tiktoken.New(model)
	if err != nil {
		logger.Warn("tokenizer unavailable (%v), using character heuristic", err)
		return heuristic.New()
	}
	return tk
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
