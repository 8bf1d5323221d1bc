package cli

import (
	"iter"

	"github.com/spf13/cobra"

	"github.com/remem-labs/remem/internal/adapters/driven/config/file"
	telegramconn "github.com/remem-labs/remem/internal/connectors/telegram"
	"github.com/remem-labs/remem/internal/core/services"
	"github.com/remem-labs/remem/internal/logger"
)

var (
	flagMaxTokens      int
	flagSessionOverlap int
)

var chunksCmd = &cobra.Command{
	Use:   "chunks [path...]",
	Short: "Preview chunked chat sessions from export files",
	Long: `Runs the full conversational pipeline: messages are grouped into
sessions, rendered, and packed into content-addressed chunks. Exact
duplicate chunks across all files of the run are emitted once.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChunks,
}

func init() {
	chunksCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "token budget per chunk (default 500)")
	chunksCmd.Flags().IntVar(&flagSessionOverlap, "overlap", -1, "paragraph overlap between chunks (default 5 for sessions)")
	chunksCmd.Flags().Float64Var(&flagGapHours, "gap", 0, "session gap in hours (default 2)")
	rootCmd.AddCommand(chunksCmd)
}

func runChunks(cmd *cobra.Command, args []string) error {
	connector := telegramconn.New(counter)
	files, err := connector.Discover(args)
	if err != nil {
		return err
	}
	logger.Info("discovered %d export files", len(files))

	grouper := services.NewSessionGrouper(counter, services.WithGap(sessionGap()))

	// One chunker for the whole run, so the dedup context spans files.
	chunker := services.NewChunker(counter,
		services.WithMaxTokens(maxTokens()),
		services.WithOverlap(sessionOverlap()),
	)

	sections := func(yield func(string, error) bool) {
		for _, path := range files {
			logger.Section(path)
			items := grouper.Items(grouper.Sessions(connector.Messages(path)))
			for chunk, err := range chunker.Chunk(items) {
				if err != nil {
					yield("", err)
					return
				}
				if !yield(renderChunk(chunk), nil) {
					return
				}
			}
		}
		logger.Info("emitted %d chunks", chunker.Emitted())
	}

	return preview(cmd, "chat chunks", iter.Seq2[string, error](sections))
}

// maxTokens resolves the chunk budget: flag, then config, then the
// built-in default.
func maxTokens() int {
	if flagMaxTokens > 0 {
		return flagMaxTokens
	}
	if n := configStore.GetInt(file.KeyMaxTokens); n > 0 {
		return n
	}
	return services.DefaultMaxTokens
}

// sessionOverlap resolves the overlap used for rendered sessions.
func sessionOverlap() int {
	if flagSessionOverlap >= 0 {
		return flagSessionOverlap
	}
	if _, ok := configStore.Get(file.KeySessionOverlap); ok {
		return configStore.GetInt(file.KeySessionOverlap)
	}
	return services.SessionOverlap
}
