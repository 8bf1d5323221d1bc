package cli

import (
	"iter"

	"github.com/spf13/cobra"

	"github.com/remem-labs/remem/internal/adapters/driven/config/file"
	"github.com/remem-labs/remem/internal/connectors/wordpress"
	"github.com/remem-labs/remem/internal/core/services"
	"github.com/remem-labs/remem/internal/logger"
)

var (
	flagWPUser     string
	flagWPPassword string
	flagWPDatabase string
	flagWPHost     string
	flagWPSocket   string
	flagWPOverlap  int
)

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "WordPress post commands",
}

var postsPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview chunked WordPress posts",
	Long: `Connects to a WordPress MySQL database, reads published posts and
packs them into content-addressed chunks. Credentials come from flags
or the WP_USER/WP_PASSWORD/WP_DATABASE/WP_HOST/WP_SOCKET environment
variables (a local .env file is honoured).`,
	RunE: runPostsPreview,
}

func init() {
	postsPreviewCmd.Flags().StringVar(&flagWPUser, "user", "", "MySQL username (or set WP_USER)")
	postsPreviewCmd.Flags().StringVar(&flagWPPassword, "password", "", "MySQL password (or set WP_PASSWORD)")
	postsPreviewCmd.Flags().StringVar(&flagWPDatabase, "database", "", "MySQL database name (or set WP_DATABASE)")
	postsPreviewCmd.Flags().StringVar(&flagWPHost, "host", "", "MySQL host (or set WP_HOST)")
	postsPreviewCmd.Flags().StringVar(&flagWPSocket, "socket", "", "MySQL Unix socket path (or set WP_SOCKET)")
	postsPreviewCmd.Flags().IntVar(&flagWPOverlap, "overlap", -1, "paragraph overlap between chunks (default 1)")
	postsPreviewCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "token budget per chunk (default 500)")

	postsCmd.AddCommand(postsPreviewCmd)
	rootCmd.AddCommand(postsCmd)
}

func runPostsPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := wordpress.ConfigFromEnv()
	if err != nil {
		return err
	}
	applyPostFlags(&cfg)

	connector, err := wordpress.Open(cfg)
	if err != nil {
		return err
	}
	defer connector.Close()

	chunker := services.NewChunker(counter,
		services.WithMaxTokens(maxTokens()),
		services.WithOverlap(postOverlap()),
	)

	ctx := cmd.Context()
	sections := func(yield func(string, error) bool) {
		for chunk, err := range chunker.Chunk(connector.Items(ctx)) {
			if err != nil {
				yield("", err)
				return
			}
			if !yield(renderChunk(chunk), nil) {
				return
			}
		}
		logger.Info("emitted %d chunks", chunker.Emitted())
	}

	return preview(cmd, "post chunks", iter.Seq2[string, error](sections))
}

// applyPostFlags lets explicit flags override environment values.
func applyPostFlags(cfg *wordpress.Config) {
	if flagWPUser != "" {
		cfg.User = flagWPUser
	}
	if flagWPPassword != "" {
		cfg.Password = flagWPPassword
	}
	if flagWPDatabase != "" {
		cfg.Database = flagWPDatabase
	}
	if flagWPHost != "" {
		cfg.Host = flagWPHost
	}
	if flagWPSocket != "" {
		cfg.Socket = flagWPSocket
	}
}

// postOverlap resolves the overlap used for prose posts.
func postOverlap() int {
	if flagWPOverlap >= 0 {
		return flagWPOverlap
	}
	if _, ok := configStore.Get(file.KeyOverlap); ok {
		return configStore.GetInt(file.KeyOverlap)
	}
	return services.DefaultOverlap
}
