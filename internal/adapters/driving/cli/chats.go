package cli

import (
	"iter"
	"time"

	"github.com/spf13/cobra"

	"github.com/remem-labs/remem/internal/adapters/driven/config/file"
	telegramconn "github.com/remem-labs/remem/internal/connectors/telegram"
	"github.com/remem-labs/remem/internal/core/services"
	"github.com/remem-labs/remem/internal/logger"
)

var flagGapHours float64

var chatsCmd = &cobra.Command{
	Use:   "chats [path...]",
	Short: "Preview chat sessions from export files",
	Long: `Reads telegram-history-dump .jsonl exports (files or directories,
searched recursively) and groups messages into sessions separated by
inactivity gaps. Each session is shown with its date, name and
rendered transcript.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChats,
}

func init() {
	chatsCmd.Flags().Float64Var(&flagGapHours, "gap", 0, "session gap in hours (default 2)")
	rootCmd.AddCommand(chatsCmd)
}

func runChats(cmd *cobra.Command, args []string) error {
	connector := telegramconn.New(counter)
	files, err := connector.Discover(args)
	if err != nil {
		return err
	}
	logger.Info("discovered %d export files", len(files))

	grouper := services.NewSessionGrouper(counter, services.WithGap(sessionGap()))

	sections := func(yield func(string, error) bool) {
		for _, path := range files {
			logger.Section(path)
			for session, err := range grouper.Sessions(connector.Messages(path)) {
				if err != nil {
					yield("", err)
					return
				}
				if !yield(renderSession(session), nil) {
					return
				}
			}
		}
	}

	return preview(cmd, "chat sessions", iter.Seq2[string, error](sections))
}

// sessionGap resolves the inactivity threshold: flag, then config,
// then the built-in default.
func sessionGap() time.Duration {
	hours := flagGapHours
	if hours <= 0 {
		hours = configStore.GetFloat(file.KeySessionGap)
	}
	if hours <= 0 {
		return services.DefaultSessionGap
	}
	return time.Duration(hours * float64(time.Hour))
}
