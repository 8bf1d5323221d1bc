package cli

import (
	"fmt"
	"iter"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/remem-labs/remem/internal/adapters/driving/tui"
	"github.com/remem-labs/remem/internal/core/domain"
)

var flagNoPager bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoPager, "no-pager", false, "stream output instead of paging")
}

// preview displays rendered sections separated by rules. Interactive
// runs go through the pager; otherwise sections stream to stdout as
// the pipeline produces them.
func preview(cmd *cobra.Command, title string, sections iter.Seq2[string, error]) error {
	if flagNoPager || !term.IsTerminal(int(os.Stdout.Fd())) {
		for section, err := range sections {
			if err != nil {
				return err
			}
			cmd.Println(section)
			cmd.Println("-----")
		}
		return nil
	}

	var content strings.Builder
	first := true
	for section, err := range sections {
		if err != nil {
			return err
		}
		if !first {
			content.WriteString("\n-----\n")
		}
		content.WriteString(section)
		first = false
	}

	if content.Len() == 0 {
		cmd.Println("Nothing to preview.")
		return nil
	}
	return tui.Page(title, content.String())
}

// renderChunk formats one chunk the way previews display it.
func renderChunk(chunk domain.Chunk) string {
	return fmt.Sprintf("id=%s metadata=%s tokens=%d\n%s",
		chunk.ID, chunk.Metadata.Canonical(), counter.Count(chunk.Text), chunk.Text)
}

// renderSession formats one session with its date and name header.
func renderSession(session domain.ChatSession) string {
	return fmt.Sprintf("%s | %s\n%s",
		session.Start.UTC().Format("2006-01-02"), session.Name, session.Content)
}
