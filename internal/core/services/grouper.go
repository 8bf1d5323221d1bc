package services

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/remem-labs/remem/internal/core/domain"
	"github.com/remem-labs/remem/internal/core/ports/driven"
)

// DefaultSessionGap is the inactivity threshold that closes a session.
const DefaultSessionGap = 2 * time.Hour

// SessionOverlap is the paragraph overlap used when chunking rendered
// sessions. Conversational turns are shorter and more context-dependent
// than prose paragraphs, so sessions carry more context forward than
// the generic default.
const SessionOverlap = 5

// quoteTokens bounds the inline quotation of a reply target.
const quoteTokens = 10

// SessionGrouper segments a time-ordered message sequence into
// sessions, attaches reply context within each session and renders
// each session into a single transcript.
type SessionGrouper struct {
	counter driven.TokenCounter
	gap     time.Duration
}

// GrouperOption configures a SessionGrouper.
type GrouperOption func(*SessionGrouper)

// WithGap sets the inactivity threshold between sessions.
func WithGap(gap time.Duration) GrouperOption {
	return func(g *SessionGrouper) {
		if gap > 0 {
			g.gap = gap
		}
	}
}

// NewSessionGrouper creates a session grouper.
func NewSessionGrouper(counter driven.TokenCounter, opts ...GrouperOption) *SessionGrouper {
	g := &SessionGrouper{
		counter: counter,
		gap:     DefaultSessionGap,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Sessions lazily groups messages into sessions. A new message whose
// distance from the previous one reaches the gap threshold closes the
// buffered session and starts a fresh one; the final buffer is closed
// at end of input. A source error stops the sequence after being
// yielded.
func (g *SessionGrouper) Sessions(messages iter.Seq2[domain.ChatMessage, error]) iter.Seq2[domain.ChatSession, error] {
	return func(yield func(domain.ChatSession, error) bool) {
		var buffer []domain.ChatMessage
		var cursor time.Time

		for msg, err := range messages {
			if err != nil {
				yield(domain.ChatSession{}, err)
				return
			}

			if len(buffer) > 0 && absDuration(msg.Time.Sub(cursor)) >= g.gap {
				session, err := g.finalise(buffer)
				if err != nil {
					yield(domain.ChatSession{}, err)
					return
				}
				if !yield(session, nil) {
					return
				}
				buffer = nil
			}

			buffer = append(buffer, msg)
			cursor = msg.Time
		}

		if len(buffer) > 0 {
			session, err := g.finalise(buffer)
			if err != nil {
				yield(domain.ChatSession{}, err)
				return
			}
			yield(session, nil)
		}
	}
}

// Items renders each session into the (metadata, text) pair consumed
// by the chunker.
func (g *SessionGrouper) Items(sessions iter.Seq2[domain.ChatSession, error]) iter.Seq2[domain.IngestItem, error] {
	return func(yield func(domain.IngestItem, error) bool) {
		for session, err := range sessions {
			if err != nil {
				yield(domain.IngestItem{}, err)
				return
			}
			item := domain.IngestItem{Metadata: session.Metadata(), Text: session.Content}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// finalise turns one message buffer into a session. Messages arrive
// ordered per source file; the re-sort is a safety net and keeps ties
// in arrival order.
func (g *SessionGrouper) finalise(buffer []domain.ChatMessage) (domain.ChatSession, error) {
	if len(buffer) == 0 {
		return domain.ChatSession{}, domain.ErrEmptySession
	}

	messages := slices.Clone(buffer)
	slices.SortStableFunc(messages, domain.CompareMessages)
	attachReplies(messages)

	return domain.ChatSession{
		Name:    domain.SessionName(messages),
		Start:   messages[0].Time,
		End:     messages[len(messages)-1].Time,
		Content: g.render(messages),
	}, nil
}

// attachReplies resolves reply targets within one session buffer.
// Targets outside the buffer stay unattached; cross-session replies
// are not resolvable.
func attachReplies(messages []domain.ChatMessage) {
	texts := make(map[string]string, len(messages))
	for _, msg := range messages {
		if msg.ID != "" {
			texts[msg.ID] = msg.Text
		}
	}

	for i := range messages {
		if messages[i].ReplyID == "" {
			continue
		}
		if text, ok := texts[messages[i].ReplyID]; ok {
			messages[i].ReplyText = text
		}
	}
}

// render groups consecutive messages from one sender under a single
// label, indents message lines beneath it and prefixes resolved
// replies with a short inline quotation.
func (g *SessionGrouper) render(messages []domain.ChatMessage) string {
	var lines []string
	lastSpeaker := ""

	for _, msg := range messages {
		text := msg.Text
		if msg.ReplyText != "" {
			text = "↩[" + g.counter.Truncate(msg.ReplyText, quoteTokens) + "] " + text
		}

		if msg.From != lastSpeaker {
			lines = append(lines, msg.From+":")
			lastSpeaker = msg.From
		}

		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, "\t"+line)
			}
		}
	}

	return strings.Join(lines, "\n")
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
