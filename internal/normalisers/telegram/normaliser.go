// Package telegram normalises telegram-history-dump export events
// into chat messages. It resolves participant display names, flattens
// media payloads into textual placeholders and collapses whitespace so
// every message becomes one transcript line.
package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/remem-labs/remem/internal/core/domain"
	"github.com/remem-labs/remem/internal/core/ports/driven"
)

// Normaliser converts export events into domain chat messages.
type Normaliser struct {
	counter driven.TokenCounter
}

// New creates a normaliser. The token counter bounds webpage
// enrichment fields.
func New(counter driven.TokenCounter) *Normaliser {
	return &Normaliser{counter: counter}
}

// Normalise converts one event. The event must be an ingestible
// message; violations are contract failures, not skips:
//
//   - a non-message event returns domain.ErrNotMessage
//   - a message with neither text nor media returns domain.ErrEmptyMessage
//   - an unknown participant kind returns domain.ErrUnknownPeerType
//
// Unknown media kinds are NOT errors; they degrade to a visible
// placeholder and processing continues.
func (n *Normaliser) Normalise(ev Event) (domain.ChatMessage, error) {
	if ev.Kind != "message" {
		return domain.ChatMessage{}, fmt.Errorf("%w: event kind %q", domain.ErrNotMessage, ev.Kind)
	}
	if ev.Text == "" && ev.Media == nil {
		return domain.ChatMessage{}, fmt.Errorf("%w: id %s", domain.ErrEmptyMessage, string(ev.ID))
	}

	from, err := peerName(ev.From)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	to, err := peerName(ev.To)
	if err != nil {
		return domain.ChatMessage{}, err
	}

	return domain.ChatMessage{
		ID:        string(ev.ID),
		ReplyID:   string(ev.ReplyID),
		Time:      time.Unix(ev.Date, 0).UTC(),
		From:      from,
		To:        to,
		GroupName: ev.To.Title,
		Text:      n.messageText(ev),
	}, nil
}

// peerName renders a participant for the transcript. Users become
// "First Last", falling back to "<kind>#<id>" when the name fields are
// empty. Groups and channels use their title directly.
func peerName(peer Peer) (string, error) {
	switch peer.Type {
	case "user":
		name := strings.TrimSpace(peer.FirstName + " " + peer.LastName)
		if name == "" {
			name = fmt.Sprintf("%s#%d", peer.Type, peer.ID)
		}
		return name, nil
	case "chat", "channel":
		return peer.Title, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownPeerType, peer.Type)
	}
}

// messageText combines the event text with the media placeholder and
// flattens the result to a single trimmed line, so multi-line captions
// never leak structure into the transcript.
func (n *Normaliser) messageText(ev Event) string {
	text := ev.Text
	mediaText := n.mediaText(ev.Media)

	combined := text
	switch {
	case text != "" && mediaText != "":
		combined = text + " " + mediaText
	case mediaText != "":
		combined = mediaText
	}

	return strings.Join(strings.Fields(combined), " ")
}
