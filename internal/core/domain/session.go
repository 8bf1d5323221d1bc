package domain

import (
	"sort"
	"strings"
	"time"
)

// ChatSession is a contiguous run of chat messages separated from its
// neighbours by an inactivity gap. Invariant: a session holds at least
// one message; Start and End are the timestamps of its first and last
// message in time order.
type ChatSession struct {
	Name    string
	Start   time.Time
	End     time.Time
	Content string
}

// Metadata returns the scalar record attached to every chunk produced
// from this session.
func (s ChatSession) Metadata() Metadata {
	return Metadata{
		"name":      s.Name,
		"date":      s.Start.UTC().Format("2006-01-02"),
		"timestamp": s.Start.Unix(),
	}
}

// SessionName derives the display name for a set of messages. If any
// message carries a group or channel title, the first one in timestamp
// order wins. Otherwise the name is the sorted, deduplicated set of
// sender and recipient names joined with " & ". Messages must already
// be sorted by time.
func SessionName(messages []ChatMessage) string {
	peers := make(map[string]struct{})
	for _, msg := range messages {
		if msg.GroupName != "" {
			return msg.GroupName
		}
		peers[msg.From] = struct{}{}
		peers[msg.To] = struct{}{}
	}

	names := make([]string, 0, len(peers))
	for name := range peers {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, " & ")
}
