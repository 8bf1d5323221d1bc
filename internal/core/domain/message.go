package domain

import "time"

// ChatMessage is one normalised conversational event.
// ReplyText is populated by the session grouper once all messages of a
// session are buffered; messages are only linkable within one session.
type ChatMessage struct {
	// ID is the source-native message identifier.
	ID string

	// ReplyID is the identifier of the message this one replies to.
	// Empty when the message is not a reply.
	ReplyID string

	// ReplyText is the normalised text of the reply target, resolved
	// within the session buffer. Empty when unresolved.
	ReplyText string

	// Time is the message timestamp.
	Time time.Time

	// From is the sender display name.
	From string

	// To is the recipient or peer display name.
	To string

	// GroupName is the group or channel title, empty for private chats.
	GroupName string

	// Text is the normalised message text, media placeholders included.
	Text string
}

// CompareMessages orders messages by timestamp. Ties report equal so a
// stable sort preserves arrival order, keeping the ordering
// deterministic for a given input.
func CompareMessages(a, b ChatMessage) int {
	return a.Time.Compare(b.Time)
}
